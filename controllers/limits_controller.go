package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantjoshi-007/NutriScan/models"
	"github.com/nishantjoshi-007/NutriScan/services"
)

type LimitsController struct {
	svc *services.AnalysisService
}

func NewLimitsController(svc *services.AnalysisService) *LimitsController {
	return &LimitsController{svc: svc}
}

// GET /limits
func (lc *LimitsController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, lc.svc.GetDailyLimits())
}

// PUT /limits
// Runtime configuration only; limits reset to defaults on restart.
func (lc *LimitsController) Update(c *gin.Context) {
	var limits models.DailyLimits
	if err := c.ShouldBindJSON(&limits); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if limits.Calories <= 0 || limits.Potassium <= 0 || limits.Phosphorus <= 0 || limits.Sodium <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all limits must be positive"})
		return
	}

	lc.svc.SetDailyLimits(limits)
	c.JSON(http.StatusOK, limits)
}

// GET /limits/context  — today's intake vs limits, as used in prompts.
func (lc *LimitsController) Context(c *gin.Context) {
	c.JSON(http.StatusOK, lc.svc.NutritionContext())
}
