package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nishantjoshi-007/NutriScan/services"
)

type RecipeController struct {
	svc *services.AnalysisService
}

func NewRecipeController(svc *services.AnalysisService) *RecipeController {
	return &RecipeController{svc: svc}
}

// GET /recipes/search?q=low+sodium+curry&language=en
func (rc *RecipeController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	recipes, err := rc.svc.SearchRecipes(c.Request.Context(), query, c.Query("language"))
	if err != nil {
		respondAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/details?name=...&servings=2&language=en
func (rc *RecipeController) Details(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	servings, _ := strconv.Atoi(c.DefaultQuery("servings", "2"))

	detail, err := rc.svc.GetRecipeDetails(c.Request.Context(), name, servings, c.Query("language"))
	if err != nil {
		respondAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
