package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantjoshi-007/NutriScan/services"
	"github.com/nishantjoshi-007/NutriScan/utils"
)

type AnalysisController struct {
	svc *services.AnalysisService
}

func NewAnalysisController(svc *services.AnalysisService) *AnalysisController {
	return &AnalysisController{svc: svc}
}

type analyzeImageRequest struct {
	ImageBase64 string  `json:"image_base64" binding:"required"`
	WeightGrams float64 `json:"weight_grams" binding:"required"`
	Language    string  `json:"language"`
}

// POST /analysis/image
func (ac *AnalysisController) AnalyzeImage(c *gin.Context) {
	var req analyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	image, mimeType, err := utils.DecodeDataURI(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := ac.svc.AnalyzeImage(c.Request.Context(), image, mimeType, req.WeightGrams, req.Language)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type analyzeTextRequest struct {
	Description string  `json:"description" binding:"required"`
	Weight      float64 `json:"weight" binding:"required"`
	Unit        string  `json:"unit"`
	Language    string  `json:"language"`
}

// POST /analysis/text
func (ac *AnalysisController) AnalyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	rec, err := ac.svc.AnalyzeText(c.Request.Context(), req.Description, req.Weight, req.Unit, req.Language)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type estimateWeightRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /analysis/weight
func (ac *AnalysisController) EstimateWeight(c *gin.Context) {
	var req estimateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	image, mimeType, err := utils.DecodeDataURI(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	est, err := ac.svc.EstimateWeightFromImage(c.Request.Context(), image, mimeType)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// respondAnalysisError maps the gateway's error taxonomy onto HTTP statuses.
// Anything outside the typed set is treated as a local validation problem,
// which the gateway raises before calling out.
func respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAnalysisFailed), errors.Is(err, services.ErrInvalidResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
