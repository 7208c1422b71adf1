package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantjoshi-007/NutriScan/utils"
)

type uploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /uploads
// Stores a food photo and returns its public URL; the client keeps the URL as
// the image reference when it saves the matching analysis to history.
func UploadImage(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadFoodPhoto(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
