package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nishantjoshi-007/NutriScan/utils"
)

type deviceTokenRequest struct {
	AppKey   string `json:"app_key" binding:"required"`
	DeviceID string `json:"device_id"`
}

// POST /auth/device
// No user accounts: the app ships with a shared key and exchanges it for a
// long-lived device token.
func RegisterDevice(c *gin.Context) {
	var req deviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	appKey := os.Getenv("APP_KEY")
	if appKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: APP_KEY not set"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.AppKey), []byte(appKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid app key"})
		return
	}

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	token, err := utils.GenerateDeviceJWT(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "device_id": deviceID})
}
