package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateDeviceJWT issues the bearer token a device uses after exchanging
// the app key. No user accounts; the claim only identifies the installation.
func GenerateDeviceJWT(deviceID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"deviceId": deviceID,
		"exp":      time.Now().Add(time.Hour * 24 * 90).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
