package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pizzamia_back_end/internal/models"
)

// GenerateJWT emette il token di sessione (HS256, 24 ore).
func GenerateJWT(user models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
