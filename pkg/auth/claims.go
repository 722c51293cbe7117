package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenClaims represents the typed JWT issued to the admin dashboard.
type AdminTokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}
