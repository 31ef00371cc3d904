package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims we read out of identity-service tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the external identity
// service. This backend never mints user tokens itself.
type TokenService interface {
	// ValidateToken checks the signature and expiry of a token string and
	// returns the parsed claims.
	ValidateToken(tokenString string) (*Claims, error)
}
