package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID     uuid.UUID
	Email      string
	SellerName string
	IsAdmin    bool
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to dashboard clients.
type AccessTokenClaims struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	SellerName string    `json:"seller_name,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	jwt.RegisteredClaims
}
