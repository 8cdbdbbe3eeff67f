package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session
// tokens. A token encodes the account ID and expires 24 hours after issuance;
// it is signed with a process-wide secret fixed at startup.
type TokenService interface {
	// Generate creates a new signed session token for the given user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims. It fails for missing, malformed, forged, or expired tokens.
	Validate(tokenString string) (*Claims, error)
}
