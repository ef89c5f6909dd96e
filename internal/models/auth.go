package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims represents the access token payload minted by the authentication service.
type JWTClaims struct {
	UserID    string   `json:"user_id"`
	CollegeID string   `json:"college_id"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	jwt.RegisteredClaims
}

// CallerIdentity is what the reporting engine knows about the caller.
type CallerIdentity struct {
	UserID    string
	CollegeID string
	Role      UserRole
}

// Identity projects the claims onto the engine's caller identity.
func (c *JWTClaims) Identity() CallerIdentity {
	if c == nil {
		return CallerIdentity{}
	}
	return CallerIdentity{UserID: c.UserID, CollegeID: c.CollegeID, Role: c.Role}
}
