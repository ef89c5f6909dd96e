package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-reports-api/internal/models"
)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims models.JWTClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() models.JWTClaims {
	return models.JWTClaims{
		UserID:    "user-1",
		CollegeID: testCollege,
		Email:     "staff@campus.test",
		Role:      models.RoleStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "campus-auth",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestTokenVerifierAcceptsValidToken(t *testing.T) {
	verifier := NewTokenVerifier("secret", "campus-auth")
	token := signToken(t, jwt.SigningMethodHS256, []byte("secret"), validClaims())

	claims, err := verifier.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.CallerIdentity{UserID: "user-1", CollegeID: testCollege, Role: models.RoleStaff}, claims.Identity())
}

func TestTokenVerifierRejects(t *testing.T) {
	verifier := NewTokenVerifier("secret", "campus-auth")

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"

	noCollege := validClaims()
	noCollege.CollegeID = ""

	cases := map[string]string{
		"wrong secret":  signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims()),
		"wrong method":  signToken(t, jwt.SigningMethodHS512, []byte("secret"), validClaims()),
		"expired":       signToken(t, jwt.SigningMethodHS256, []byte("secret"), expired),
		"wrong issuer":  signToken(t, jwt.SigningMethodHS256, []byte("secret"), wrongIssuer),
		"missing scope": signToken(t, jwt.SigningMethodHS256, []byte("secret"), noCollege),
		"garbage":       "not-a-token",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.ValidateToken(token)
			assert.Equal(t, "UNAUTHORIZED", appCode(err))
		})
	}
}

func TestTokenVerifierWithoutIssuer(t *testing.T) {
	claims := validClaims()
	claims.Issuer = ""
	token := signToken(t, jwt.SigningMethodHS256, []byte("secret"), claims)

	_, err := NewTokenVerifier("secret", "").ValidateToken(token)
	assert.NoError(t, err)
}
