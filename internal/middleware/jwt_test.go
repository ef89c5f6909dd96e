package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
)

type stubVerifier struct {
	claims *models.JWTClaims
	err    error
	seen   string
}

func (s *stubVerifier) ValidateToken(token string) (*models.JWTClaims, error) {
	s.seen = token
	return s.claims, s.err
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Error.Code
}

func newJWTRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/secure", JWT(verifier), func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.UserID)
	})
	return router
}

func TestJWTAcceptsBearerToken(t *testing.T) {
	verifier := &stubVerifier{claims: &models.JWTClaims{UserID: "user-1", CollegeID: "col-1", Role: models.RoleAdmin}}
	router := newJWTRouter(verifier)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "bearer token-123")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-1", recorder.Body.String())
	assert.Equal(t, "token-123", verifier.seen)
}

func TestJWTRejectsMissingOrInvalidTokens(t *testing.T) {
	cases := map[string]struct {
		header   string
		verifier *stubVerifier
	}{
		"missing header": {"", &stubVerifier{}},
		"wrong scheme":   {"Basic abc", &stubVerifier{}},
		"empty token":    {"Bearer ", &stubVerifier{}},
		"invalid token":  {"Bearer nope", &stubVerifier{err: appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			router := newJWTRouter(tc.verifier)
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, "UNAUTHORIZED", errorCode(t, recorder))
		})
	}
}
