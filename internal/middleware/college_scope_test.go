package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campus-reports-api/internal/models"
)

func newScopedRouter(claims *models.JWTClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(ContextUserKey, claims)
		}
		c.Next()
	})
	router.GET("/colleges/:college_id/reports", CollegeScope("college_id"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestCollegeScope(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", CollegeID: "col-1", Role: models.RoleStaff}

	recorder := httptest.NewRecorder()
	newScopedRouter(claims).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/colleges/col-1/reports", nil))
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = httptest.NewRecorder()
	newScopedRouter(claims).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/colleges/col-2/reports", nil))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "COLLEGE_MISMATCH", errorCode(t, recorder))
}

func TestCollegeScopeRequiresClaims(t *testing.T) {
	recorder := httptest.NewRecorder()
	newScopedRouter(nil).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/colleges/col-1/reports", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
