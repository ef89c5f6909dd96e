package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(origins []string, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(origins))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	rec := serve([]string{"https://admin.campus.test/"}, "https://admin.campus.test")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://admin.campus.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	rec := serve([]string{"https://admin.campus.test"}, "https://evil.test")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORSAllowsAnyWhenUnconfigured(t *testing.T) {
	rec := serve(nil, "https://student.campus.test")
	assert.Equal(t, "https://student.campus.test", rec.Header().Get("Access-Control-Allow-Origin"))
}
