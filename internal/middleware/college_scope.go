package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
	"github.com/noah-isme/campus-reports-api/pkg/response"
)

// CollegeScope rejects requests whose path college differs from the token's college.
// The path parameter, never a payload field, is the tenant of record.
func CollegeScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if c.Param(param) == "" || c.Param(param) != claims.CollegeID {
			response.Error(c, appErrors.ErrCollegeMismatch)
			c.Abort()
			return
		}
		c.Next()
	}
}
