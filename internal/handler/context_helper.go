package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-reports-api/internal/middleware"
	"github.com/noah-isme/campus-reports-api/internal/models"
)

const collegeParam = "college_id"

func callerFromContext(c *gin.Context) (models.CallerIdentity, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return models.CallerIdentity{}, false
	}
	return claims.Identity(), true
}
