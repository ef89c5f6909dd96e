package service

import (
	"fmt"
	"strings"

	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
)

// authorize is the single role gate used by every report entry point.
func authorize(caller models.CallerIdentity, action string, allowed ...models.UserRole) error {
	for _, role := range allowed {
		if caller.Role == role {
			return nil
		}
	}
	names := make([]string, 0, len(allowed))
	for _, role := range allowed {
		names = append(names, string(role))
	}
	return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("only %s can %s", strings.Join(names, " and "), action))
}

// ensureCollege rejects callers whose token is scoped to a different college than the path.
func ensureCollege(caller models.CallerIdentity, collegeID string) error {
	if strings.TrimSpace(collegeID) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "college_id is required")
	}
	if caller.CollegeID != collegeID {
		return appErrors.Clone(appErrors.ErrCollegeMismatch, "")
	}
	return nil
}
