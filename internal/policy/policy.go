package policy

import (
	"errors"

	"internal-task-api/internal/models"
)

// ErrForbidden is returned when the caller's role does not satisfy a gate.
var ErrForbidden = errors.New("forbidden")

// RequireRole is the single role predicate. Gated endpoints (account
// provisioning, dashboard) call it instead of comparing role strings inline.
func RequireRole(user *models.User, role models.UserRole) error {
	if user == nil || user.Role != role {
		return ErrForbidden
	}
	return nil
}
