package domain

import "errors"

// Domain errors.
var (
	ErrNoPayload         = errors.New("no role payload in carrier text")
	ErrRoleNotConfigured = errors.New("role id not configured")
	ErrRoleNotFound      = errors.New("role no longer exists")
)

// Code maps a domain error to a stable code used for i18n lookup.
// Unknown errors map to the empty string.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNoPayload):
		return "no_payload"
	case errors.Is(err, ErrRoleNotConfigured):
		return "role_not_configured"
	case errors.Is(err, ErrRoleNotFound):
		return "role_not_found"
	default:
		return ""
	}
}

// Role kinds toggled by the signup buttons.
const (
	RoleParticipant = "participant"
	RoleSpectator   = "spectator"
)
