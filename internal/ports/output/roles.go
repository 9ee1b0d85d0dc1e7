package output

import "context"

// RoleDirectory is the platform-side view of membership markers: resolving a
// role, reading and flipping a member's marker, and enumerating holders.
type RoleDirectory interface {
	// RoleName resolves roleID to its display name, or domain.ErrRoleNotFound.
	RoleName(ctx context.Context, guildID string, roleID uint64) (string, error)
	// HasRole reports whether userID currently holds roleID.
	HasRole(ctx context.Context, guildID, userID string, roleID uint64) (bool, error)
	GrantRole(ctx context.Context, guildID, userID string, roleID uint64) error
	RevokeRole(ctx context.Context, guildID, userID string, roleID uint64) error
	// MembersWithRole lists the user ids currently holding roleID.
	MembersWithRole(ctx context.Context, guildID string, roleID uint64) ([]string, error)
}
