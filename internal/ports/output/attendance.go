package output

import "context"

// AttendanceStore tracks the per-guild set of users provisionally marked as
// having attended a session, pending a batch history registration.
//
// Implementations must serialize concurrent mutations within a guild; no
// cross-guild coordination is required.
type AttendanceStore interface {
	// Toggle inserts or removes userID in guildID's set and reports whether
	// the user is marked after the call.
	Toggle(ctx context.Context, guildID, userID string) (bool, error)
	// List returns the current set for guildID.
	List(ctx context.Context, guildID string) ([]string, error)
	// Drain atomically snapshots and clears guildID's set.
	Drain(ctx context.Context, guildID string) ([]string, error)
}
