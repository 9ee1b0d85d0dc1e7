package input

import (
	"context"

	"mysterybot/internal/domain/entities"
)

type SignupUseCase interface {
	// ToggleRole flips the membership marker selected by kind (participant or
	// spectator) for userID, reading the role pair from the panel's carrier
	// text. Returns the localized confirmation to show the user.
	ToggleRole(ctx context.Context, locale, guildID, userID, carrier, kind string) (string, error)
	// ToggleAttendance flips userID in the guild's attendance set.
	ToggleAttendance(ctx context.Context, locale, guildID, userID string) (string, error)
	// Status snapshots the guild's current member lists.
	Status(ctx context.Context, guildID string) (entities.GuildStatus, error)
	// RegisterHistory persists the guild's current state under scenario,
	// strips the signup roles from every snapshotted member (best effort) and
	// clears the attendance set. Returns the localized summary.
	RegisterHistory(ctx context.Context, locale, guildID, scenario string) (string, error)
}
