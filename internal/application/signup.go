package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"mysterybot/internal/domain"
	"mysterybot/internal/domain/entities"
	"mysterybot/internal/payload"
	"mysterybot/internal/ports/input"
	"mysterybot/internal/ports/output"
)

var _ input.SignupUseCase = (*SignupService)(nil)

// SignupService is the state machine behind the panel buttons: role toggles
// driven by the carrier payload, the attendance set, and the administrative
// history registration that consumes both.
type SignupService struct {
	roles      output.RoleDirectory
	attendance output.AttendanceStore
	history    output.HistoryLog
	translator output.T
	defaults   entities.RolePair
}

func NewSignupService(
	roles output.RoleDirectory,
	attendance output.AttendanceStore,
	history output.HistoryLog,
	translator output.T,
	defaults entities.RolePair,
) *SignupService {
	return &SignupService{
		roles:      roles,
		attendance: attendance,
		history:    history,
		translator: translator,
		defaults:   defaults,
	}
}

// ToggleRole decodes the panel's carrier text, resolves the requested role
// and flips the acting user's membership marker: removed when held, granted
// when not.
func (s *SignupService) ToggleRole(ctx context.Context, locale, guildID, userID, carrier, kind string) (string, error) {
	plain, ok := payload.Reveal(carrier)
	if !ok {
		return "", domain.ErrNoPayload
	}
	pair, err := entities.ParseRolePair(plain)
	if err != nil {
		return "", domain.ErrNoPayload
	}

	roleID := pair.Participant
	if kind == domain.RoleSpectator {
		roleID = pair.Spectator
	}
	if roleID == 0 {
		return "", domain.ErrRoleNotConfigured
	}

	name, err := s.roles.RoleName(ctx, guildID, roleID)
	if err != nil {
		return "", domain.ErrRoleNotFound
	}

	has, err := s.roles.HasRole(ctx, guildID, userID, roleID)
	if err != nil {
		return "", fmt.Errorf("check role: %w", err)
	}
	data := map[string]any{"Role": name}
	if has {
		if err := s.roles.RevokeRole(ctx, guildID, userID, roleID); err != nil {
			return "", fmt.Errorf("revoke role: %w", err)
		}
		return s.translator.T(locale, "signup.role_removed", data), nil
	}
	if err := s.roles.GrantRole(ctx, guildID, userID, roleID); err != nil {
		return "", fmt.Errorf("grant role: %w", err)
	}
	return s.translator.T(locale, "signup.role_granted", data), nil
}

// ToggleAttendance flips userID in the guild's attendance set. No carrier
// decoding is involved; the set is keyed by guild alone.
func (s *SignupService) ToggleAttendance(ctx context.Context, locale, guildID, userID string) (string, error) {
	marked, err := s.attendance.Toggle(ctx, guildID, userID)
	if err != nil {
		return "", fmt.Errorf("toggle attendance: %w", err)
	}
	key := "signup.attended_off"
	if marked {
		key = "signup.attended_on"
	}
	return s.translator.T(locale, key, nil), nil
}

// Status snapshots the guild's current participant, spectator and attendance
// lists using the configured default roles.
func (s *SignupService) Status(ctx context.Context, guildID string) (entities.GuildStatus, error) {
	var status entities.GuildStatus
	status.Participants = s.membersOrEmpty(ctx, guildID, s.defaults.Participant)
	status.Spectators = s.membersOrEmpty(ctx, guildID, s.defaults.Spectator)
	attended, err := s.attendance.List(ctx, guildID)
	if err != nil {
		return entities.GuildStatus{}, fmt.Errorf("list attendance: %w", err)
	}
	status.Attended = attended
	return status, nil
}

// RegisterHistory snapshots the guild state, appends the history record,
// strips both signup roles from every snapshotted member and leaves the
// attendance set empty. The set is cleared only once the record is written:
// a failed append keeps every entry for the retry. Per-member removal
// failures are counted, not fatal: the batch always completes.
func (s *SignupService) RegisterHistory(ctx context.Context, locale, guildID, scenario string) (string, error) {
	participants := s.membersOrEmpty(ctx, guildID, s.defaults.Participant)
	spectators := s.membersOrEmpty(ctx, guildID, s.defaults.Spectator)
	attended, err := s.attendance.List(ctx, guildID)
	if err != nil {
		return "", fmt.Errorf("list attendance: %w", err)
	}

	rec := entities.HistoryRecord{
		Scenario:     scenario,
		RegisteredAt: time.Now(),
		Participants: participants,
		Spectators:   spectators,
		Attended:     attended,
	}
	if err := s.history.Append(ctx, rec); err != nil {
		return "", fmt.Errorf("append history: %w", err)
	}
	if _, err := s.attendance.Drain(ctx, guildID); err != nil {
		log.Printf("⚠️ Attendance clear failed after registration (guild=%s): %v", guildID, err)
	}

	failures := 0
	failures += s.stripRole(ctx, guildID, s.defaults.Participant, participants)
	failures += s.stripRole(ctx, guildID, s.defaults.Spectator, spectators)

	return s.translator.T(locale, "history.registered", map[string]any{
		"Scenario":     scenario,
		"Participants": len(participants),
		"Spectators":   len(spectators),
		"Attended":     len(attended),
		"Failures":     failures,
	}), nil
}

func (s *SignupService) membersOrEmpty(ctx context.Context, guildID string, roleID uint64) []string {
	if roleID == 0 {
		return nil
	}
	members, err := s.roles.MembersWithRole(ctx, guildID, roleID)
	if err != nil {
		log.Printf("⚠️ Member listing failed (guild=%s role=%d): %v", guildID, roleID, err)
		return nil
	}
	return members
}

func (s *SignupService) stripRole(ctx context.Context, guildID string, roleID uint64, userIDs []string) int {
	if roleID == 0 {
		return 0
	}
	failures := 0
	for _, userID := range userIDs {
		if err := s.roles.RevokeRole(ctx, guildID, userID, roleID); err != nil {
			log.Printf("⚠️ Role removal failed (guild=%s user=%s role=%d): %v", guildID, userID, roleID, err)
			failures++
		}
	}
	return failures
}
