package entities

import (
	"strings"
	"time"
)

// HistoryRecord is one registered play session: who held the participant and
// spectator roles and who was marked attended at the moment of registration.
type HistoryRecord struct {
	Scenario     string
	RegisteredAt time.Time
	Participants []string
	Spectators   []string
	Attended     []string
}

// JoinIDs renders an id list in the stable persisted form: comma-joined, or a
// single "-" when empty.
func JoinIDs(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ",")
}

// GuildStatus is the current signup state of one guild.
type GuildStatus struct {
	Participants []string
	Spectators   []string
	Attended     []string
}
