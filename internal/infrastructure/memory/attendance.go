// Package memory holds the in-process attendance store. It is the default
// backing store: a restart loses unregistered entries, which matches the
// original behavior. Point DATABASE_URL at PostgreSQL for durability.
package memory

import (
	"context"
	"sort"
	"sync"

	"mysterybot/internal/ports/output"
)

var _ output.AttendanceStore = (*AttendanceStore)(nil)

// AttendanceStore keeps one set of user ids per guild, guarded by a single
// mutex so concurrent toggles on the same guild cannot lose updates.
type AttendanceStore struct {
	mu     sync.Mutex
	guilds map[string]map[string]struct{}
}

func NewAttendanceStore() *AttendanceStore {
	return &AttendanceStore{guilds: make(map[string]map[string]struct{})}
}

func (s *AttendanceStore) Toggle(_ context.Context, guildID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.guilds[guildID]
	if set == nil {
		set = make(map[string]struct{})
		s.guilds[guildID] = set
	}
	if _, ok := set[userID]; ok {
		delete(set, userID)
		return false, nil
	}
	set[userID] = struct{}{}
	return true, nil
}

func (s *AttendanceStore) List(_ context.Context, guildID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedIDs(s.guilds[guildID]), nil
}

// Drain snapshots and clears the guild's set in one critical section; callers
// run their follow-up work (role strips, file writes) outside the lock.
func (s *AttendanceStore) Drain(_ context.Context, guildID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := sortedIDs(s.guilds[guildID])
	delete(s.guilds, guildID)
	return ids, nil
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
