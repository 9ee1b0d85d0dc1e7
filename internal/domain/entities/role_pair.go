package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// RolePair holds the two role ids a panel toggles. Zero means "unset".
type RolePair struct {
	Participant uint64
	Spectator   uint64
}

// Encode serializes the pair into the plaintext form carried by a panel:
// "participant=<id>|spectator=<id>".
func (p RolePair) Encode() string {
	return fmt.Sprintf("participant=%d|spectator=%d", p.Participant, p.Spectator)
}

// ParseRolePair parses the plaintext payload form. A valid payload contains
// exactly one participant id and one spectator id, both non-negative integers;
// anything else is rejected.
func ParseRolePair(s string) (RolePair, error) {
	var pair RolePair
	seenParticipant, seenSpectator := false, false
	for _, part := range strings.Split(s, "|") {
		switch {
		case strings.HasPrefix(part, "participant="):
			id, err := strconv.ParseUint(strings.TrimPrefix(part, "participant="), 10, 64)
			if err != nil || seenParticipant {
				return RolePair{}, fmt.Errorf("parse role pair: bad participant in %q", s)
			}
			pair.Participant = id
			seenParticipant = true
		case strings.HasPrefix(part, "spectator="):
			id, err := strconv.ParseUint(strings.TrimPrefix(part, "spectator="), 10, 64)
			if err != nil || seenSpectator {
				return RolePair{}, fmt.Errorf("parse role pair: bad spectator in %q", s)
			}
			pair.Spectator = id
			seenSpectator = true
		}
	}
	if !seenParticipant || !seenSpectator {
		return RolePair{}, fmt.Errorf("parse role pair: incomplete payload %q", s)
	}
	return pair, nil
}
