package entities

import "testing"

func TestRolePairEncodeParse(t *testing.T) {
	pairs := []RolePair{
		{Participant: 123456789012345678, Spectator: 987654321098765432},
		{Participant: 1, Spectator: 2},
		{Participant: 0, Spectator: 0},
	}
	for _, pair := range pairs {
		got, err := ParseRolePair(pair.Encode())
		if err != nil {
			t.Fatalf("ParseRolePair(%q): %v", pair.Encode(), err)
		}
		if got != pair {
			t.Fatalf("round-trip = %+v, want %+v", got, pair)
		}
	}
}

func TestParseRolePairRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"participant=1",
		"spectator=2",
		"participant=|spectator=2",
		"participant=abc|spectator=2",
		"participant=-1|spectator=2",
		"participant=1|participant=2|spectator=3|spectator=4",
		"unrelated text",
	}
	for _, in := range cases {
		if got, err := ParseRolePair(in); err == nil {
			t.Errorf("ParseRolePair(%q) = %+v, want error", in, got)
		}
	}
}

func TestParseRolePairIgnoresExtraSegments(t *testing.T) {
	got, err := ParseRolePair("participant=1|spectator=2|extra=3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Participant != 1 || got.Spectator != 2 {
		t.Fatalf("got %+v", got)
	}
}
