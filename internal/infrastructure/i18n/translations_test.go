package i18n

import (
	"strings"
	"testing"
)

func TestTranslateWithPlaceholder(t *testing.T) {
	tr := NewTranslator("ja")
	got := tr.T("ja", "signup.role_granted", map[string]any{"Role": "参加者"})
	if !strings.Contains(got, "参加者") {
		t.Fatalf("T(ja, signup.role_granted) = %q, placeholder missing", got)
	}
}

func TestFallbackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("ja")
	// Unknown locale falls back to the default bundle.
	got := tr.T("fr", "errors.role_not_found", nil)
	if got == "" || got == "errors.role_not_found" {
		t.Fatalf("T(fr, errors.role_not_found) = %q", got)
	}
}

func TestEnglishBundle(t *testing.T) {
	tr := NewTranslator("ja")
	got := tr.T("en", "panel.players_unit", nil)
	if got != "players" {
		t.Fatalf("T(en, panel.players_unit) = %q", got)
	}
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("ja")
	if got := tr.T("ja", "nope.missing", nil); got != "nope.missing" {
		t.Fatalf("T(unknown key) = %q", got)
	}
}
