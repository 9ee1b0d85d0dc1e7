package config

import "testing"

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load without DISCORD_TOKEN must fail")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style.Width != 1200 || cfg.Style.Height != 650 {
		t.Fatalf("default canvas = %dx%d", cfg.Style.Width, cfg.Style.Height)
	}
	if cfg.Style.StrokeTitle != 5 || cfg.Style.InlineStrokeTitle != 3 {
		t.Fatalf("default title strokes = %d/%d", cfg.Style.StrokeTitle, cfg.Style.InlineStrokeTitle)
	}
	if cfg.DefaultLocale != "ja" {
		t.Fatalf("default locale = %q", cfg.DefaultLocale)
	}
	if cfg.HistoryPath != "history.csv" {
		t.Fatalf("default history path = %q", cfg.HistoryPath)
	}
}

func TestLoadStyleOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("FONT_SCALE", "1.5")
	t.Setenv("STROKE_BODY", "6")
	t.Setenv("LABEL_X", "90")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style.TitleSize != 84 {
		t.Fatalf("scaled title size = %d, want 84", cfg.Style.TitleSize)
	}
	if cfg.Style.StrokeBody != 6 || cfg.Style.InlineStrokeBody != 4 {
		t.Fatalf("body strokes = %d/%d, want 6/4", cfg.Style.StrokeBody, cfg.Style.InlineStrokeBody)
	}
	if cfg.Style.LabelX != 90 {
		t.Fatalf("LabelX = %d", cfg.Style.LabelX)
	}
}

func TestLoadRejectsBadGuildIDs(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GUILD_IDS", "123,not-an-id")
	if _, err := Load(); err == nil {
		t.Fatal("Load must reject non-numeric guild ids")
	}
}
