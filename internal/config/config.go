package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"mysterybot/internal/render"
)

type Config struct {
	Token    string
	GuildIDs []string

	AllowedRoleID            uint64
	DefaultParticipantRoleID uint64
	DefaultSpectatorRoleID   uint64

	DefaultBackgroundURL string
	FontPath             string
	FontURL              string

	DatabaseURL    string
	MigrationsPath string
	HistoryPath    string

	DefaultLocale string

	Style render.Style
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Token:                    os.Getenv("DISCORD_TOKEN"),
		GuildIDs:                 splitIDs(os.Getenv("GUILD_IDS")),
		AllowedRoleID:            envUint64("ALLOWED_ROLE_ID", 0),
		DefaultParticipantRoleID: envUint64("PARTICIPANT_ROLE_ID", 0),
		DefaultSpectatorRoleID:   envUint64("SPECTATOR_ROLE_ID", 0),
		DefaultBackgroundURL:     os.Getenv("DEFAULT_BG_IMAGE_URL"),
		FontPath:                 os.Getenv("FONT_PATH"),
		FontURL:                  os.Getenv("FONT_URL"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		MigrationsPath:           envString("MIGRATIONS_PATH", "migrations"),
		HistoryPath:              envString("HISTORY_PATH", "history.csv"),
		DefaultLocale:            envString("DEFAULT_LOCALE", "ja"),
		Style:                    loadStyle(),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadStyle builds the immutable drawing configuration once at startup; the
// renderer never consults the environment itself.
func loadStyle() render.Style {
	scale := envFloat("FONT_SCALE", 1.0)
	style := render.DefaultStyle(scale)
	style.Width = envInt("CANVAS_WIDTH", style.Width)
	style.Height = envInt("CANVAS_HEIGHT", style.Height)
	style.BGAlpha = uint8(envInt("BG_ALPHA", int(style.BGAlpha)))
	style.PanelOpacity = uint8(envInt("PANEL_OPACITY", int(style.PanelOpacity)))
	style.StrokeTitle = envInt("STROKE_TITLE", style.StrokeTitle)
	style.StrokeBody = envInt("STROKE_BODY", style.StrokeBody)
	style.InlineStrokeTitle = envInt("INLINE_STROKE_TITLE", maxInt(style.StrokeTitle-2, 1))
	style.InlineStrokeBody = envInt("INLINE_STROKE_BODY", maxInt(style.StrokeBody-2, 1))
	style.LabelX = envInt("LABEL_X", style.LabelX)
	style.ValueX = envInt("VALUE_X", style.ValueX)
	return style
}

// validate applies all the business rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN is required and cannot be empty")
	}
	for _, id := range c.GuildIDs {
		for _, r := range id {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: GUILD_IDS must contain Discord guild ids (digits only), got %q", id)
			}
		}
	}
	if c.Style.Width <= 0 || c.Style.Height <= 0 {
		return fmt.Errorf("config: CANVAS_WIDTH and CANVAS_HEIGHT must be positive")
	}
	return nil
}

func splitIDs(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envString(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envUint64(name string, fallback uint64) uint64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(name string, fallback float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
