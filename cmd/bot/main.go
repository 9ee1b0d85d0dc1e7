package main

import (
	"context"
	"log"
	"os"

	"mysterybot/internal/adapters/discord"
	"mysterybot/internal/config"
	"mysterybot/internal/infrastructure/database"
	"mysterybot/internal/infrastructure/history"
	"mysterybot/internal/infrastructure/i18n"
	"mysterybot/internal/infrastructure/memory"
	"mysterybot/internal/ports/output"
	"mysterybot/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	renderer := render.NewRenderer(render.NewFontResolver(cfg.FontPath, cfg.FontURL))

	// Attendance lives in process memory by default; DATABASE_URL switches to
	// the durable PostgreSQL store.
	var attendance output.AttendanceStore = memory.NewAttendanceStore()
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("❌ Failed to run migrations: %v", err)
		}
		ctx := context.Background()
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to initialize the database: %v", err)
		}
		defer pool.Close()
		attendance = database.NewAttendanceRepository(pool)
	}

	historyLog := history.NewCSVLog(cfg.HistoryPath)

	bot := discord.NewBot(cfg, translator, renderer, attendance, historyLog)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Failed to start the bot: %v", err)
		os.Exit(1)
	}
}
