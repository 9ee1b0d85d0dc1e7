package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"mysterybot/internal/application"
	"mysterybot/internal/config"
	"mysterybot/internal/domain"
	"mysterybot/internal/domain/entities"
	"mysterybot/internal/ports/output"
	"mysterybot/internal/render"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	translator output.T,
	renderer *render.Renderer,
	attendance output.AttendanceStore,
	history output.HistoryLog,
) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Failed to create the Discord session:", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	panelUC := application.NewPanelService(renderer, translator, cfg.Style, cfg.DefaultBackgroundURL)
	signupUC := application.NewSignupService(NewRoleDirectory(s), attendance, history, translator, entities.RolePair{
		Participant: cfg.DefaultParticipantRoleID,
		Spectator:   cfg.DefaultSpectatorRoleID,
	})

	handler := NewHandler(panelUC, signupUC, translator, cfg.AllowedRoleID,
		cfg.DefaultParticipantRoleID, cfg.DefaultSpectatorRoleID)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "create_mystery_panel":
			b.handler.HandleCreatePanel(s, i)
		case "mystery_status":
			b.handler.HandleStatus(s, i)
		case "register_history":
			b.handler.HandleRegisterHistory(s, i)
		case "ping":
			b.handler.HandlePing(s, i)
		}
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case "mystery_join":
			b.handler.HandleToggleRole(s, i, domain.RoleParticipant)
		case "mystery_watch":
			b.handler.HandleToggleRole(s, i, domain.RoleSpectator)
		case "mystery_attended":
			b.handler.HandleToggleAttendance(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	b.registerCommands()

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}

// registerCommands syncs the slash commands: per guild when GUILD_IDS is set
// (instant availability), globally otherwise.
func (b *Bot) registerCommands() {
	appID := b.session.State.User.ID
	guilds := b.config.GuildIDs
	if len(guilds) == 0 {
		guilds = []string{""}
	}
	for _, guildID := range guilds {
		for _, cmd := range panelCommands {
			if _, err := b.session.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
				log.Printf("⚠️ Failed to register command %s (guild=%q): %v", cmd.Name, guildID, err)
			}
		}
	}
}
