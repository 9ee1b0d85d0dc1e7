package discord

import (
	"bytes"
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"mysterybot/internal/domain/entities"
	pkgdiscord "mysterybot/pkg/discord"
)

// panelCommands are the slash commands registered at startup.
var panelCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "create_mystery_panel",
		Description: "マーダーミステリー開催パネルを生成します。",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "パネル上部に表示するタイトル（例：マダミス開催告知）", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "date_time", Description: "開催予定日（例：2026年9月12日）", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "players", Description: "プレイヤー数（例：6、未定ならTBDなど）", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "duration", Description: "想定プレイ時間（例：2～3時間）", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "note", Description: "一言コメント（改行可）", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "bg_image_url", Description: "背景画像URL（未指定なら既定を使用）"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "corner_image_url", Description: "右上に表示する作品画像URL"},
			{Type: discordgo.ApplicationCommandOptionRole, Name: "participant_role", Description: "参加希望で付与するロール（未指定なら環境変数）"},
			{Type: discordgo.ApplicationCommandOptionRole, Name: "spectator_role", Description: "観戦希望で付与するロール（未指定なら環境変数）"},
		},
	},
	{
		Name:        "mystery_status",
		Description: "現在の参加/観戦/参加済みメンバーを表示します。",
	},
	{
		Name:        "register_history",
		Description: "開催履歴を記録し、参加/観戦ロールをリセットします。",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "scenario", Description: "シナリオ名", Required: true},
		},
	},
	{
		Name:        "ping",
		Description: "疎通確認",
	},
}

// HandleCreatePanel renders the announcement panel and posts it with the
// signup buttons.
func (h *Handler) HandleCreatePanel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.guild_only", nil))
		return
	}
	if !h.isAllowed(i.Member) {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.not_allowed", nil))
		return
	}

	// Rendering can exceed Discord's response deadline when images are
	// fetched, so acknowledge first.
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})

	spec, roles := h.parsePanelOptions(s, i)

	img, carrier, err := h.panelUseCase.CreatePanel(context.Background(), locale, spec, roles)
	if err != nil {
		followupEphemeral(s, i.Interaction, h.errorMessage(locale, err))
		return
	}

	embed := pkgdiscord.BuildPanelEmbed(
		h.translate(locale, "panel.embed.title", nil),
		h.translate(locale, "panel.embed.description", nil),
		carrier,
	)
	components := pkgdiscord.BuildSignupButtons(
		h.translate(locale, "button.join", nil),
		h.translate(locale, "button.watch", nil),
		h.translate(locale, "button.attended", nil),
	)
	_, _ = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Files: []*discordgo.File{{
			Name:        pkgdiscord.PanelAttachmentName,
			ContentType: "image/png",
			Reader:      bytes.NewReader(img),
		}},
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
}

// parsePanelOptions maps the command options onto an EventSpec plus the role
// pair, with the configured role ids as defaults.
func (h *Handler) parsePanelOptions(s *discordgo.Session, i *discordgo.InteractionCreate) (entities.EventSpec, entities.RolePair) {
	spec := entities.EventSpec{}
	roles := entities.RolePair{
		Participant: h.defaultRoles.participant,
		Spectator:   h.defaultRoles.spectator,
	}
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "title":
			spec.Title = opt.StringValue()
		case "date_time":
			spec.DateTime = opt.StringValue()
		case "players":
			spec.Players = opt.StringValue()
		case "duration":
			spec.Duration = opt.StringValue()
		case "note":
			spec.Note = opt.StringValue()
		case "bg_image_url":
			spec.BackgroundURL = opt.StringValue()
		case "corner_image_url":
			spec.ThumbnailURL = opt.StringValue()
		case "participant_role":
			if role := opt.RoleValue(s, i.GuildID); role != nil {
				roles.Participant = parseSnowflake(role.ID)
			}
		case "spectator_role":
			if role := opt.RoleValue(s, i.GuildID); role != nil {
				roles.Spectator = parseSnowflake(role.ID)
			}
		}
	}
	return spec, roles
}

func parseSnowflake(id string) uint64 {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// HandlePing confirms the bot is responsive.
func (h *Handler) HandlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i.Interaction, "pong")
}
