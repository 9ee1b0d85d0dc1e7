package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleStatus reports the guild's current participant, spectator and
// attended lists to the requester.
func (h *Handler) HandleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.guild_only", nil))
		return
	}
	// Member listing pages through the guild, so acknowledge first.
	deferEphemeral(s, i.Interaction)

	status, err := h.signupUseCase.Status(context.Background(), i.GuildID)
	if err != nil {
		followupEphemeral(s, i.Interaction, h.errorMessage(locale, err))
		return
	}

	var b strings.Builder
	b.WriteString(h.translate(locale, "status.header", nil))
	h.writeStatusSection(&b, locale, "status.participants", status.Participants)
	h.writeStatusSection(&b, locale, "status.spectators", status.Spectators)
	h.writeStatusSection(&b, locale, "status.attended", status.Attended)
	followupEphemeral(s, i.Interaction, b.String())
}

func (h *Handler) writeStatusSection(b *strings.Builder, locale, key string, userIDs []string) {
	b.WriteString(fmt.Sprintf("\n\n**%s** (%d)", h.translate(locale, key, nil), len(userIDs)))
	if len(userIDs) == 0 {
		b.WriteString("\n" + h.translate(locale, "status.empty", nil))
		return
	}
	for _, id := range userIDs {
		b.WriteString(fmt.Sprintf("\n- <@%s>", id))
	}
}

// HandleRegisterHistory snapshots the guild state into the history log,
// strips the signup roles and clears the attendance set.
func (h *Handler) HandleRegisterHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.guild_only", nil))
		return
	}
	if !h.isAdminOrAllowed(i.Member) {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.not_allowed", nil))
		return
	}

	scenario := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "scenario" {
			scenario = opt.StringValue()
		}
	}

	// One role removal per member: this can take a while on large sessions.
	deferEphemeral(s, i.Interaction)

	reply, err := h.signupUseCase.RegisterHistory(context.Background(), locale, i.GuildID, scenario)
	if err != nil {
		followupEphemeral(s, i.Interaction, h.errorMessage(locale, err))
		return
	}
	followupEphemeral(s, i.Interaction, reply)
}
