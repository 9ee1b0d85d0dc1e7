package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "mysterybot/pkg/discord"
)

// HandleToggleRole flips the participant or spectator marker for the user who
// pressed the button. The role ids come from the panel message itself: its
// embed footer carries the encoded pair.
func (h *Handler) HandleToggleRole(s *discordgo.Session, i *discordgo.InteractionCreate, kind string) {
	locale := string(i.Locale)
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.guild_only", nil))
		return
	}
	carrier := pkgdiscord.CarrierText(i.Message)

	reply, err := h.signupUseCase.ToggleRole(context.Background(), locale, i.GuildID, i.Member.User.ID, carrier, kind)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err))
		return
	}
	respondEphemeral(s, i.Interaction, reply)
}

// HandleToggleAttendance flips the pressing user's entry in the guild's
// attendance set. No panel payload is involved.
func (h *Handler) HandleToggleAttendance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.guild_only", nil))
		return
	}

	reply, err := h.signupUseCase.ToggleAttendance(context.Background(), locale, i.GuildID, i.Member.User.ID)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err))
		return
	}
	respondEphemeral(s, i.Interaction, reply)
}
