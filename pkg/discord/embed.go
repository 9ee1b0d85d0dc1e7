package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Panel embeds use the accent gold of the panel image itself.
const embedColor = 0xD4AF37

// PanelAttachmentName is the fixed filename of the rendered panel attachment.
const PanelAttachmentName = "mystery_panel.png"

// BuildPanelEmbed builds the announcement embed around a rendered panel.
// carrier goes into the footer: it looks empty but holds the encoded role
// pair the signup buttons read back.
func BuildPanelEmbed(title, description, carrier string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       embedColor,
		Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + PanelAttachmentName},
		Footer:      &discordgo.MessageEmbedFooter{Text: carrier},
	}
}

// BuildSignupButtons builds the join / spectate / attended button row.
func BuildSignupButtons(joinLabel, watchLabel, attendedLabel string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: joinLabel, Style: discordgo.SuccessButton, CustomID: "mystery_join"},
			discordgo.Button{Label: watchLabel, Style: discordgo.PrimaryButton, CustomID: "mystery_watch"},
			discordgo.Button{Label: attendedLabel, Style: discordgo.SecondaryButton, CustomID: "mystery_attended"},
		}},
	}
}

// CarrierText extracts the carrier text from a panel message, or "" when the
// message has no embed footer.
func CarrierText(msg *discordgo.Message) string {
	if msg == nil || len(msg.Embeds) == 0 {
		return ""
	}
	if msg.Embeds[0].Footer == nil {
		return ""
	}
	return msg.Embeds[0].Footer.Text
}
