package moderation

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"ModBot/bot"
	"ModBot/commands"
	mod "ModBot/moderation"
	"ModBot/utils"
)

func init() {
	commands.RegisterCommand("mute", Mute, "m")
}

func Mute(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !hasPermission(b, s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: +mute @user [duration] [reason]")
		return
	}

	targetUser, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid user. Please use a proper mention (e.g., @username).")
		return
	}

	// The third argument is the duration slot; everything after it is the
	// reason. No duration means an indefinite mute.
	var durationRaw, reason string
	if len(args) >= 3 {
		durationRaw = args[2]
	}
	if len(args) >= 4 {
		reason = strings.Join(args[3:], " ")
	}

	duration, err := mod.ParseDuration(durationRaw)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid duration. Use formats like 30s, 5m, 2h, 1d.")
		return
	}

	result := b.Exec.Execute(mod.Request{
		Kind:        mod.ActionMute,
		GuildID:     m.GuildID,
		UserID:      targetUser,
		Moderator:   m.Author.Username,
		Duration:    duration,
		DurationRaw: durationRaw,
		Reason:      reason,
	})
	if !result.Success {
		s.ChannelMessageSend(m.ChannelID, result.Message)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "User Muted",
		Description: result.Message,
		Color:       0xFFA500,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Moderator",
				Value:  m.Author.Mention(),
				Inline: true,
			},
			{
				Name:   "Reason",
				Value:  reasonOrDefault(reason),
				Inline: false,
			},
		},
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func reasonOrDefault(reason string) string {
	if reason == "" {
		return mod.DefaultReason
	}
	return reason
}
