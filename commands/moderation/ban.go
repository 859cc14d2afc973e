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
	commands.RegisterCommand("ban", Ban)
}

func Ban(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !hasPermission(b, s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: +ban @user [duration] [reason]")
		return
	}

	targetUser, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid user. Please use a proper mention (e.g., @username).")
		return
	}

	// The duration on a ban is recorded in the audit log only; bans are
	// not reverted automatically.
	var durationRaw, reason string
	if len(args) >= 3 {
		durationRaw = args[2]
	}
	if len(args) >= 4 {
		reason = strings.Join(args[3:], " ")
	}

	if _, err := mod.ParseDuration(durationRaw); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid duration. Use formats like 30s, 5m, 2h, 1d.")
		return
	}

	result := b.Exec.Execute(mod.Request{
		Kind:        mod.ActionBan,
		GuildID:     m.GuildID,
		UserID:      targetUser,
		Moderator:   m.Author.Username,
		DurationRaw: durationRaw,
		Reason:      reason,
	})
	if !result.Success {
		s.ChannelMessageSend(m.ChannelID, result.Message)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "User Banned",
		Description: result.Message,
		Color:       0xFF0000,
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
