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
	commands.RegisterCommand("kick", Kick)
}

func Kick(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !hasPermission(b, s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: +kick @user [reason]")
		return
	}

	targetUser, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid user. Please use a proper mention (e.g., @username).")
		return
	}

	var reason string
	if len(args) >= 3 {
		reason = strings.Join(args[2:], " ")
	}

	result := b.Exec.Execute(mod.Request{
		Kind:      mod.ActionKick,
		GuildID:   m.GuildID,
		UserID:    targetUser,
		Moderator: m.Author.Username,
		Reason:    reason,
	})
	if !result.Success {
		s.ChannelMessageSend(m.ChannelID, result.Message)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "User Kicked",
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
