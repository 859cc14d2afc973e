package moderation

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"ModBot/bot"
	"ModBot/commands"
	mod "ModBot/moderation"
)

func init() {
	commands.RegisterCommand("lock", Lock)
}

func Lock(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !hasPermission(b, s, m) {
		return
	}

	var reason string
	if len(args) >= 2 {
		reason = strings.Join(args[1:], " ")
	}

	result := b.Exec.Execute(mod.Request{
		Kind:      mod.ActionLock,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Moderator: m.Author.Username,
		Reason:    reason,
	})
	if !result.Success {
		s.ChannelMessageSend(m.ChannelID, result.Message)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Channel Locked",
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
