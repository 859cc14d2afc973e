package help

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"

	"ModBot/bot"
	"ModBot/commands"
)

func init() {
	commands.RegisterModule(&commands.ModuleInfo{
		Name:        "Help",
		Description: "Built-in command help",
		Category:    "General",
		Commands: []commands.CommandInfo{
			{
				Name:        "bothelp",
				Description: "Shows all available commands",
				Usage:       "+bothelp",
				Category:    "General",
			},
		},
	})
	commands.RegisterCommand("bothelp", Help)
}

func Help(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	names := make([]string, 0, len(commands.CommandDetails))
	for name := range commands.CommandDetails {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]*discordgo.MessageEmbedField, 0, len(names)+2)
	for _, name := range names {
		info := commands.CommandDetails[name]
		usage := info.Usage
		if usage == "" {
			usage = "+" + info.Name
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   usage,
			Value:  info.Description,
			Inline: false,
		})
	}
	fields = append(fields,
		&discordgo.MessageEmbedField{
			Name:   "Supported durations",
			Value:  "s = seconds, m = minutes, h = hours, d = days. Example: 30s, 5m, 2h, 1d",
			Inline: false,
		},
		&discordgo.MessageEmbedField{
			Name:   "Permissions",
			Value:  fmt.Sprintf("Administrators and members with the %q role can use moderation commands.", b.Gate.ModeratorRole),
			Inline: false,
		},
	)

	embed := &discordgo.MessageEmbed{
		Title:       "Moderation Bot Commands",
		Description: "All available commands:",
		Color:       0x0000FF,
		Fields:      fields,
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
