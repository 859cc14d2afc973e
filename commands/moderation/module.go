package moderation

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"ModBot/bot"
	"ModBot/commands"
	"ModBot/utils"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Moderation",
		Description: "Time-boxed moderation actions with an audit trail",
		Category:    "Moderation",
		Commands: []commands.CommandInfo{
			{
				Name:        "mute",
				Aliases:     []string{"m"},
				Description: "Mutes a user, optionally for a limited time",
				Usage:       "+mute @user [duration] [reason]",
				Category:    "Moderation",
			},
			{
				Name:        "unmute",
				Aliases:     []string{"um"},
				Description: "Unmutes a user",
				Usage:       "+unmute @user [reason]",
				Category:    "Moderation",
			},
			{
				Name:        "ban",
				Description: "Bans a user from the server",
				Usage:       "+ban @user [duration] [reason]",
				Category:    "Moderation",
			},
			{
				Name:        "kick",
				Description: "Kicks a user from the server",
				Usage:       "+kick @user [reason]",
				Category:    "Moderation",
			},
			{
				Name:        "warn",
				Description: "Warns a user and notifies them by DM",
				Usage:       "+warn @user [reason]",
				Category:    "Moderation",
			},
			{
				Name:        "lock",
				Description: "Locks the current channel for everyone but moderators",
				Usage:       "+lock [reason]",
				Category:    "Moderation",
			},
			{
				Name:        "unlock",
				Description: "Unlocks the current channel",
				Usage:       "+unlock [reason]",
				Category:    "Moderation",
			},
		},
	}

	commands.RegisterModule(module)
}

// hasPermission runs the permission gate for the invoking member and
// replies on deny. Denied invocations never reach the executor and write
// no audit record.
func hasPermission(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) bool {
	identity, err := utils.MemberIdentity(s, m.GuildID, m.Author.ID)
	if err != nil {
		log.Printf("Error resolving invoker identity: %v", err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return false
	}
	if !b.Gate.Allow(identity) {
		s.ChannelMessageSend(m.ChannelID, "You do not have permission to use this command.")
		return false
	}
	return true
}
