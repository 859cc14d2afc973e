package bot

import (
	"log"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"ModBot/moderation"
	"ModBot/storage"
)

// Bot owns the discordgo session and the services the command handlers
// reach through it. The session is the single shared chat-client handle:
// everything outside the bot's event domain goes through the bridge
// rather than touching it directly.
type Bot struct {
	Client *discordgo.Session
	Store  *storage.AuditStore
	Exec   *moderation.Executor
	Gate   *moderation.Gate

	ready atomic.Bool
}

func New(token string) (*Bot, error) {
	client, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	client.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages

	b := &Bot{Client: client}
	client.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.ready.Store(true)
		log.Printf("Logged in as %s", r.User.Username)
	})
	client.AddHandler(func(s *discordgo.Session, d *discordgo.Disconnect) {
		b.ready.Store(false)
		log.Println("Gateway connection lost")
	})

	return b, nil
}

// Ready reports whether the gateway connection is up.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

// HasGuild reports whether the bot can see the guild, checking the state
// cache before hitting the API.
func (b *Bot) HasGuild(guildID string) bool {
	if guildID == "" {
		return false
	}
	if _, err := b.Client.State.Guild(guildID); err == nil {
		return true
	}
	_, err := b.Client.Guild(guildID)
	return err == nil
}

// HasMember reports whether the user is a member of the guild.
func (b *Bot) HasMember(guildID, userID string) bool {
	if userID == "" {
		return false
	}
	if _, err := b.Client.State.Member(guildID, userID); err == nil {
		return true
	}
	_, err := b.Client.GuildMember(guildID, userID)
	return err == nil
}
