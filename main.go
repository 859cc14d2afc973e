package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ModBot/bot"
	"ModBot/bridge"
	"ModBot/commands"
	"ModBot/moderation"
	"ModBot/storage"
	"ModBot/web"

	_ "ModBot/commands/help"
	_ "ModBot/commands/moderation"
)

func main() {
	godotenv.Load()

	dialector := parseDatabaseDriver(envDefault("DB_URL", "moderation_logs.db"))
	db, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewAuditStore(db)
	if err != nil {
		log.Fatal(err)
	}

	b, err := bot.New(os.Getenv("DISCORD_TOKEN"))
	if err != nil {
		log.Fatal(err)
	}

	moderatorRole := envDefault("MOD_ROLE_NAME", "bot")
	platform := &moderation.SessionPlatform{
		Session:       b.Client,
		ModeratorRole: moderatorRole,
	}
	b.Store = store
	b.Exec = moderation.NewExecutor(platform, store, moderation.NewScheduler())
	b.Gate = moderation.NewGate(moderatorRole)

	br := bridge.New(b, b.Exec)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go br.Run(ctx)

	prefix := envDefault("COMMAND_PREFIX", "+")
	b.Client.AddHandler(messageHandler(b, prefix))

	r := gin.Default()
	corsCfg := cors.DefaultConfig()
	if origins := allowedOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	api := &web.Server{Bot: b, Store: store, Bridge: br}
	api.Setup(r.Group("api"))

	go func() {
		if err := r.Run(":" + envDefault("WEB_PORT", "5000")); err != nil {
			log.Fatal(err)
		}
	}()

	if err := b.Client.Open(); err != nil {
		log.Fatal(err)
	}
	defer b.Client.Close()

	log.Println("Bot is running. Press Ctrl+C to exit.")
	select {}
}

// messageHandler dispatches prefixed chat messages to their registered
// command handlers.
func messageHandler(b *bot.Bot, prefix string) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.ID == s.State.User.ID {
			return
		}
		if m.GuildID == "" {
			return
		}
		if !strings.HasPrefix(m.Content, prefix) {
			return
		}

		args := strings.Fields(m.Content)
		cmd := strings.ToLower(strings.TrimPrefix(args[0], prefix))
		if cmd == "" {
			return
		}
		if handler, ok := commands.Lookup(cmd); ok {
			handler(b, s, m, args)
		}
	}
}

// parseDatabaseDriver picks the gorm driver for the database string:
// mysql:// DSNs go to mysql, everything else is treated as a sqlite file
// path.
func parseDatabaseDriver(dbURL string) gorm.Dialector {
	if strings.HasPrefix(dbURL, "mysql://") {
		return mysql.Open(strings.TrimPrefix(dbURL, "mysql://"))
	}
	return sqlite.Open(dbURL)
}

// allowedOrigins gets the slice of allowed CORS origins
func allowedOrigins() []string {
	env, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if !ok {
		return nil
	}

	origins := []string{}
	for _, originRaw := range strings.Split(env, ",") {
		origins = append(origins, strings.TrimSpace(originRaw))
	}
	return origins
}

func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
