package web

import (
	"github.com/gin-gonic/gin"

	"ModBot/bot"
	"ModBot/storage"
	"ModBot/web/hooks"
)

// Server is the dashboard API instance. It reads the audit store
// directly and reaches the bot only through the command bridge and the
// read-only status projection.
type Server struct {
	Bot    *bot.Bot
	Store  *storage.AuditStore
	Bridge hooks.CommandInvoker
}

// Setup mounts the API routes to the given group
func (s *Server) Setup(g *gin.RouterGroup) {
	g.GET("/status", hooks.Status(s.Bot))
	g.GET("/logs", hooks.Logs(s.Store))
	g.GET("/stats", hooks.Stats(s.Store))
	g.GET("/guilds", hooks.Guilds(s.Bot))
	g.GET("/guild/:guild_id/members", hooks.GuildMembers(s.Bot))
	g.GET("/guild/:guild_id/channels", hooks.GuildChannels(s.Bot))
	g.POST("/command/execute", hooks.ExecuteCommand(s.Bridge))
}
