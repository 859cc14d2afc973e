package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ModBot/bot"
)

// Status reports bot connectivity, visible guilds and latency.
func Status(b *bot.Bot) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, b.Status())
	}
}
