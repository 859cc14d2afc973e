package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ModBot/bridge"
)

// CommandInvoker submits a dashboard command into the bot's domain and
// blocks until it completes. *bridge.Bridge implements it.
type CommandInvoker interface {
	Invoke(req bridge.CommandRequest) bridge.Response
}

// ExecuteCommand runs a moderation action requested from the dashboard.
func ExecuteCommand(invoker CommandInvoker) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req bridge.CommandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, bridge.Response{Message: err.Error()})
			return
		}

		if req.Command == "" || req.GuildID == "" {
			c.JSON(http.StatusBadRequest, bridge.Response{Message: "Missing command or guild_id"})
			return
		}

		c.JSON(http.StatusOK, invoker.Invoke(req))
	}
}
