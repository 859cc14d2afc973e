package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ModBot/bot"
)

// Guilds lists the guilds the bot can see.
func Guilds(b *bot.Bot) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, b.Status().Guilds)
	}
}

// GuildMembers lists up to 100 human members of one guild.
func GuildMembers(b *bot.Bot) gin.HandlerFunc {
	return func(c *gin.Context) {

		if !b.Ready() {
			c.JSON(http.StatusOK, []bot.MemberInfo{})
			return
		}

		members, err := b.GuildMembers(c.Param("guild_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, members)
	}
}

// GuildChannels lists the text channels of one guild.
func GuildChannels(b *bot.Bot) gin.HandlerFunc {
	return func(c *gin.Context) {

		if !b.Ready() {
			c.JSON(http.StatusOK, []bot.ChannelInfo{})
			return
		}

		channels, err := b.GuildChannels(c.Param("guild_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, channels)
	}
}
