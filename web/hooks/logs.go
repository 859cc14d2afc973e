package hooks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ModBot/storage"
)

// Logs returns the filtered audit trail, newest first.
func Logs(store *storage.AuditStore) gin.HandlerFunc {
	return func(c *gin.Context) {

		limit := storage.DefaultQueryLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			limit = parsed
		}

		logs, err := store.Query(c.Query("guild_id"), c.Query("action"), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, logs)
	}
}
