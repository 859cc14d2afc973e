package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ModBot/storage"
)

// Stats returns aggregate counts over the audit trail.
func Stats(store *storage.AuditStore) gin.HandlerFunc {
	return func(c *gin.Context) {

		stats, err := store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
