package handlers

import (
	"net/http"

	intconfig "hotel-backend/internal/config"
	intdb "hotel-backend/internal/db"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func (h *Handlers) DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"rooms_table": intdb.HasTable(h.db, "rooms"),
	})
}
