package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListScenarios returns the configured scenario catalog.
func (h *Handler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}
