package api

import (
	"net/http"

	"github.com/zhoumeng-creater/netdefence/internal/constants"
	"github.com/zhoumeng-creater/netdefence/internal/game"
	"github.com/zhoumeng-creater/netdefence/internal/report"
	"github.com/zhoumeng-creater/netdefence/internal/service"

	"github.com/gin-gonic/gin"
)

// GetManual generates the after-action report for a finished session.
func (h *Handler) GetManual(c *gin.Context) {
	s, err := service.GetSession(h.repo, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	if !s.Status.Terminal() {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrManualNeedsFinished})
		return
	}

	initial := game.ScoreVector{
		Trust:    game.DefaultInitialScore,
		Risk:     game.DefaultInitialScore,
		Incident: game.DefaultInitialScore,
		Loss:     game.DefaultInitialScore,
	}
	if sc, ok := h.catalog.ByID(s.ScenarioID); ok && sc.InitialScores != (game.ScoreVector{}) {
		initial = sc.InitialScores
	}

	c.JSON(http.StatusOK, report.Build(s, initial))
}
