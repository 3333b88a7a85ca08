package api

import (
	"errors"
	"net/http"

	"github.com/zhoumeng-creater/netdefence/internal/constants"
	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/game"
	"github.com/zhoumeng-creater/netdefence/internal/logging"
	"github.com/zhoumeng-creater/netdefence/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateSessionRequest struct {
	ScenarioID string `json:"scenario_id"`
	AttackerID string `json:"attacker_id"`
	DefenderID string `json:"defender_id"`
}

// CreateSession starts a new contest from a catalog scenario.
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ScenarioID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	s, err := service.CreateSession(h.repo, h.catalog, req.ScenarioID, req.AttackerID, req.DefenderID)
	if err != nil {
		if errors.Is(err, service.ErrScenarioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrScenarioNotFound})
			return
		}
		logging.Error("failed to create session", err, logging.Fields{constants.LogFieldScenarioID: req.ScenarioID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession})
		return
	}

	logging.Info("session created", logging.Fields{
		constants.LogFieldSessionUUID: s.SessionUUID,
		constants.LogFieldScenarioID:  s.ScenarioID,
	})
	c.JSON(http.StatusCreated, s)
}

// GetSession returns one session with its move ledger and snapshot chain.
func (h *Handler) GetSession(c *gin.Context) {
	s, err := service.GetSession(h.repo, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ListSessions returns recent sessions, optionally filtered by status.
func (h *Handler) ListSessions(c *gin.Context) {
	status := game.SessionStatus(c.Query("status"))
	sessions, err := h.repo.ListSessions(status, 0)
	if err != nil {
		logging.Error("failed to list sessions", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSessions})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

type AbandonRequest struct {
	Role game.Role `json:"role"`
}

// AbandonSession closes an active session; the opposing side takes the win.
func (h *Handler) AbandonSession(c *gin.Context) {
	var req AbandonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Role != game.RoleAttacker && req.Role != game.RoleDefender {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRole})
		return
	}

	s, err := service.AbandonSession(h.repo, h.eng, c.Param("sessionID"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		case errors.Is(err, engine.ErrSessionClosed):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionClosed})
		default:
			logging.Error("failed to abandon session", err, logging.Fields{constants.LogFieldSessionUUID: c.Param("sessionID")})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEndSession})
		}
		return
	}
	c.JSON(http.StatusOK, s)
}

// GetHistory returns the environment snapshot chain and move ledger for
// replay.
func (h *Handler) GetHistory(c *gin.Context) {
	s, err := service.GetSession(h.repo, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_uuid": s.SessionUUID,
		"history":      s.History,
		"moves":        s.Moves,
	})
}
