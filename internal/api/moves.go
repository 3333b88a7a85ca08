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

type MoveRequest struct {
	Role   game.Role       `json:"role"`
	Action game.ActionKind `json:"action"`
	Target string          `json:"target"`
	Params game.ParamMap   `json:"params"`
}

// SubmitMove plays one move against a session and returns the outcome.
func (h *Handler) SubmitMove(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Role != game.RoleAttacker && req.Role != game.RoleDefender {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRole})
		return
	}

	sessionUUID := c.Param("sessionID")
	rep, _, err := service.SubmitMove(h.repo, h.eng, sessionUUID, game.ActionRequest{
		Role:   req.Role,
		Action: req.Action,
		Target: req.Target,
		Params: req.Params,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		case errors.Is(err, engine.ErrNotYourTurn):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotYourTurn})
		case errors.Is(err, engine.ErrSessionClosed):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionClosed})
		case errors.Is(err, game.ErrInsufficientResources):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrInsufficientResources})
		case errors.Is(err, engine.ErrUnknownAction):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
		default:
			logging.Error("failed to submit move", err, logging.Fields{constants.LogFieldSessionUUID: sessionUUID})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSubmitMove})
		}
		return
	}

	c.JSON(http.StatusOK, rep)
}
