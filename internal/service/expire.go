package service

import (
	"time"

	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/game"
	"github.com/zhoumeng-creater/netdefence/internal/logging"
)

// HandleIdleSession closes one idle session. Neither side gets the win: an
// expired contest is recorded as a draw. Already terminal sessions are
// skipped so the scanner can safely re-process a stale listing.
func HandleIdleSession(repo SessionRepo, eng *engine.Engine, s *game.GameSession) error {
	err := eng.WithSessionLock(s.SessionUUID, func() error {
		if s.Status.Terminal() {
			return nil
		}

		now := time.Now().UTC()
		s.Status = game.StatusAbandoned
		s.Phase = game.PhaseResolution
		s.Winner = game.WinnerDraw
		s.EndReason = "session expired due to inactivity"
		s.EndedAt = &now

		return repo.UpdateSession(s)
	})
	if err != nil {
		return err
	}
	eng.ReleaseSession(s.SessionUUID)
	logging.Info("expired idle session", logging.Fields{"session_uuid": s.SessionUUID})
	return nil
}

// ExpireIdleSessions finds every active session idle past the timeout and
// closes each one. Errors on individual sessions are logged, not fatal.
func ExpireIdleSessions(repo SessionRepo, eng *engine.Engine, idleTimeout time.Duration) {
	cutoff := time.Now().Add(-idleTimeout)
	sessions, err := repo.FindIdleSessions(cutoff)
	if err != nil {
		logging.Error("idle scanner failed to list sessions", err, nil)
		return
	}
	// A single stuck session should not stop the sweep; the next tick
	// retries it.
	for i := range sessions {
		if err := HandleIdleSession(repo, eng, &sessions[i]); err != nil {
			logging.Warn("failed to expire session, will retry next scan", logging.Fields{
				"session_uuid": sessions[i].SessionUUID,
				"error":        err.Error(),
			})
		}
	}
}
