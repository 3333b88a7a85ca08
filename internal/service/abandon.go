package service

import (
	"fmt"
	"time"

	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// AbandonSession closes an active session on behalf of the quitting role.
// The opposing side is recorded as the winner. Abandoning an already
// terminal session returns ErrSessionClosed; the stored result is never
// re-resolved.
func AbandonSession(repo SessionRepo, eng *engine.Engine, sessionUUID string, quitter game.Role) (*game.GameSession, error) {
	var s *game.GameSession
	err := eng.WithSessionLock(sessionUUID, func() error {
		var err error
		s, err = loadSession(repo, sessionUUID)
		if err != nil {
			return err
		}
		if s.Status.Terminal() {
			return fmt.Errorf("%w: session is %s", engine.ErrSessionClosed, s.Status)
		}

		now := time.Now().UTC()
		s.Status = game.StatusAbandoned
		s.Phase = game.PhaseResolution
		s.EndedAt = &now
		if quitter == game.RoleAttacker {
			s.Winner = game.WinnerDefender
		} else {
			s.Winner = game.WinnerAttacker
		}
		s.EndReason = fmt.Sprintf("%s abandoned the session", quitter)

		return repo.UpdateSession(s)
	})
	if err != nil {
		return nil, err
	}
	eng.ReleaseSession(s.SessionUUID)
	return s, nil
}
