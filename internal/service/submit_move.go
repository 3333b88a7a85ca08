package service

import (
	"fmt"

	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// SubmitMove loads the session, plays one move through the engine and
// persists the result. The whole load-move-persist span runs under the
// engine's session lock so racing submits on one session cannot both read
// the same stored turn. Engine rejections (wrong turn, closed session,
// insufficient points, unknown action) surface unchanged so the API layer
// can map them; nothing is persisted in those cases.
func SubmitMove(repo SessionRepo, eng *engine.Engine, sessionUUID string, req game.ActionRequest) (*engine.MoveReport, *game.GameSession, error) {
	var (
		rep *engine.MoveReport
		s   *game.GameSession
	)
	err := eng.WithSessionLock(sessionUUID, func() error {
		var err error
		s, err = loadSession(repo, sessionUUID)
		if err != nil {
			return err
		}
		rep, err = eng.SubmitMove(s, req)
		if err != nil {
			return err
		}
		return repo.UpdateSession(s)
	})
	if err != nil {
		return nil, nil, err
	}
	if rep.Over {
		eng.ReleaseSession(s.SessionUUID)
	}
	return rep, s, nil
}

// GetSession loads one session with its move ledger and snapshot chain.
func GetSession(repo SessionRepo, sessionUUID string) (*game.GameSession, error) {
	return loadSession(repo, sessionUUID)
}

// loadSession distinguishes a missing session (ErrSessionNotFound) from a
// repository failure, which surfaces wrapped so the API maps it to a 5xx
// instead of a 404.
func loadSession(repo SessionRepo, sessionUUID string) (*game.GameSession, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionUUID, err)
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
