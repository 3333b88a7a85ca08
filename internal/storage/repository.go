package storage

import (
	"time"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

type Repository interface {
	CreateSession(s *game.GameSession) error
	// GetSessionByUUID loads a session with its full move ledger and
	// environment snapshot chain. A missing session is (nil, nil); a
	// non-nil error always means the lookup itself failed.
	GetSessionByUUID(sessionUUID string) (*game.GameSession, error)
	ListSessions(status game.SessionStatus, limit int) ([]game.GameSession, error)
	UpdateSession(s *game.GameSession) error
	// FindIdleSessions returns active sessions with no activity at or
	// before the provided time. The caller decides how to resolve them
	// (for example, marking them abandoned due to inactivity).
	FindIdleSessions(cutoff time.Time) ([]game.GameSession, error)
}
