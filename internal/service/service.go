package service

import (
	"errors"
	"time"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrScenarioNotFound = errors.New("scenario not found")
)

// SessionRepo is the storage surface the service layer needs. The storage
// package's Repository satisfies it; tests plug in mocks.
type SessionRepo interface {
	CreateSession(s *game.GameSession) error
	GetSessionByUUID(sessionUUID string) (*game.GameSession, error)
	ListSessions(status game.SessionStatus, limit int) ([]game.GameSession, error)
	UpdateSession(s *game.GameSession) error
	FindIdleSessions(cutoff time.Time) ([]game.GameSession, error)
}
