package engine

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrSessionClosed = errors.New("session is closed")
	ErrUnknownAction = errors.New("unknown action")
)

// Engine resolves moves for any number of sessions. It is an explicit,
// caller-owned instance: callers create one engine and share it across
// sessions. The engine owns a per-session lock; callers run each
// load-resolve-persist span under WithSessionLock so two moves against the
// same session can never interleave, even across storage round-trips.
// Different sessions need no coordination.
type Engine struct {
	rngMu sync.Mutex
	rng   *rand.Rand

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates an engine with a time-seeded random source.
func New() *Engine {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates an engine whose success rolls are deterministic for the
// given seed. Tests use this to force specific success/failure branches.
func NewSeeded(seed int64) *Engine {
	return &Engine{
		rng:   rand.New(rand.NewSource(seed)),
		locks: make(map[string]*sync.Mutex),
	}
}

// roll returns a uniform float in [0,1) from the engine's seeded source.
func (e *Engine) roll() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}

// sessionLock returns the mutex serializing moves for one session.
func (e *Engine) sessionLock(sessionUUID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	mu, ok := e.locks[sessionUUID]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[sessionUUID] = mu
	}
	return mu
}

// WithSessionLock runs fn while holding the session's lock. The critical
// section must cover the whole span from loading the session to persisting
// it: locking only the in-memory move would let two racing submits both read
// the same stored turn and both be accepted.
func (e *Engine) WithSessionLock(sessionUUID string, fn func() error) error {
	mu := e.sessionLock(sessionUUID)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// ReleaseSession drops the per-session lock entry once a session is
// terminal and will not be played again.
func (e *Engine) ReleaseSession(sessionUUID string) {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	delete(e.locks, sessionUUID)
}
