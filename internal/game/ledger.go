package game

import (
	"errors"
	"fmt"
)

// Default resource economy values, used when a scenario leaves them unset.
const (
	DefaultActionPoints = 10
	DefaultRecoveryRate = 5
	DefaultMaxPoints    = 10
	DefaultMaxRounds    = 20
	DefaultInitialScore = 50
)

// ErrInsufficientResources is returned when a move costs more action points
// than the acting role currently holds. The move is rejected, never clamped.
var ErrInsufficientResources = errors.New("insufficient action points")

// ResourceLedger tracks the per-role action-point pools. Charge and Recover
// are the only mutators; balances are never set directly after creation.
type ResourceLedger struct {
	AttackerPoints int `json:"attacker_points"`
	DefenderPoints int `json:"defender_points"`
	RecoveryRate   int `json:"recovery_rate"`
	MaxPoints      int `json:"max_points"`
}

// NewResourceLedger builds a ledger with both pools at initial, recovering
// recovery points per full round up to max.
func NewResourceLedger(initial, recovery, max int) ResourceLedger {
	if initial <= 0 {
		initial = DefaultActionPoints
	}
	if recovery <= 0 {
		recovery = DefaultRecoveryRate
	}
	if max <= 0 {
		max = DefaultMaxPoints
	}
	return ResourceLedger{
		AttackerPoints: initial,
		DefenderPoints: initial,
		RecoveryRate:   recovery,
		MaxPoints:      max,
	}
}

// Balance returns the current action-point balance for role.
func (l *ResourceLedger) Balance(role Role) int {
	if role == RoleAttacker {
		return l.AttackerPoints
	}
	return l.DefenderPoints
}

// CanAfford reports whether role holds at least cost action points.
func (l *ResourceLedger) CanAfford(role Role, cost int) bool {
	return l.Balance(role) >= cost
}

// Charge deducts cost from role's pool. It fails with
// ErrInsufficientResources (balance untouched) when the pool is too small.
func (l *ResourceLedger) Charge(role Role, cost int) error {
	if !l.CanAfford(role, cost) {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientResources, role, l.Balance(role), cost)
	}
	if role == RoleAttacker {
		l.AttackerPoints -= cost
	} else {
		l.DefenderPoints -= cost
	}
	return nil
}

// Recover credits both pools by the recovery rate, capped at the maximum.
// Called once per completed full round, after both roles have moved.
func (l *ResourceLedger) Recover() {
	l.AttackerPoints = minPoints(l.AttackerPoints+l.RecoveryRate, l.MaxPoints)
	l.DefenderPoints = minPoints(l.DefenderPoints+l.RecoveryRate, l.MaxPoints)
}

func minPoints(a, b int) int {
	if a < b {
		return a
	}
	return b
}
