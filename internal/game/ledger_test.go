package game

import (
	"errors"
	"testing"
)

func TestNewResourceLedger_Defaults(t *testing.T) {
	l := NewResourceLedger(0, 0, 0)
	if l.AttackerPoints != DefaultActionPoints || l.DefenderPoints != DefaultActionPoints {
		t.Fatalf("expected default pools, got %+v", l)
	}
	if l.RecoveryRate != DefaultRecoveryRate || l.MaxPoints != DefaultMaxPoints {
		t.Fatalf("expected default economy, got %+v", l)
	}
}

func TestCharge_RejectsWithoutDeducting(t *testing.T) {
	l := NewResourceLedger(3, 5, 10)
	if err := l.Charge(RoleAttacker, 2); err != nil {
		t.Fatalf("affordable charge failed: %v", err)
	}
	if l.AttackerPoints != 1 {
		t.Fatalf("expected 1 point left, got %d", l.AttackerPoints)
	}
	err := l.Charge(RoleAttacker, 2)
	if !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources, got %v", err)
	}
	if l.AttackerPoints != 1 {
		t.Fatalf("rejected charge must not deduct, got %d", l.AttackerPoints)
	}
	if l.DefenderPoints != 3 {
		t.Fatalf("attacker charges must not touch the defender pool, got %d", l.DefenderPoints)
	}
}

func TestRecover_CapsAtMaximum(t *testing.T) {
	l := NewResourceLedger(10, 5, 10)
	if err := l.Charge(RoleDefender, 8); err != nil {
		t.Fatalf("charge failed: %v", err)
	}
	l.Recover()
	if l.DefenderPoints != 7 {
		t.Fatalf("expected 2+5=7 defender points, got %d", l.DefenderPoints)
	}
	l.Recover()
	if l.DefenderPoints != 10 || l.AttackerPoints != 10 {
		t.Fatalf("recovery must cap at the maximum, got %+v", l)
	}
}
