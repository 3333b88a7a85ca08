package engine

import (
	"testing"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

func TestCost_KnownAndEnhanced(t *testing.T) {
	if c := Cost(game.ActionPrank, nil); c != 2 {
		t.Fatalf("expected prank to cost 2, got %d", c)
	}
	if c := Cost(game.ActionPrank, game.ParamMap{game.ParamEnhanced: "true"}); c != 3 {
		t.Fatalf("expected enhanced prank to cost 3, got %d", c)
	}
	if c := Cost(game.ActionTaichi, nil); c != 4 {
		t.Fatalf("expected taichi to cost 4, got %d", c)
	}
}

func TestCost_UnknownKindDefaultsToOne(t *testing.T) {
	if c := Cost(game.ActionKind("teleport"), nil); c != 1 {
		t.Fatalf("expected unknown action to cost 1, got %d", c)
	}
	if c := Cost(game.ActionKind("teleport"), game.ParamMap{game.ParamEnhanced: "true"}); c != 2 {
		t.Fatalf("expected enhanced unknown action to cost 2, got %d", c)
	}
}

func TestActionName_FallsBackToKind(t *testing.T) {
	if n := ActionName(game.ActionExploit); n != "Vulnerability Exploit" {
		t.Fatalf("unexpected display name %q", n)
	}
	if n := ActionName(game.ActionKind("teleport")); n != "teleport" {
		t.Fatalf("expected raw kind for unknown action, got %q", n)
	}
}

func TestResolve_CoversFullCatalog(t *testing.T) {
	e := NewSeeded(1)
	for _, kind := range append(append([]game.ActionKind{}, game.AttackActions...), game.DefenseActions...) {
		env := &game.EnvironmentState{Components: map[string]game.ComponentStatus{}}
		role := game.RoleAttacker
		if game.IsDefenseAction(kind) {
			role = game.RoleDefender
		}
		out, err := e.resolve(env, game.ActionRequest{Role: role, Action: kind})
		if err != nil {
			t.Fatalf("resolve(%s) returned error: %v", kind, err)
		}
		if out.ActionName == "" {
			t.Fatalf("resolve(%s) produced empty action name", kind)
		}
		if game.IsDefenseAction(kind) && !out.Success {
			t.Fatalf("defense %s must always succeed", kind)
		}
	}
}
