package engine

import (
	"testing"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

func TestResolveMonitor_SurfacesRecentCompromises(t *testing.T) {
	env := &game.EnvironmentState{
		CompromisedSystems: []string{"web_portal", "app_server", "database"},
	}
	out := resolveMonitor(env, game.ActionRequest{Role: game.RoleDefender, Action: game.ActionMonitor})
	if len(out.Detected) != 2 {
		t.Fatalf("expected detection capped at 2, got %v", out.Detected)
	}
	if out.Detected[0] != "app_server" || out.Detected[1] != "database" {
		t.Fatalf("expected the two most recent compromises, got %v", out.Detected)
	}
	if out.ScoreDeltas[game.AxisIncident] != 15 {
		t.Fatalf("detection must raise the incident delta to 15, got %v", out.ScoreDeltas[game.AxisIncident])
	}
}

func TestResolveMonitor_NothingToDetect(t *testing.T) {
	env := &game.EnvironmentState{}
	out := resolveMonitor(env, game.ActionRequest{Role: game.RoleDefender, Action: game.ActionMonitor})
	if len(out.Detected) != 0 {
		t.Fatalf("expected no detections on a clean environment, got %v", out.Detected)
	}
	if out.ScoreDeltas[game.AxisIncident] != 5 {
		t.Fatalf("expected baseline incident delta 5, got %v", out.ScoreDeltas[game.AxisIncident])
	}
}

func TestResolveVaccine_RestoresCompromisedTarget(t *testing.T) {
	env := &game.EnvironmentState{
		Components:         map[string]game.ComponentStatus{"workstations": game.StatusCompromised},
		CompromisedSystems: []string{"workstations"},
	}
	out := resolveVaccine(env, game.ActionRequest{Role: game.RoleDefender, Action: game.ActionVaccine, Target: "workstations"})
	if out.Directives.SetStatus["workstations"] != game.StatusRunning {
		t.Fatalf("expected cleanup to restore the target to running, got %v", out.Directives.SetStatus)
	}
	// The compromise list stays append-only; recovery never rewrites it.
	if len(out.Directives.AddCompromised) != 0 {
		t.Fatalf("vaccine must not touch the compromise list")
	}
}

func TestResolvePatch_ProtectsDiscoveredVulnTypes(t *testing.T) {
	env := &game.EnvironmentState{
		Vulnerabilities: []game.Vulnerability{
			{TargetID: "app_server", Type: "sql_injection"},
			{TargetID: "database", Type: "weak_password"},
		},
	}
	out := resolvePatch(env, game.ActionRequest{Role: game.RoleDefender, Action: game.ActionPatch, Target: "app_server"})
	if len(out.Directives.AddDefenses) != 1 {
		t.Fatalf("expected exactly one deployed defense, got %v", out.Directives.AddDefenses)
	}
	def := out.Directives.AddDefenses[0]
	if len(def.Protects) != 1 || def.Protects[0] != "sql_injection" {
		t.Fatalf("patch must cover the target's discovered vuln types, got %v", def.Protects)
	}

	next := nextState(env, out.Directives)
	if next.DefenseProtecting("sql_injection") == nil {
		t.Fatalf("patched vuln type must be protected in the next snapshot")
	}
	if next.DefenseProtecting("weak_password") != nil {
		t.Fatalf("patch on app_server must not protect other targets' vuln types")
	}
}
