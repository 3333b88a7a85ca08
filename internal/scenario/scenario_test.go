package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const validConfig = `{
  "server": {"address": ":9090", "session_timeout_minutes": 45},
  "scenario_list": [
    {
      "id": "corp-breach",
      "name": "Corporate Breach",
      "difficulty": 2,
      "max_rounds": 15,
      "initial_components": {"web_portal": "running", "database": "running"},
      "attacker_tools": [{"name": "Exploit Kit", "action": "exploit"}],
      "defender_tools": [{"name": "Patch Manager", "action": "patch"}],
      "win_conditions": {
        "attacker": ["data_stolen", "trust_collapsed"],
        "defender": ["system_secured"]
      }
    }
  ]
}`

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, validConfig)
	lc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if lc.ServerAddress != ":9090" {
		t.Fatalf("expected address :9090, got %s", lc.ServerAddress)
	}
	if lc.SessionTimeout != 45*time.Minute {
		t.Fatalf("expected 45m session timeout, got %s", lc.SessionTimeout)
	}
	sc, ok := lc.Catalog.ByID("corp-breach")
	if !ok {
		t.Fatalf("expected to find scenario by id")
	}
	if sc.MaxRounds != 15 || len(sc.InitialComponents) != 2 {
		t.Fatalf("scenario fields not loaded: %+v", sc)
	}
	if _, ok := lc.Catalog.ByID("CORP-BREACH"); !ok {
		t.Fatalf("scenario lookup must be case-insensitive")
	}
}

func TestLoadConfig_RejectsUnknownWinCondition(t *testing.T) {
	path := writeConfig(t, `{"scenario_list": [{
	  "id": "bad", "name": "Bad",
	  "win_conditions": {"attacker": ["world_domination"], "defender": ["system_secured"]}
	}]}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown win condition")
	}
}

func TestLoadConfig_RejectsCrossCatalogTool(t *testing.T) {
	path := writeConfig(t, `{"scenario_list": [{
	  "id": "bad", "name": "Bad",
	  "attacker_tools": [{"name": "Patch", "action": "patch"}],
	  "win_conditions": {"attacker": ["data_stolen"], "defender": ["system_secured"]}
	}]}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for attacker tool with defense action")
	}
}

func TestLoadConfig_RejectsDuplicateIDs(t *testing.T) {
	path := writeConfig(t, `{"scenario_list": [
	  {"id": "dup", "name": "A", "win_conditions": {"attacker": ["data_stolen"], "defender": ["system_secured"]}},
	  {"id": "DUP", "name": "B", "win_conditions": {"attacker": ["data_stolen"], "defender": ["system_secured"]}}
	]}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for duplicate scenario id")
	}
}
