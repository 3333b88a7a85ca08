package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/game"
)

type rawConfig struct {
	ScenarioList []game.Scenario `json:"scenario_list"`
	Server       *struct {
		Address               string `json:"address"`
		SessionTimeoutMinutes int    `json:"session_timeout_minutes"`
	} `json:"server"`
}

const defaultSessionTimeout = 30 * time.Minute

// Catalog is the loaded, validated scenario set. It is read-only after Load.
type Catalog struct {
	scenarios []game.Scenario
	byID      map[string]int
}

// All returns every scenario in file order.
func (c *Catalog) All() []game.Scenario {
	return c.scenarios
}

// ByID returns the scenario with the given id, or false.
func (c *Catalog) ByID(id string) (*game.Scenario, bool) {
	i, ok := c.byID[strings.ToLower(id)]
	if !ok {
		return nil, false
	}
	return &c.scenarios[i], true
}

// LoadedConfig contains the scenario catalog and server settings.
type LoadedConfig struct {
	Catalog        *Catalog
	ServerAddress  string
	SessionTimeout time.Duration
}

// LoadConfig reads the configuration file at path and returns the validated
// scenario catalog and server address. It requires the key `scenario_list`.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	catalog, err := buildCatalog(rc.ScenarioList)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	addr := ":8080"
	timeout := defaultSessionTimeout
	if rc.Server != nil {
		if rc.Server.Address != "" {
			addr = rc.Server.Address
		}
		if rc.Server.SessionTimeoutMinutes < 0 {
			return nil, fmt.Errorf("config file %s: session_timeout_minutes must not be negative", path)
		}
		if rc.Server.SessionTimeoutMinutes > 0 {
			timeout = time.Duration(rc.Server.SessionTimeoutMinutes) * time.Minute
		}
	}

	return &LoadedConfig{Catalog: catalog, ServerAddress: addr, SessionTimeout: timeout}, nil
}

// NewCatalog validates and indexes a scenario set built in code, without a
// config file. Tests and embedded defaults use it.
func NewCatalog(scenarios []game.Scenario) (*Catalog, error) {
	return buildCatalog(scenarios)
}

func buildCatalog(scenarios []game.Scenario) (*Catalog, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("scenario_list is empty (provide 'scenario_list' array)")
	}

	byID := make(map[string]int, len(scenarios))
	for i, sc := range scenarios {
		if strings.TrimSpace(sc.ID) == "" {
			return nil, fmt.Errorf("scenario entry %d missing 'id'", i)
		}
		if strings.TrimSpace(sc.Name) == "" {
			return nil, fmt.Errorf("scenario '%s' missing 'name'", sc.ID)
		}
		key := strings.ToLower(sc.ID)
		if _, exists := byID[key]; exists {
			return nil, fmt.Errorf("duplicate scenario id '%s'", sc.ID)
		}
		byID[key] = i

		if err := validateScenario(&sc); err != nil {
			return nil, fmt.Errorf("scenario '%s': %w", sc.ID, err)
		}
	}
	return &Catalog{scenarios: scenarios, byID: byID}, nil
}

func validateScenario(sc *game.Scenario) error {
	if len(sc.WinConditions.Attacker) == 0 || len(sc.WinConditions.Defender) == 0 {
		return fmt.Errorf("both sides need at least one win condition")
	}
	for _, name := range append(append([]string{}, sc.WinConditions.Attacker...), sc.WinConditions.Defender...) {
		if !engine.KnownWinCondition(name) {
			return fmt.Errorf("unknown win condition '%s' (known: %s)",
				name, strings.Join(engine.WinConditionNames(), ", "))
		}
	}
	for _, tool := range sc.AttackerTools {
		if !game.IsAttackAction(tool.Action) {
			return fmt.Errorf("attacker tool '%s' references non-attack action '%s'", tool.Name, tool.Action)
		}
	}
	for _, tool := range sc.DefenderTools {
		if !game.IsDefenseAction(tool.Action) {
			return fmt.Errorf("defender tool '%s' references non-defense action '%s'", tool.Name, tool.Action)
		}
	}
	if sc.MaxRounds < 0 || sc.InitialActionPoints < 0 || sc.RecoveryRate < 0 || sc.MaxActionPoints < 0 {
		return fmt.Errorf("economy values must not be negative")
	}
	return nil
}
