package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/game"
	"github.com/zhoumeng-creater/netdefence/internal/scenario"
)

// CreateSession starts a new contest from a catalog scenario. The session is
// seeded in the setup phase (baseline snapshot, full pools, initial scores)
// and enters combat immediately, attacker to move.
func CreateSession(repo SessionRepo, catalog *scenario.Catalog, scenarioID, attackerID, defenderID string) (*game.GameSession, error) {
	sc, ok := catalog.ByID(scenarioID)
	if !ok {
		return nil, ErrScenarioNotFound
	}

	maxRounds := sc.MaxRounds
	if maxRounds <= 0 {
		maxRounds = game.DefaultMaxRounds
	}
	scores := sc.InitialScores
	if scores == (game.ScoreVector{}) {
		scores = game.ScoreVector{
			Trust:    game.DefaultInitialScore,
			Risk:     game.DefaultInitialScore,
			Incident: game.DefaultInitialScore,
			Loss:     game.DefaultInitialScore,
		}
	}

	s := &game.GameSession{
		SessionUUID: uuid.NewString(),
		ScenarioID:  sc.ID,
		AttackerID:  attackerID,
		DefenderID:  defenderID,

		Status: game.StatusActive,
		Phase:  game.PhaseSetup,
		Round:  1,
		Turn:   game.RoleAttacker,

		MaxRounds:     maxRounds,
		Ledger:        game.NewResourceLedger(sc.InitialActionPoints, sc.RecoveryRate, sc.MaxActionPoints),
		Scores:        scores,
		WinConditions: sc.WinConditions,

		StartedAt: time.Now().UTC(),
		History:   []game.EnvironmentState{engine.BaselineState(sc)},
	}
	// Seeding done; the contest opens in combat.
	s.Phase = game.PhaseCombat

	if err := repo.CreateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
