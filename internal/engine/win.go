package engine

import "github.com/zhoumeng-creater/netdefence/internal/game"

// Scenarios reference win conditions by symbolic name; this registry binds
// each name to its score threshold. Attack successes push axes down, so
// attacker conditions trigger on low scores and defender conditions on high
// ones.
var winRegistry = map[string]struct {
	Reason string
	Met    func(game.ScoreVector) bool
}{
	"data_stolen": {
		Reason: "critical data was exfiltrated",
		Met:    func(s game.ScoreVector) bool { return s.Loss < 30 },
	},
	"trust_collapsed": {
		Reason: "public trust in the organization collapsed",
		Met:    func(s game.ScoreVector) bool { return s.Trust < 20 },
	},
	"operations_disrupted": {
		Reason: "operations were disrupted beyond recovery",
		Met:    func(s game.ScoreVector) bool { return s.Incident < 20 },
	},

	"system_secured": {
		Reason: "systems were hardened and every incident contained",
		Met:    func(s game.ScoreVector) bool { return s.Incident > 80 },
	},
	"attacker_traced": {
		Reason: "the attacker was traced and exposed",
		Met:    func(s game.ScoreVector) bool { return s.Trust > 80 },
	},
	"risk_contained": {
		Reason: "residual risk was driven down to a safe level",
		Met:    func(s game.ScoreVector) bool { return s.Risk > 80 },
	},
}

// KnownWinCondition reports whether name exists in the registry. The
// scenario loader rejects catalogs that reference unknown conditions.
func KnownWinCondition(name string) bool {
	_, ok := winRegistry[name]
	return ok
}

// WinConditionNames returns every registered condition name, for diagnostics.
func WinConditionNames() []string {
	names := make([]string, 0, len(winRegistry))
	for name := range winRegistry {
		names = append(names, name)
	}
	return names
}

// evaluateWin checks the session's win conditions against the current
// scores. Attacker conditions are checked first and short-circuit. The round
// ceiling is consulted last: once the round counter passes the maximum with
// no decisive condition met, the contest is a draw.
//
// The returned reason leads with the symbolic condition name
// ("data_stolen: critical data was exfiltrated") so callers can identify
// which rule fired without parsing prose.
func evaluateWin(s *game.GameSession) (winner, reason string, over bool) {
	for _, name := range s.WinConditions.Attacker {
		if c, ok := winRegistry[name]; ok && c.Met(s.Scores) {
			return game.WinnerAttacker, name + ": " + c.Reason, true
		}
	}
	for _, name := range s.WinConditions.Defender {
		if c, ok := winRegistry[name]; ok && c.Met(s.Scores) {
			return game.WinnerDefender, name + ": " + c.Reason, true
		}
	}
	if s.Round > s.MaxRounds {
		return game.WinnerDraw, "round limit reached with no decisive outcome", true
	}
	return "", "", false
}
