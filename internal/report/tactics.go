package report

import (
	"fmt"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// TacticStats aggregates how one action kind performed across a contest.
type TacticStats struct {
	Count         int     `json:"count"`
	SuccessCount  int     `json:"success_count"`
	TotalImpact   float64 `json:"total_impact"`
	AverageImpact float64 `json:"average_impact"`
	SuccessRate   float64 `json:"success_rate"`
}

// SideAnalysis is the per-role tactical summary.
type SideAnalysis struct {
	Tactics        map[game.ActionKind]*TacticStats `json:"tactics"`
	MostUsed       game.ActionKind                  `json:"most_used,omitempty"`
	MostEffective  game.ActionKind                  `json:"most_effective,omitempty"`
	AverageSuccess float64                          `json:"average_success"`
}

type TacticalAnalysis struct {
	Attacker        SideAnalysis `json:"attacker"`
	Defender        SideAnalysis `json:"defender"`
	KeyPatterns     []string     `json:"key_patterns"`
	Recommendations []string     `json:"recommendations"`
}

const maxRecommendations = 5

func analyzeTactics(moves []game.MoveRecord) TacticalAnalysis {
	attacker := collectSide(moves, game.RoleAttacker)
	defender := collectSide(moves, game.RoleDefender)
	patterns := identifyPatterns(moves)
	return TacticalAnalysis{
		Attacker:        attacker,
		Defender:        defender,
		KeyPatterns:     patterns,
		Recommendations: recommendations(attacker, defender, patterns),
	}
}

func collectSide(moves []game.MoveRecord, role game.Role) SideAnalysis {
	tactics := map[game.ActionKind]*TacticStats{}
	for _, m := range moves {
		if m.Role != role {
			continue
		}
		st, ok := tactics[m.Action]
		if !ok {
			st = &TacticStats{}
			tactics[m.Action] = st
		}
		st.Count++
		if m.Success {
			st.SuccessCount++
		}
		// Attackers are measured by total swing, defenders only by the
		// ground they actually recover.
		for _, d := range m.ScoreDeltas {
			if role == game.RoleAttacker {
				if d < 0 {
					st.TotalImpact -= d
				} else {
					st.TotalImpact += d
				}
			} else if d > 0 {
				st.TotalImpact += d
			}
		}
	}

	side := SideAnalysis{Tactics: tactics}
	var rateSum float64
	var maxCount int
	var maxImpact float64
	for kind, st := range tactics {
		st.SuccessRate = float64(st.SuccessCount) / float64(st.Count)
		st.AverageImpact = st.TotalImpact / float64(st.Count)
		rateSum += st.SuccessRate
		if st.Count > maxCount {
			maxCount = st.Count
			side.MostUsed = kind
		}
		if st.Count > 1 && st.AverageImpact > maxImpact {
			maxImpact = st.AverageImpact
			side.MostEffective = kind
		}
	}
	if len(tactics) > 0 {
		side.AverageSuccess = rateSum / float64(len(tactics))
	}
	return side
}

// identifyPatterns looks for named move combinations. Turns strictly
// alternate, so patterns are about what each side chains across its own
// consecutive moves.
func identifyPatterns(moves []game.MoveRecord) []string {
	seen := map[string]bool{}
	var patterns []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			patterns = append(patterns, p)
		}
	}

	var lastAttack, lastDefense *game.MoveRecord
	attackStreak := 0
	for i := range moves {
		m := &moves[i]
		if m.Role == game.RoleAttacker {
			if m.Success {
				attackStreak++
				if attackStreak >= 3 {
					add("sustained pressure: three or more attacks landed in a row")
				}
			} else {
				attackStreak = 0
			}
			if lastAttack != nil && lastAttack.Action == game.ActionPhish &&
				lastAttack.Success && m.Action == game.ActionTheft {
				add("credential chain: phishing followed by data theft")
			}
			lastAttack = m
		} else {
			if lastDefense != nil && lastDefense.Action == game.ActionMonitor &&
				m.Action == game.ActionAmbush {
				add("trap setup: monitoring followed by a honeypot ambush")
			}
			lastDefense = m
		}
	}
	return patterns
}

func recommendations(attacker, defender SideAnalysis, patterns []string) []string {
	var recs []string
	for kind, st := range attacker.Tactics {
		if st.Count > 2 && st.SuccessRate < 0.3 {
			recs = append(recs, fmt.Sprintf(
				"attacker should rely less on %s (landed %.0f%% of attempts)", kind, st.SuccessRate*100))
		}
	}
	if defender.MostEffective != "" {
		recs = append(recs, fmt.Sprintf(
			"defender's %s recovered the most ground and is worth repeating", defender.MostEffective))
	}
	for _, p := range patterns {
		if p == "sustained pressure: three or more attacks landed in a row" {
			recs = append(recs, "defender needs proactive mitigations to break the attacker's rhythm")
		}
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
