package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// Manual is the generated after-action report for one session: the replayable
// move flow, score progression, notable moments and a tactical breakdown.
type Manual struct {
	ManualUUID  string `json:"manual_uuid"`
	SessionUUID string `json:"session_uuid"`
	ScenarioID  string `json:"scenario_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	TotalRounds     int      `json:"total_rounds"`
	TotalMoves      int      `json:"total_moves"`
	DurationSeconds int      `json:"duration_seconds"`
	Tags            []string `json:"tags"`

	AttackSuccessRate    float64 `json:"attack_success_rate"`
	DefenseEffectiveness float64 `json:"defense_effectiveness"`
	QualityRating        int     `json:"quality_rating"`
	EducationalValue     int     `json:"educational_value"`

	Winner      string             `json:"winner"`
	EndReason   string             `json:"end_reason"`
	FinalScores game.ScoreVector   `json:"final_scores"`
	Progression []game.ScoreVector `json:"score_progression"`

	Moves      []game.MoveRecord `json:"moves"`
	KeyMoments []KeyMoment       `json:"key_moments"`
	Tactics    TacticalAnalysis  `json:"tactical_analysis"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Build assembles the manual for a session. initialScores is the vector the
// contest started from; the progression is reconstructed by replaying each
// recorded move's deltas, which reproduces the engine's clamping exactly.
func Build(s *game.GameSession, initialScores game.ScoreVector) *Manual {
	progression := scoreProgression(initialScores, s.Moves)
	attackRate, defenseRate := successRates(s.Moves)

	return &Manual{
		ManualUUID:  uuid.NewString(),
		SessionUUID: s.SessionUUID,
		ScenarioID:  s.ScenarioID,
		Title:       title(s),
		Description: description(s),

		TotalRounds:     s.Round,
		TotalMoves:      len(s.Moves),
		DurationSeconds: durationSeconds(s),
		Tags:            tags(s),

		AttackSuccessRate:    attackRate,
		DefenseEffectiveness: defenseRate,
		QualityRating:        qualityRating(s),
		EducationalValue:     educationalValue(s.Moves),

		Winner:      s.Winner,
		EndReason:   s.EndReason,
		FinalScores: s.Scores,
		Progression: progression,

		Moves:      s.Moves,
		KeyMoments: keyMoments(s.Moves, progression),
		Tactics:    analyzeTactics(s.Moves),

		GeneratedAt: time.Now().UTC(),
	}
}

func scoreProgression(initial game.ScoreVector, moves []game.MoveRecord) []game.ScoreVector {
	progression := make([]game.ScoreVector, 0, len(moves)+1)
	progression = append(progression, initial)
	current := initial
	for _, m := range moves {
		current.ApplyDeltas(m.ScoreDeltas)
		progression = append(progression, current)
	}
	return progression
}

func successRates(moves []game.MoveRecord) (attack, defense float64) {
	var attacks, attackHits, defenses, defenseHits int
	for _, m := range moves {
		if m.Role == game.RoleAttacker {
			attacks++
			if m.Success {
				attackHits++
			}
		} else {
			defenses++
			if m.Success {
				defenseHits++
			}
		}
	}
	if attacks > 0 {
		attack = float64(attackHits) / float64(attacks)
	}
	if defenses > 0 {
		defense = float64(defenseHits) / float64(defenses)
	}
	return attack, defense
}

func title(s *game.GameSession) string {
	switch s.Winner {
	case game.WinnerAttacker:
		return fmt.Sprintf("Attacker victory in %d rounds", s.Round)
	case game.WinnerDefender:
		return fmt.Sprintf("Defender victory in %d rounds", s.Round)
	default:
		return fmt.Sprintf("Draw after %d rounds", s.Round)
	}
}

func description(s *game.GameSession) string {
	if s.EndReason != "" {
		return fmt.Sprintf("After %d rounds: %s.", s.Round, s.EndReason)
	}
	return fmt.Sprintf("A %d-round contest between attacker and defender.", s.Round)
}

func durationSeconds(s *game.GameSession) int {
	if s.EndedAt == nil {
		return 0
	}
	return int(s.EndedAt.Sub(s.StartedAt).Seconds())
}

func tags(s *game.GameSession) []string {
	var out []string
	switch {
	case s.Round < 8:
		out = append(out, "quick-duel")
	case s.Round > 15:
		out = append(out, "marathon")
	}

	counts := map[game.ActionKind]int{}
	var top game.ActionKind
	for _, m := range s.Moves {
		if m.Role != game.RoleAttacker {
			continue
		}
		counts[m.Action]++
		if top == "" || counts[m.Action] > counts[top] {
			top = m.Action
		}
	}
	if top != "" {
		out = append(out, fmt.Sprintf("attack-style:%s", top))
	}

	switch s.Winner {
	case game.WinnerAttacker:
		out = append(out, "attacker-victory")
	case game.WinnerDefender:
		out = append(out, "defender-victory")
	case game.WinnerDraw:
		out = append(out, "draw")
	}
	return out
}

// qualityRating grades the contest 1..5 from length, variety and how
// contested the exchanges were.
func qualityRating(s *game.GameSession) int {
	quality := 3
	if s.Round > 15 {
		quality++
	}
	if s.Round < 5 {
		quality--
	}

	unique := map[game.ActionKind]bool{}
	var successes int
	for _, m := range s.Moves {
		unique[m.Action] = true
		if m.Success {
			successes++
		}
	}
	if len(unique) > 8 {
		quality++
	}
	if len(unique) < 4 {
		quality--
	}
	if n := len(s.Moves); n > 0 {
		rate := float64(successes) / float64(n)
		if rate > 0.4 && rate < 0.6 {
			quality++
		}
	}
	return clampRating(quality)
}

// educationalValue grades 1..5 by how much of each catalog the players
// actually exercised.
func educationalValue(moves []game.MoveRecord) int {
	value := 3
	attackKinds := map[game.ActionKind]bool{}
	defenseKinds := map[game.ActionKind]bool{}
	for _, m := range moves {
		if m.Role == game.RoleAttacker {
			attackKinds[m.Action] = true
		} else {
			defenseKinds[m.Action] = true
		}
	}
	if len(attackKinds) >= 5 {
		value++
	}
	if len(defenseKinds) >= 5 {
		value++
	}
	return clampRating(value)
}

func clampRating(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
