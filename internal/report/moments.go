package report

import (
	"fmt"
	"math"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

type MomentType string

const (
	MomentTurningPoint    MomentType = "turning_point"
	MomentCriticalSuccess MomentType = "critical_success"
	MomentComeback        MomentType = "comeback"
)

// Thresholds for what counts as a notable moment.
const (
	turningPointSwing   = 20.0
	criticalImpactTotal = 30.0
	comebackLookback    = 5
	comebackLowWater    = 40.0
	comebackHighWater   = 60.0
)

// KeyMoment marks one notable move in a finished contest.
type KeyMoment struct {
	Round       int             `json:"round"`
	MoveUUID    string          `json:"move_uuid"`
	Type        MomentType      `json:"type"`
	Description string          `json:"description"`
	Impact      game.ScoreDelta `json:"impact"`
}

// keyMoments walks the score progression (one entry per move, plus the
// initial vector at index 0) and flags swings, heavy hits and comebacks.
func keyMoments(moves []game.MoveRecord, progression []game.ScoreVector) []KeyMoment {
	var moments []KeyMoment
	for i := 1; i < len(progression) && i <= len(moves); i++ {
		prev, curr := progression[i-1], progression[i]
		move := moves[i-1]

		if swing := math.Abs(curr.Overall() - prev.Overall()); swing > turningPointSwing {
			moments = append(moments, KeyMoment{
				Round:       move.Round,
				MoveUUID:    move.MoveUUID,
				Type:        MomentTurningPoint,
				Description: fmt.Sprintf("%s shifted the balance of the contest", move.ActionName),
				Impact:      vectorDelta(prev, curr),
			})
		}

		if move.Success && totalImpact(move.ScoreDeltas) > criticalImpactTotal {
			moments = append(moments, KeyMoment{
				Round:       move.Round,
				MoveUUID:    move.MoveUUID,
				Type:        MomentCriticalSuccess,
				Description: fmt.Sprintf("%s landed a decisive blow", move.ActionName),
				Impact:      move.ScoreDeltas,
			})
		}

		if i > comebackLookback {
			earlier := progression[i-comebackLookback]
			if earlier.Overall() < comebackLowWater && curr.Overall() > comebackHighWater {
				moments = append(moments, KeyMoment{
					Round:       move.Round,
					MoveUUID:    move.MoveUUID,
					Type:        MomentComeback,
					Description: "the losing side turned the contest around",
					Impact:      vectorDelta(earlier, curr),
				})
			}
		}
	}
	return moments
}

func vectorDelta(prev, curr game.ScoreVector) game.ScoreDelta {
	return game.ScoreDelta{
		game.AxisTrust:    curr.Trust - prev.Trust,
		game.AxisRisk:     curr.Risk - prev.Risk,
		game.AxisIncident: curr.Incident - prev.Incident,
		game.AxisLoss:     curr.Loss - prev.Loss,
	}
}

func totalImpact(deltas game.ScoreDelta) float64 {
	var sum float64
	for _, d := range deltas {
		sum += math.Abs(d)
	}
	return sum
}
