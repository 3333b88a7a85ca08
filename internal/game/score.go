package game

// Axis names one of the four RITE score dimensions.
type Axis string

const (
	AxisTrust    Axis = "trust"
	AxisRisk     Axis = "risk"
	AxisIncident Axis = "incident"
	AxisLoss     Axis = "loss"
)

// ScoreDelta is a sparse score impact over the four axes. Attack successes
// carry negative values, defense successes positive ones.
type ScoreDelta map[Axis]float64

// ScoreVector is the four-axis RITE outcome score. Every axis is clamped to
// [0,100]; the overall score is derived, never stored.
type ScoreVector struct {
	Trust    float64 `json:"trust"`
	Risk     float64 `json:"risk"`
	Incident float64 `json:"incident"`
	Loss     float64 `json:"loss"`
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ApplyDelta shifts one axis by delta, clamping the result to [0,100].
// Out-of-range deltas are clamped, not rejected: deltas represent bounded
// game effects, not user input.
func (s *ScoreVector) ApplyDelta(axis Axis, delta float64) {
	switch axis {
	case AxisTrust:
		s.Trust = clampScore(s.Trust + delta)
	case AxisRisk:
		s.Risk = clampScore(s.Risk + delta)
	case AxisIncident:
		s.Incident = clampScore(s.Incident + delta)
	case AxisLoss:
		s.Loss = clampScore(s.Loss + delta)
	}
}

// ApplyDeltas applies a sparse delta map to the vector.
func (s *ScoreVector) ApplyDeltas(deltas ScoreDelta) {
	for axis, d := range deltas {
		s.ApplyDelta(axis, d)
	}
}

// Overall is the arithmetic mean of the four axes, recomputed on every call.
func (s ScoreVector) Overall() float64 {
	return (s.Trust + s.Risk + s.Incident + s.Loss) / 4
}
