package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// MoveReport is what a successful move returns to the caller: the recorded
// move, the post-move scores and whose turn comes next. Winner and Reason
// are set only when Over is true.
type MoveReport struct {
	Move     game.MoveRecord  `json:"move"`
	Scores   game.ScoreVector `json:"scores"`
	NextTurn game.Role        `json:"next_turn"`
	Over     bool             `json:"over"`
	Winner   string           `json:"winner,omitempty"`
	Reason   string           `json:"reason,omitempty"`
}

// SubmitMove validates, resolves and applies one move against the session.
// The session is mutated in place; the caller persists it afterwards.
// Concurrent callers serialize the whole load-move-persist span with
// WithSessionLock; SubmitMove itself takes no lock.
//
// Validation runs strictly before any mutation, in a fixed order: turn and
// role checks, then session liveness, then affordability, then action
// dispatch. A rejected move therefore leaves the session byte-for-byte
// unchanged, and a move is never partially applied.
func (e *Engine) SubmitMove(s *game.GameSession, req game.ActionRequest) (*MoveReport, error) {
	if req.Role != s.Turn {
		return nil, fmt.Errorf("%w: it is the %s's move", ErrNotYourTurn, s.Turn)
	}
	// Playing an action from the other side's catalog is a turn violation,
	// not an unknown action.
	if (req.Role == game.RoleAttacker && game.IsDefenseAction(req.Action)) ||
		(req.Role == game.RoleDefender && game.IsAttackAction(req.Action)) {
		return nil, fmt.Errorf("%w: %s cannot play %q", ErrNotYourTurn, req.Role, req.Action)
	}
	if s.Status.Terminal() {
		return nil, fmt.Errorf("%w: session is %s", ErrSessionClosed, s.Status)
	}

	cost := Cost(req.Action, req.Params)
	if !s.Ledger.CanAfford(req.Role, cost) {
		return nil, fmt.Errorf("%w: %s has %d, needs %d",
			game.ErrInsufficientResources, req.Role, s.Ledger.Balance(req.Role), cost)
	}

	env := currentState(s)
	outcome, err := e.resolve(env, req)
	if err != nil {
		return nil, err
	}

	// Past this point nothing fails: apply scores, charge the ledger, grow
	// the snapshot chain and append the move record.
	s.Scores.ApplyDeltas(outcome.ScoreDeltas)
	if err := s.Ledger.Charge(req.Role, cost); err != nil {
		return nil, err
	}

	next := nextState(env, outcome.Directives)
	next.SessionID = s.ID
	s.History = append(s.History, next)

	record := game.MoveRecord{
		SessionID:   s.ID,
		MoveUUID:    uuid.NewString(),
		Round:       s.Round,
		Role:        req.Role,
		Action:      req.Action,
		ActionName:  outcome.ActionName,
		Target:      req.Target,
		Params:      req.Params,
		Cost:        cost,
		Success:     outcome.Success,
		Description: outcome.Description,
		ScoreDeltas: outcome.ScoreDeltas,
		Directives:  outcome.Directives,
		Detected:    outcome.Detected,
		ExecutedAt:  time.Now().UTC(),
	}
	s.Moves = append(s.Moves, record)

	// Advance the turn. A defender move closes the round: the counter
	// increments and both pools recover.
	if s.Turn == game.RoleAttacker {
		s.Turn = game.RoleDefender
	} else {
		s.Turn = game.RoleAttacker
		s.Round++
		s.Ledger.Recover()
	}

	winner, reason, over := evaluateWin(s)
	if over {
		now := time.Now().UTC()
		s.Status = game.StatusCompleted
		s.Phase = game.PhaseResolution
		s.Winner = winner
		s.EndReason = reason
		s.EndedAt = &now
	}

	return &MoveReport{
		Move:     record,
		Scores:   s.Scores,
		NextTurn: s.Turn,
		Over:     over,
		Winner:   winner,
		Reason:   reason,
	}, nil
}
