package engine

import (
	"fmt"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// Outcome is the result of one resolved action: score impact plus the
// environment-state directives the engine applies to the snapshot chain.
// Produced once per move and never mutated afterwards.
type Outcome struct {
	Success     bool
	ActionName  string
	Description string
	ScoreDeltas game.ScoreDelta
	Directives  game.StateDirectives
	// Detected carries the compromised systems surfaced by a monitor
	// deployment, capped at the two most recent entries.
	Detected []string
}

// Base action-point costs. An "enhanced" move costs one extra point.
var actionCosts = map[game.ActionKind]int{
	game.ActionPrank:   2,
	game.ActionExploit: 3,
	game.ActionTheft:   2,
	game.ActionDestroy: 4,
	game.ActionRansom:  3,
	game.ActionPhish:   2,
	game.ActionChaos:   3,

	game.ActionPatch:     1,
	game.ActionFirewall:  2,
	game.ActionMonitor:   2,
	game.ActionVaccine:   3,
	game.ActionAmbush:    3,
	game.ActionDecoy:     2,
	game.ActionGuerrilla: 3,
	game.ActionTaichi:    4,
}

// Display names recorded on move outcomes.
var actionNames = map[game.ActionKind]string{
	game.ActionPrank:   "Prank Attack",
	game.ActionExploit: "Vulnerability Exploit",
	game.ActionTheft:   "Data Theft",
	game.ActionDestroy: "Destructive Attack",
	game.ActionRansom:  "Ransomware Deployment",
	game.ActionPhish:   "Phishing Campaign",
	game.ActionChaos:   "Supply Chain Attack",

	game.ActionPatch:     "System Patching",
	game.ActionFirewall:  "Firewall Configuration",
	game.ActionMonitor:   "Security Monitoring",
	game.ActionVaccine:   "Malware Cleanup",
	game.ActionAmbush:    "Honeypot Trap",
	game.ActionDecoy:     "Decoy Deployment",
	game.ActionGuerrilla: "Moving Target Defense",
	game.ActionTaichi:    "Adaptive Redirection",
}

// Cost returns the action-point price of a move. Unknown kinds price at 1 so
// the caller's resource check runs before the unknown-action check, matching
// the submit-move contract ordering.
func Cost(kind game.ActionKind, params game.ParamMap) int {
	base, ok := actionCosts[kind]
	if !ok {
		base = 1
	}
	if params.Enhanced() {
		base++
	}
	return base
}

// ActionName returns the display name for a known kind, or the raw kind.
func ActionName(kind game.ActionKind) string {
	if n, ok := actionNames[kind]; ok {
		return n
	}
	return string(kind)
}

// resolve dispatches to the per-kind resolution function. The switch is the
// closed match over every catalog member; adding a kind without a case here
// surfaces immediately as ErrUnknownAction in every test that plays it.
func (e *Engine) resolve(env *game.EnvironmentState, req game.ActionRequest) (*Outcome, error) {
	switch req.Action {
	case game.ActionPrank:
		return e.resolvePrank(env, req), nil
	case game.ActionExploit:
		return e.resolveExploit(env, req), nil
	case game.ActionTheft:
		return e.resolveTheft(env, req), nil
	case game.ActionDestroy:
		return e.resolveDestroy(env, req), nil
	case game.ActionRansom:
		return e.resolveRansom(env, req), nil
	case game.ActionPhish:
		return e.resolvePhish(env, req), nil
	case game.ActionChaos:
		return e.resolveChaos(env, req), nil
	case game.ActionPatch:
		return resolvePatch(env, req), nil
	case game.ActionFirewall:
		return resolveFirewall(env, req), nil
	case game.ActionMonitor:
		return resolveMonitor(env, req), nil
	case game.ActionVaccine:
		return resolveVaccine(env, req), nil
	case game.ActionAmbush:
		return resolveAmbush(env, req), nil
	case game.ActionDecoy:
		return resolveDecoy(env, req), nil
	case game.ActionGuerrilla:
		return resolveGuerrilla(env, req), nil
	case game.ActionTaichi:
		return resolveTaichi(env, req), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
}
