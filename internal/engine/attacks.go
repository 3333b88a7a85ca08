package engine

import (
	"fmt"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// Attack resolution is probabilistic: every attack rolls against a
// context-sensitive success rate. A failed attack changes no environment
// state and awards the defender a small recovery on the threatened axis
// (a foiled attempt).

const (
	prankSuccessRate     = 0.9
	exploitSuccessRate   = 0.8
	exploitProtectedRate = 0.3
	theftWarmRate        = 0.7
	theftColdRate        = 0.2
	destroySuccessRate   = 0.6
	ransomSuccessRate    = 0.5
	phishSuccessRate     = 0.6
	phishEnhancedRate    = 0.8
	chaosSuccessRate     = 0.65
)

func targetOrDefault(target, fallback string) string {
	if target != "" {
		return target
	}
	return fallback
}

func failedAttack(kind game.ActionKind, desc string, axis game.Axis, recovery float64) *Outcome {
	return &Outcome{
		Success:     false,
		ActionName:  ActionName(kind),
		Description: desc,
		ScoreDeltas: game.ScoreDelta{axis: recovery},
	}
}

func (e *Engine) resolvePrank(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "web_portal")
	if e.roll() >= prankSuccessRate {
		return failedAttack(req.Action, "Prank attempt was noticed and shrugged off", game.AxisIncident, 2)
	}
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(req.Action),
		Description: fmt.Sprintf("Defaced %s, causing minor disruption", target),
		ScoreDeltas: game.ScoreDelta{game.AxisTrust: -5, game.AxisIncident: -5},
		Directives: game.StateDirectives{
			SetStatus: map[string]game.ComponentStatus{target: game.StatusDegraded},
		},
	}
}

func (e *Engine) resolveExploit(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "app_server")
	vulnType := req.Params[game.ParamVulnType]
	if vulnType == "" {
		// Default to the first vulnerability already discovered on the target.
		for _, v := range env.Vulnerabilities {
			if v.TargetID == target {
				vulnType = v.Type
				break
			}
		}
	}
	if vulnType == "" {
		vulnType = "unpatched_service"
	}

	rate := exploitSuccessRate
	if env.DefenseProtecting(vulnType) != nil {
		rate = exploitProtectedRate
	}
	if e.roll() >= rate {
		return failedAttack(req.Action,
			fmt.Sprintf("Exploit against %s (%s) was blocked", target, vulnType),
			game.AxisRisk, 3)
	}
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(req.Action),
		Description: fmt.Sprintf("Exploited %s vulnerability on %s", vulnType, target),
		ScoreDeltas: game.ScoreDelta{game.AxisRisk: -20, game.AxisIncident: -15},
		Directives: game.StateDirectives{
			SetStatus:          map[string]game.ComponentStatus{target: game.StatusCompromised},
			AddVulnerabilities: []game.Vulnerability{{TargetID: target, Type: vulnType}},
			AddCompromised:     []string{target},
		},
	}
}

func (e *Engine) resolveTheft(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "database")
	rate := theftColdRate
	if env.IsCompromised(target) {
		rate = theftWarmRate
	}
	if e.roll() >= rate {
		return failedAttack(req.Action,
			fmt.Sprintf("Exfiltration from %s was interrupted", target),
			game.AxisLoss, 3)
	}
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(req.Action),
		Description: fmt.Sprintf("Exfiltrated sensitive data from %s", target),
		ScoreDeltas: game.ScoreDelta{game.AxisTrust: -15, game.AxisLoss: -20, game.AxisIncident: -10},
		Directives: game.StateDirectives{
			AddCompromised: []string{target},
		},
	}
}

func (e *Engine) resolveDestroy(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "file_server")
	if e.roll() >= destroySuccessRate {
		return failedAttack(req.Action,
			fmt.Sprintf("Destructive payload against %s failed to detonate", target),
			game.AxisLoss, 4)
	}
	lossDelta := -30.0
	if req.Params.Enhanced() {
		lossDelta = -50
	}
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(req.Action),
		Description: fmt.Sprintf("Wiped and disabled %s", target),
		ScoreDeltas: game.ScoreDelta{game.AxisRisk: -25, game.AxisIncident: -20, game.AxisLoss: lossDelta},
		Directives: game.StateDirectives{
			SetStatus:      map[string]game.ComponentStatus{target: game.StatusCompromised},
			AddCompromised: []string{target},
		},
	}
}

func (e *Engine) resolveRansom(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "file_server")
	if e.roll() >= ransomSuccessRate {
		return failedAttack(req.Action,
			fmt.Sprintf("Ransomware on %s was quarantined before encryption", target),
			game.AxisLoss, 4)
	}
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(req.Action),
		Description: fmt.Sprintf("Encrypted %s and posted a ransom demand", target),
		ScoreDeltas: game.ScoreDelta{game.AxisLoss: -35, game.AxisIncident: -25, game.AxisTrust: -20},
		Directives: game.StateDirectives{
			SetStatus: map[string]game.ComponentStatus{target: game.StatusEncrypted},
		},
	}
}

func (e *Engine) resolvePhish(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "staff_mailboxes")
	rate := phishSuccessRate
	if req.Params.Enhanced() {
		rate = phishEnhancedRate
	}
	if e.roll() >= rate {
		return failedAttack(req.Action, "Phishing mail was reported and blocked", game.AxisTrust, 3)
	}
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(req.Action),
		Description: fmt.Sprintf("Harvested credentials via phishing against %s", target),
		ScoreDeltas: game.ScoreDelta{game.AxisTrust: -20, game.AxisIncident: -10},
		Directives: game.StateDirectives{
			AddVulnerabilities: []game.Vulnerability{{TargetID: target, Type: "stolen_credentials"}},
		},
	}
}

func (e *Engine) resolveChaos(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "update_server")
	if e.roll() >= chaosSuccessRate {
		return failedAttack(req.Action, "Tampered vendor package was caught in review", game.AxisRisk, 4)
	}
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(req.Action),
		Description: "Poisoned the supply chain through a vendor channel",
		ScoreDeltas: game.ScoreDelta{game.AxisRisk: -20, game.AxisTrust: -10, game.AxisIncident: -15},
		Directives: game.StateDirectives{
			SetStatus:      map[string]game.ComponentStatus{target: game.StatusDegraded},
			AddCompromised: []string{"vendor_system", "update_server"},
		},
	}
}
