package engine

import (
	"fmt"

	"github.com/zhoumeng-creater/netdefence/internal/game"
)

// Defense resolution is deterministic: deploying a mitigation always
// succeeds. The adversarial contest lives on the attack side, where active
// defenses lower exploit success rates via their protects lists.

// monitorDetectionCap bounds how many compromised systems a single monitor
// deployment surfaces, keeping detection reports small.
const monitorDetectionCap = 2

func deployedDefense(kind game.ActionKind, desc string, deltas game.ScoreDelta, directives game.StateDirectives) *Outcome {
	return &Outcome{
		Success:     true,
		ActionName:  ActionName(kind),
		Description: desc,
		ScoreDeltas: deltas,
		Directives:  directives,
	}
}

func resolvePatch(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "app_server")
	vulnType := req.Params[game.ParamVulnType]
	protects := []string{}
	if vulnType != "" {
		protects = append(protects, vulnType)
	} else {
		for _, v := range env.Vulnerabilities {
			if v.TargetID == target {
				protects = append(protects, v.Type)
			}
		}
	}
	if len(protects) == 0 {
		protects = []string{"unpatched_service"}
	}
	return deployedDefense(req.Action,
		fmt.Sprintf("Patched %s against %d vulnerability type(s)", target, len(protects)),
		game.ScoreDelta{game.AxisRisk: 15, game.AxisIncident: 10},
		game.StateDirectives{
			SetStatus:   map[string]game.ComponentStatus{target: game.StatusPatched},
			AddDefenses: []game.ActiveDefense{{Type: "patch", Target: target, Protects: protects}},
		})
}

func resolveFirewall(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "network")
	return deployedDefense(req.Action,
		fmt.Sprintf("Configured firewall rules in front of %s", target),
		game.ScoreDelta{game.AxisRisk: 10, game.AxisTrust: 5},
		game.StateDirectives{
			AddDefenses: []game.ActiveDefense{{
				Type:     "firewall",
				Target:   target,
				Protects: []string{"network_intrusion", "unpatched_service"},
			}},
		})
}

func resolveMonitor(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	// Surface the most recent compromises, capped.
	detected := env.CompromisedSystems
	if len(detected) > monitorDetectionCap {
		detected = detected[len(detected)-monitorDetectionCap:]
	}
	incidentDelta := 5.0
	desc := "Deployed security monitoring; no intrusions detected"
	if len(detected) > 0 {
		incidentDelta = 15
		desc = fmt.Sprintf("Monitoring detected %d compromised system(s)", len(detected))
	}
	out := deployedDefense(req.Action, desc,
		game.ScoreDelta{game.AxisRisk: 5, game.AxisIncident: incidentDelta},
		game.StateDirectives{
			AddDefenses: []game.ActiveDefense{{Type: "monitoring", Target: req.Target}},
		})
	out.Detected = append([]string(nil), detected...)
	return out
}

func resolveVaccine(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "workstations")
	directives := game.StateDirectives{
		AddDefenses: []game.ActiveDefense{{
			Type:     "antivirus",
			Target:   target,
			Protects: []string{"malware", "ransomware"},
		}},
	}
	desc := fmt.Sprintf("Rolled out malware cleanup on %s", target)
	if env.IsCompromised(target) {
		// Compromise history is append-only; recovery is reflected in the
		// component status, not by rewriting the list.
		directives.SetStatus = map[string]game.ComponentStatus{target: game.StatusRunning}
		desc = fmt.Sprintf("Disinfected %s and restored it to service", target)
	}
	return deployedDefense(req.Action, desc,
		game.ScoreDelta{game.AxisIncident: 15, game.AxisTrust: 10},
		directives)
}

func resolveAmbush(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "dmz")
	return deployedDefense(req.Action,
		fmt.Sprintf("Planted honeypots around %s", target),
		game.ScoreDelta{game.AxisRisk: 8, game.AxisTrust: 5},
		game.StateDirectives{
			AddDefenses: []game.ActiveDefense{{Type: "honeypot", Target: target}},
		})
}

func resolveDecoy(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	return deployedDefense(req.Action,
		"Deployed a decoy server to mislead the attacker",
		game.ScoreDelta{game.AxisRisk: 5, game.AxisTrust: 3},
		game.StateDirectives{
			SetStatus:   map[string]game.ComponentStatus{"decoy_server": game.StatusRunning},
			AddDefenses: []game.ActiveDefense{{Type: "decoy", Target: "decoy_server"}},
		})
}

func resolveGuerrilla(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "network")
	return deployedDefense(req.Action,
		fmt.Sprintf("Rotated defensive posture across %s", target),
		game.ScoreDelta{game.AxisRisk: 12, game.AxisIncident: 8},
		game.StateDirectives{
			AddDefenses: []game.ActiveDefense{{Type: "dynamic_defense", Target: target}},
		})
}

func resolveTaichi(env *game.EnvironmentState, req game.ActionRequest) *Outcome {
	target := targetOrDefault(req.Target, "network")
	return deployedDefense(req.Action,
		"Redirected hostile traffic into a contained zone",
		game.ScoreDelta{game.AxisRisk: 15, game.AxisTrust: 10, game.AxisIncident: 15},
		game.StateDirectives{
			AddDefenses: []game.ActiveDefense{
				{Type: "taichi_redirect", Target: target},
				{Type: "adaptive_defense", Target: target},
			},
		})
}
