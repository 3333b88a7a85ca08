package engine

import "github.com/zhoumeng-creater/netdefence/internal/game"

// BaselineState builds the round-0 snapshot from a scenario definition. It is
// the first link of the session's chain, appended once at creation.
func BaselineState(sc *game.Scenario) game.EnvironmentState {
	base := game.EnvironmentState{
		Round:              0,
		Components:         make(map[string]game.ComponentStatus, len(sc.InitialComponents)),
		Vulnerabilities:    append([]game.Vulnerability(nil), sc.InitialVulnerabilities...),
		CompromisedSystems: []string{},
	}
	for id, st := range sc.InitialComponents {
		base.Components[id] = st
	}
	return base
}

// currentState returns the newest snapshot in the session's chain. The chain
// always holds at least the baseline, so the index is never out of range.
func currentState(s *game.GameSession) *game.EnvironmentState {
	return &s.History[len(s.History)-1]
}

// nextState derives a fresh snapshot from base with directives applied.
// Every collection is copied so earlier links in the chain stay untouched;
// the chain is append-only and past snapshots are never rewritten.
func nextState(base *game.EnvironmentState, d game.StateDirectives) game.EnvironmentState {
	next := game.EnvironmentState{
		SessionID:          base.SessionID,
		Round:              base.Round + 1,
		Components:         make(map[string]game.ComponentStatus, len(base.Components)),
		Vulnerabilities:    append([]game.Vulnerability(nil), base.Vulnerabilities...),
		ActiveDefenses:     append([]game.ActiveDefense(nil), base.ActiveDefenses...),
		CompromisedSystems: append([]string(nil), base.CompromisedSystems...),
	}
	for id, st := range base.Components {
		next.Components[id] = st
	}

	for id, st := range d.SetStatus {
		next.Components[id] = st
	}
	next.Vulnerabilities = append(next.Vulnerabilities, d.AddVulnerabilities...)
	next.ActiveDefenses = append(next.ActiveDefenses, d.AddDefenses...)
	for _, id := range d.AddCompromised {
		if !containsString(next.CompromisedSystems, id) {
			next.CompromisedSystems = append(next.CompromisedSystems, id)
		}
	}
	return next
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
