package game

// Role identifies which side of the contest a player controls.
type Role string

const (
	RoleAttacker Role = "attacker"
	RoleDefender Role = "defender"
)

// ActionKind is the closed set of attack and defense techniques. Using a
// dedicated type instead of plain string makes code safer and self-documenting.
type ActionKind string

const (
	// Attack actions ("seven sins")
	ActionPrank   ActionKind = "prank"
	ActionExploit ActionKind = "exploit"
	ActionTheft   ActionKind = "theft"
	ActionDestroy ActionKind = "destroy"
	ActionRansom  ActionKind = "ransom"
	ActionPhish   ActionKind = "phish"
	ActionChaos   ActionKind = "chaos"

	// Defense actions ("eight strikes")
	ActionPatch     ActionKind = "patch"
	ActionFirewall  ActionKind = "firewall"
	ActionMonitor   ActionKind = "monitor"
	ActionVaccine   ActionKind = "vaccine"
	ActionAmbush    ActionKind = "ambush"
	ActionDecoy     ActionKind = "decoy"
	ActionGuerrilla ActionKind = "guerrilla"
	ActionTaichi    ActionKind = "taichi"
)

// AttackActions lists every attacker action kind in catalog order.
var AttackActions = []ActionKind{
	ActionPrank, ActionExploit, ActionTheft, ActionDestroy,
	ActionRansom, ActionPhish, ActionChaos,
}

// DefenseActions lists every defender action kind in catalog order.
var DefenseActions = []ActionKind{
	ActionPatch, ActionFirewall, ActionMonitor, ActionVaccine,
	ActionAmbush, ActionDecoy, ActionGuerrilla, ActionTaichi,
}

// IsAttackAction reports whether k belongs to the attacker catalog.
func IsAttackAction(k ActionKind) bool {
	switch k {
	case ActionPrank, ActionExploit, ActionTheft, ActionDestroy,
		ActionRansom, ActionPhish, ActionChaos:
		return true
	}
	return false
}

// IsDefenseAction reports whether k belongs to the defender catalog.
func IsDefenseAction(k ActionKind) bool {
	switch k {
	case ActionPatch, ActionFirewall, ActionMonitor, ActionVaccine,
		ActionAmbush, ActionDecoy, ActionGuerrilla, ActionTaichi:
		return true
	}
	return false
}

// ParamMap carries free-form move parameters (technique subtype, the
// "enhanced" modifier, ...). Immutable once submitted.
type ParamMap map[string]string

// ParamEnhanced marks a move as enhanced: +1 action point on the base cost
// and, for some actions, a stronger effect.
const ParamEnhanced = "enhanced"

// ParamVulnType selects the vulnerability type an exploit or patch targets.
const ParamVulnType = "vuln_type"

// Enhanced reports whether the enhanced modifier is set.
func (p ParamMap) Enhanced() bool {
	v, ok := p[ParamEnhanced]
	return ok && v != "" && v != "false"
}

// ActionRequest is one requested move: who plays what against which
// environment component.
type ActionRequest struct {
	Role   Role       `json:"role"`
	Action ActionKind `json:"action"`
	Target string     `json:"target"`
	Params ParamMap   `json:"params"`
}
