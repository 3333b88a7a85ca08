package game

import "gorm.io/gorm"

// ComponentStatus is the lifecycle state of one environment component.
type ComponentStatus string

const (
	StatusRunning     ComponentStatus = "running"
	StatusDegraded    ComponentStatus = "degraded"
	StatusCompromised ComponentStatus = "compromised"
	StatusEncrypted   ComponentStatus = "encrypted"
	StatusOffline     ComponentStatus = "offline"
	StatusPatched     ComponentStatus = "patched"
)

// Vulnerability is one discovered weakness on a target component.
type Vulnerability struct {
	TargetID string `json:"target_id"`
	Type     string `json:"type"`
}

// ActiveDefense is one deployed mitigation. Protects lists the vulnerability
// types this defense covers; exploits against a protected type succeed far
// less often.
type ActiveDefense struct {
	Type     string   `json:"type"`
	Target   string   `json:"target"`
	Protects []string `json:"protects,omitempty"`
}

// EnvironmentState is one link in the append-only snapshot chain. Round is
// the chain index: 0 is the pre-game baseline seeded from the scenario, and
// every resolved move appends exactly one new snapshot.
type EnvironmentState struct {
	gorm.Model
	SessionID uint `json:"-" gorm:"index"`
	Round     int  `json:"round"`

	Components         map[string]ComponentStatus `json:"components" gorm:"serializer:json"`
	Vulnerabilities    []Vulnerability            `json:"vulnerabilities" gorm:"serializer:json"`
	ActiveDefenses     []ActiveDefense            `json:"active_defenses" gorm:"serializer:json"`
	CompromisedSystems []string                   `json:"compromised_systems" gorm:"serializer:json"`
}

// TableName keeps the persisted table name descriptive.
func (EnvironmentState) TableName() string { return "environment_snapshots" }

// IsCompromised reports whether id appears in the compromised-system list.
func (s *EnvironmentState) IsCompromised(id string) bool {
	for _, c := range s.CompromisedSystems {
		if c == id {
			return true
		}
	}
	return false
}

// DefenseProtecting returns the first active defense whose protects list
// names vulnType, or nil.
func (s *EnvironmentState) DefenseProtecting(vulnType string) *ActiveDefense {
	for i := range s.ActiveDefenses {
		for _, p := range s.ActiveDefenses[i].Protects {
			if p == vulnType {
				return &s.ActiveDefenses[i]
			}
		}
	}
	return nil
}

// StateDirectives describes how an outcome mutates the environment. The
// model is monotonic-append for vulnerabilities, defenses and compromises;
// component status entries are overwritten.
type StateDirectives struct {
	SetStatus          map[string]ComponentStatus `json:"set_status,omitempty"`
	AddVulnerabilities []Vulnerability            `json:"add_vulnerabilities,omitempty"`
	AddDefenses        []ActiveDefense            `json:"add_defenses,omitempty"`
	AddCompromised     []string                   `json:"add_compromised,omitempty"`
}

// Empty reports whether the directives change nothing.
func (d StateDirectives) Empty() bool {
	return len(d.SetStatus) == 0 && len(d.AddVulnerabilities) == 0 &&
		len(d.AddDefenses) == 0 && len(d.AddCompromised) == 0
}
