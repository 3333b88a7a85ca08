package game

import (
	"time"

	"gorm.io/gorm"
)

// SessionStatus is the terminal-state marker for a session.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
	StatusAbandoned SessionStatus = "abandoned"
)

// Terminal reports whether no further moves are accepted.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// GamePhase mirrors the scenario phases surfaced to clients. Setup only
// marks "environment seeded, no moves yet" and is exited on creation;
// Resolution is set when the session completes. No other transitions exist.
type GamePhase string

const (
	PhaseSetup      GamePhase = "setup"
	PhaseRecon      GamePhase = "recon"
	PhaseCombat     GamePhase = "combat"
	PhaseResolution GamePhase = "resolution"
)

// Winner values recorded on a finished session.
const (
	WinnerAttacker = "attacker"
	WinnerDefender = "defender"
	WinnerDraw     = "draw"
)

// WinConditions lists the symbolic win-condition names per role, in
// evaluation order. Names must exist in the engine's condition registry.
type WinConditions struct {
	Attacker []string `json:"attacker"`
	Defender []string `json:"defender"`
}

// Tool is descriptive loadout metadata surfaced to clients; it carries no
// engine semantics.
type Tool struct {
	Name   string     `json:"name"`
	Action ActionKind `json:"action"`
}

// Scenario is the read-only contest configuration. Scenarios come from the
// catalog config file and are never mutated by the engine.
type Scenario struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
	Background string `json:"background"`

	InitialActionPoints int `json:"initial_action_points"`
	RecoveryRate        int `json:"recovery_rate"`
	MaxActionPoints     int `json:"max_action_points"`
	MaxRounds           int `json:"max_rounds"`

	InitialScores          ScoreVector                `json:"initial_scores"`
	InitialComponents      map[string]ComponentStatus `json:"initial_components"`
	InitialVulnerabilities []Vulnerability            `json:"initial_vulnerabilities"`

	AttackerTools []Tool        `json:"attacker_tools"`
	DefenderTools []Tool        `json:"defender_tools"`
	WinConditions WinConditions `json:"win_conditions"`
}

// MoveRecord is the canonical ledger entry for one resolved move. Records
// are immutable: appended once, never edited or deleted, and together with
// the snapshot chain they drive replay and reporting.
type MoveRecord struct {
	gorm.Model
	SessionID uint   `json:"-" gorm:"index"`
	MoveUUID  string `json:"move_uuid"`

	Round      int        `json:"round"`
	Role       Role       `json:"role"`
	Action     ActionKind `json:"action"`
	ActionName string     `json:"action_name"`
	Target     string     `json:"target"`
	Params     ParamMap   `json:"params" gorm:"serializer:json"`
	Cost       int        `json:"cost"`

	Success     bool            `json:"success"`
	Description string          `json:"description"`
	ScoreDeltas ScoreDelta      `json:"score_deltas" gorm:"serializer:json"`
	Directives  StateDirectives `json:"directives" gorm:"serializer:json"`
	Detected    []string        `json:"detected,omitempty" gorm:"serializer:json"`

	ExecutedAt time.Time `json:"executed_at"`
}

// TableName stores move records in a dedicated, explicit table.
func (MoveRecord) TableName() string { return "move_records" }

// GameSession owns all mutable contest state: ledger, scores, move sequence
// and the environment snapshot chain. It is mutated exclusively through the
// engine and becomes immutable once Status turns terminal.
type GameSession struct {
	gorm.Model
	SessionUUID string `json:"session_uuid" gorm:"uniqueIndex"`
	ScenarioID  string `json:"scenario_id"`
	AttackerID  string `json:"attacker_id"`
	DefenderID  string `json:"defender_id"`

	Status SessionStatus `json:"status"`
	Phase  GamePhase     `json:"phase"`
	Round  int           `json:"round"`
	Turn   Role          `json:"turn"`

	MaxRounds     int            `json:"max_rounds"`
	Ledger        ResourceLedger `json:"ledger" gorm:"embedded;embeddedPrefix:ledger_"`
	Scores        ScoreVector    `json:"scores" gorm:"embedded;embeddedPrefix:score_"`
	WinConditions WinConditions  `json:"win_conditions" gorm:"serializer:json"`

	Winner    string     `json:"winner"`
	EndReason string     `json:"end_reason"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`

	Moves   []MoveRecord       `json:"moves" gorm:"foreignKey:SessionID"`
	History []EnvironmentState `json:"history" gorm:"foreignKey:SessionID"`
}

// TableName stores sessions in a dedicated, explicit table.
func (GameSession) TableName() string { return "game_sessions" }
