package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "NETDEFENCE_CONFIG"
	EnvDBPath     = "NETDEFENCE_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteScenarios      = "/scenarios"
	RouteSessions       = "/sessions"
	RouteSessionByID    = "/sessions/:sessionID"
	RouteSessionMoves   = "/sessions/:sessionID/moves"
	RouteSessionAbandon = "/sessions/:sessionID/abandon"
	RouteSessionHistory = "/sessions/:sessionID/history"
	RouteSessionManual  = "/sessions/:sessionID/manual"
	RouteVersion        = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest        = "Invalid request"
	ErrInvalidRole           = "Role must be 'attacker' or 'defender'"
	ErrSessionNotFound       = "Session not found"
	ErrScenarioNotFound      = "Scenario not found"
	ErrNotYourTurn           = "Not your turn"
	ErrSessionClosed         = "Session is closed"
	ErrUnknownAction         = "Unknown action"
	ErrInsufficientResources = "Insufficient action points"
	ErrManualNeedsFinished   = "Manual is only available for finished sessions"

	ErrFailedCreateSession = "Failed to create session"
	ErrFailedFetchSessions = "Failed to fetch sessions"
	ErrFailedSubmitMove    = "Failed to submit move"
	ErrFailedEndSession    = "Failed to end session"
)

// Logging field names
const (
	LogFieldSessionUUID = "session_uuid"
	LogFieldScenarioID  = "scenario_id"
	LogFieldAddr        = "addr"
)
