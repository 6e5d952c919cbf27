package constants

// Centralized constants for env keys, routes, response keys and messages.
const (
	// Environment variable keys
	EnvConfigPath = "WORKSHOP_CONFIG"
	EnvDBPath     = "WORKSHOP_DB"
	EnvPort       = "PORT"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteVersion      = "/version"
	RouteItems        = "/items"
	RouteItemByName   = "/items/:name"
	RoutePilots       = "/pilots"
	RoutePilotByUUID  = "/pilots/:pilotUUID"
	RoutePilotEvents  = "/pilots/:pilotUUID/events"
	RouteQueueJoin    = "/queue/join"
	RouteQueueLeave   = "/queue/leave"
	RouteQueueVerify  = "/queue/verify"
	RouteBattleByID   = "/battles/:battleID"
	RouteBattlePlots  = "/battles/:battleID/plots"
	RouteBattleAction = "/battles/:battleID/action"
	RouteBattleQuit   = "/battles/:battleID/quit"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyCode    = "code"
	JSONKeyName    = "name"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest  = "Invalid request"
	ErrPilotNotFound   = "Pilot not found"
	ErrBattleNotFound  = "Battle not found"
	ErrUnknownItem     = "Unknown item in setup"
	ErrCallsignLength  = "Callsign must be between 2 and 32 characters"
	ErrFailedSavePilot = "Failed to save pilot"
	ErrFailedListItems = "Failed to list items"
	ErrNotInBattle     = "Pilot is not in this battle"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldPilotID  = "pilot_id"
	LogFieldAddr     = "addr"
	LogFieldKey      = "key"
)
