package game

import "gorm.io/gorm"

// Pilot stores a player's persistent identity and aggregate counters.
// Battle state itself is never persisted; a pilot row only carries who
// the player is between sessions.
type Pilot struct {
	gorm.Model
	PilotUUID     string `json:"pilot_uuid" gorm:"uniqueIndex"`
	Callsign      string `json:"callsign"`
	BattlesFought int    `json:"battles_fought"`
	Victories     int    `json:"victories"`
}

// TableName overrides the default GORM table name so the persisted table
// is `pilot_profiles`.
func (Pilot) TableName() string { return "pilot_profiles" }
