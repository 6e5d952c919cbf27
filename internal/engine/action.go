package engine

// ActionKind is the closed set of battle actions. Dispatch goes through a
// single switch so an unknown kind is rejected instead of panicking on a
// missing handler.
type ActionKind string

const (
	ActionFireWeapon  ActionKind = "use_weapon"
	ActionStomp       ActionKind = "stomp"
	ActionCooldown    ActionKind = "cooldown"
	ActionWalk        ActionKind = "walk"
	ActionDroneToggle ActionKind = "drone_toggle"
	ActionCharge      ActionKind = "charge_engine"
	ActionTeleport    ActionKind = "teleport"
	ActionGrapple     ActionKind = "grappling_hook"
)

// Action is a player-submitted battle action. Per-kind arguments use
// pointers so a missing argument is distinguishable from a zero value:
// an absent required argument is a structural (protocol) error, not a
// gameplay rejection.
type Action struct {
	Kind ActionKind `json:"kind"`

	// WeaponIndex is required for use_weapon.
	WeaponIndex *int `json:"weapon_index,omitempty"`
	// Position is required for walk and teleport.
	Position *int `json:"position,omitempty"`
	// DoubleCooldown is required for cooldown.
	DoubleCooldown *bool `json:"double_cooldown,omitempty"`
}
