package engine

import (
	"fmt"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

// Resolve applies a validated action to the battle: one handler per action
// kind, each ending with a turn pass. Callers must run Validate first; the
// engine assumes the action is legal and only re-derives values it owns
// (damage rolls are always server-side).
func Resolve(b *game.Battle, act Action, rng Rand) error {
	switch act.Kind {
	case ActionFireWeapon:
		if act.WeaponIndex == nil {
			return structural("'weapon_index' argument missing to execute action '%s'", act.Kind)
		}
		fireWeapon(b, *act.WeaponIndex, rng)
	case ActionStomp:
		stomp(b, rng)
	case ActionCooldown:
		if act.DoubleCooldown == nil {
			return structural("'double_cooldown' argument missing to execute action '%s'", act.Kind)
		}
		cooldown(b, *act.DoubleCooldown, rng)
	case ActionWalk:
		if act.Position == nil {
			return structural("'position' argument missing to execute action '%s'", act.Kind)
		}
		walk(b, *act.Position, rng)
	case ActionDroneToggle:
		droneToggle(b, rng)
	case ActionCharge:
		chargeEngine(b, rng)
	case ActionTeleport:
		if act.Position == nil {
			return structural("'position' argument missing to execute action '%s'", act.Kind)
		}
		teleport(b, *act.Position, rng)
	case ActionGrapple:
		grapplingHook(b, rng)
	default:
		return reject(CodeUnknownAction, fmt.Sprintf("Unknown battle action %q", act.Kind))
	}
	return nil
}

func fireWeapon(b *game.Battle, weaponIndex int, rng Rand) {
	attacker := b.Attacker()
	item := attacker.Items[weaponIndex]

	damage := dealDamages(b, weaponIndex, rng)
	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% used %s (%d damage)", item.Name, damage))
	countItemUsage(b, weaponIndex)
	passTurn(b, rng)
}

func stomp(b *game.Battle, rng Rand) {
	attacker := b.Attacker()
	legs := attacker.Items[game.SlotLegs]

	damage := dealDamages(b, game.SlotLegs, rng)
	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% stomped with %s (%d damage)", legs.Name, damage))
	countItemUsage(b, game.SlotLegs)
	passTurn(b, rng)
}

func cooldown(b *game.Battle, double bool, rng Rand) {
	attacker := b.Attacker()

	amount := attacker.Stats.HeaCol
	if double {
		amount *= 2
	}
	if amount > attacker.Stats.Heat {
		amount = attacker.Stats.Heat
	}
	attacker.Stats.Heat -= amount

	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% cooled down by %d", amount))

	if double {
		// A double cooldown consumes the whole turn: regen now and hand the
		// turn straight back instead of spending an action point.
		energyRegeneration(b)
		switchTurnOwner(b, rng)
	} else {
		passTurn(b, rng)
	}
}

func walk(b *game.Battle, position int, rng Rand) {
	attacker := b.Attacker()
	initial := attacker.Position

	attacker.Position = position
	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% moved from position %d to %d", initial, position))
	passTurn(b, rng)
}

func droneToggle(b *game.Battle, rng Rand) {
	attacker := b.Attacker()
	drone := attacker.Items[game.SlotDrone]

	attacker.DroneActive = !attacker.DroneActive

	// Refill uses on enable
	if attacker.DroneActive && drone.Stats.Uses > 0 {
		attacker.Uses[game.SlotDrone] = game.NewUseCount(drone.Stats.Uses)
	}

	verb := "disabled"
	if attacker.DroneActive {
		verb = "enabled"
	}
	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% %s drone", verb))
	passTurn(b, rng)
}

func chargeEngine(b *game.Battle, rng Rand) {
	attacker, defender := b.Attacker(), b.Defender()
	charge := attacker.Items[game.SlotChargeEngine]
	dir := attackDirection(b)

	damage := dealDamages(b, game.SlotChargeEngine, rng)

	attacker.Position = defender.Position - dir
	defender.Position = clampPosition(defender.Position + dir)

	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% charged using %s (%d damage)", charge.Name, damage))
	countItemUsage(b, game.SlotChargeEngine)
	passTurn(b, rng)
}

func teleport(b *game.Battle, position int, rng Rand) {
	attacker, defender := b.Attacker(), b.Defender()
	teleporter := attacker.Items[game.SlotTeleporter]
	initial := attacker.Position

	// Only deals damage when the destination lands right next to the
	// defender on the approach side.
	dir := 1
	if position > defender.Position {
		dir = -1
	}
	damage := 0
	if position+dir == defender.Position {
		damage = dealDamages(b, game.SlotTeleporter, rng)
	}
	attacker.Position = position

	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% teleported from %d to %d using %s (%d damage)",
		initial, position, teleporter.Name, damage))
	countItemUsage(b, game.SlotTeleporter)
	passTurn(b, rng)
}

func grapplingHook(b *game.Battle, rng Rand) {
	attacker, defender := b.Attacker(), b.Defender()
	hook := attacker.Items[game.SlotGrapplingHook]
	dir := attackDirection(b)

	damage := dealDamages(b, game.SlotGrapplingHook, rng)
	defender.Position = attacker.Position + dir

	b.Log(game.LogAction, fmt.Sprintf("%%attacker%% grappled using %s (%d damage)", hook.Name, damage))
	countItemUsage(b, game.SlotGrapplingHook)
	passTurn(b, rng)
}

// passTurn spends one action point. At zero the turn boundary runs: the
// completion check comes first, then drone auto-fire, energy regeneration
// and the role swap.
func passTurn(b *game.Battle, rng Rand) {
	if checkComplete(b) {
		return
	}

	b.Turns--

	if b.Turns == 0 {
		if b.Attacker().DroneActive {
			droneFire(b, rng)
			if checkComplete(b) {
				return
			}
		}
		energyRegeneration(b)
		switchTurnOwner(b, rng)
	}
}

// checkComplete transitions the battle to COMPLETE when either side's
// health reached zero. Runs before any further turn-end processing.
func checkComplete(b *game.Battle) bool {
	if b.P1.Stats.Health > 0 && b.P2.Stats.Health > 0 {
		return false
	}
	winnerID := b.P1.ID
	if b.P1.Stats.Health <= 0 {
		winnerID = b.P2.ID
	}
	b.SetComplete(winnerID, false)
	b.Log(game.LogAction, "Battle complete!")
	return true
}

// switchTurnOwner hands the turn to the other combatant with a fresh pair
// of action points. An overheated new attacker is immediately forced into
// a cooldown; the cooldown doubles when a single one can't bring heat back
// under the cap.
func switchTurnOwner(b *game.Battle, rng Rand) {
	b.Turns = 2
	if b.TurnOwnerID == b.P1.ID {
		b.TurnOwnerID = b.P2.ID
	} else {
		b.TurnOwnerID = b.P1.ID
	}

	attacker, defender := b.Attacker(), b.Defender()
	defender.ClearUsedInTurn()

	if attacker.Stats.Heat > attacker.Stats.HeaCap {
		cooldown(b, attacker.Stats.HeaCol < attacker.Stats.Heat-attacker.Stats.HeaCap, rng)
	}
}
