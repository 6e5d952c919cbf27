package engine

import (
	"fmt"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

// Validate checks an action's legality against the current battle state
// without mutating anything. A nil return means the action may be applied.
// Gameplay rejections come back as *ActionError; malformed requests as
// *StructuralError.
func Validate(b *game.Battle, actorID string, act Action) error {
	if b.Complete != nil {
		return reject(CodeBattleComplete, "Battle is already complete")
	}
	if actorID != b.TurnOwnerID {
		return reject(CodeNotYourTurn, "Not your turn")
	}

	switch act.Kind {
	case ActionFireWeapon:
		if act.WeaponIndex == nil {
			return structural("'weapon_index' argument missing to execute action '%s'", act.Kind)
		}
		idx := *act.WeaponIndex
		if idx < game.SlotWeaponFirst || idx > game.SlotWeaponLast {
			return structural("weapon index %d outside weapon slots", idx)
		}
		return canUseItem(b, idx, false)

	case ActionStomp:
		return canUseItem(b, game.SlotLegs, false)

	case ActionCharge:
		return canUseItem(b, game.SlotChargeEngine, false)

	case ActionGrapple:
		return canUseItem(b, game.SlotGrapplingHook, false)

	case ActionTeleport:
		if act.Position == nil {
			return structural("'position' argument missing to execute action '%s'", act.Kind)
		}
		if err := canUseItem(b, game.SlotTeleporter, true); err != nil {
			return err
		}
		p := *act.Position
		if p < 0 || p > ArenaSize-1 {
			return structural("teleport position %d outside the arena", p)
		}
		if !TeleportablePositions(b)[p] {
			return reject(CodeOutOfRange, "Position is occupied")
		}
		return nil

	case ActionWalk:
		if act.Position == nil {
			return structural("'position' argument missing to execute action '%s'", act.Kind)
		}
		p := *act.Position
		if p < 0 || p > ArenaSize-1 {
			return structural("walk position %d outside the arena", p)
		}
		if !WalkablePositions(b)[p] {
			return reject(CodeOutOfRange, "Position is not walkable")
		}
		return nil

	case ActionDroneToggle:
		if b.Attacker().Items[game.SlotDrone] == nil {
			return reject(CodeNoItem, "No drone equipped")
		}
		return nil

	case ActionCooldown:
		if act.DoubleCooldown == nil {
			return structural("'double_cooldown' argument missing to execute action '%s'", act.Kind)
		}
		return nil
	}

	return reject(CodeUnknownAction, fmt.Sprintf("Unknown battle action %q", act.Kind))
}

// canUseItem runs the shared item-usability checks: slot occupied, energy
// cost, backfire, remaining uses, once-per-turn for weapon slots, range,
// jump requirement and retreat bounds. suppressRange skips the range check
// (teleport picks its own destination).
func canUseItem(b *game.Battle, itemIndex int, suppressRange bool) error {
	attacker, defender := b.Attacker(), b.Defender()
	item := attacker.Items[itemIndex]

	if item == nil {
		return reject(CodeNoItem, fmt.Sprintf("No item with index %d", itemIndex))
	}
	if item.Stats.EneCost > attacker.Stats.Energy {
		return reject(CodeLowEnergy, "Low energy")
	}
	if item.Stats.Backfire > 0 && item.Stats.Backfire >= attacker.Stats.Health {
		return reject(CodeLowHealth, "Low health")
	}
	if !attacker.Uses[itemIndex].Available() {
		return reject(CodeOutOfUses, "Out of uses")
	}
	if itemIndex >= game.SlotWeaponFirst && itemIndex <= game.SlotWeaponLast {
		if attacker.UsedThisTurn(itemIndex) {
			return reject(CodeAlreadyUsed, "Already used in this turn")
		}
	}
	if !suppressRange && item.Stats.Range != nil {
		if !ItemRangePlot(b, itemIndex)[defender.Position] {
			return reject(CodeOutOfRange, "Out of range")
		}
	}

	// In theory such setups are filtered by the eligibility check, but we
	// never know.
	if (item.Stats.Advance != 0 || item.Stats.Retreat != 0) && !item.HasTag("melee") {
		legs := attacker.Items[game.SlotLegs]
		if legs == nil || legs.Stats.Jump == 0 {
			return reject(CodeJumpingRequired, "Jumping required")
		}
	}

	if item.Stats.Retreat != 0 {
		dir := attackDirection(b)
		future := attacker.Position - item.Stats.Retreat*dir
		if future < 0 || future > ArenaSize-1 {
			return reject(CodeOutOfRetreatRange, "Out of retreat range")
		}
	}

	return nil
}
