package engine

import (
	"fmt"
	"math"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

// damageToDeal rolls the damage the attacker's item would cause to the
// defender right now. Only damage-dealing item types produce any; the
// element picks the matching damage range and defender resistance. When a
// base roll happened, resistance can't reduce it below 1. Items with an
// energy-break threshold deal bonus damage equal to the defender's energy
// shortfall below that threshold.
func damageToDeal(b *game.Battle, itemIndex int, rng Rand) int {
	attacker, defender := b.Attacker(), b.Defender()
	item := attacker.Items[itemIndex]

	if item == nil || !item.DealsDamage() {
		return 0
	}

	damage := 0

	if r := item.DamageRange(); r != nil {
		damage = r.Min + int(math.Round(rng.Float64()*float64(r.Max-r.Min)))

		res := 0
		switch item.Element {
		case game.Physical:
			res = defender.Stats.PhyRes
		case game.Explosive:
			res = defender.Stats.ExpRes
		case game.Electric:
			res = defender.Stats.EleRes
		}
		if res != 0 {
			damage -= res
			if damage < 1 {
				damage = 1
			}
		}
	}

	if item.Stats.EneDmg != 0 {
		if shortfall := item.Stats.EneDmg - defender.Stats.Energy; shortfall > 0 {
			damage += shortfall
		}
	}

	return damage
}

// dealDamages applies the full damage pipeline of the item at itemIndex:
// attacker costs (backfire, heat, energy), defender damage (health, heat,
// resistance erosion, energy drains with their floors) and the positional
// side effects. Returns the health damage dealt.
func dealDamages(b *game.Battle, itemIndex int, rng Rand) int {
	damage := damageToDeal(b, itemIndex, rng)

	attacker, defender := b.Attacker(), b.Defender()
	item := attacker.Items[itemIndex]

	// Effects on attacker
	attacker.Stats.Health -= item.Stats.Backfire
	attacker.Stats.Heat += item.Stats.HeaCost
	attacker.Stats.Energy -= item.Stats.EneCost

	// Effects on defender
	defender.Stats.Health -= damage
	defender.Stats.Heat += item.Stats.HeaDmg

	switch item.Element {
	case game.Physical:
		defender.Stats.PhyRes -= item.Stats.PhyResDmg
	case game.Explosive:
		defender.Stats.ExpRes -= item.Stats.ExpResDmg
	case game.Electric:
		defender.Stats.EleRes -= item.Stats.EleResDmg
	}

	if item.Stats.HeaCapDmg != 0 {
		defender.Stats.HeaCap = max1(defender.Stats.HeaCap - item.Stats.HeaCapDmg)
	}
	if item.Stats.HeaColDmg != 0 {
		defender.Stats.HeaCol = max1(defender.Stats.HeaCol - item.Stats.HeaColDmg)
	}
	if item.Stats.EneDmg != 0 {
		defender.Stats.Energy -= item.Stats.EneDmg
		if defender.Stats.Energy < 0 {
			defender.Stats.Energy = 0
		}
	}
	if item.Stats.EneCapDmg != 0 {
		defender.Stats.EneCap = max1(defender.Stats.EneCap - item.Stats.EneCapDmg)
		if defender.Stats.Energy > defender.Stats.EneCap {
			defender.Stats.Energy = defender.Stats.EneCap
		}
	}
	if item.Stats.EneRegDmg != 0 {
		defender.Stats.EneReg = max1(defender.Stats.EneReg - item.Stats.EneRegDmg)
	}

	updatePositions(b, itemIndex)

	return damage
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// updatePositions applies the positional side effects of an item use:
// recoil and retreat move the attacker away, advance moves it toward the
// defender but never past it; push and pull move the defender.
func updatePositions(b *game.Battle, itemIndex int) {
	attacker, defender := b.Attacker(), b.Defender()
	item := attacker.Items[itemIndex]
	dir := attackDirection(b)

	// Movements on attacker

	if v := item.Stats.Recoil; v != 0 {
		attacker.Position = clampPosition(attacker.Position - v*dir)
	}

	if v := item.Stats.Retreat; v != 0 {
		// Not clamped: the validator already bounded the destination.
		attacker.Position -= v * dir
	}

	if v := item.Stats.Advance; v != 0 {
		if attacker.Position*dir+v < defender.Position*dir {
			attacker.Position += v * dir
		} else {
			attacker.Position = defender.Position - dir
		}
	}

	// Movements on defender

	if v := item.Stats.Push; v != 0 {
		defender.Position = clampPosition(defender.Position + v*dir)
	}

	if v := item.Stats.Pull; v != 0 {
		if defender.Position*dir-v > attacker.Position*dir {
			defender.Position -= v * dir
		} else {
			defender.Position = attacker.Position + dir
		}
	}
}

// countItemUsage decrements the item's remaining uses and records the slot
// in the per-turn usage list. A drone running out of uses is force-disabled.
func countItemUsage(b *game.Battle, itemIndex int) {
	attacker := b.Attacker()
	item := attacker.Items[itemIndex]

	attacker.Uses[itemIndex].Consume()
	attacker.MarkUsed(itemIndex)

	if !attacker.Uses[itemIndex].Available() {
		if item.Type == game.TypeDrone {
			attacker.DroneActive = false
		}
		b.Log(game.LogInfo, fmt.Sprintf("%%attacker%% ran out of %s uses", item.Name))
	}
}

// energyRegeneration refills the attacker's energy up to its cap and
// returns the amount regenerated.
func energyRegeneration(b *game.Battle) int {
	attacker := b.Attacker()
	initial := attacker.Stats.Energy

	if attacker.Stats.EneCap < attacker.Stats.Energy+attacker.Stats.EneReg {
		attacker.Stats.Energy = attacker.Stats.EneCap
	} else {
		attacker.Stats.Energy += attacker.Stats.EneReg
	}

	regenerated := attacker.Stats.Energy - initial
	b.Log(game.LogEffect, fmt.Sprintf("regenerated %d energy", regenerated))
	return regenerated
}

// droneFire runs the drone's automatic attack at turn end. A drone that is
// currently unusable (out of energy, out of range, out of uses, ...) is
// skipped with a log line instead of failing the turn pass.
func droneFire(b *game.Battle, rng Rand) {
	attacker := b.Attacker()
	drone := attacker.Items[game.SlotDrone]
	if drone == nil {
		return
	}

	if err := canUseItem(b, game.SlotDrone, false); err != nil {
		b.Log(game.LogInfo, fmt.Sprintf("%%attacker%% can't use drone (%s)", err.Error()))
		return
	}

	damage := dealDamages(b, game.SlotDrone, rng)
	countItemUsage(b, game.SlotDrone)

	b.Log(game.LogEffect, fmt.Sprintf("%%attacker%% used %s (%d damage)", drone.Name, damage))
}
