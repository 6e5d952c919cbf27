package engine

import "github.com/ctrl-raul/supermechs-workshop-server/internal/game"

// ArenaSize is the number of cells on the 1-D arena.
const ArenaSize = 10

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampPosition(p int) int {
	if p < 0 {
		return 0
	}
	if p > ArenaSize-1 {
		return ArenaSize - 1
	}
	return p
}

// attackDirection returns +1 when the attacker stands left of the
// defender, -1 otherwise. It depends on the current turn owner.
func attackDirection(b *game.Battle) int {
	if b.Attacker().Position < b.Defender().Position {
		return 1
	}
	return -1
}

// ItemRangePlot marks the arena cells the attacker's item at itemIndex can
// reach. Items without a range stat reach everywhere.
func ItemRangePlot(b *game.Battle, itemIndex int) [ArenaSize]bool {
	attacker := b.Attacker()
	item := attacker.Items[itemIndex]

	var plot [ArenaSize]bool
	if item == nil {
		return plot
	}
	if item.Stats.Range == nil {
		for i := range plot {
			plot[i] = true
		}
		return plot
	}

	dir := attackDirection(b)
	r := item.Stats.Range
	for i := range plot {
		plot[i] = i*dir >= attacker.Position*dir+r.Min &&
			i*dir <= attacker.Position*dir+r.Max
	}
	return plot
}

// WalkablePositions marks the cells the attacker's legs can move to:
// within walk/jump distance, not occupied, and not past the defender for
// legs that can't jump.
func WalkablePositions(b *game.Battle) [ArenaSize]bool {
	attacker, defender := b.Attacker(), b.Defender()
	legs := attacker.Items[game.SlotLegs]

	var plot [ArenaSize]bool
	if legs == nil {
		return plot
	}

	maxDistance := legs.Stats.Walk
	if legs.Stats.Jump > maxDistance {
		maxDistance = legs.Stats.Jump
	}
	for i := range plot {
		plot[i] = maxDistance > 0 && abs(i-attacker.Position) <= maxDistance
	}

	if legs.Stats.Jump == 0 {
		distance := abs(attacker.Position - defender.Position)
		dir := attackDirection(b)
		for i := range plot {
			plot[i] = plot[i] && i*dir < attacker.Position*dir+distance
		}
	}

	plot[b.P1.Position] = false
	plot[b.P2.Position] = false
	return plot
}

// TeleportablePositions marks every cell except the two occupied ones.
func TeleportablePositions(b *game.Battle) [ArenaSize]bool {
	var plot [ArenaSize]bool
	for i := range plot {
		plot[i] = true
	}
	plot[b.P1.Position] = false
	plot[b.P2.Position] = false
	return plot
}
