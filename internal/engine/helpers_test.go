package engine

import (
	"errors"
	"testing"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

// zeroRand makes damage rolls deterministic: every roll lands on the
// range minimum and every pick takes the first option.
type zeroRand struct{}

func (zeroRand) Intn(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0 }

func allStats() game.StatTable {
	return game.StatTable{
		"weight": nil, "health": nil, "eneCap": nil, "eneReg": nil,
		"heaCap": nil, "heaCol": nil, "phyRes": nil, "expRes": nil, "eleRes": nil,
	}
}

func basicTorso() *game.Item {
	return &game.Item{
		Name: "Torso", Type: game.TypeTorso, Element: game.Physical,
		Stats: game.ItemStats{Weight: 300, Health: 900, EneCap: 100, EneReg: 40, HeaCap: 100, HeaCol: 30},
	}
}

func basicLegs() *game.Item {
	return &game.Item{
		Name: "Legs", Type: game.TypeLegs, Element: game.Physical,
		Stats: game.ItemStats{Weight: 180, Health: 100, Walk: 3, PhyDmg: &game.Range{Min: 60, Max: 80}, Range: &game.Range{Min: 1, Max: 1}},
	}
}

func sideWeapon(name string, stats game.ItemStats) *game.Item {
	return &game.Item{Name: name, Type: game.TypeSideWeapon, Element: game.Physical, Stats: stats}
}

func buildCombatant(id, name string, fill func(l *game.Loadout)) *game.Combatant {
	var l game.Loadout
	l[game.SlotTorso] = basicTorso()
	l[game.SlotLegs] = basicLegs()
	if fill != nil {
		fill(&l)
	}
	return game.NewCombatant(id, name, l, allStats())
}

// newDuel builds a battle with p1 starting at position 4 and owning the
// first turn, p2 at position 5.
func newDuel(fill1, fill2 func(*game.Loadout)) *game.Battle {
	p1 := buildCombatant("p1", "Able", fill1)
	p2 := buildCombatant("p2", "Baker", fill2)
	p1.Position, p2.Position = 4, 5
	return game.NewBattle("b", p1, p2, "p1")
}

func wantCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	var ae *ActionError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionError %s, got %v", code, err)
	}
	if ae.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, ae.Code, ae.Reason)
	}
}

func wantStructural(t *testing.T, err error) {
	t.Helper()
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
