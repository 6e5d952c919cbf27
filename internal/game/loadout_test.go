package game

import "testing"

func noBuffTable() StatTable {
	return StatTable{
		"weight": nil, "health": nil, "eneCap": nil, "eneReg": nil,
		"heaCap": nil, "heaCol": nil, "phyRes": nil, "expRes": nil, "eleRes": nil,
	}
}

func testTorso() *Item {
	return &Item{
		Name: "Torso", Type: TypeTorso, Element: Physical,
		Stats: ItemStats{Weight: 300, Health: 900, EneCap: 500, EneReg: 200, HeaCap: 400, HeaCol: 150, PhyRes: 30},
	}
}

func testLegs() *Item {
	return &Item{
		Name: "Legs", Type: TypeLegs, Element: Physical,
		Stats: ItemStats{Weight: 180, Health: 300, Walk: 3, PhyDmg: &Range{Min: 50, Max: 80}, Range: &Range{Min: 1, Max: 1}},
	}
}

func TestDeriveBaseStats_Sums(t *testing.T) {
	var l Loadout
	l[SlotTorso] = testTorso()
	l[SlotLegs] = testLegs()

	got := DeriveBaseStats(l, noBuffTable())

	if got.Health != 1200 {
		t.Fatalf("expected health 1200, got %d", got.Health)
	}
	if got.EneCap != 500 || got.EneReg != 200 {
		t.Fatalf("unexpected energy stats: %+v", got)
	}
	if got.PhyRes != 30 {
		t.Fatalf("expected phyRes 30, got %d", got.PhyRes)
	}
}

func TestDeriveBaseStats_OverweightPenalty(t *testing.T) {
	var l Loadout
	l[SlotTorso] = testTorso()
	l[SlotLegs] = testLegs()
	// 300 + 180 + 530 = 1010, ten units over the soft limit.
	l[SlotModuleFirst] = &Item{Name: "Ballast", Type: TypeModule, Element: Combined, Stats: ItemStats{Weight: 530}}

	got := DeriveBaseStats(l, noBuffTable())

	want := 1200 - 10*15
	if got.Health != want {
		t.Fatalf("expected health %d after overweight penalty, got %d", want, got.Health)
	}
}

func TestDeriveBaseStats_Buffs(t *testing.T) {
	var l Loadout
	l[SlotTorso] = testTorso()
	l[SlotLegs] = testLegs()

	table := noBuffTable()
	table["eneCap"] = &StatBuff{Mode: "mul", Amount: 1.2}
	table["heaCol"] = &StatBuff{Mode: "add", Amount: 50}
	// Health derived from a summation must never be buffed.
	table["health"] = &StatBuff{Mode: "mul", Amount: 10}

	got := DeriveBaseStats(l, table)

	if got.EneCap != 600 {
		t.Fatalf("expected buffed eneCap 600, got %d", got.EneCap)
	}
	if got.HeaCol != 200 {
		t.Fatalf("expected buffed heaCol 200, got %d", got.HeaCol)
	}
	if got.Health != 1200 {
		t.Fatalf("expected unbuffed health 1200, got %d", got.Health)
	}
}

func TestDeriveBaseStats_Defaults(t *testing.T) {
	// A loadout with no energy or heat sources still produces workable
	// caps so the battle math never divides into zero-capacity pools.
	var l Loadout
	l[SlotTorso] = &Item{Name: "Shell", Type: TypeTorso, Element: Physical, Stats: ItemStats{Weight: 100, Health: 200}}
	l[SlotLegs] = testLegs()

	got := DeriveBaseStats(l, noBuffTable())

	if got.EneCap != 1 || got.EneReg != 1 || got.HeaCap != 1 || got.HeaCol != 1 {
		t.Fatalf("expected caps to default to 1, got %+v", got)
	}
	if got.PhyRes != 0 {
		t.Fatalf("resistances default to 0, got %d", got.PhyRes)
	}
}

func TestCanBattleWithSetup_MissingParts(t *testing.T) {
	var l Loadout
	if e := CanBattleWithSetup(l); e.Can || e.Reason != "Missing torso" {
		t.Fatalf("expected missing torso, got %+v", e)
	}
	l[SlotTorso] = testTorso()
	if e := CanBattleWithSetup(l); e.Can || e.Reason != "Missing legs" {
		t.Fatalf("expected missing legs, got %+v", e)
	}
	l[SlotLegs] = testLegs()
	if e := CanBattleWithSetup(l); !e.Can {
		t.Fatalf("expected eligible setup, got %+v", e)
	}
}

func TestCanBattleWithSetup_JumpRequired(t *testing.T) {
	var l Loadout
	l[SlotTorso] = testTorso()
	l[SlotLegs] = testLegs() // cannot jump
	l[SlotWeaponFirst] = &Item{
		Name: "Rocket Boost Blade", Type: TypeSideWeapon, Element: Physical,
		Stats: ItemStats{Weight: 60, Advance: 1, PhyDmg: &Range{Min: 100, Max: 150}, Range: &Range{Min: 1, Max: 1}},
	}

	if e := CanBattleWithSetup(l); e.Can {
		t.Fatalf("expected jump requirement rejection")
	}

	// Melee weapons reposition without jumping.
	l[SlotWeaponFirst].Tags = []string{"melee"}
	if e := CanBattleWithSetup(l); !e.Can {
		t.Fatalf("expected melee weapon to be allowed, got %+v", e)
	}
}

func TestCanBattleWithSetup_DuplicateResistance(t *testing.T) {
	var l Loadout
	l[SlotTorso] = testTorso()
	l[SlotLegs] = testLegs()
	l[SlotModuleFirst] = &Item{Name: "Plate A", Type: TypeModule, Element: Physical, Stats: ItemStats{Weight: 20, PhyRes: 30}}
	l[SlotModuleFirst+1] = &Item{Name: "Plate B", Type: TypeModule, Element: Physical, Stats: ItemStats{Weight: 20, PhyRes: 25}}

	if e := CanBattleWithSetup(l); e.Can {
		t.Fatalf("expected duplicate resistance rejection")
	}
}

func TestCanBattleWithSetup_TooHeavy(t *testing.T) {
	var l Loadout
	l[SlotTorso] = testTorso()
	l[SlotLegs] = testLegs()
	l[SlotModuleFirst] = &Item{Name: "Anvil", Type: TypeModule, Element: Combined, Stats: ItemStats{Weight: 540}}

	if e := CanBattleWithSetup(l); e.Can || e.Reason != "Too heavy" {
		t.Fatalf("expected too heavy rejection, got %+v", e)
	}
}

func TestUseCount(t *testing.T) {
	u := NewUseCount(0)
	if !u.Unlimited || !u.Available() {
		t.Fatalf("zero uses must mean unlimited")
	}
	u.Consume()
	if !u.Available() {
		t.Fatalf("unlimited counter must never run out")
	}

	u = NewUseCount(2)
	u.Consume()
	u.Consume()
	if u.Available() {
		t.Fatalf("expected counter to be exhausted")
	}
}
