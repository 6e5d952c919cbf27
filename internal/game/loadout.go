package game

import (
	"math"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/logging"
)

// Slot indices of a 20-slot mech setup.
const (
	SlotTorso         = 0
	SlotLegs          = 1
	SlotWeaponFirst   = 2
	SlotWeaponLast    = 7
	SlotDrone         = 8
	SlotChargeEngine  = 9
	SlotTeleporter    = 10
	SlotGrapplingHook = 11
	SlotModuleFirst   = 12
	SlotModuleLast    = 19
	SlotCount         = 20
)

// Loadout is the ordered 20-slot equipment array. Empty slots are nil.
type Loadout [SlotCount]*Item

const (
	maxWeight              = 1000
	healthPenaltyPerWeight = 15
	battleWeightLimit      = 1015
	tagMelee               = "melee"
)

// summaryKeys are the stats summed across slots when deriving base stats.
var summaryKeys = []string{
	"weight", "health", "eneCap", "eneReg", "heaCap", "heaCol",
	"phyRes", "expRes", "eleRes",
}

// StatBuff is the experience-level transform applied to a derived stat.
type StatBuff struct {
	Mode   string  `json:"mode"` // "add" | "mul"
	Amount float64 `json:"amount"`
}

// StatTable maps a stat key to its optional buff. A key present with a
// nil buff is a known stat that is never buffed; a key absent from the
// table is unknown and skipped with a log line during buffing.
type StatTable map[string]*StatBuff

// Apply runs the buff over a value, rounding to the nearest integer.
func (b *StatBuff) Apply(v int) int {
	switch b.Mode {
	case "add":
		return v + int(math.Round(b.Amount))
	case "mul":
		return int(math.Round(float64(v) * b.Amount))
	}
	return v
}

func statOf(it *Item, key string) int {
	switch key {
	case "weight":
		return it.Stats.Weight
	case "health":
		return it.Stats.Health
	case "eneCap":
		return it.Stats.EneCap
	case "eneReg":
		return it.Stats.EneReg
	case "heaCap":
		return it.Stats.HeaCap
	case "heaCol":
		return it.Stats.HeaCol
	case "phyRes":
		return it.Stats.PhyRes
	case "expRes":
		return it.Stats.ExpRes
	case "eleRes":
		return it.Stats.EleRes
	}
	return 0
}

// summarize sums the mech-level stats across all equipped items and applies
// the overweight health penalty.
func summarize(l Loadout) map[string]int {
	sum := make(map[string]int, len(summaryKeys))
	for _, it := range l {
		if it == nil {
			continue
		}
		for _, key := range summaryKeys {
			sum[key] += statOf(it, key)
		}
	}
	if w := sum["weight"]; w > maxWeight {
		sum["health"] -= (w - maxWeight) * healthPenaltyPerWeight
	}
	return sum
}

// BaseStats are the derived combat stats of a full loadout.
type BaseStats struct {
	Health int
	EneCap int
	EneReg int
	HeaCap int
	HeaCol int
	PhyRes int
	ExpRes int
	EleRes int
}

// DeriveBaseStats combines the loadout's items into base stats: summation,
// overweight penalty, then the per-stat buff curve. Health derived from a
// summation is never buffed (the penalty is already folded in). Stats
// missing a table entry are logged and left untouched; the function always
// produces a best-effort result.
func DeriveBaseStats(l Loadout, table StatTable) BaseStats {
	sum := summarize(l)

	for key, value := range sum {
		if value == 0 || key == "health" {
			continue
		}
		buff, known := table[key]
		if !known {
			logging.Warn("unknown stat key, skipping buff", logging.Fields{constants.LogFieldKey: key})
			continue
		}
		if buff != nil {
			sum[key] = buff.Apply(value)
		}
	}

	orDefault := func(key string, def int) int {
		if v, ok := sum[key]; ok && v != 0 {
			return v
		}
		return def
	}

	return BaseStats{
		Health: orDefault("health", 1),
		EneCap: orDefault("eneCap", 1),
		EneReg: orDefault("eneReg", 1),
		HeaCap: orDefault("heaCap", 1),
		HeaCol: orDefault("heaCol", 1),
		PhyRes: sum["phyRes"],
		ExpRes: sum["expRes"],
		EleRes: sum["eleRes"],
	}
}

// Eligibility is the result of a battle-eligibility check. It never
// represents an internal failure; an ineligible loadout carries a
// human-readable reason.
type Eligibility struct {
	Can    bool   `json:"can"`
	Reason string `json:"reason"`
}

func cant(reason string) Eligibility { return Eligibility{Can: false, Reason: reason} }

// CanBattleWithSetup checks whether a loadout may enter battle: torso and
// legs present, no jump-requiring weapon on non-jumping legs, no duplicate
// resistance modules, and total weight within the hard limit.
func CanBattleWithSetup(l Loadout) Eligibility {
	if l[SlotTorso] == nil {
		return cant("Missing torso")
	}
	legs := l[SlotLegs]
	if legs == nil {
		return cant("Missing legs")
	}

	if legs.Stats.Jump == 0 {
		for i := SlotWeaponFirst; i <= SlotWeaponLast; i++ {
			w := l[i]
			if w == nil {
				continue
			}
			if (w.Stats.Advance != 0 || w.Stats.Retreat != 0) && !w.HasTag(tagMelee) {
				return cant(w.Name + " requires jumping! The legs you're using can't jump.")
			}
		}
	}

	seenRes := map[string]bool{}
	for i := SlotModuleFirst; i <= SlotModuleLast; i++ {
		m := l[i]
		if m == nil {
			continue
		}
		for key, v := range map[string]int{
			"phyRes": m.Stats.PhyRes,
			"expRes": m.Stats.ExpRes,
			"eleRes": m.Stats.EleRes,
		} {
			if v == 0 {
				continue
			}
			if seenRes[key] {
				return cant("Can not use multiple modules with the same resistance type in battle.")
			}
			seenRes[key] = true
		}
	}

	weight := 0
	for _, it := range l {
		if it != nil {
			weight += it.Stats.Weight
		}
	}
	if weight > battleWeightLimit {
		return cant("Too heavy")
	}

	return Eligibility{Can: true}
}
