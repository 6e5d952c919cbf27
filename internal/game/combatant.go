package game

// PoolStats are one combatant's mutable resource pools during battle.
type PoolStats struct {
	Health    int `json:"health"`
	HealthCap int `json:"healthCap"`
	Energy    int `json:"energy"`
	EneCap    int `json:"eneCap"`
	EneReg    int `json:"eneReg"`
	Heat      int `json:"heat"`
	HeaCap    int `json:"heaCap"`
	HeaCol    int `json:"heaCol"`
	PhyRes    int `json:"phyRes"`
	ExpRes    int `json:"expRes"`
	EleRes    int `json:"eleRes"`
}

// Combatant is one side's mutable battle state, derived from a loadout at
// battle start. Positions live on a 1-D arena of cells 0..9.
type Combatant struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Items       Loadout             `json:"items"`
	Position    int                 `json:"position"`
	Uses        [SlotCount]UseCount `json:"uses"`
	UsedInTurn  []int               `json:"usedInTurn"`
	DroneActive bool                `json:"droneActive"`

	Stats PoolStats `json:"stats"`
}

// NewCombatant derives a combatant from a loadout. Health and energy start
// full, heat starts at zero.
func NewCombatant(id, name string, setup Loadout, table StatTable) *Combatant {
	base := DeriveBaseStats(setup, table)

	c := &Combatant{
		ID:    id,
		Name:  name,
		Items: setup,
		Stats: PoolStats{
			Health:    base.Health,
			HealthCap: base.Health,
			Energy:    base.EneCap,
			EneCap:    base.EneCap,
			EneReg:    base.EneReg,
			Heat:      0,
			HeaCap:    base.HeaCap,
			HeaCol:    base.HeaCol,
			PhyRes:    base.PhyRes,
			ExpRes:    base.ExpRes,
			EleRes:    base.EleRes,
		},
	}
	for i, it := range setup {
		if it != nil {
			c.Uses[i] = NewUseCount(it.Stats.Uses)
		}
	}
	return c
}

// UsedThisTurn reports whether the slot was already fired this turn.
func (c *Combatant) UsedThisTurn(slot int) bool {
	for _, s := range c.UsedInTurn {
		if s == slot {
			return true
		}
	}
	return false
}

// MarkUsed records a slot as fired this turn.
func (c *Combatant) MarkUsed(slot int) {
	c.UsedInTurn = append(c.UsedInTurn, slot)
}

// ClearUsedInTurn resets the per-turn usage tracking. Called when this
// combatant stops being the attacker.
func (c *Combatant) ClearUsedInTurn() {
	c.UsedInTurn = c.UsedInTurn[:0]
}
