package game

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// ItemType identifies the slot family an item belongs to.
type ItemType string

const (
	TypeTorso         ItemType = "TORSO"
	TypeLegs          ItemType = "LEGS"
	TypeSideWeapon    ItemType = "SIDE_WEAPON"
	TypeTopWeapon     ItemType = "TOP_WEAPON"
	TypeDrone         ItemType = "DRONE"
	TypeChargeEngine  ItemType = "CHARGE_ENGINE"
	TypeTeleporter    ItemType = "TELEPORTER"
	TypeGrapplingHook ItemType = "GRAPPLING_HOOK"
	TypeModule        ItemType = "MODULE"
)

// Element is the damage element of an item.
type Element string

const (
	Physical  Element = "PHYSICAL"
	Explosive Element = "EXPLOSIVE"
	Electric  Element = "ELECTRIC"
	Combined  Element = "COMBINED"
)

// ValidItemTypes lists every accepted item type, used by config validation.
var ValidItemTypes = []ItemType{
	TypeTorso, TypeLegs, TypeSideWeapon, TypeTopWeapon, TypeDrone,
	TypeChargeEngine, TypeTeleporter, TypeGrapplingHook, TypeModule,
}

// ValidElements lists every accepted element, used by config validation.
var ValidElements = []Element{Physical, Explosive, Electric, Combined}

// Range is a [min,max] pair. It marshals to/from the JSON array form
// used by the item catalog (e.g. "phyDmg": [10, 20]).
type Range struct {
	Min int
	Max int
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Min, r.Max})
}

func (r *Range) UnmarshalJSON(b []byte) error {
	var pair [2]int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("range must be a [min,max] pair: %w", err)
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// ItemStats is the sparse stat block of a catalog item. A zero value means
// the item does not carry that stat; range stats use pointers so absence
// is distinguishable from [0,0].
type ItemStats struct {
	Weight int `json:"weight,omitempty"`
	Health int `json:"health,omitempty"`
	EneCap int `json:"eneCap,omitempty"`
	EneReg int `json:"eneReg,omitempty"`
	HeaCap int `json:"heaCap,omitempty"`
	HeaCol int `json:"heaCol,omitempty"`
	PhyRes int `json:"phyRes,omitempty"`
	ExpRes int `json:"expRes,omitempty"`
	EleRes int `json:"eleRes,omitempty"`

	HeaDmg    int `json:"heaDmg,omitempty"`
	HeaCapDmg int `json:"heaCapDmg,omitempty"`
	HeaColDmg int `json:"heaColDmg,omitempty"`
	EneDmg    int `json:"eneDmg,omitempty"`
	EneCapDmg int `json:"eneCapDmg,omitempty"`
	EneRegDmg int `json:"eneRegDmg,omitempty"`
	PhyResDmg int `json:"phyResDmg,omitempty"`
	ExpResDmg int `json:"expResDmg,omitempty"`
	EleResDmg int `json:"eleResDmg,omitempty"`

	Walk    int `json:"walk,omitempty"`
	Jump    int `json:"jump,omitempty"`
	Push    int `json:"push,omitempty"`
	Pull    int `json:"pull,omitempty"`
	Recoil  int `json:"recoil,omitempty"`
	Advance int `json:"advance,omitempty"`
	Retreat int `json:"retreat,omitempty"`

	Uses     int `json:"uses,omitempty"`
	Backfire int `json:"backfire,omitempty"`
	HeaCost  int `json:"heaCost,omitempty"`
	EneCost  int `json:"eneCost,omitempty"`

	PhyDmg *Range `json:"phyDmg,omitempty"`
	ExpDmg *Range `json:"expDmg,omitempty"`
	EleDmg *Range `json:"eleDmg,omitempty"`
	Range  *Range `json:"range,omitempty"`
}

// Item is an immutable catalog entry. Only the name is persisted; stats,
// type, element and tags come from the server config (the config file is
// the source of truth), so GORM ignores them.
type Item struct {
	gorm.Model
	Name    string    `json:"name"`
	Type    ItemType  `json:"type" gorm:"-"`
	Element Element   `json:"element" gorm:"-"`
	Tags    []string  `json:"tags" gorm:"-"`
	Stats   ItemStats `json:"stats" gorm:"-"`
}

// TableName overrides the default GORM table name so the persisted table
// is `item_catalog` instead of the default `items`.
func (Item) TableName() string { return "item_catalog" }

// HasTag reports whether the item carries the given tag (e.g. "melee").
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DamageRange returns the damage range matching the item's element, or nil
// when the element has no matching damage stat (COMBINED items have none).
func (it *Item) DamageRange() *Range {
	switch it.Element {
	case Physical:
		return it.Stats.PhyDmg
	case Explosive:
		return it.Stats.ExpDmg
	case Electric:
		return it.Stats.EleDmg
	}
	return nil
}

// DealsDamage reports whether this item type participates in the damage
// pipeline at all.
func (it *Item) DealsDamage() bool {
	switch it.Type {
	case TypeLegs, TypeSideWeapon, TypeTopWeapon, TypeDrone,
		TypeChargeEngine, TypeTeleporter, TypeGrapplingHook:
		return true
	}
	return false
}

// UseCount tracks the remaining uses of an equipped item. Items without a
// `uses` stat are unlimited; the distinction is explicit instead of an
// "infinity" sentinel.
type UseCount struct {
	Unlimited bool `json:"unlimited"`
	Left      int  `json:"left"`
}

// NewUseCount builds the counter for an item's `uses` stat (0 = unlimited).
func NewUseCount(uses int) UseCount {
	if uses <= 0 {
		return UseCount{Unlimited: true}
	}
	return UseCount{Left: uses}
}

// Available reports whether at least one use remains.
func (u UseCount) Available() bool {
	return u.Unlimited || u.Left > 0
}

// Consume spends one use. Unlimited counters are unaffected.
func (u *UseCount) Consume() {
	if !u.Unlimited {
		u.Left--
	}
}
