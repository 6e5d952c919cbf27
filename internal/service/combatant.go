package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

// EligibilityError reports a loadout that can't enter battle. It is only
// surfaced to the submitting side; no battle is ever created from it.
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string { return e.Reason }

// Catalog resolves item names to catalog entries.
type Catalog map[string]*game.Item

// NewCatalog indexes items by lowercase name.
func NewCatalog(items []game.Item) Catalog {
	m := make(Catalog, len(items))
	for i := range items {
		m[strings.ToLower(items[i].Name)] = &items[i]
	}
	return m
}

// ResolveSetup maps a 20-entry list of item names (empty string = empty
// slot) onto catalog items. Unknown names fail the whole setup.
func (c Catalog) ResolveSetup(names []string) (game.Loadout, string) {
	var setup game.Loadout
	for i := 0; i < len(names) && i < game.SlotCount; i++ {
		if names[i] == "" {
			continue
		}
		it, ok := c[strings.ToLower(names[i])]
		if !ok {
			return setup, names[i]
		}
		setup[i] = it
	}
	return setup, ""
}

// CreateCombatant validates a loadout's battle eligibility and derives the
// combatant state from it. The position is assigned later, when the
// matchmaker creates the battle.
func CreateCombatant(id, name string, setup game.Loadout, table game.StatTable) (*game.Combatant, error) {
	if e := game.CanBattleWithSetup(setup); !e.Can {
		return nil, &EligibilityError{Reason: e.Reason}
	}
	return game.NewCombatant(id, name, setup, table), nil
}

// Fingerprint hashes a setup's item names into the loadout fingerprint
// the matchmaker pairs on: two combatants match only when both resolve
// the exact same item definitions.
func Fingerprint(setup game.Loadout) string {
	h := sha256.New()
	for _, it := range setup {
		if it == nil {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte(it.Name))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
