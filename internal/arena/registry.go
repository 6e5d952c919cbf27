package arena

import (
	"sync"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/logging"
)

// Registry owns every active battle, keyed by battle id. Combatants refer
// to their battle through an id lookup instead of a back-pointer, so there
// is no cycle between battles and combatants. Access to the maps is
// serialized with the registry mutex; the state of an individual battle is
// guarded by that battle's own lock.
type Registry struct {
	mu          sync.Mutex
	battles     map[string]*game.Battle
	byCombatant map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		battles:     map[string]*game.Battle{},
		byCombatant: map[string]string{},
	}
}

// Add registers a newly created battle.
func (r *Registry) Add(b *game.Battle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.battles[b.ID] = b
	r.byCombatant[b.P1.ID] = b.ID
	r.byCombatant[b.P2.ID] = b.ID
}

// Get returns the battle with the given id, or nil.
func (r *Registry) Get(battleID string) *game.Battle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.battles[battleID]
}

// ByCombatant returns the battle a combatant is currently in, or nil.
func (r *Registry) ByCombatant(combatantID string) *game.Battle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byCombatant[combatantID]; ok {
		return r.battles[id]
	}
	return nil
}

// Remove dereferences a battle and both combatant entries.
func (r *Registry) Remove(battleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.battles[battleID]
	if !ok {
		return
	}
	delete(r.byCombatant, b.P1.ID)
	delete(r.byCombatant, b.P2.ID)
	delete(r.battles, battleID)
}

// ForceQuit runs the explicit-quit transition for the battle the given
// combatant is in: the opponent wins, quit is flagged, and the battle is
// removed from the registry. Returns the completed battle or nil when the
// combatant is not battling.
func (r *Registry) ForceQuit(combatantID string) *game.Battle {
	r.mu.Lock()
	b, ok := r.battles[r.byCombatant[combatantID]]
	r.mu.Unlock()
	if !ok {
		return nil
	}

	opponent := b.Opponent(combatantID)
	if opponent == nil {
		return nil
	}
	b.Lock()
	b.SetComplete(opponent.ID, true)
	b.Logs = append(b.Logs, game.LogEntry{
		Kind:    game.LogInfo,
		ActorID: combatantID,
		Message: b.ByID(combatantID).Name + " quit the battle",
	})
	b.Unlock()
	r.Remove(b.ID)

	logging.Info("battle force-quit", logging.Fields{
		constants.LogFieldBattleID: b.ID,
		constants.LogFieldPilotID:  combatantID,
	})
	return b
}
