package api

import (
	"sync"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/logging"
)

// Event types delivered through the per-pilot event inbox.
const (
	EventVerifyOpponent = "verify_opponent"
	EventBattleStarted  = "battle_started"
	EventBattleUpdate   = "battle_update"
	EventBattleEnded    = "battle_ended"
)

// Event is one matchmaking or battle notification waiting for a pilot.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// EventInbox buffers matchmaker and battle events per pilot until the
// client polls them. It is the transport half of the matchmaker's
// notifier contract: pushes never block, events are drained in order.
type EventInbox struct {
	mu      sync.Mutex
	pending map[string][]Event

	// OnBattleEnd, when set, runs for every battle delivered through
	// BattleEnded. Used to persist outcome counters for quits that are
	// triggered outside a battle handler (e.g. re-queueing mid-battle).
	OnBattleEnd func(b *game.Battle)
}

func NewEventInbox() *EventInbox {
	return &EventInbox{pending: map[string][]Event{}}
}

func (in *EventInbox) push(pilotID string, ev Event) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pending[pilotID] = append(in.pending[pilotID], ev)
}

// Drain returns and clears the pilot's pending events, oldest first.
func (in *EventInbox) Drain(pilotID string) []Event {
	in.mu.Lock()
	defer in.mu.Unlock()
	evs := in.pending[pilotID]
	delete(in.pending, pilotID)
	return evs
}

// VerifyOpponent asks a pilot to confirm it can resolve the opponent's
// setup before the battle is created.
func (in *EventInbox) VerifyOpponent(pilotID string, opponentFingerprint string, opponentSetup game.Loadout) {
	names := make([]string, len(opponentSetup))
	for i, it := range opponentSetup {
		if it != nil {
			names[i] = it.Name
		}
	}
	in.push(pilotID, Event{Type: EventVerifyOpponent, Payload: map[string]interface{}{
		"opponent_fingerprint": opponentFingerprint,
		"opponent_setup":       names,
	}})
}

// BattleStarted queues the opening battle state. The payload is a
// snapshot: the live battle may already be mutated by actions before the
// pilot polls.
func (in *EventInbox) BattleStarted(pilotID string, b *game.Battle) {
	in.push(pilotID, Event{Type: EventBattleStarted, Payload: b.Snapshot()})
}

func (in *EventInbox) BattleEnded(pilotID string, b *game.Battle) {
	if in.OnBattleEnd != nil {
		in.OnBattleEnd(b)
	}
	in.push(pilotID, Event{Type: EventBattleEnded, Payload: b.Snapshot()})
	logging.Info("battle end delivered", logging.Fields{
		constants.LogFieldPilotID:  pilotID,
		constants.LogFieldBattleID: b.ID,
	})
}

// battleUpdate carries the battle snapshot plus the log entries produced
// by the opponent's latest action.
func (in *EventInbox) battleUpdate(pilotID string, b *game.Battle, logs []game.LogEntry) {
	in.push(pilotID, Event{Type: EventBattleUpdate, Payload: map[string]interface{}{
		"battle": b,
		"logs":   logs,
	}})
}
