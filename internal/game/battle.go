package game

import (
	"strings"
	"sync"
)

// LogKind classifies a battle log entry.
type LogKind string

const (
	LogAction LogKind = "action"
	LogEffect LogKind = "effect"
	LogInfo   LogKind = "info"
	LogError  LogKind = "error"
)

// LogEntry is one human-readable battle event, ordered append-only.
type LogEntry struct {
	Kind    LogKind `json:"kind"`
	ActorID string  `json:"actor_id"`
	Message string  `json:"message"`
}

// Outcome is the terminal result of a battle.
type Outcome struct {
	WinnerID string `json:"winner_id"`
	Quit     bool   `json:"quit"`
}

// Battle pairs two combatants with turn ownership and the running log.
// Complete is nil while the battle is ongoing; once set, it is absorbing
// and no further actions are accepted.
type Battle struct {
	mu sync.Mutex

	ID          string     `json:"id"`
	P1          *Combatant `json:"p1"`
	P2          *Combatant `json:"p2"`
	TurnOwnerID string     `json:"turn_owner_id"`
	Turns       int        `json:"turns"`
	Logs        []LogEntry `json:"logs"`
	Complete    *Outcome   `json:"complete"`
}

// Lock acquires the battle mutex. Battles are shared between concurrent
// HTTP handlers, so every read or mutation of battle state after
// construction must happen with the lock held.
func (b *Battle) Lock() { b.mu.Lock() }

// Unlock releases the battle mutex.
func (b *Battle) Unlock() { b.mu.Unlock() }

// Snapshot returns a copy safe to serialize without holding the lock.
// Combatants are copied by value and the log and usage slices are
// duplicated; catalog items are immutable and stay shared.
func (b *Battle) Snapshot() *Battle {
	b.mu.Lock()
	defer b.mu.Unlock()
	p1 := *b.P1
	p1.UsedInTurn = append([]int(nil), b.P1.UsedInTurn...)
	p2 := *b.P2
	p2.UsedInTurn = append([]int(nil), b.P2.UsedInTurn...)
	return &Battle{
		ID:          b.ID,
		P1:          &p1,
		P2:          &p2,
		TurnOwnerID: b.TurnOwnerID,
		Turns:       b.Turns,
		Logs:        append([]LogEntry(nil), b.Logs...),
		Complete:    b.Complete,
	}
}

// NewBattle creates an active battle. The starter owns the first turn and
// has a single action before the roles swap.
func NewBattle(id string, p1, p2 *Combatant, starterID string) *Battle {
	return &Battle{
		ID:          id,
		P1:          p1,
		P2:          p2,
		TurnOwnerID: starterID,
		Turns:       1,
	}
}

// Attacker returns the combatant currently owning the turn.
func (b *Battle) Attacker() *Combatant {
	if b.P1.ID == b.TurnOwnerID {
		return b.P1
	}
	return b.P2
}

// Defender returns the combatant not owning the turn.
func (b *Battle) Defender() *Combatant {
	if b.P1.ID == b.TurnOwnerID {
		return b.P2
	}
	return b.P1
}

// ByID returns the combatant with the given id, or nil.
func (b *Battle) ByID(id string) *Combatant {
	switch id {
	case b.P1.ID:
		return b.P1
	case b.P2.ID:
		return b.P2
	}
	return nil
}

// Opponent returns the other combatant, or nil when id is not a participant.
func (b *Battle) Opponent(id string) *Combatant {
	switch id {
	case b.P1.ID:
		return b.P2
	case b.P2.ID:
		return b.P1
	}
	return nil
}

// SetComplete transitions the battle to its terminal state. The first call
// wins; later calls are ignored.
func (b *Battle) SetComplete(winnerID string, quit bool) {
	if b.Complete == nil {
		b.Complete = &Outcome{WinnerID: winnerID, Quit: quit}
	}
}

// Log appends a battle log entry. The placeholders %attacker% and
// %defender% are substituted with combatant names so entries read as a
// replay without further context.
func (b *Battle) Log(kind LogKind, message string) {
	attacker, defender := b.Attacker(), b.Defender()
	message = strings.ReplaceAll(message, "%attacker%", attacker.Name)
	message = strings.ReplaceAll(message, "%defender%", defender.Name)
	b.Logs = append(b.Logs, LogEntry{Kind: kind, ActorID: attacker.ID, Message: message})
}
