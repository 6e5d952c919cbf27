package service

import (
	"errors"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/arena"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/engine"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

var (
	ErrBattleNotFound = errors.New("battle not found")
	ErrNotInBattle    = errors.New("pilot is not in this battle")
)

// SubmitAction validates and applies one battle action: validate-then-apply,
// never interleaved, so a rejected action leaves the battle untouched.
// The battle lock is held across both steps so concurrent submissions for
// the same battle serialize; two in-flight actions can never both pass the
// turn-ownership check. On success it returns a snapshot of the battle and
// the log entries this action produced.
func SubmitAction(reg *arena.Registry, battleID, pilotID string, act engine.Action, rng engine.Rand) (*game.Battle, []game.LogEntry, error) {
	b := reg.Get(battleID)
	if b == nil {
		return nil, nil, ErrBattleNotFound
	}

	b.Lock()
	if b.ByID(pilotID) == nil {
		b.Unlock()
		return nil, nil, ErrNotInBattle
	}

	if err := engine.Validate(b, pilotID, act); err != nil {
		b.Unlock()
		return nil, nil, err
	}

	logStart := len(b.Logs)
	if err := engine.Resolve(b, act, rng); err != nil {
		b.Unlock()
		return nil, nil, err
	}

	logs := append([]game.LogEntry(nil), b.Logs[logStart:]...)
	complete := b.Complete != nil
	b.Unlock()

	if complete {
		reg.Remove(b.ID)
	}

	return b.Snapshot(), logs, nil
}

// ForceQuit runs the explicit-quit transition for a combatant. It is not
// an error path: disconnections and transport-enforced turn clocks both
// land here.
func ForceQuit(reg *arena.Registry, battleID, pilotID string) (*game.Battle, error) {
	b := reg.Get(battleID)
	if b == nil {
		return nil, ErrBattleNotFound
	}
	if b.ByID(pilotID) == nil {
		return nil, ErrNotInBattle
	}
	return reg.ForceQuit(pilotID), nil
}
