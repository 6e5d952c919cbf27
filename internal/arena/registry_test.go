package arena

import (
	"strings"
	"testing"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

func testBattle(id, p1, p2 string) *game.Battle {
	c := func(cid string) *game.Combatant {
		return &game.Combatant{ID: cid, Name: strings.ToUpper(cid), Stats: game.PoolStats{Health: 100}}
	}
	return game.NewBattle(id, c(p1), c(p2), p1)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	b := testBattle("b1", "p1", "p2")
	r.Add(b)

	if r.Get("b1") != b {
		t.Fatalf("expected lookup by battle id")
	}
	if r.ByCombatant("p1") != b || r.ByCombatant("p2") != b {
		t.Fatalf("expected lookup by either combatant")
	}
	if r.Get("nope") != nil || r.ByCombatant("nope") != nil {
		t.Fatalf("unknown ids must return nil")
	}

	r.Remove("b1")
	if r.Get("b1") != nil || r.ByCombatant("p1") != nil {
		t.Fatalf("expected the battle and combatant entries removed")
	}
}

func TestForceQuit(t *testing.T) {
	r := NewRegistry()
	b := testBattle("b1", "p1", "p2")
	r.Add(b)

	got := r.ForceQuit("p1")

	if got != b {
		t.Fatalf("expected the quit battle returned")
	}
	if b.Complete == nil || b.Complete.WinnerID != "p2" || !b.Complete.Quit {
		t.Fatalf("expected p2 winning by quit, got %+v", b.Complete)
	}
	if len(b.Logs) == 0 || !strings.Contains(b.Logs[len(b.Logs)-1].Message, "quit the battle") {
		t.Fatalf("expected a quit log entry, got %+v", b.Logs)
	}
	if r.Get("b1") != nil {
		t.Fatalf("expected the battle removed")
	}

	if r.ForceQuit("p1") != nil {
		t.Fatalf("a combatant without a battle must quit to nil")
	}
}
