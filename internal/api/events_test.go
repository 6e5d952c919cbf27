package api

import (
	"testing"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

func TestEventInbox_DrainOrder(t *testing.T) {
	in := NewEventInbox()
	b := game.NewBattle("b1",
		&game.Combatant{ID: "p1", Name: "Able"},
		&game.Combatant{ID: "p2", Name: "Baker"}, "p1")

	in.BattleStarted("p1", b)
	in.battleUpdate("p1", b, nil)
	in.BattleStarted("p2", b)

	events := in.Drain("p1")
	if len(events) != 2 {
		t.Fatalf("expected 2 events for p1, got %d", len(events))
	}
	if events[0].Type != EventBattleStarted || events[1].Type != EventBattleUpdate {
		t.Fatalf("expected delivery order preserved, got %+v", events)
	}
	if len(in.Drain("p1")) != 0 {
		t.Fatalf("a drain must clear the inbox")
	}
	if len(in.Drain("p2")) != 1 {
		t.Fatalf("per-pilot inboxes must be independent")
	}
}

func TestEventInbox_VerifyPayloadNames(t *testing.T) {
	in := NewEventInbox()
	var setup game.Loadout
	setup[game.SlotTorso] = &game.Item{Name: "Interceptor"}

	in.VerifyOpponent("p1", "fingerprint", setup)

	events := in.Drain("p1")
	if len(events) != 1 || events[0].Type != EventVerifyOpponent {
		t.Fatalf("expected one verification event, got %+v", events)
	}
	payload := events[0].Payload.(map[string]interface{})
	names := payload["opponent_setup"].([]string)
	if names[game.SlotTorso] != "Interceptor" || names[game.SlotLegs] != "" {
		t.Fatalf("unexpected setup names: %v", names)
	}
}

func TestEventInbox_BattleEndHook(t *testing.T) {
	in := NewEventInbox()
	var hooked *game.Battle
	in.OnBattleEnd = func(b *game.Battle) { hooked = b }

	b := game.NewBattle("b1",
		&game.Combatant{ID: "p1", Name: "Able"},
		&game.Combatant{ID: "p2", Name: "Baker"}, "p1")
	b.SetComplete("p2", true)

	in.BattleEnded("p2", b)

	if hooked != b {
		t.Fatalf("expected the end hook to run with the battle")
	}
	events := in.Drain("p2")
	if len(events) != 1 || events[0].Type != EventBattleEnded {
		t.Fatalf("expected the end event delivered, got %+v", events)
	}
}
