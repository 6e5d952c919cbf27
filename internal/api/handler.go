package api

import (
	"sync"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/arena"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/engine"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/logging"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/matchmaker"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/service"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/storage"
)

// Handler groups all HTTP handlers and their shared dependencies.
type Handler struct {
	repo     storage.Repository
	catalog  service.Catalog
	stats    game.StatTable
	registry *arena.Registry
	mm       *matchmaker.Service
	inbox    *EventInbox
	rng      engine.Rand

	mu       sync.Mutex
	recorded map[string]bool
}

func NewHandler(repo storage.Repository, catalog service.Catalog, stats game.StatTable, registry *arena.Registry, mm *matchmaker.Service, inbox *EventInbox, rng engine.Rand) *Handler {
	return &Handler{
		repo:     repo,
		catalog:  catalog,
		stats:    stats,
		registry: registry,
		mm:       mm,
		inbox:    inbox,
		rng:      rng,
		recorded: map[string]bool{},
	}
}

// RecordOutcome persists the win/loss counters of a completed battle.
// Every completion path funnels through here, so it is idempotent per
// battle: only the first call for a battle ID touches the database.
func (h *Handler) RecordOutcome(b *game.Battle) {
	if b == nil || b.Complete == nil {
		return
	}

	h.mu.Lock()
	if h.recorded[b.ID] {
		h.mu.Unlock()
		return
	}
	h.recorded[b.ID] = true
	h.mu.Unlock()

	winner := b.ByID(b.Complete.WinnerID)
	loser := b.Opponent(b.Complete.WinnerID)
	if winner == nil || loser == nil {
		return
	}
	if err := h.repo.UpdateStatsOnBattleEnd(winner.ID, loser.ID); err != nil {
		logging.Error("failed to update pilot stats", err, logging.Fields{constants.LogFieldBattleID: b.ID})
	}
}
