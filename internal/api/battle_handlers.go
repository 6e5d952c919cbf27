package api

import (
	"errors"
	"net/http"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/engine"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetBattle returns the live battle snapshot. Completed battles leave the
// registry, so polling an ended battle yields 404; the terminal snapshot
// is delivered through the event inbox instead.
func (h *Handler) GetBattle(c *gin.Context) {
	b := h.registry.Get(c.Param("battleID"))
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, b.Snapshot())
}

// GetBattlePlots returns the current attacker's legal-position plots:
// walkable and teleportable cells plus the reach of each equipped weapon.
// Clients use these to render move choices without reimplementing the
// range math.
func (h *Handler) GetBattlePlots(c *gin.Context) {
	b := h.registry.Get(c.Param("battleID"))
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}

	// Plot math reads combatant positions and items, so it runs under the
	// battle lock to stay consistent with concurrent actions.
	b.Lock()
	attackerID := b.Attacker().ID
	weaponRanges := map[int][engine.ArenaSize]bool{}
	for i := game.SlotWeaponFirst; i <= game.SlotWeaponLast; i++ {
		if b.Attacker().Items[i] != nil {
			weaponRanges[i] = engine.ItemRangePlot(b, i)
		}
	}
	walkable := engine.WalkablePositions(b)
	teleportable := engine.TeleportablePositions(b)
	b.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"attacker_id":   attackerID,
		"walkable":      walkable,
		"teleportable":  teleportable,
		"weapon_ranges": weaponRanges,
	})
}

type ActionRequest struct {
	PilotUUID string        `json:"pilot_uuid"`
	Action    engine.Action `json:"action"`
}

// SubmitAction applies one battle action for the calling pilot. Gameplay
// rejections come back as 409 with a machine-readable code; malformed
// actions as 400. The response carries the updated battle and the log
// entries this action produced; the opponent receives the same through
// its event inbox.
func (h *Handler) SubmitAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, logs, err := service.SubmitAction(h.registry, c.Param("battleID"), req.PilotUUID, req.Action, h.rng)
	if err != nil {
		h.battleError(c, err)
		return
	}

	if opp := b.Opponent(req.PilotUUID); opp != nil {
		if b.Complete != nil {
			h.RecordOutcome(b)
			h.inbox.BattleEnded(opp.ID, b)
		} else {
			h.inbox.battleUpdate(opp.ID, b, logs)
		}
	}

	c.JSON(http.StatusOK, gin.H{"battle": b, "logs": logs})
}

// QuitBattle concedes on behalf of the calling pilot. The opponent wins
// and is notified through its event inbox.
func (h *Handler) QuitBattle(c *gin.Context) {
	var req QueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, err := service.ForceQuit(h.registry, c.Param("battleID"), req.PilotUUID)
	if err != nil {
		h.battleError(c, err)
		return
	}

	h.RecordOutcome(b)
	if opp := b.Opponent(req.PilotUUID); opp != nil {
		h.inbox.BattleEnded(opp.ID, b)
	}
	c.JSON(http.StatusOK, b.Snapshot())
}

// battleError maps service and engine errors onto HTTP responses.
func (h *Handler) battleError(c *gin.Context, err error) {
	var actionErr *engine.ActionError
	var structuralErr *engine.StructuralError
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	case errors.Is(err, service.ErrNotInBattle):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotInBattle})
	case errors.As(err, &actionErr):
		c.JSON(http.StatusConflict, gin.H{
			constants.JSONKeyCode:  string(actionErr.Code),
			constants.JSONKeyError: actionErr.Reason,
		})
	case errors.As(err, &structuralErr):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: structuralErr.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
	}
}
