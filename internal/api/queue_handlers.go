package api

import (
	"errors"
	"net/http"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/matchmaker"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/service"

	"github.com/gin-gonic/gin"
)

type JoinQueueRequest struct {
	PilotUUID string   `json:"pilot_uuid"`
	Setup     []string `json:"setup"`
}

// JoinQueue resolves the submitted setup against the catalog, checks its
// battle eligibility and enters the pilot into the matchmaking queue.
// Joining while already in a battle force-quits that battle first.
func (h *Handler) JoinQueue(c *gin.Context) {
	var req JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	pilot, err := h.repo.GetPilotByUUID(req.PilotUUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPilotNotFound})
		return
	}

	setup, unknown := h.catalog.ResolveSetup(req.Setup)
	if unknown != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			constants.JSONKeyError: constants.ErrUnknownItem,
			constants.JSONKeyName:  unknown,
		})
		return
	}

	combatant, err := service.CreateCombatant(pilot.PilotUUID, pilot.Callsign, setup, h.stats)
	if err != nil {
		var elig *service.EligibilityError
		if errors.As(err, &elig) {
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: elig.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	h.mm.Join(&matchmaker.Entry{
		Combatant:   combatant,
		Fingerprint: service.Fingerprint(setup),
	})
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Queued for matchmaking"})
}

type QueueRequest struct {
	PilotUUID string `json:"pilot_uuid"`
}

// LeaveQueue removes a pilot from the queue, or cancels its pending
// opponent verification. Leaving when not queued is a no-op.
func (h *Handler) LeaveQueue(c *gin.Context) {
	var req QueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.mm.Leave(req.PilotUUID)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Left matchmaking"})
}

type VerifyRequest struct {
	PilotUUID string `json:"pilot_uuid"`
	Accepted  *bool  `json:"accepted"`
}

// SubmitVerification records a pilot's answer to an opponent verification.
// Both pilots accepting starts the battle; a rejection returns the
// rejecter to the queue and prevents the pair from matching again.
func (h *Handler) SubmitVerification(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Accepted == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.mm.SubmitValidation(req.PilotUUID, *req.Accepted)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Verification recorded"})
}
