package api

import (
	"net/http"
	"strings"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/google/uuid"

	"github.com/gin-gonic/gin"
)

type RegisterPilotRequest struct {
	PilotUUID string `json:"pilot_uuid"`
	Callsign  string `json:"callsign"`
}

// RegisterPilot creates or updates a pilot profile. A missing pilot_uuid
// registers a brand new pilot; a known one renames it.
func (h *Handler) RegisterPilot(c *gin.Context) {
	var req RegisterPilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	callsign := strings.TrimSpace(req.Callsign)
	if len(callsign) < 2 || len(callsign) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCallsignLength})
		return
	}

	pilotUUID := strings.TrimSpace(req.PilotUUID)
	if pilotUUID == "" {
		pilotUUID = uuid.NewString()
	}

	pilot, err := h.repo.UpsertPilot(pilotUUID, callsign)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSavePilot})
		return
	}
	c.JSON(http.StatusOK, pilot)
}

// GetPilot returns a pilot profile with its aggregate battle counters.
func (h *Handler) GetPilot(c *gin.Context) {
	pilot, err := h.repo.GetPilotByUUID(c.Param("pilotUUID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPilotNotFound})
		return
	}
	c.JSON(http.StatusOK, pilot)
}

// GetPilotEvents drains and returns the pilot's pending matchmaking and
// battle events. Clients poll this endpoint.
func (h *Handler) GetPilotEvents(c *gin.Context) {
	events := h.inbox.Drain(c.Param("pilotUUID"))
	if events == nil {
		events = []Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
