package api

import (
	"net/http"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListItems returns the full item catalog with configured stats.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.repo.GetItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedListItems})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItem returns a single catalog item by name, case-insensitively.
func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.repo.GetItemByName(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnknownItem})
		return
	}
	c.JSON(http.StatusOK, item)
}
