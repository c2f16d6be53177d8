package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"equipment-status-backend/internal/inventory"
	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/mw"
)

// ListMaintenance handles GET /api/maintenance[?equipment=07].
func (h *Handler) ListMaintenance(c *gin.Context) {
	list, err := h.inv.Views.Maintenance(c.Request.Context(), c.Query("equipment"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// RecordMaintenance handles POST /api/maintenance.
func (h *Handler) RecordMaintenance(c *gin.Context) {
	var req model.MaintenanceEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ev, err := h.inv.Recorder.RecordMaintenance(c.Request.Context(), req)
	h.respondEvent(c, ev, err)
}

// ListDamage handles GET /api/damage[?equipment=07].
func (h *Handler) ListDamage(c *gin.Context) {
	list, err := h.inv.Views.Damage(c.Request.Context(), c.Query("equipment"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// RecordDamage handles POST /api/damage.
func (h *Handler) RecordDamage(c *gin.Context) {
	var req model.DamageEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ev, err := h.inv.Recorder.RecordDamage(c.Request.Context(), req)
	h.respondEvent(c, ev, err)
}

// respondEvent reports a stored event even when the status update that
// follows it failed.
func (h *Handler) respondEvent(c *gin.Context, ev any, err error) {
	if err == nil {
		c.JSON(http.StatusCreated, ev)
		return
	}
	if errors.Is(err, inventory.ErrStatusNotUpdated) {
		// The row is stored; a resubmission would append it again.
		c.Set(mw.KeepSubmission, true)
		kind := inventory.KindOf(err)
		c.AbortWithStatusJSON(statusFor(kind), gin.H{
			"error":          err.Error(),
			"kind":           kind,
			"event_recorded": true,
			"event":          ev,
		})
		return
	}
	h.renderError(c, err)
}
