package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"equipment-status-backend/internal/inventory"
	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/parse"
)

// ListEquipment handles GET /api/equipment[?active=true].
func (h *Handler) ListEquipment(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		activeOnly = v
	}

	list, err := h.inv.Views.Equipment(c.Request.Context(), activeOnly)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetEquipment handles GET /api/equipment/:number.
func (h *Handler) GetEquipment(c *gin.Context) {
	e, err := h.inv.Views.Find(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// RegisterEquipment handles POST /api/equipment.
func (h *Handler) RegisterEquipment(c *gin.Context) {
	var req inventory.Candidate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	e, err := h.inv.Registry.Register(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PutStatus handles PUT /api/equipment/:number/status, a manual status change.
func (h *Handler) PutStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	st, ok := model.ParseStatus(req.Status)
	if !ok {
		h.renderError(c, &inventory.Error{Kind: inventory.KindInvalidStatus, Subject: req.Status})
		return
	}

	id := parse.PadIdentifier(c.Param("number"))
	if err := h.inv.Reconciler.SetStatus(c.Request.Context(), id, string(st)); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": id, "status": st})
}
