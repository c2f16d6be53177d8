package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"equipment-status-backend/internal/inventory"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	inv *inventory.Inventory
	now func() time.Time
	log *zap.Logger
}

// NewHandler creates a new API handler. now supplies "today" for default
// date ranges and export file names.
func NewHandler(inv *inventory.Inventory, now func() time.Time, log *zap.Logger) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{inv: inv, now: now, log: log}
}

// statusFor maps an error kind to the HTTP status it is reported with.
func statusFor(kind inventory.Kind) int {
	switch kind {
	case inventory.KindNotFound, inventory.KindStoreEmpty:
		return http.StatusNotFound
	case inventory.KindDuplicate:
		return http.StatusConflict
	case inventory.KindInvalidRange, inventory.KindInvalidYear, inventory.KindMissingRequired,
		inventory.KindInvalidOption, inventory.KindInvalidStatus:
		return http.StatusUnprocessableEntity
	case inventory.KindStoreIO:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// renderError writes err as {"error", "kind"}.
func (h *Handler) renderError(c *gin.Context, err error) {
	kind := inventory.KindOf(err)
	status := statusFor(kind)
	body := gin.H{"error": err.Error(), "kind": kind}
	if kind == "" {
		body["kind"] = "internal"
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "bad_request"})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
