package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"equipment-status-backend/internal/inventory"
	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/parse"
	"equipment-status-backend/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxEventYears bounds the dashboard period, one bucket per month.
const maxEventYears = 5

// GetOptions handles GET /api/options, the fixed choices offered by the forms.
func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"classifications":      model.Classifications,
		"process_types":        model.ProcessTypes,
		"maintenance_scopes":   model.MaintenanceScopes,
		"severities":           model.Severities,
		"statuses":             model.Statuses,
		"maintenance_outcomes": model.MaintenanceOutcomes,
		"damage_outcomes":      model.DamageOutcomes,
	})
}

// GetStatusSummary handles GET /api/dashboard/status.
func (h *Handler) GetStatusSummary(c *gin.Context) {
	sum, err := h.inv.Views.StatusSummary(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GetEventCounts handles GET /api/dashboard/events?from=&to=. Without
// bounds it covers the last twelve months up to today. Periods longer than
// maxEventYears are rejected.
func (h *Handler) GetEventCounts(c *gin.Context) {
	to := h.now()
	if raw := c.Query("to"); raw != "" {
		t, err := parse.Date(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		to = t
	}
	from := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location()).AddDate(0, -11, 0)
	if raw := c.Query("from"); raw != "" {
		t, err := parse.Date(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		from = t
	}

	lo, hi := from, to
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if lo.AddDate(maxEventYears, 0, 0).Before(hi) {
		badRequest(c, fmt.Errorf("period longer than %d years", maxEventYears))
		return
	}

	counts, err := h.inv.Views.EventCounts(c.Request.Context(), from, to)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Export handles GET /api/export, a workbook with all three tables.
func (h *Handler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := store.Export(c.Request.Context(), h.inv.Store, h.inv.Tables.All(), &buf); err != nil {
		h.renderError(c, &inventory.Error{Kind: inventory.KindStoreIO, Err: err})
		return
	}

	name := fmt.Sprintf("equipamentos_%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
