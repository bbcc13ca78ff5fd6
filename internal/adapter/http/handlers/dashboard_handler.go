package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "crm_reports/internal/adapter/http/dto/request"
	response "crm_reports/internal/adapter/http/dto/response"
	"crm_reports/internal/adapter/export"
	"crm_reports/internal/usecase"
	"crm_reports/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	reports   usecase.IReportUseCase
	now       func() time.Time
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, reports usecase.IReportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, reports: reports, now: time.Now}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDashboard(h.dashboard.Dashboard(c.Request.Context())))
}

// GetTile returns the list behind a dashboard tile.
func (h *DashboardHandler) GetTile(c *gin.Context) {
	dd, err := h.dashboard.Drilldown(c.Request.Context(), c.Param("tile"))
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownTile) {
			writeAppError(c, pkg.NewDomainErrorSimple("TILE_NOT_FOUND", "Unknown dashboard tile", http.StatusNotFound))
			return
		}
		writeAppError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromDrilldown(dd, h.now()))
}

// GetStatusChart renders quotes per status as PNG. It accepts the same
// period and owner filters as the quote report.
func (h *DashboardHandler) GetStatusChart(c *gin.Context) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeAppError(c, mapReportError(err))
		return
	}
	filters, err := q.QuoteFilters()
	if err != nil {
		writeAppError(c, mapReportError(err))
		return
	}

	png, err := export.StatusChart(h.reports.QuoteReport(c.Request.Context(), filters))
	if err != nil {
		log.Printf("[dashboard][handler] chart failed err=%v", err)
		writeAppError(c, pkg.NewDomainError("EXPORT_FAILED", "Could not render chart", err, http.StatusInternalServerError))
		return
	}
	c.Data(http.StatusOK, contentTypePNG, png)
}
