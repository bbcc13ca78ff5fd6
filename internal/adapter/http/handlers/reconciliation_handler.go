package handlers

import (
	"net/http"

	response "crm_reports/internal/adapter/http/dto/response"
	"crm_reports/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the expiration job for operators.
type ReconciliationHandler struct {
	scheduler usecase.IReconciliationScheduler
}

func NewReconciliationHandler(s usecase.IReconciliationScheduler) *ReconciliationHandler {
	return &ReconciliationHandler{scheduler: s}
}

// Run executes a reconciliation synchronously. When another run is in
// flight nothing happens and 409 is returned with the previous result.
func (h *ReconciliationHandler) Run(c *gin.Context) {
	res, ran := h.scheduler.RunNow(c.Request.Context())
	last, runs := h.scheduler.Last()
	if !ran {
		c.JSON(http.StatusConflict, response.FromReconciliation(last, false, runs))
		return
	}
	c.JSON(http.StatusOK, response.FromReconciliation(res, true, runs))
}

func (h *ReconciliationHandler) Last(c *gin.Context) {
	last, runs := h.scheduler.Last()
	c.JSON(http.StatusOK, response.FromReconciliation(last, runs > 0, runs))
}
