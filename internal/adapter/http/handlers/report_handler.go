package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "crm_reports/internal/adapter/http/dto/request"
	response "crm_reports/internal/adapter/http/dto/response"
	"crm_reports/internal/adapter/export"
	"crm_reports/internal/usecase"
	"crm_reports/pkg"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
	contentTypePNG  = "image/png"
)

// ReportHandler serves the quote and contract reports as JSON, spreadsheet
// or PDF.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) QuoteReport(c *gin.Context) {
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
	format, err := q.ResolveFormat()
	if err != nil {
		writeAppError(c, mapReportError(err))
		return
	}

	report := h.usecase.QuoteReport(c.Request.Context(), filters)
	if format == request.FormatJSON {
		c.JSON(http.StatusOK, response.FromQuoteReport(report))
		return
	}
	writeTable(c, "orcamentos", format, export.QuoteTable(report))
}

func (h *ReportHandler) ContractReport(c *gin.Context) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeAppError(c, mapReportError(err))
		return
	}
	filters, err := q.ContractFilters()
	if err != nil {
		writeAppError(c, mapReportError(err))
		return
	}
	format, err := q.ResolveFormat()
	if err != nil {
		writeAppError(c, mapReportError(err))
		return
	}

	report := h.usecase.ContractReport(c.Request.Context(), filters)
	if format == request.FormatJSON {
		c.JSON(http.StatusOK, response.FromContractReport(report))
		return
	}
	writeTable(c, "contratos", format, export.ContractTable(report))
}

func writeTable(c *gin.Context, name, format string, t export.Table) {
	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case request.FormatXLSX:
		data, err = export.GenerateExcel(t)
		contentType = contentTypeXLSX
	case request.FormatPDF:
		data, err = export.GeneratePDF(t)
		contentType = contentTypePDF
	}
	if err != nil {
		log.Printf("[report][handler] render failed format=%s err=%v", format, err)
		writeAppError(c, pkg.NewDomainError("EXPORT_FAILED", "Could not render report", err, http.StatusInternalServerError))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
	c.Data(http.StatusOK, contentType, data)
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must use the YYYY-MM-DD format", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidFormat):
		return pkg.NewDomainErrorSimple("INVALID_FORMAT", "Format must be json, xlsx or pdf", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	}
}
