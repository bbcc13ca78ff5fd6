package routes

import (
	"crm_reports/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes         = "/quotes"
	PathReports        = "/reports"
	PathDashboard      = "/dashboard"
	PathReconciliation = "/reconciliation"
)

// Handlers groups every HTTP handler exposed under /v1.
type Handlers struct {
	Quote          *handlers.QuoteHandler
	Report         *handlers.ReportHandler
	Dashboard      *handlers.DashboardHandler
	Reconciliation *handlers.ReconciliationHandler
	Directory      *handlers.DirectoryHandler
}

func addCRMRoutes(rg *gin.RouterGroup, h Handlers) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.Quote.CreateQuote)
		quotes.GET("/:id", h.Quote.GetQuote)
		quotes.PATCH("/:id/status", h.Quote.UpdateQuoteStatus)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/quotes", h.Report.QuoteReport)
		reports.GET("/contracts", h.Report.ContractReport)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("", h.Dashboard.GetDashboard)
		dashboard.GET("/tiles/:tile", h.Dashboard.GetTile)
		dashboard.GET("/chart.png", h.Dashboard.GetStatusChart)
	}

	reconciliation := rg.Group(PathReconciliation)
	{
		reconciliation.POST("/run", h.Reconciliation.Run)
		reconciliation.GET("/last", h.Reconciliation.Last)
	}

	rg.GET("/contacts", h.Directory.ListContacts)
	rg.GET("/users", h.Directory.ListUsers)
	rg.GET("/catalog-items", h.Directory.ListCatalogItems)
	rg.GET("/labels", h.Directory.ListLabels)
}
