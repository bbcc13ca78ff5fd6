package handlers

import (
	"log"
	"net/http"

	"crm_reports/internal/domain/labels"
	"crm_reports/internal/usecase"
	"crm_reports/pkg"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the lookup collections and label tables.
type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc}
}

func (h *DirectoryHandler) ListContacts(c *gin.Context) {
	items, err := h.usecase.Contacts(c.Request.Context())
	respondList(c, "contacts", items, err)
}

func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	items, err := h.usecase.Users(c.Request.Context())
	respondList(c, "users", items, err)
}

func (h *DirectoryHandler) ListCatalogItems(c *gin.Context) {
	items, err := h.usecase.CatalogItems(c.Request.Context())
	respondList(c, "catalog_items", items, err)
}

func (h *DirectoryHandler) ListLabels(c *gin.Context) {
	c.JSON(http.StatusOK, labels.Tables())
}

func respondList[T any](c *gin.Context, name string, items []T, err error) {
	if err != nil {
		log.Printf("[directory][handler] list %s failed err=%v", name, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}
