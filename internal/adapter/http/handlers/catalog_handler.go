package handlers

import (
	"errors"
	"net/http"

	"printstudio/internal/adapter/http/dto/response"
	"printstudio/internal/usecase"
	"printstudio/internal/usecase/interfaces"
	"printstudio/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the printing-services catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices returns every catalog entry; order is unspecified.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

// SeedServices writes the default offerings into an empty catalog. Safe to
// call repeatedly; a populated catalog is never touched.
func (h *CatalogHandler) SeedServices(c *gin.Context) {
	count, err := h.usecase.SeedDefaults(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SeedResponse{Seeded: count > 0, Count: count})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
