package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kronos/internal/errors"
	"kronos/internal/seed"
	"kronos/internal/service"
)

// SeedHandler loads the demo catalog. Admin-gated; meant for dev and demo
// environments.
type SeedHandler struct {
	catalog service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalog service.CatalogService) *SeedHandler {
	return &SeedHandler{catalog: catalog}
}

// SeedProducts godoc
// @Summary Load the demo catalog (admin only)
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/products [post]
func (h *SeedHandler) SeedProducts(c echo.Context) error {
	count, err := h.catalog.SeedProducts(c.Request().Context(), seed.Products())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "demo catalog seeded",
		"count":   count,
	})
}
