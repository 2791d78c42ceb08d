package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"kronos/internal/errors"
	"kronos/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	catalog service.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// CreateProductRequest represents a product creation request. Name, brand
// and price are required; requiredness is checked in the catalog service so
// the error can name the missing fields. Absent optional fields are stored
// as NULL.
type CreateProductRequest struct {
	Name           string           `json:"name"`
	Brand          string           `json:"brand"`
	Model          *string          `json:"model"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	Stock          *int             `json:"stock"`
	MovementType   *string          `json:"movement_type"`
	CaseMaterial   *string          `json:"case_material"`
	StrapMaterial  *string          `json:"strap_material"`
	CaseDiameter   *decimal.Decimal `json:"case_diameter"`
	WaterResistant *string          `json:"water_resistant"`
	Image          *string          `json:"image"`
}

// UploadImageResponse carries the public URL of a stored image.
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ListProducts godoc
// @Summary List catalog products, newest first
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create a product (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), service.CreateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
		MovementType:   req.MovementType,
		CaseMaterial:   req.CaseMaterial,
		StrapMaterial:  req.StrapMaterial,
		CaseDiameter:   req.CaseDiameter,
		WaterResistant: req.WaterResistant,
		Image:          req.Image,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, product)
}

// UploadImage godoc
// @Summary Upload a product image (admin only)
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} UploadImageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/upload-image [post]
func (h *ProductHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.NewValidationError("image"))
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.NewValidationError("image"))
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	defer file.Close()

	url, err := h.catalog.UploadImage(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		file,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UploadImageResponse{ImageURL: url})
}
