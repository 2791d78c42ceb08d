package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kronos/internal/auth"
	"kronos/internal/service"
)

// ProfileHandler handles the authenticated identity endpoint.
type ProfileHandler struct {
	roles service.RoleService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(roles service.RoleService) *ProfileHandler {
	return &ProfileHandler{roles: roles}
}

// MeResponse describes the authenticated user and their resolved role.
type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Me godoc
// @Summary Current user identity and role
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return err
	}

	// Display context: a failed role lookup degrades to "user", it never
	// errors the request.
	role := h.roles.Resolve(c.Request().Context(), claims.UserID)

	return c.JSON(http.StatusOK, MeResponse{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   string(role),
	})
}
