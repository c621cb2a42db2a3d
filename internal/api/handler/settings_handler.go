package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// SettingsHandler handles HTTP requests for user preferences.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /v1/settings.
//
// @Summary      Read user preferences
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Settings
// @Failure      500  {object}  errorResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PUT /v1/settings.
//
// @Summary      Update the theme
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      settingsRequest  true  "Settings"
// @Success      200   {object}  domain.Settings
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	settings, err := h.service.UpdateTheme(c.Request().Context(), req.Theme)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
