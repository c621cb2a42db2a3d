package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// SessionHandler exposes the session view the popup renders on open.
type SessionHandler struct {
	service ports.SyncService
}

func NewSessionHandler(service ports.SyncService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Get handles GET /v1/session.
//
// @Summary      Read the current session flags
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	status, err := h.service.Status(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		LoggedIn: status.LoggedIn,
		LastSync: status.LastSync,
	})
}
