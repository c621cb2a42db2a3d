package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// TransferHandler exposes the full-fidelity backup download. The URL-only
// exports and the import path ride the message endpoint instead.
type TransferHandler struct {
	service ports.TransferService
}

func NewTransferHandler(service ports.TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Backup handles GET /v1/export/backup.
//
// @Summary      Download the full-fidelity backup
// @Tags         transfer
// @Produce      json
// @Success      200  {object}  object
// @Failure      500  {object}  errorResponse
// @Router       /v1/export/backup [get]
func (h *TransferHandler) Backup(c echo.Context) error {
	result, err := h.service.ExportBackup(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, result.Data)
}
