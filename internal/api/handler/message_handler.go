package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// MessageHandler implements the cross-context message protocol: a single
// endpoint dispatching on an action discriminator, the way the extension
// contexts exchanged runtime messages. Action-level failures (nothing to
// export, no pending handoff) are reported in-band as {success:false, error}
// with a 200, because the caller treats them as outcomes, not faults. HTTP
// error codes are reserved for malformed requests and storage failures.
type MessageHandler struct {
	sync     ports.SyncService
	transfer ports.TransferService
	handoff  ports.HandoffStore
	log      zerolog.Logger
	now      func() time.Time
}

func NewMessageHandler(
	sync ports.SyncService,
	transfer ports.TransferService,
	handoff ports.HandoffStore,
	log zerolog.Logger,
) *MessageHandler {
	return &MessageHandler{
		sync:     sync,
		transfer: transfer,
		handoff:  handoff,
		log:      log,
		now:      time.Now,
	}
}

// Dispatch handles POST /v1/messages.
//
// @Summary      Dispatch a cross-context message action
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      messageRequest  true  "Action envelope"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Dispatch(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.log.Debug().Str("action", req.Action).Msg("message received")

	switch req.Action {
	case "login":
		token, err := h.sync.Login(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, messageResponse{Success: true, Token: token})

	case "syncConnections":
		connections, err := h.sync.Sync(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, messageResponse{Success: true, Connections: connections})

	case "exportData":
		result, err := h.transfer.ExportURLs(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, domain.ErrNothingToExport) {
				return c.JSON(http.StatusOK, messageResponse{
					Success: false,
					Error:   "no connections to export",
				})
			}
			return err
		}
		return c.JSON(http.StatusOK, messageResponse{
			Success:  true,
			Data:     result.Data,
			Filename: result.Filename,
			Count:    result.Count,
			Category: result.Category,
		})

	case "importData":
		if err := h.transfer.Import(ctx, req.Data); err != nil {
			if errors.Is(err, domain.ErrInvalidImport) {
				return c.JSON(http.StatusOK, messageResponse{
					Success: false,
					Error:   "invalid data format",
				})
			}
			return err
		}
		return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "data imported"})

	case "openCategoryModal":
		err := h.handoff.Put(ctx, domain.HandoffRequest{
			Timestamp:     h.now().UnixMilli(),
			FromProfileID: req.FromProfileID,
			ProfileData:   req.ProfileData,
			Source:        req.Source,
		})
		if err != nil {
			return err
		}
		// Best effort: nothing guarantees the popup ever reads the record.
		return c.JSON(http.StatusOK, messageResponse{
			Success: true,
			Message: "please click the extension icon to manage categories",
		})

	case "consumeCategoryModalRequest":
		request, err := h.handoff.Consume(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNoHandoffRequest) {
				return c.JSON(http.StatusOK, messageResponse{Success: false})
			}
			return err
		}
		return c.JSON(http.StatusOK, messageResponse{Success: true, Request: request})

	case "openPopup":
		// There is no programmatic way to open the popup; the user has to
		// click the icon. Reported in-band so the page adapter can fall
		// back to its own UI hint.
		return c.JSON(http.StatusOK, messageResponse{
			Success: false,
			Error:   "popup cannot be opened programmatically",
		})

	case "clearData":
		if err := h.transfer.ClearAll(ctx); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "all data cleared"})

	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action: "+req.Action)
	}
}
