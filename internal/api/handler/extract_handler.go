package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talha-mahmood/Linkedin-list/internal/extractor"
)

// ExtractHandler runs the profile extractor against page HTML posted by the
// page adapter.
type ExtractHandler struct {
	extractor *extractor.Extractor
}

func NewExtractHandler(ex *extractor.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: ex}
}

// Extract handles POST /v1/extract.
//
// @Summary      Extract profile data from posted page HTML
// @Tags         extract
// @Accept       json
// @Produce      json
// @Param        body  body      extractRequest  true  "Page url and HTML"
// @Success      200   {object}  extractResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/extract [post]
func (h *ExtractHandler) Extract(c echo.Context) error {
	var req extractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profileID, err := extractor.ProfileID(req.URL)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "url does not point at a profile page")
	}

	profile, err := h.extractor.Extract(strings.NewReader(req.HTML))
	if err != nil {
		if errors.Is(err, extractor.ErrNoProfileData) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "no profile data found in document")
		}
		return err
	}

	return c.JSON(http.StatusOK, extractResponse{
		ProfileID: profileID,
		Profile:   profile,
	})
}
