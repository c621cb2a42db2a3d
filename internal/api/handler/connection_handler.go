package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// ConnectionHandler handles HTTP requests for tagged connections.
type ConnectionHandler struct {
	service ports.ConnectionService
}

func NewConnectionHandler(service ports.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{service: service}
}

// List handles GET /v1/connections.
//
// Query parameters mirror the popup's filter bar: `category` is a single
// category id or "all", `search` matches profile url, name and title, and
// `sort` is one of name|recent|category.
//
// @Summary      List connections with filtering and sorting
// @Tags         connections
// @Produce      json
// @Param        category  query     string  false  "Category id or 'all'"
// @Param        search    query     string  false  "Case-insensitive substring match"
// @Param        sort      query     string  false  "Sort key: name, recent or category"
// @Success      200       {object}  listConnectionsResponse
// @Failure      500       {object}  errorResponse
// @Router       /v1/connections [get]
func (h *ConnectionHandler) List(c echo.Context) error {
	connections, err := h.service.List(c.Request().Context(), ports.ListConnectionsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Sort:     domain.SortKey(c.QueryParam("sort")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listConnectionsResponse{
		Connections: connections,
		Total:       len(connections),
	})
}

// Save handles PUT /v1/connections/:id — the tagging panel's save button.
//
// @Summary      Create or replace a tagged connection
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Profile id (the /in/ path segment)"
// @Param        body  body      saveConnectionRequest  true  "Connection record"
// @Success      200   {object}  domain.Connection
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/connections/{id} [put]
func (h *ConnectionHandler) Save(c echo.Context) error {
	var req saveConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	conn, err := h.service.Upsert(c.Request().Context(), ports.UpsertConnectionInput{
		ID:         c.Param("id"),
		Name:       req.Name,
		Title:      req.Title,
		Avatar:     req.Avatar,
		ProfileURL: req.ProfileURL,
		Categories: req.Categories,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conn)
}
