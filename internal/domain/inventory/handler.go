package inventory

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/inventory", h.list)
	g.POST("/inventory", h.create)
	g.GET("/inventory/low-stock", h.lowStock)
	g.GET("/inventory/expiring", h.expiring)
	g.GET("/inventory/sku", h.nextSKU)
	g.GET("/inventory/:id", h.get)
	g.PUT("/inventory/:id", h.update)
	g.DELETE("/inventory/:id", h.delete)
	g.POST("/inventory/:id/restock", h.restock)
	g.POST("/inventory/:id/consume", h.consume)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) list(c echo.Context) error {
	caller := auth.CallerFromContext(c.Request().Context())
	items, err := h.svc.List(c.Request().Context(), caller)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if items == nil {
		items = []*Item{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) lowStock(c echo.Context) error {
	caller := auth.CallerFromContext(c.Request().Context())
	items, err := h.svc.LowStock(c.Request().Context(), caller)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if items == nil {
		items = []*Item{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) expiring(c echo.Context) error {
	caller := auth.CallerFromContext(c.Request().Context())

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid days")
		}
		days = n
	}

	items, err := h.svc.Expiring(c.Request().Context(), caller, days)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if items == nil {
		items = []*Item{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) nextSKU(c echo.Context) error {
	caller := auth.CallerFromContext(c.Request().Context())
	sku, err := h.svc.NextSKU(c.Request().Context(), caller, c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"sku": sku})
}

func (h *Handler) get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	it, err := h.svc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) create(c echo.Context) error {
	var it Item
	if err := c.Bind(&it); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	if err := h.svc.Add(c.Request().Context(), caller, &it); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, &it)
}

func (h *Handler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	it, err := h.svc.Update(c.Request().Context(), caller, id, &patch)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), caller, id); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) restock(c echo.Context) error {
	return h.adjust(c, h.svc.Restock)
}

func (h *Handler) consume(c echo.Context) error {
	return h.adjust(c, h.svc.Consume)
}

func (h *Handler) adjust(c echo.Context, op func(ctx context.Context, caller *auth.User, id uuid.UUID, qty int) (*Item, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	it, err := op(c.Request().Context(), caller, id, req.Quantity)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, it)
}
