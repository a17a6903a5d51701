package appointment

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

const defaultUpcomingLimit = 5

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/appointments", h.list)
	g.POST("/appointments", h.create)
	g.GET("/appointments/upcoming", h.upcoming)
	g.GET("/appointments/:id", h.get)
	g.PUT("/appointments/:id", h.update)
	g.DELETE("/appointments/:id", h.delete)
}

func (h *Handler) list(c echo.Context) error {
	caller := auth.CallerFromContext(c.Request().Context())

	var (
		items []*Appointment
		err   error
	)
	if pid := c.QueryParam("patient_id"); pid != "" {
		patientID, perr := uuid.Parse(pid)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		items, err = h.svc.ListByPatient(c.Request().Context(), caller, patientID)
	} else {
		items, err = h.svc.List(c.Request().Context(), caller)
	}
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) upcoming(c echo.Context) error {
	caller := auth.CallerFromContext(c.Request().Context())

	limit := defaultUpcomingLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	items, err := h.svc.Upcoming(c.Request().Context(), caller, limit)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	a, err := h.svc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	if err := h.svc.Add(c.Request().Context(), caller, &a); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, &a)
}

func (h *Handler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	a, err := h.svc.Update(c.Request().Context(), caller, id, &patch)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), caller, id); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
