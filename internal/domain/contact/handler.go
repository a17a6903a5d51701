package contact

import (
	"net/http"

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

// RegisterRoutes mounts the public submission endpoints. These sit outside
// the authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/contact", h.contact)
	g.POST("/feedback", h.feedback)
}

func (h *Handler) contact(c echo.Context) error {
	var m Message
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	if err := h.svc.AddMessage(c.Request().Context(), caller, &m); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, &m)
}

func (h *Handler) feedback(c echo.Context) error {
	var f Feedback
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	caller := auth.CallerFromContext(c.Request().Context())
	if err := h.svc.AddFeedback(c.Request().Context(), caller, &f); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, &f)
}
