package prefs

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinichq/hms/internal/domain/record"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/settings/theme", h.Get)
	api.PUT("/settings/theme", h.Set)
}

type themePayload struct {
	Theme Theme `json:"theme"`
}

func (h *Handler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, themePayload{Theme: h.svc.Theme()})
}

func (h *Handler) Set(c echo.Context) error {
	var body themePayload
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SetTheme(c.Request().Context(), body.Theme); err != nil {
		if record.IsPersistence(err) {
			return c.JSON(http.StatusOK, map[string]interface{}{
				"theme":   h.svc.Theme(),
				"warning": "saved in memory only; persistence failed",
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, themePayload{Theme: h.svc.Theme()})
}
