package reporting

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultListLimit = 5

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard", h.Dashboard)
	api.GET("/reports", h.Report)
}

func (h *Handler) Dashboard(c echo.Context) error {
	limit := listLimit(c)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats":                h.svc.Dashboard(),
		"upcomingAppointments": h.svc.Upcoming(limit),
		"recentPatients":       h.svc.RecentPatients(limit),
	})
}

func (h *Handler) Report(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Report())
}

func listLimit(c echo.Context) int {
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultListLimit
}
