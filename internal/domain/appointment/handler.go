package appointment

import (
	"net/http"
	"strconv"

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
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)
	api.POST("/appointments", h.Create)
	api.PUT("/appointments/:id", h.Update)
	api.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	crit := Criteria{Date: c.QueryParam("date")}
	if s := c.QueryParam("status"); s != "" {
		crit.Status = Status(s)
		if !crit.Status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
		}
	}
	if p := c.QueryParam("patientId"); p != "" {
		id, err := strconv.Atoi(p)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
		}
		crit.PatientID = id
	}
	if d := c.QueryParam("doctorId"); d != "" {
		id, err := strconv.Atoi(d)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctorId")
		}
		crit.DoctorID = id
	}
	return c.JSON(http.StatusOK, h.svc.Views(h.svc.Filter(crit)))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, h.svc.View(a))
}

func (h *Handler) Create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &a); err != nil {
		if record.IsPersistence(err) {
			return c.JSON(http.StatusCreated, saveWarning(h.svc.View(&a)))
		}
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, h.svc.View(&a))
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		if record.IsPersistence(err) {
			return c.JSON(http.StatusOK, saveWarning(h.svc.View(a)))
		}
		return domainError(err)
	}
	return c.JSON(http.StatusOK, h.svc.View(a))
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if record.IsPersistence(err) {
			return c.NoContent(http.StatusNoContent)
		}
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func domainError(err error) error {
	switch {
	case record.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case record.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func saveWarning(rec interface{}) map[string]interface{} {
	return map[string]interface{}{
		"record":  rec,
		"warning": "saved in memory only; persistence failed",
	}
}
