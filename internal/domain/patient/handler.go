package patient

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
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
	api.POST("/patients", h.Create)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	crit := Criteria{
		Search:    c.QueryParam("search"),
		Condition: c.QueryParam("condition"),
	}
	if g := c.QueryParam("gender"); g != "" {
		crit.Gender = Gender(g)
		if !crit.Gender.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid gender")
		}
	}
	if a := c.QueryParam("age"); a != "" {
		crit.AgeBucket = AgeBucket(a)
		if !crit.AgeBucket.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid age bucket")
		}
	}
	return c.JSON(http.StatusOK, h.svc.Filter(crit))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		if record.IsPersistence(err) {
			return c.JSON(http.StatusCreated, saveWarning(p))
		}
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, p)
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
	p, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		if record.IsPersistence(err) {
			return c.JSON(http.StatusOK, saveWarning(*p))
		}
		return domainError(err)
	}
	return c.JSON(http.StatusOK, p)
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

// domainError maps core error kinds onto HTTP statuses.
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

// saveWarning wraps a record that mutated in memory but failed to persist.
// The caller may retry the save or warn the user that the change may not
// survive a restart.
func saveWarning(rec interface{}) map[string]interface{} {
	return map[string]interface{}{
		"record":  rec,
		"warning": "saved in memory only; persistence failed",
	}
}
