package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	return NewHandler(newTestService(t)), echo.New()
}

func TestHandlerList(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 seeded patients, got %d", len(got))
	}
}

func TestHandlerListFiltered(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/patients?gender=Male&age=31-50", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, p := range got {
		if p.Gender != GenderMale || p.Age < 31 || p.Age > 50 {
			t.Errorf("filter leaked %+v", p)
		}
	}
}

func TestHandlerListRejectsBadBucket(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/patients?age=20-40", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerCreate(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"name":"Alice Brown","age":30,"gender":"Female","contact":"+1-555-0200","condition":"Dermatology"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var got Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID != 4 {
		t.Errorf("expected id 4, got %d", got.ID)
	}
	if got.LastVisit == "" {
		t.Error("expected lastVisit stamped")
	}
}

func TestHandlerCreateMissingField(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"age":30,"gender":"Female","contact":"+1-555-0200","condition":"Dermatology"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if msg, _ := he.Message.(string); msg != "name is required" {
		t.Errorf("expected first missing field named, got %v", he.Message)
	}
}

func TestHandlerUpdate(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"condition":"Oncology"}`
	req := httptest.NewRequest(http.MethodPut, "/patients/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Condition != "Oncology" || got.Name != "John Doe" {
		t.Errorf("unexpected update result: %+v", got)
	}
}

func TestHandlerDeleteMissing(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodDelete, "/patients/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
