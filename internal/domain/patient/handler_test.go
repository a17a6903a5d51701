package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentflow/dentflow/internal/platform/auth"
)

func setupHandler(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()
	e := echo.New()
	svc := NewService(newMockRepo())
	NewHandler(svc).RegisterRoutes(e.Group("/api/v1"))
	return e, svc
}

func doRequest(e *echo.Echo, caller *auth.User, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if caller != nil {
		req = req.WithContext(auth.WithCaller(req.Context(), caller))
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreateAndGet(t *testing.T) {
	e, _ := setupHandler(t)

	rec := doRequest(e, alice, http.MethodPost, "/api/v1/patients",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /patients = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("created patient has no id")
	}

	rec = doRequest(e, alice, http.MethodGet, "/api/v1/patients/"+created.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /patients/:id = %d, want 200", rec.Code)
	}
	var got Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.FirstName != "Jane" || got.LastName != "Doe" {
		t.Fatalf("got %q %q, want Jane Doe", got.FirstName, got.LastName)
	}
}

func TestHandlerUnauthenticated(t *testing.T) {
	e, _ := setupHandler(t)
	rec := doRequest(e, nil, http.MethodGet, "/api/v1/patients", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /patients without caller = %d, want 401", rec.Code)
	}
}

func TestHandlerCrossTenantForbidden(t *testing.T) {
	e, _ := setupHandler(t)

	rec := doRequest(e, alice, http.MethodPost, "/api/v1/patients",
		`{"firstName":"Jane","lastName":"Doe"}`)
	var created Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	rec = doRequest(e, bob, http.MethodGet, "/api/v1/patients/"+created.ID.String(), "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("GET other owner's patient = %d, want 403", rec.Code)
	}
}

func TestHandlerValidationAndMissingRows(t *testing.T) {
	e, _ := setupHandler(t)

	rec := doRequest(e, alice, http.MethodPost, "/api/v1/patients", `{"firstName":"Jane"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST without lastName = %d, want 400", rec.Code)
	}

	rec = doRequest(e, alice, http.MethodGet, "/api/v1/patients/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("GET with bad id = %d, want 400", rec.Code)
	}

	rec = doRequest(e, alice, http.MethodGet, "/api/v1/patients/"+uuid.NewString(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET unknown id = %d, want 404", rec.Code)
	}
}

func TestHandlerListEmpty(t *testing.T) {
	e, _ := setupHandler(t)
	rec := doRequest(e, alice, http.MethodGet, "/api/v1/patients", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /patients = %d, want 200", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty list body = %q, want []", rec.Body.String())
	}
}

func TestHandlerDelete(t *testing.T) {
	e, _ := setupHandler(t)

	rec := doRequest(e, alice, http.MethodPost, "/api/v1/patients",
		`{"firstName":"Jane","lastName":"Doe"}`)
	var created Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	rec = doRequest(e, alice, http.MethodDelete, "/api/v1/patients/"+created.ID.String(), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE = %d, want 204", rec.Code)
	}
	rec = doRequest(e, alice, http.MethodDelete, "/api/v1/patients/"+created.ID.String(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second DELETE = %d, want 404", rec.Code)
	}
}
