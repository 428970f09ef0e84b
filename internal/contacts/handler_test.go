package contacts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(NewMemoryRepo()))
	r := gin.New()
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestContactCRUDOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/contacts", `{
		"name": "Dana Reyes",
		"title": "Engineering Manager",
		"company": "Acme",
		"metAt": "devops meetup"
	}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created Contact
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	resp = doJSON(t, r, http.MethodGet, "/api/v1/contacts/"+created.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, r, http.MethodPut, "/api/v1/contacts/"+created.ID, `{"name": "Dana R.", "notes": "follow up"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated Contact
	if err := json.Unmarshal(resp.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Name != "Dana R." || updated.Notes != "follow up" {
		t.Fatalf("update not reflected: %+v", updated)
	}

	resp = doJSON(t, r, http.MethodGet, "/api/v1/contacts", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	var listBody struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listBody.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(listBody.Contacts))
	}

	resp = doJSON(t, r, http.MethodDelete, "/api/v1/contacts/"+created.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, r, http.MethodGet, "/api/v1/contacts/"+created.ID, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestContactCreateValidation(t *testing.T) {
	r := newTestRouter(t)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/contacts", `{"name": "  "}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", resp.Code)
	}

	resp = doJSON(t, r, http.MethodPost, "/api/v1/contacts", `not json`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}
}
