package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cleanquote_backend/internal/email"
	"cleanquote_backend/internal/quotes/repository"
	"cleanquote_backend/internal/quotes/service"
	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/platform/events"
	"cleanquote_backend/platform/logger"
	"cleanquote_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type memStore struct {
	quotes []repository.Quote
}

func (m *memStore) Insert(_ context.Context, params repository.InsertParams) (repository.Quote, error) {
	q := repository.Quote{
		ID:               uuid.New(),
		Name:             params.Name,
		Phone:            params.Phone,
		Email:            params.Email,
		Location:         params.Location,
		Message:          params.Message,
		Services:         params.Services,
		PreferredContact: params.PreferredContact,
		Channel:          params.Channel,
		Status:           string(transport.QuoteStatusPending),
		CreatedAt:        time.Now(),
	}
	m.quotes = append(m.quotes, q)
	return q, nil
}

func (m *memStore) ListAll(context.Context) ([]repository.Quote, error) {
	return m.quotes, nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (repository.Quote, error) {
	for _, q := range m.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return repository.Quote{}, repository.ErrNotFound
}

func (m *memStore) UpdateStatus(_ context.Context, id uuid.UUID, status transport.QuoteStatus) error {
	for i := range m.quotes {
		if m.quotes[i].ID == id {
			m.quotes[i].Status = string(status)
			return nil
		}
	}
	return repository.ErrNotFound
}

type noopSender struct{}

func (noopSender) SendQuoteRequestEmail(context.Context, string, email.QuoteRequestEmail, ...email.Attachment) error {
	return nil
}

type testBusinessConfig struct{}

func (testBusinessConfig) GetBusinessName() string      { return "Zibeon Cleaning Services" }
func (testBusinessConfig) GetSupportPhone() string      { return "076 714 9373" }
func (testBusinessConfig) GetSupportEmail() string      { return "info@example.com" }
func (testBusinessConfig) GetQuoteInboxAddress() string { return "quotes@example.com" }

func newTestRouter(t *testing.T) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{}
	log := logger.New("development")
	val := validator.New()
	svc := service.New(store, noopSender{}, testBusinessConfig{}, val, events.NewInMemoryBus(log), log)
	h := New(svc, val)

	engine := gin.New()
	h.RegisterPublicRoutes(engine.Group("/api/v1/quotes"))
	h.RegisterAdminRoutes(engine.Group("/api/v1/admin/quotes"))
	return engine, store
}

func TestSubmitWhatsAppEndpoint(t *testing.T) {
	engine, store := newTestRouter(t)

	body := `{"name":"Jane","phone":"076 123 4567","preferredContact":"whatsapp","services":["office"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/whatsapp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.SubmitWhatsAppResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.WebLink, "wa.me/27767149373") {
		t.Fatalf("unexpected link: %s", resp.WebLink)
	}
	if len(store.quotes) != 1 || store.quotes[0].Channel != "whatsapp" {
		t.Fatalf("record not persisted: %+v", store.quotes)
	}
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/email", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitRejectsInvalidRequest(t *testing.T) {
	engine, _ := newTestRouter(t)

	body := `{"name":"","phone":"0761234567","preferredContact":"whatsapp"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/whatsapp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	engine, store := newTestRouter(t)
	seeded, _ := store.Insert(context.Background(), repository.InsertParams{
		Name: "Jane", Phone: "+27761234567", PreferredContact: "whatsapp", Channel: "whatsapp",
		Services: []string{"Office Cleaning"},
	})

	body := `{"status":"contacted"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/quotes/"+seeded.ID.String()+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.quotes[0].Status != "contacted" {
		t.Fatalf("status not updated: %s", store.quotes[0].Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	engine, store := newTestRouter(t)
	seeded, _ := store.Insert(context.Background(), repository.InsertParams{
		Name: "Jane", Phone: "+27761234567", PreferredContact: "whatsapp", Channel: "whatsapp",
	})

	body := `{"status":"archived"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/quotes/"+seeded.ID.String()+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateStatusRejectsBadID(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/quotes/not-a-uuid/status", strings.NewReader(`{"status":"contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListEndpointReturnsNewestFirstPayload(t *testing.T) {
	engine, store := newTestRouter(t)
	store.Insert(context.Background(), repository.InsertParams{
		Name: "Jane", Phone: "+27761234567", PreferredContact: "whatsapp", Channel: "email",
		Services: []string{"Office Cleaning"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/quotes", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out []transport.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Jane" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}
