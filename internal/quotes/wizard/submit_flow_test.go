package wizard

import (
	"context"
	"testing"
	"time"

	"cleanquote_backend/internal/email"
	"cleanquote_backend/internal/quotes/dispatch"
	"cleanquote_backend/internal/quotes/repository"
	"cleanquote_backend/internal/quotes/service"
	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/platform/events"
	"cleanquote_backend/platform/logger"
	"cleanquote_backend/platform/validator"

	"github.com/google/uuid"
)

type flowStore struct {
	inserted []repository.InsertParams
}

func (s *flowStore) Insert(_ context.Context, params repository.InsertParams) (repository.Quote, error) {
	s.inserted = append(s.inserted, params)
	return repository.Quote{
		ID:               uuid.New(),
		Name:             params.Name,
		Phone:            params.Phone,
		Services:         params.Services,
		PreferredContact: params.PreferredContact,
		Channel:          params.Channel,
		Status:           string(transport.QuoteStatusPending),
		CreatedAt:        time.Now(),
	}, nil
}

func (s *flowStore) ListAll(context.Context) ([]repository.Quote, error) { return nil, nil }

func (s *flowStore) GetByID(context.Context, uuid.UUID) (repository.Quote, error) {
	return repository.Quote{}, repository.ErrNotFound
}

func (s *flowStore) UpdateStatus(context.Context, uuid.UUID, transport.QuoteStatus) error {
	return nil
}

type flowSender struct {
	last email.QuoteRequestEmail
}

func (s *flowSender) SendQuoteRequestEmail(_ context.Context, _ string, data email.QuoteRequestEmail, _ ...email.Attachment) error {
	s.last = data
	return nil
}

type flowBusinessConfig struct{}

func (flowBusinessConfig) GetBusinessName() string      { return "Zibeon Cleaning Services" }
func (flowBusinessConfig) GetSupportPhone() string      { return "076 714 9373" }
func (flowBusinessConfig) GetSupportEmail() string      { return "info@example.com" }
func (flowBusinessConfig) GetQuoteInboxAddress() string { return "quotes@example.com" }

func TestEmailSubmissionEndToEnd(t *testing.T) {
	store := &flowStore{}
	sender := &flowSender{}
	log := logger.New("development")
	svc := service.New(store, sender, flowBusinessConfig{}, validator.New(), events.NewInMemoryBus(log), log)
	strategy := dispatch.NewEmailStrategy(svc)

	w := New(strategy, nil, nil)
	w.ToggleService("residential")
	w.Continue()
	w.SetContact("Sam", "0821112222", "sam@x.com", "", "")
	w.SetPreferredContact(transport.ContactEmail)

	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if w.Step() != StepConfirmed {
		t.Fatalf("wizard did not confirm, step=%d", w.Step())
	}

	if len(sender.last.Services) != 1 || sender.last.Services[0] != "Residential / Home Cleaning" {
		t.Fatalf("remote call did not resolve service names: %v", sender.last.Services)
	}
	if len(store.inserted) != 1 || store.inserted[0].Name != "Sam" {
		t.Fatalf("record not persisted: %+v", store.inserted)
	}
	if store.inserted[0].Phone != "+27821112222" {
		t.Fatalf("phone not normalized: %s", store.inserted[0].Phone)
	}
}
