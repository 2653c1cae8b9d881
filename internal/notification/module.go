// Package notification provides event handlers that deliver notifications in
// response to domain events. Deep-link submissions never pass through the
// email pipeline, so this module sends the business a courtesy copy when a
// WhatsApp-channel quote is recorded.
package notification

import (
	"context"
	"time"

	"cleanquote_backend/internal/email"
	"cleanquote_backend/internal/events"
	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/platform/config"
	"cleanquote_backend/platform/logger"

	"github.com/google/uuid"
)

// QuoteReader loads a quote record for notification rendering.
type QuoteReader interface {
	GetQuote(ctx context.Context, id uuid.UUID) (transport.QuoteResponse, error)
}

// Module subscribes to quote events and sends notifications.
type Module struct {
	sender   email.Sender
	quotes   QuoteReader
	business config.BusinessConfig
	log      *logger.Logger
}

// NewModule creates a new notification module.
func NewModule(sender email.Sender, quotes QuoteReader, business config.BusinessConfig, log *logger.Logger) *Module {
	return &Module{
		sender:   sender,
		quotes:   quotes,
		business: business,
		log:      log,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string { return "notification" }

// RegisterHandlers subscribes this module to the event types it handles.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.QuoteSubmitted{}.EventName(), m)
	bus.Subscribe(events.QuoteStatusChanged{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.QuoteSubmitted:
		return m.handleQuoteSubmitted(ctx, e)
	case events.QuoteStatusChanged:
		m.log.Info("quote status changed",
			"quoteId", e.QuoteID.String(),
			"from", e.OldStatus,
			"to", e.NewStatus)
		return nil
	default:
		return nil
	}
}

func (m *Module) handleQuoteSubmitted(ctx context.Context, e events.QuoteSubmitted) error {
	if e.Channel != string(transport.ChannelWhatsApp) {
		// Email-channel submissions already reached the inbox.
		return nil
	}

	quote, err := m.quotes.GetQuote(ctx, e.QuoteID)
	if err != nil {
		m.log.Error("failed to load quote for courtesy copy", "quoteId", e.QuoteID.String(), "error", err)
		return err
	}

	data := email.QuoteRequestEmail{
		Name:             quote.Name,
		Phone:            quote.Phone,
		Email:            deref(quote.Email),
		Location:         deref(quote.Location),
		Message:          deref(quote.Message),
		Services:         quote.Services,
		PreferredContact: quote.PreferredContact,
		SubmittedAt:      quote.CreatedAt.Format(time.DateTime),
	}
	if err := m.sender.SendQuoteRequestEmail(ctx, m.business.GetQuoteInboxAddress(), data); err != nil {
		m.log.DeliveryError("email", err)
		return err
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Compile-time check that Module implements events.Handler
var _ events.Handler = (*Module)(nil)
