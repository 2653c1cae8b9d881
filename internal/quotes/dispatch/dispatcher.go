// Package dispatch encapsulates the two ways a completed quote request
// reaches the business: a WhatsApp deep-link handoff with a timed web
// fallback, and a backend call that renders and sends an HTML email.
package dispatch

import (
	"context"

	"cleanquote_backend/internal/catalog"
	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/internal/whatsapp"
	"cleanquote_backend/platform/config"
	"cleanquote_backend/platform/logger"
)

// EmailSubmitter sends a quote request through the email channel and
// persists the resulting record.
type EmailSubmitter interface {
	SubmitEmailQuote(ctx context.Context, req transport.SubmitQuoteRequest) (transport.SubmitEmailResponse, error)
}

// WhatsAppSubmitter records a quote request for the deep-link channel and
// returns the composed link.
type WhatsAppSubmitter interface {
	SubmitWhatsAppQuote(ctx context.Context, req transport.SubmitQuoteRequest) (transport.SubmitWhatsAppResponse, error)
}

// LinkLauncher opens a composed link in the host environment.
type LinkLauncher interface {
	Open(link whatsapp.Link)
}

// EmailStrategy delivers through the backend email call and awaits the
// result. Failures propagate to the caller so the form stays retryable.
type EmailStrategy struct {
	submitter EmailSubmitter
}

// NewEmailStrategy creates the email delivery strategy.
func NewEmailStrategy(submitter EmailSubmitter) *EmailStrategy {
	return &EmailStrategy{submitter: submitter}
}

// Dispatch submits the request over the email channel.
func (s *EmailStrategy) Dispatch(ctx context.Context, req transport.SubmitQuoteRequest) error {
	_, err := s.submitter.SubmitEmailQuote(ctx, req)
	return err
}

// WhatsAppStrategy delivers by opening a click-to-chat link. The backend is
// asked to record the lead and compose the link first; if that call fails the
// link is composed locally so the handoff still happens. Once the open
// attempt is issued the dispatch reports success unconditionally.
type WhatsAppStrategy struct {
	submitter WhatsAppSubmitter
	launcher  LinkLauncher
	business  config.BusinessConfig
	log       *logger.Logger
}

// NewWhatsAppStrategy creates the deep-link delivery strategy.
func NewWhatsAppStrategy(submitter WhatsAppSubmitter, launcher LinkLauncher, business config.BusinessConfig, log *logger.Logger) *WhatsAppStrategy {
	return &WhatsAppStrategy{
		submitter: submitter,
		launcher:  launcher,
		business:  business,
		log:       log,
	}
}

// Dispatch records the lead, then opens the deep link. Fire-and-forget:
// there is no failure channel on this path.
func (s *WhatsAppStrategy) Dispatch(ctx context.Context, req transport.SubmitQuoteRequest) error {
	var link whatsapp.Link

	resp, err := s.submitter.SubmitWhatsAppQuote(ctx, req)
	if err != nil {
		if s.log != nil {
			s.log.DeliveryError("whatsapp_record", err)
		}
		names := catalog.ResolveNames(req.Services)
		text := ComposeMessage(s.business.GetBusinessName(), req, names)
		link = whatsapp.BuildLink(s.business.GetSupportPhone(), text)
	} else {
		link = whatsapp.Link{App: resp.AppLink, Web: resp.WebLink}
	}

	s.launcher.Open(link)
	return nil
}
