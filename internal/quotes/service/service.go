// Package service holds the business logic of the quotes bounded context:
// accepting a quote request over either delivery channel, persisting it, and
// exposing the admin triage operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cleanquote_backend/internal/catalog"
	"cleanquote_backend/internal/email"
	"cleanquote_backend/internal/events"
	"cleanquote_backend/internal/quotes/dispatch"
	"cleanquote_backend/internal/quotes/repository"
	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/internal/whatsapp"
	"cleanquote_backend/platform/apperr"
	"cleanquote_backend/platform/config"
	"cleanquote_backend/platform/logger"
	"cleanquote_backend/platform/phone"
	"cleanquote_backend/platform/sanitize"
	"cleanquote_backend/platform/validator"

	"github.com/google/uuid"
)

// Store is the persistence surface the quotes service needs.
// Implemented by the pgx repository.
type Store interface {
	Insert(ctx context.Context, params repository.InsertParams) (repository.Quote, error)
	ListAll(ctx context.Context) ([]repository.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Quote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status transport.QuoteStatus) error
}

// Service provides business logic for quote requests.
type Service struct {
	store     Store
	sender    email.Sender
	business  config.BusinessConfig
	validator *validator.Validator
	bus       events.Bus
	log       *logger.Logger
}

// New creates a new quotes service.
func New(store Store, sender email.Sender, business config.BusinessConfig, v *validator.Validator, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		sender:    sender,
		business:  business,
		validator: v,
		bus:       bus,
		log:       log,
	}
}

// SubmitEmailQuote delivers a quote request to the business inbox and
// persists the record. Success means the email left; a record insert failure
// after delivery is logged but does not fail the submission, because the
// lead has already reached the business.
func (s *Service) SubmitEmailQuote(ctx context.Context, req transport.SubmitQuoteRequest) (transport.SubmitEmailResponse, error) {
	cleaned, err := s.cleanRequest(req)
	if err != nil {
		return transport.SubmitEmailResponse{}, err
	}

	names := catalog.ResolveNames(cleaned.Services)
	attachments := email.AttachmentsFromDataURIs(cleaned.Images)

	data := email.QuoteRequestEmail{
		Name:             cleaned.Name,
		Phone:            cleaned.Phone,
		Email:            cleaned.Email,
		Location:         cleaned.Location,
		Message:          cleaned.Message,
		Services:         names,
		PreferredContact: cleaned.PreferredContact,
		SubmittedAt:      time.Now().Format("2006-01-02 15:04"),
	}
	if err := s.sender.SendQuoteRequestEmail(ctx, s.business.GetQuoteInboxAddress(), data, attachments...); err != nil {
		s.log.DeliveryError("email", err)
		return transport.SubmitEmailResponse{}, apperr.Wrap(apperr.KindUnavailable, "quote request could not be delivered", err).WithOp("quotes.SubmitEmailQuote")
	}

	quote, err := s.store.Insert(ctx, insertParams(cleaned, names, transport.ChannelEmail))
	if err != nil {
		// The notification already reached the inbox. Losing the admin
		// record is worth an error log, not a visitor-facing failure.
		s.log.DatabaseError("quotes.insert", err)
		return transport.SubmitEmailResponse{Success: true}, nil
	}

	s.publishSubmitted(ctx, quote)
	return transport.SubmitEmailResponse{Success: true, ID: quote.ID}, nil
}

// SubmitWhatsAppQuote records a quote request for the deep-link channel and
// returns the composed click-to-chat link.
func (s *Service) SubmitWhatsAppQuote(ctx context.Context, req transport.SubmitQuoteRequest) (transport.SubmitWhatsAppResponse, error) {
	cleaned, err := s.cleanRequest(req)
	if err != nil {
		return transport.SubmitWhatsAppResponse{}, err
	}

	names := catalog.ResolveNames(cleaned.Services)

	quote, err := s.store.Insert(ctx, insertParams(cleaned, names, transport.ChannelWhatsApp))
	if err != nil {
		s.log.DatabaseError("quotes.insert", err)
		return transport.SubmitWhatsAppResponse{}, apperr.Wrap(apperr.KindInternal, "failed to record quote request", err).WithOp("quotes.SubmitWhatsAppQuote")
	}

	text := dispatch.ComposeMessage(s.business.GetBusinessName(), cleaned, names)
	link := whatsapp.BuildLink(s.business.GetSupportPhone(), text)

	s.publishSubmitted(ctx, quote)
	return transport.SubmitWhatsAppResponse{
		ID:      quote.ID,
		AppLink: link.App,
		WebLink: link.Web,
		Text:    text,
	}, nil
}

// ListQuotes returns every quote record, newest first.
func (s *Service) ListQuotes(ctx context.Context) ([]transport.QuoteResponse, error) {
	quotes, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list quotes", err).WithOp("quotes.ListQuotes")
	}
	out := make([]transport.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toResponse(q))
	}
	return out, nil
}

// GetQuote returns one quote record.
func (s *Service) GetQuote(ctx context.Context, id uuid.UUID) (transport.QuoteResponse, error) {
	quote, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.QuoteResponse{}, apperr.NotFound("quote not found")
		}
		return transport.QuoteResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load quote", err).WithOp("quotes.GetQuote")
	}
	return toResponse(quote), nil
}

// UpdateQuoteStatus moves one quote to a new status.
func (s *Service) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status transport.QuoteStatus) error {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("quote not found")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to load quote", err).WithOp("quotes.UpdateQuoteStatus")
	}

	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("quote not found")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to update quote status", err).WithOp("quotes.UpdateQuoteStatus")
	}

	s.bus.Publish(ctx, events.QuoteStatusChanged{
		BaseEvent: events.NewBaseEvent(),
		QuoteID:   id,
		OldStatus: current.Status,
		NewStatus: string(status),
	})
	return nil
}

// cleanRequest strips markup from the free-text fields, normalizes the phone
// number when it parses, and validates the result.
func (s *Service) cleanRequest(req transport.SubmitQuoteRequest) (transport.SubmitQuoteRequest, error) {
	req.Name = strings.TrimSpace(sanitize.Text(req.Name))
	req.Phone = phone.NormalizeE164(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Location = strings.TrimSpace(sanitize.Text(req.Location))
	req.Message = strings.TrimSpace(sanitize.Text(req.Message))

	if err := s.validator.Struct(req); err != nil {
		return transport.SubmitQuoteRequest{}, apperr.Wrap(apperr.KindValidation, fmt.Sprintf("invalid quote request: %v", err), err)
	}
	return req, nil
}

func (s *Service) publishSubmitted(ctx context.Context, quote repository.Quote) {
	s.bus.Publish(ctx, events.QuoteSubmitted{
		BaseEvent:        events.NewBaseEvent(),
		QuoteID:          quote.ID,
		Name:             quote.Name,
		Phone:            quote.Phone,
		Channel:          quote.Channel,
		PreferredContact: quote.PreferredContact,
		Services:         quote.Services,
	})
}

func insertParams(req transport.SubmitQuoteRequest, serviceNames []string, channel transport.Channel) repository.InsertParams {
	return repository.InsertParams{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            optional(req.Email),
		Location:         optional(req.Location),
		Message:          optional(req.Message),
		Services:         serviceNames,
		PreferredContact: req.PreferredContact,
		Channel:          string(channel),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toResponse(q repository.Quote) transport.QuoteResponse {
	return transport.QuoteResponse{
		ID:               q.ID,
		Name:             q.Name,
		Phone:            q.Phone,
		Email:            q.Email,
		Location:         q.Location,
		Message:          q.Message,
		Services:         q.Services,
		PreferredContact: q.PreferredContact,
		Channel:          q.Channel,
		Status:           q.Status,
		CreatedAt:        q.CreatedAt,
	}
}
