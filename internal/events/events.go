// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"cleanquote_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	InMemoryBus = events.InMemoryBus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Quote Domain Events
// =============================================================================

// QuoteSubmitted is published when a quote request has been delivered and
// persisted. Channel is "email" or "whatsapp".
type QuoteSubmitted struct {
	BaseEvent
	QuoteID          uuid.UUID `json:"quoteId"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Channel          string    `json:"channel"`
	PreferredContact string    `json:"preferredContact"`
	Services         []string  `json:"services"`
}

func (e QuoteSubmitted) EventName() string { return "quotes.quote.submitted" }

// QuoteStatusChanged is published when an admin moves a quote to a new status.
type QuoteStatusChanged struct {
	BaseEvent
	QuoteID   uuid.UUID `json:"quoteId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
}

func (e QuoteStatusChanged) EventName() string { return "quotes.quote.status_changed" }
