// Package transport defines the wire types for the quotes bounded context.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus defines the triage status of a persisted quote request.
// There is no enforced transition order; any status may be set from any other.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusCompleted QuoteStatus = "completed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// PreferredContact is how the visitor wants to be reached.
type PreferredContact string

const (
	ContactWhatsApp PreferredContact = "whatsapp"
	ContactEmail    PreferredContact = "email"
)

// Channel is the delivery path a quote request took.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// Attachment limits for the quote form.
const (
	// MaxImages caps how many attachments one request may carry.
	MaxImages = 5
	// MaxImageBytes is the size ceiling per source file.
	MaxImageBytes = 5 << 20
	// MaxImageDataURILen bounds the inline representation: base64 inflates
	// by 4/3 plus the data URI header.
	MaxImageDataURILen = MaxImageBytes/3*4 + 128
)

// =============================================================================
// Requests
// =============================================================================

// SubmitQuoteRequest is the public request body for both delivery channels.
// Images are inline data URIs produced by the form.
type SubmitQuoteRequest struct {
	Name             string   `json:"name" validate:"required,max=200"`
	Phone            string   `json:"phone" validate:"required,max=50"`
	Email            string   `json:"email" validate:"required_if=PreferredContact email,omitempty,email,max=320"`
	Location         string   `json:"location" validate:"omitempty,max=500"`
	Message          string   `json:"message" validate:"omitempty,max=5000"`
	Services         []string `json:"services" validate:"omitempty,max=12,dive,min=1,max=64"`
	PreferredContact string   `json:"preferredContact" validate:"required,oneof=whatsapp email"`
	Images           []string `json:"images" validate:"omitempty,max=5,dive,max=7000256"`
}

// UpdateStatusRequest is the admin request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted quoted completed cancelled"`
}

// =============================================================================
// Responses
// =============================================================================

// QuoteResponse is the admin-facing representation of a persisted quote.
type QuoteResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	Location         *string   `json:"location"`
	Message          *string   `json:"message"`
	Services         []string  `json:"services"`
	PreferredContact string    `json:"preferredContact"`
	Channel          string    `json:"channel"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SubmitEmailResponse confirms an email-channel submission.
type SubmitEmailResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}

// SubmitWhatsAppResponse carries the composed deep link back to the form,
// which opens it client-side.
type SubmitWhatsAppResponse struct {
	ID      uuid.UUID `json:"id"`
	AppLink string    `json:"appLink"`
	WebLink string    `json:"webLink"`
	Text    string    `json:"text"`
}
