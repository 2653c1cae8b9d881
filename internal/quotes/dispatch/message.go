package dispatch

import (
	"strings"

	"cleanquote_backend/internal/quotes/transport"
)

const notSpecified = "Not specified"

// ComposeMessage builds the prefilled WhatsApp text block for a quote
// request. serviceNames are already resolved to display names (with the
// general-inquiry fallback applied). The email line is omitted entirely when
// no email was given; location falls back to a placeholder.
func ComposeMessage(businessName string, req transport.SubmitQuoteRequest, serviceNames []string) string {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = notSpecified
	}

	var b strings.Builder
	b.WriteString("Hi " + businessName + "!\n\n")
	b.WriteString("I'd like to request a quote.\n\n")
	b.WriteString("*Name:* " + req.Name + "\n")
	b.WriteString("*Phone:* " + req.Phone + "\n")
	if req.Email != "" {
		b.WriteString("*Email:* " + req.Email + "\n")
	}
	b.WriteString("*Location:* " + location + "\n\n")
	b.WriteString("*Services Needed:*\n")
	b.WriteString(strings.Join(serviceNames, ", "))
	b.WriteString("\n")
	if strings.TrimSpace(req.Message) != "" {
		b.WriteString("\n*Additional Details:*\n" + req.Message + "\n")
	}
	b.WriteString("\nPlease contact me with a quote. Thank you!")

	return b.String()
}
