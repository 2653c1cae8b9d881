// Package whatsapp builds WhatsApp click-to-chat links and drives the
// best-effort app-open heuristic with its web fallback.
package whatsapp

import (
	"net/url"
	"strings"

	"cleanquote_backend/platform/phone"
)

// Link holds the two forms of a click-to-chat URI: the native app scheme
// and the wa.me web endpoint used as fallback.
type Link struct {
	App string
	Web string
}

// BuildLink composes the app-scheme and web URIs for the given destination
// number and prefilled text. The phone number is reduced to bare digits
// before interpolation; empty text omits the text parameter entirely.
func BuildLink(phoneNumber, text string) Link {
	digits := phone.WhatsAppNumber(phoneNumber)
	encoded := encodeComponent(text)

	app := "whatsapp://send?phone=" + digits
	web := "https://wa.me/" + digits
	if text != "" {
		app += "&text=" + encoded
		web += "?text=" + encoded
	}

	return Link{App: app, Web: web}
}

// encodeComponent percent-encodes text the way browsers do for URI
// components: spaces become %20, not +.
func encodeComponent(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
