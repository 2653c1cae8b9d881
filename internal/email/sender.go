package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"cleanquote_backend/platform/config"
)

// Attachment represents a file attachment for an email.
type Attachment struct {
	Content  []byte // raw file bytes
	FileName string // e.g. "photo-1.jpg"
	MIMEType string // e.g. "image/jpeg"
}

// QuoteRequestEmail carries the rendered fields of a quote request
// notification to the business inbox.
type QuoteRequestEmail struct {
	Name             string
	Phone            string
	Email            string
	Location         string
	Message          string
	Services         []string
	PreferredContact string
	SubmittedAt      string
}

type Sender interface {
	SendQuoteRequestEmail(ctx context.Context, toEmail string, data QuoteRequestEmail, attachments ...Attachment) error
}

type NoopSender struct{}

func (NoopSender) SendQuoteRequestEmail(ctx context.Context, toEmail string, data QuoteRequestEmail, attachments ...Attachment) error {
	return nil
}

// NewSender picks the delivery backend from config. Disabled email yields a
// NoopSender so the rest of the pipeline keeps working in development.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	switch cfg.GetEmailProvider() {
	case "resend":
		return NewResendSender(cfg), nil
	case "smtp":
		return NewSMTPSender(
			cfg.GetSMTPHost(), cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(), cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(), cfg.GetEmailFromName(),
		), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.GetEmailProvider())
	}
}

// AttachmentsFromDataURIs decodes inline base64 data URIs into attachments.
// Entries that do not parse are skipped; a malformed image is not worth
// failing the whole notification over.
func AttachmentsFromDataURIs(uris []string) []Attachment {
	attachments := make([]Attachment, 0, len(uris))
	for i, uri := range uris {
		rest, ok := strings.CutPrefix(uri, "data:")
		if !ok {
			continue
		}
		header, payload, ok := strings.Cut(rest, ",")
		if !ok {
			continue
		}
		mimeType, found := strings.CutSuffix(header, ";base64")
		if !found {
			continue
		}
		content, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			continue
		}
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		attachments = append(attachments, Attachment{
			Content:  content,
			FileName: fmt.Sprintf("photo-%d%s", i+1, extensionFor(mimeType)),
			MIMEType: mimeType,
		})
	}
	return attachments
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}
