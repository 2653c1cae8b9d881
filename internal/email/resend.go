package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cleanquote_backend/platform/config"
)

// ResendSender delivers through the Resend HTTP API.
type ResendSender struct {
	apiKey    string
	fromName  string
	fromEmail string
	client    *http.Client
}

type resendAttachment struct {
	Content  string `json:"content"` // base64-encoded file content
	Filename string `json:"filename"`
}

type resendEmailRequest struct {
	From        string             `json:"from"`
	To          []string           `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

func NewResendSender(cfg config.EmailConfig) *ResendSender {
	return &ResendSender{
		apiKey:    cfg.GetResendAPIKey(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *ResendSender) SendQuoteRequestEmail(ctx context.Context, toEmail string, data QuoteRequestEmail, attachments ...Attachment) error {
	subject := fmt.Sprintf(subjectQuoteRequestFmt, data.Name, strings.Join(data.Services, ", "))
	content, err := renderEmailTemplate("quote_request.html", quoteRequestEmailData{
		baseEmailData: baseEmailData{
			Title:   "New Quote Request",
			Heading: "New Quote Request",
		},
		QuoteRequestEmail: data,
		HasAttachments:    len(attachments) > 0,
	})
	if err != nil {
		return err
	}
	return r.send(ctx, toEmail, subject, content, attachments...)
}

func (r *ResendSender) send(ctx context.Context, toEmail, subject, htmlContent string, attachments ...Attachment) error {
	payload := resendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", r.fromName, r.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		HTML:    htmlContent,
	}

	for _, att := range attachments {
		payload.Attachments = append(payload.Attachments, resendAttachment{
			Content:  base64.StdEncoding.EncodeToString(att.Content),
			Filename: att.FileName,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend send failed: status %d: %s", resp.StatusCode, string(data))
	}

	return nil
}
