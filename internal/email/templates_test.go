package email

import (
	"strings"
	"testing"
)

func TestQuoteRequestTemplateEscapesHTML(t *testing.T) {
	content, err := renderEmailTemplate("quote_request.html", quoteRequestEmailData{
		baseEmailData: baseEmailData{Title: "New Quote Request", Heading: "New Quote Request"},
		QuoteRequestEmail: QuoteRequestEmail{
			Name:             "<script>alert(1)</script>",
			Phone:            "0761234567",
			Message:          `<img src=x onerror="steal()">`,
			Services:         []string{"Office Cleaning"},
			PreferredContact: "whatsapp",
			SubmittedAt:      "2026-08-29 10:00",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(content, "<script>") {
		t.Fatal("visitor input must not reach the email as live markup")
	}
	if !strings.Contains(content, "&lt;script&gt;") {
		t.Fatal("expected escaped script tag in rendered output")
	}
	if strings.Contains(content, `<img src=x`) {
		t.Fatal("message markup must be escaped")
	}
}

func TestQuoteRequestTemplateOmitsEmptyOptionalSections(t *testing.T) {
	content, err := renderEmailTemplate("quote_request.html", quoteRequestEmailData{
		baseEmailData: baseEmailData{Title: "New Quote Request", Heading: "New Quote Request"},
		QuoteRequestEmail: QuoteRequestEmail{
			Name:             "Jane",
			Phone:            "0761234567",
			Services:         []string{"General inquiry"},
			PreferredContact: "whatsapp",
			SubmittedAt:      "2026-08-29 10:00",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(content, ">Email<") {
		t.Fatal("email row must be omitted when the address is empty")
	}
	if !strings.Contains(content, "Not specified") {
		t.Fatal("empty location must render as Not specified")
	}
	if strings.Contains(content, "Additional details") {
		t.Fatal("details section must be omitted when the message is empty")
	}
	if !strings.Contains(content, "General inquiry") {
		t.Fatal("service list must render")
	}
}

func TestAttachmentsFromDataURIs(t *testing.T) {
	attachments := AttachmentsFromDataURIs([]string{
		"data:image/png;base64,YWJj",
		"not a data uri",
		"data:image/jpeg;base64,%%%",
		"data:image/jpeg;base64,ZGVm",
	})
	if len(attachments) != 2 {
		t.Fatalf("expected 2 decoded attachments, got %d", len(attachments))
	}
	if string(attachments[0].Content) != "abc" || attachments[0].MIMEType != "image/png" {
		t.Fatalf("unexpected first attachment: %+v", attachments[0])
	}
	if attachments[0].FileName != "photo-1.png" {
		t.Fatalf("unexpected filename: %s", attachments[0].FileName)
	}
	if string(attachments[1].Content) != "def" {
		t.Fatalf("unexpected second attachment: %+v", attachments[1])
	}
}
