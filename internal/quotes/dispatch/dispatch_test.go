package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/internal/whatsapp"
	"cleanquote_backend/platform/logger"

	"github.com/google/uuid"
)

func TestComposeMessageOmitsEmailLineWhenEmpty(t *testing.T) {
	req := transport.SubmitQuoteRequest{
		Name:  "Jane",
		Phone: "0761234567",
	}
	text := ComposeMessage("Zibeon Cleaning Services", req, []string{"Office Cleaning"})

	for _, want := range []string{"Jane", "0761234567", "Not specified", "Office Cleaning"} {
		if !strings.Contains(text, want) {
			t.Fatalf("message missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "*Email:*") {
		t.Fatalf("message must omit the email line when no email was given:\n%s", text)
	}
}

func TestComposeMessageIncludesOptionalFields(t *testing.T) {
	req := transport.SubmitQuoteRequest{
		Name:     "Sam",
		Phone:    "0821112222",
		Email:    "sam@x.com",
		Location: "Sea Point, Cape Town",
		Message:  "Two bedrooms, weekly.",
	}
	text := ComposeMessage("Zibeon Cleaning Services", req, []string{"Residential / Home Cleaning"})

	for _, want := range []string{"*Email:* sam@x.com", "Sea Point, Cape Town", "*Additional Details:*", "Two bedrooms, weekly."} {
		if !strings.Contains(text, want) {
			t.Fatalf("message missing %q:\n%s", want, text)
		}
	}
}

type fakeEmailSubmitter struct {
	resp transport.SubmitEmailResponse
	err  error
	last *transport.SubmitQuoteRequest
}

func (f *fakeEmailSubmitter) SubmitEmailQuote(_ context.Context, req transport.SubmitQuoteRequest) (transport.SubmitEmailResponse, error) {
	f.last = &req
	return f.resp, f.err
}

type fakeWhatsAppSubmitter struct {
	resp transport.SubmitWhatsAppResponse
	err  error
}

func (f *fakeWhatsAppSubmitter) SubmitWhatsAppQuote(context.Context, transport.SubmitQuoteRequest) (transport.SubmitWhatsAppResponse, error) {
	return f.resp, f.err
}

type fakeLauncher struct {
	opened []whatsapp.Link
}

func (f *fakeLauncher) Open(link whatsapp.Link) { f.opened = append(f.opened, link) }

type testBusinessConfig struct{}

func (testBusinessConfig) GetBusinessName() string      { return "Zibeon Cleaning Services" }
func (testBusinessConfig) GetSupportPhone() string      { return "076 714 9373" }
func (testBusinessConfig) GetSupportEmail() string      { return "quotes@example.com" }
func (testBusinessConfig) GetQuoteInboxAddress() string { return "quotes@example.com" }

func TestEmailStrategyPropagatesFailure(t *testing.T) {
	submitter := &fakeEmailSubmitter{err: errors.New("send failed")}
	strategy := NewEmailStrategy(submitter)

	err := strategy.Dispatch(context.Background(), transport.SubmitQuoteRequest{Name: "Sam", Phone: "1"})
	if err == nil {
		t.Fatal("expected email failure to propagate")
	}
}

func TestEmailStrategySuccess(t *testing.T) {
	submitter := &fakeEmailSubmitter{resp: transport.SubmitEmailResponse{Success: true, ID: uuid.New()}}
	strategy := NewEmailStrategy(submitter)

	req := transport.SubmitQuoteRequest{Name: "Sam", Phone: "0821112222", Services: []string{"residential"}}
	if err := strategy.Dispatch(context.Background(), req); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if submitter.last == nil || submitter.last.Name != "Sam" {
		t.Fatal("request was not forwarded to the submitter")
	}
}

func TestWhatsAppStrategyOpensBackendLink(t *testing.T) {
	submitter := &fakeWhatsAppSubmitter{resp: transport.SubmitWhatsAppResponse{
		AppLink: "whatsapp://send?phone=27767149373&text=hi",
		WebLink: "https://wa.me/27767149373?text=hi",
	}}
	launcher := &fakeLauncher{}
	strategy := NewWhatsAppStrategy(submitter, launcher, testBusinessConfig{}, logger.New("development"))

	if err := strategy.Dispatch(context.Background(), transport.SubmitQuoteRequest{Name: "Jane", Phone: "0761234567"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(launcher.opened) != 1 {
		t.Fatalf("expected one open attempt, got %d", len(launcher.opened))
	}
	if launcher.opened[0].App != submitter.resp.AppLink {
		t.Fatalf("unexpected link opened: %+v", launcher.opened[0])
	}
}

func TestWhatsAppStrategyIsFireAndForgetOnRecordFailure(t *testing.T) {
	submitter := &fakeWhatsAppSubmitter{err: errors.New("store down")}
	launcher := &fakeLauncher{}
	strategy := NewWhatsAppStrategy(submitter, launcher, testBusinessConfig{}, logger.New("development"))

	err := strategy.Dispatch(context.Background(), transport.SubmitQuoteRequest{Name: "Jane", Phone: "0761234567"})
	if err != nil {
		t.Fatalf("deep-link dispatch has no failure channel, got %v", err)
	}
	if len(launcher.opened) != 1 {
		t.Fatal("link must still open when the record call fails")
	}
	if !strings.Contains(launcher.opened[0].App, "27767149373") {
		t.Fatalf("locally composed link must target the support phone: %s", launcher.opened[0].App)
	}
	if !strings.Contains(launcher.opened[0].App, "Jane") {
		t.Fatalf("locally composed link must carry the message text: %s", launcher.opened[0].App)
	}
}
