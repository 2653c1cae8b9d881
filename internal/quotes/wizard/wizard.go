// Package wizard implements the three-step quote form session: service
// selection with optional photo attachments, contact details, confirmation.
// The wizard owns all form state and validation and terminates by handing a
// normalized request to a delivery dispatcher.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/platform/apperr"
)

// Step identifies the wizard's current screen.
type Step int

const (
	StepSelectServices Step = iota + 1
	StepContactDetails
	StepConfirmed
)

// Dispatcher delivers a completed quote request over one channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, req transport.SubmitQuoteRequest) error
}

// Notifier surfaces transient, non-fatal notices to the host UI.
type Notifier interface {
	Notify(title, detail string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, detail string)

// Notify calls the underlying function.
func (f NotifierFunc) Notify(title, detail string) { f(title, detail) }

// Wizard is one quote form session. All state is local to the session; there
// is no persistence of partial state, and resetting discards everything.
type Wizard struct {
	dispatcher Dispatcher
	notifier   Notifier
	onClose    func()

	step       Step
	submitting bool

	selected []string

	name             string
	phone            string
	email            string
	location         string
	message          string
	preferredContact transport.PreferredContact

	attachments []Attachment
}

// New creates a wizard at the service-selection step. onClose is invoked when
// the session is cancelled so the host can hide the form; it may be nil.
func New(dispatcher Dispatcher, notifier Notifier, onClose func()) *Wizard {
	if notifier == nil {
		notifier = NotifierFunc(func(string, string) {})
	}
	return &Wizard{
		dispatcher:       dispatcher,
		notifier:         notifier,
		onClose:          onClose,
		step:             StepSelectServices,
		preferredContact: transport.ContactWhatsApp,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Submitting reports whether a dispatch is in flight.
func (w *Wizard) Submitting() bool { return w.submitting }

// ToggleService adds the service ID to the selection, or removes it if
// already selected. An empty selection is allowed.
func (w *Wizard) ToggleService(id string) {
	for i, existing := range w.selected {
		if existing == id {
			w.selected = append(w.selected[:i], w.selected[i+1:]...)
			return
		}
	}
	w.selected = append(w.selected, id)
}

// SelectedServices returns the selected service IDs in toggle order.
func (w *Wizard) SelectedServices() []string {
	return append([]string(nil), w.selected...)
}

// SetContact fills the contact-details fields.
func (w *Wizard) SetContact(name, phone, email, location, message string) {
	w.name = name
	w.phone = phone
	w.email = email
	w.location = location
	w.message = message
}

// SetPreferredContact records how the visitor wants to be reached. It governs
// the email requirement at submit time.
func (w *Wizard) SetPreferredContact(pc transport.PreferredContact) {
	w.preferredContact = pc
}

// Continue advances from service selection to contact details. It is
// unconditional; selecting nothing is a general inquiry.
func (w *Wizard) Continue() {
	if w.step == StepSelectServices {
		w.step = StepContactDetails
	}
}

// Back returns from contact details to service selection.
func (w *Wizard) Back() {
	if w.step == StepContactDetails {
		w.step = StepSelectServices
	}
}

// AddFiles accepts files into the attachment list. Files over the size
// ceiling are rejected with a notification and no state change; accepted
// files beyond the attachment cap are silently truncated, earliest first.
// Accepted files are transcoded concurrently; AddFiles returns only when
// every preview is ready.
func (w *Wizard) AddFiles(ctx context.Context, files ...File) error {
	accepted := make([]File, 0, len(files))
	for _, f := range files {
		if oversize(f) {
			w.notifier.Notify("File too large", fmt.Sprintf("%s exceeds the 5 MB limit.", f.Name))
			continue
		}
		if len(w.attachments)+len(accepted) >= transport.MaxImages {
			break
		}
		accepted = append(accepted, f)
	}

	if len(accepted) == 0 {
		return nil
	}

	attachments, err := transcodeAll(ctx, accepted)
	if err != nil {
		return err
	}

	w.attachments = append(w.attachments, attachments...)
	return nil
}

// RemoveAttachment removes the attachment at index i. Out-of-range indexes
// are ignored. File and preview are removed in lockstep.
func (w *Wizard) RemoveAttachment(i int) {
	if i < 0 || i >= len(w.attachments) {
		return
	}
	w.attachments = append(w.attachments[:i], w.attachments[i+1:]...)
}

// Files returns the retained source files in order.
func (w *Wizard) Files() []File {
	files := make([]File, len(w.attachments))
	for i, att := range w.attachments {
		files[i] = att.File
	}
	return files
}

// Previews returns the inline previews in order.
func (w *Wizard) Previews() []string {
	previews := make([]string, len(w.attachments))
	for i, att := range w.attachments {
		previews[i] = att.Preview
	}
	return previews
}

// Submit validates the session and hands the normalized request to the
// dispatcher. On validation failure or dispatch failure the wizard stays on
// the contact-details step so the visitor can correct and resubmit; on
// success it advances to the confirmation step.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != StepContactDetails {
		return apperr.BadRequest("quote form is not ready to submit")
	}

	if err := w.validate(); err != nil {
		w.notifier.Notify("Missing information", err.Error())
		return err
	}

	req := transport.SubmitQuoteRequest{
		Name:             strings.TrimSpace(w.name),
		Phone:            strings.TrimSpace(w.phone),
		Email:            strings.TrimSpace(w.email),
		Location:         strings.TrimSpace(w.location),
		Message:          strings.TrimSpace(w.message),
		Services:         w.SelectedServices(),
		PreferredContact: string(w.preferredContact),
		Images:           w.Previews(),
	}

	w.submitting = true
	err := w.dispatcher.Dispatch(ctx, req)
	w.submitting = false

	if err != nil {
		w.notifier.Notify("Could not send your request", "Please try again.")
		return err
	}

	w.step = StepConfirmed
	return nil
}

// Cancel discards all fields, selections, and attachments, returns to the
// first step, and notifies the host to hide the form.
func (w *Wizard) Cancel() {
	w.reset()
	if w.onClose != nil {
		w.onClose()
	}
}

func (w *Wizard) reset() {
	w.step = StepSelectServices
	w.submitting = false
	w.selected = nil
	w.name = ""
	w.phone = ""
	w.email = ""
	w.location = ""
	w.message = ""
	w.preferredContact = transport.ContactWhatsApp
	w.attachments = nil
}

func (w *Wizard) validate() error {
	if strings.TrimSpace(w.name) == "" || strings.TrimSpace(w.phone) == "" {
		return apperr.Validation("name and phone number are required")
	}
	if w.preferredContact == transport.ContactEmail && strings.TrimSpace(w.email) == "" {
		return apperr.Validation("an email address is required for email contact")
	}
	return nil
}
