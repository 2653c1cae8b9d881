// Package adminview holds the state of the admin quote list: a loaded
// snapshot of quote records plus status mutations applied only after the
// backend confirms them.
package adminview

import (
	"context"

	"cleanquote_backend/internal/quotes/transport"

	"github.com/google/uuid"
)

// QuoteLister fetches the full list of quote records, newest first.
type QuoteLister interface {
	ListQuotes(ctx context.Context) ([]transport.QuoteResponse, error)
}

// StatusUpdater persists a status change for one quote.
type StatusUpdater interface {
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status transport.QuoteStatus) error
}

// View is the admin list state. Not safe for concurrent use; the host
// drives it from a single goroutine.
type View struct {
	lister  QuoteLister
	updater StatusUpdater

	records []transport.QuoteResponse
	loading bool
}

// New creates an empty view backed by the given data source.
func New(lister QuoteLister, updater StatusUpdater) *View {
	return &View{lister: lister, updater: updater}
}

// Refresh replaces the loaded records with a fresh snapshot. On failure the
// previously loaded records stay in place.
func (v *View) Refresh(ctx context.Context) error {
	v.loading = true
	defer func() { v.loading = false }()

	records, err := v.lister.ListQuotes(ctx)
	if err != nil {
		return err
	}
	v.records = records
	return nil
}

// Loading reports whether a refresh is in flight.
func (v *View) Loading() bool { return v.loading }

// Records returns the loaded snapshot.
func (v *View) Records() []transport.QuoteResponse { return v.records }

// SetStatus persists a status change and, once confirmed, applies it to the
// matching record in place. Every other record is left untouched, and a
// failed update leaves the whole snapshot as it was.
func (v *View) SetStatus(ctx context.Context, id uuid.UUID, status transport.QuoteStatus) error {
	if err := v.updater.UpdateQuoteStatus(ctx, id, status); err != nil {
		return err
	}
	for i := range v.records {
		if v.records[i].ID == id {
			v.records[i].Status = string(status)
			break
		}
	}
	return nil
}
