// Package repository provides Postgres persistence for quote requests.
package repository

import (
	"context"
	"errors"
	"time"

	"cleanquote_backend/internal/quotes/transport"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("quote not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Quote is a persisted quote request row.
type Quote struct {
	ID               uuid.UUID
	Name             string
	Phone            string
	Email            *string
	Location         *string
	Message          *string
	Services         []string
	PreferredContact string
	Channel          string
	Status           string
	CreatedAt        time.Time
}

// InsertParams carries the fields of a new quote row. Optional fields are
// nil when the visitor left them blank.
type InsertParams struct {
	Name             string
	Phone            string
	Email            *string
	Location         *string
	Message          *string
	Services         []string
	PreferredContact string
	Channel          string
}

// Insert stores a new quote with status pending and returns the full row.
func (r *Repository) Insert(ctx context.Context, params InsertParams) (Quote, error) {
	var q Quote
	err := r.pool.QueryRow(ctx, `
		INSERT INTO quotes (name, phone, email, location, message, services, preferred_contact, channel)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, phone, email, location, message, services, preferred_contact, channel, status, created_at
	`, params.Name, params.Phone, params.Email, params.Location, params.Message,
		params.Services, params.PreferredContact, params.Channel).Scan(
		&q.ID, &q.Name, &q.Phone, &q.Email, &q.Location, &q.Message,
		&q.Services, &q.PreferredContact, &q.Channel, &q.Status, &q.CreatedAt,
	)
	if err != nil {
		return Quote{}, err
	}
	return q, nil
}

// ListAll returns every quote, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]Quote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone, email, location, message, services, preferred_contact, channel, status, created_at
		FROM quotes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Quote, 0)
	for rows.Next() {
		var q Quote
		if err := rows.Scan(
			&q.ID, &q.Name, &q.Phone, &q.Email, &q.Location, &q.Message,
			&q.Services, &q.PreferredContact, &q.Channel, &q.Status, &q.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, q)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

// UpdateStatus sets the status of one quote.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status transport.QuoteStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE quotes SET status = $2 WHERE id = $1
	`, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns one quote.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Quote, error) {
	var q Quote
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, phone, email, location, message, services, preferred_contact, channel, status, created_at
		FROM quotes
		WHERE id = $1
	`, id).Scan(
		&q.ID, &q.Name, &q.Phone, &q.Email, &q.Location, &q.Message,
		&q.Services, &q.PreferredContact, &q.Channel, &q.Status, &q.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Quote{}, ErrNotFound
	}
	if err != nil {
		return Quote{}, err
	}
	return q, nil
}
