package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"verzeichnis/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]*domain.Event, int, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	CountPublished(ctx context.Context) (int, error)
}

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new instance of EventRepository
func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `
	id, business_id, title, description, date_start, date_end,
	location, address, image_url, is_published, created_at, updated_at
`

// ListUpcoming retrieves published events starting at or after now,
// soonest first, with the exact pre-pagination total. The caller passes
// now so the cutoff is re-evaluated on every call and never goes stale.
func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]*domain.Event, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM events
		WHERE is_published = TRUE AND date_start >= $1
	`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, now).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count upcoming events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE is_published = TRUE AND date_start >= $1
		ORDER BY date_start ASC, id ASC
		LIMIT $2 OFFSET $3
	`, eventColumns)

	rows, err := r.db.QueryContext(ctx, query, now, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	defer rows.Close()

	events, err := collectEvents(rows)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// ListByDateRange retrieves published events starting within [from, to]
func (r *eventRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE is_published = TRUE AND date_start >= $1 AND date_start <= $2
		ORDER BY date_start ASC, id ASC
	`, eventColumns)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by date: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// FindByID retrieves a single event
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID: %w", err)
	}

	return event, nil
}

// CountPublished returns the number of published events
func (r *eventRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events WHERE is_published = TRUE").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count published events: %w", err)
	}
	return count, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	event := &domain.Event{}
	var address, imageURL sql.NullString

	err := row.Scan(
		&event.ID,
		&event.BusinessID,
		&event.Title,
		&event.Description,
		&event.DateStart,
		&event.DateEnd,
		&event.Location,
		&address,
		&imageURL,
		&event.IsPublished,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Address = address.String
	event.ImageURL = imageURL.String

	return event, nil
}
