package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a business event. Only published events whose start
// timestamp is at or after the current time count as "upcoming".
type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	BusinessID  uuid.UUID `json:"business_id" db:"business_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DateStart   time.Time `json:"date_start" db:"date_start"`
	DateEnd     time.Time `json:"date_end" db:"date_end"`
	Location    string    `json:"location" db:"location"`
	Address     string    `json:"address,omitempty" db:"address"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsUpcoming reports whether the event is published and starts at or
// after the given reference time.
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.IsPublished && !e.DateStart.Before(now)
}
