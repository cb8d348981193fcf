package domain

import "time"

// CategoryOther is the fallback category id for businesses without
// any category membership.
const CategoryOther = "other"

// Category represents a directory category. Category ids are stable
// string slugs (e.g. "restaurants", "wineries") rather than UUIDs so
// they can appear directly in public URLs.
type Category struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Icon        string    `json:"icon,omitempty" db:"icon"`
	Description string    `json:"description,omitempty" db:"description"`
	ParentID    *string   `json:"parent_id,omitempty" db:"parent_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CategoryWithCount is a Category annotated with the live number of
// verified businesses referencing it. Recomputed on every aggregation
// call; it has no lifecycle of its own.
type CategoryWithCount struct {
	Category
	BusinessCount int `json:"business_count" db:"business_count"`
}
