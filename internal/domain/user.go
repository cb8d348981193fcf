package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Accounts are created and managed by the
// registration flow outside this service; here they are only counted
// for the homepage statistics.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
