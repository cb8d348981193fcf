package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier distinguishes free listings from paying ones
type SubscriptionTier string

const (
	TierBasic   SubscriptionTier = "basic"
	TierPremium SubscriptionTier = "premium"
)

// BusinessProfile represents a listed business in the directory.
// Only verified profiles are eligible for public search results
// and category counts.
type BusinessProfile struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	UserID           uuid.UUID        `json:"user_id" db:"user_id"`
	Name             string           `json:"name" db:"name"`
	Slug             string           `json:"slug" db:"slug"`
	Description      string           `json:"description" db:"description"`
	Website          string           `json:"website,omitempty" db:"website"`
	Phone            string           `json:"phone,omitempty" db:"phone"`
	Email            string           `json:"email,omitempty" db:"email"`
	LogoURL          string           `json:"logo_url,omitempty" db:"logo_url"`
	CategoryIDs      []string         `json:"category_ids" db:"category_ids"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier" db:"subscription_tier"`
	PremiumExpiresAt *time.Time       `json:"premium_expires_at,omitempty" db:"premium_expires_at"`
	IsVerified       bool             `json:"is_verified" db:"is_verified"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// HasCategory reports whether the profile is a member of the given category.
func (b *BusinessProfile) HasCategory(categoryID string) bool {
	for _, id := range b.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// PrimaryCategory returns the business's first category id, or "other"
// when the profile has no category memberships. Membership is a set, so
// "first" means the smallest id, which keeps the projection deterministic.
func (b *BusinessProfile) PrimaryCategory() string {
	if len(b.CategoryIDs) == 0 {
		return CategoryOther
	}
	first := b.CategoryIDs[0]
	for _, id := range b.CategoryIDs[1:] {
		if id < first {
			first = id
		}
	}
	return first
}
