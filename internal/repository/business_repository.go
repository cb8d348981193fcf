package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"verzeichnis/internal/domain"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
)

// BusinessSearchParams describes one directory search. Offset and Limit
// are expected to be pre-clamped by the caller (internal/pagination).
type BusinessSearchParams struct {
	Query            string
	CategoryID       string
	SubscriptionTier domain.SubscriptionTier
	SortBy           domain.SortMode
	Offset           int
	Limit            int
}

// BusinessRepository defines the interface for business profile data access
type BusinessRepository interface {
	Search(ctx context.Context, params BusinessSearchParams) ([]*domain.BusinessProfile, int, error)
	FindBySlug(ctx context.Context, slug string) (*domain.BusinessProfile, error)
	ListFeatured(ctx context.Context, limit int) ([]*domain.BusinessProfile, error)
	CountVerified(ctx context.Context) (int, error)
}

type businessRepository struct {
	db *sql.DB
}

// NewBusinessRepository creates a new instance of BusinessRepository
func NewBusinessRepository(db *sql.DB) BusinessRepository {
	return &businessRepository{db: db}
}

// businessColumns selects the full profile plus its category memberships
// aggregated into a comma-separated string. Aggregating server-side keeps
// the whole search a single round trip per page.
const businessColumns = `
	b.id, b.user_id, b.name, b.slug, b.description, b.website, b.phone, b.email,
	b.logo_url, b.subscription_tier, b.premium_expires_at, b.is_verified,
	b.created_at, b.updated_at,
	COALESCE((
		SELECT string_agg(bc.category_id, ',' ORDER BY bc.category_id)
		FROM business_categories bc
		WHERE bc.business_id = b.id
	), '') AS category_ids
`

// Search retrieves verified businesses matching the given text query,
// category membership, and tier filters. It returns the page of rows and
// the exact count of all matching rows before pagination. All filters are
// pushed down to the store, so the count and the page always agree.
func (r *businessRepository) Search(ctx context.Context, params BusinessSearchParams) ([]*domain.BusinessProfile, int, error) {
	// Only verified profiles are ever eligible for public results.
	conditions := []string{"b.is_verified = TRUE"}
	args := []interface{}{}
	argIndex := 1

	if q := strings.TrimSpace(params.Query); q != "" {
		conditions = append(conditions, fmt.Sprintf("(b.name ILIKE $%d OR b.description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+q+"%")
		argIndex++
	}

	if params.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM business_categories bc WHERE bc.business_id = b.id AND bc.category_id = $%d)", argIndex))
		args = append(args, params.CategoryID)
		argIndex++
	}

	if params.SubscriptionTier != "" {
		conditions = append(conditions, fmt.Sprintf("b.subscription_tier = $%d", argIndex))
		args = append(args, string(params.SubscriptionTier))
		argIndex++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	// Count total matching businesses before pagination
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM business_profiles b %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count businesses: %w", err)
	}

	// Every sort mode carries an id tiebreak so repeated queries return
	// identical pages. Relevance has no ordering key of its own; popular
	// aliases newest until a real popularity signal exists.
	orderClause := "ORDER BY b.id ASC"
	switch params.SortBy {
	case domain.SortNewest, domain.SortPopular:
		orderClause = "ORDER BY b.created_at DESC, b.id ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM business_profiles b
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, businessColumns, whereClause, orderClause, argIndex, argIndex+1)

	args = append(args, params.Limit, params.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search businesses: %w", err)
	}
	defer rows.Close()

	businesses := []*domain.BusinessProfile{}
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating businesses: %w", err)
	}

	return businesses, total, nil
}

// FindBySlug retrieves a verified business by its public slug
func (r *businessRepository) FindBySlug(ctx context.Context, slug string) (*domain.BusinessProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM business_profiles b
		WHERE b.slug = $1 AND b.is_verified = TRUE
	`, businessColumns)

	business, err := scanBusiness(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to find business by slug: %w", err)
	}

	return business, nil
}

// ListFeatured retrieves the newest verified premium businesses
func (r *businessRepository) ListFeatured(ctx context.Context, limit int) ([]*domain.BusinessProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM business_profiles b
		WHERE b.is_verified = TRUE AND b.subscription_tier = 'premium'
		ORDER BY b.created_at DESC, b.id ASC
		LIMIT $1
	`, businessColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured businesses: %w", err)
	}
	defer rows.Close()

	businesses := []*domain.BusinessProfile{}
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating featured businesses: %w", err)
	}

	return businesses, nil
}

// CountVerified returns the number of verified businesses
func (r *businessRepository) CountVerified(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM business_profiles WHERE is_verified = TRUE").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count verified businesses: %w", err)
	}
	return count, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row rowScanner) (*domain.BusinessProfile, error) {
	business := &domain.BusinessProfile{}
	var website, phone, email, logoURL sql.NullString
	var premiumExpiresAt sql.NullTime
	var categoryIDs string

	err := row.Scan(
		&business.ID,
		&business.UserID,
		&business.Name,
		&business.Slug,
		&business.Description,
		&website,
		&phone,
		&email,
		&logoURL,
		&business.SubscriptionTier,
		&premiumExpiresAt,
		&business.IsVerified,
		&business.CreatedAt,
		&business.UpdatedAt,
		&categoryIDs,
	)
	if err != nil {
		return nil, err
	}

	business.Website = website.String
	business.Phone = phone.String
	business.Email = email.String
	business.LogoURL = logoURL.String
	if premiumExpiresAt.Valid {
		t := premiumExpiresAt.Time
		business.PremiumExpiresAt = &t
	}
	if categoryIDs != "" {
		business.CategoryIDs = strings.Split(categoryIDs, ",")
	}

	return business, nil
}
