package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"verzeichnis/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	ListWithCounts(ctx context.Context) ([]*domain.CategoryWithCount, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List retrieves all categories sorted by name
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, slug, icon, description, parent_id, created_at
		FROM categories
		ORDER BY name ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// ListWithCounts retrieves categories annotated with the number of
// verified businesses referencing them, sorted by name. Categories with
// no verified businesses are excluded. This is a single grouped
// aggregation over the membership table rather than one count query per
// category, so it stays one round trip at any category cardinality.
func (r *categoryRepository) ListWithCounts(ctx context.Context) ([]*domain.CategoryWithCount, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.icon, c.description, c.parent_id, c.created_at,
		       COUNT(b.id) AS business_count
		FROM categories c
		JOIN business_categories bc ON bc.category_id = c.id
		JOIN business_profiles b ON b.id = bc.business_id AND b.is_verified = TRUE
		GROUP BY c.id, c.name, c.slug, c.icon, c.description, c.parent_id, c.created_at
		ORDER BY c.name ASC, c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories with counts: %w", err)
	}
	defer rows.Close()

	categories := []*domain.CategoryWithCount{}
	for rows.Next() {
		category := &domain.CategoryWithCount{}
		var icon, description sql.NullString
		var parentID sql.NullString
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&icon,
			&description,
			&parentID,
			&category.CreatedAt,
			&category.BusinessCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		category.Icon = icon.String
		category.Description = description.String
		if parentID.Valid {
			p := parentID.String
			category.ParentID = &p
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category counts: %w", err)
	}

	return categories, nil
}

// FindByID retrieves a category by its slug id
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, icon, description, parent_id, created_at
		FROM categories
		WHERE id = $1
	`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	category := &domain.Category{}
	var icon, description, parentID sql.NullString

	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&icon,
		&description,
		&parentID,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	category.Icon = icon.String
	category.Description = description.String
	if parentID.Valid {
		p := parentID.String
		category.ParentID = &p
	}

	return category, nil
}
