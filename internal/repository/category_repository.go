package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// Category Model
// ============================================

// Category classifies a work-log entry (development, meeting, review, ...)
type Category struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
}

// ============================================
// PostgreSQL Category Repository Implementation
// ============================================

type pgCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPgCategoryRepository creates a new PostgreSQL category repository
func NewPgCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &pgCategoryRepository{pool: pool}
}

func (r *pgCategoryRepository) Create(ctx context.Context, category *Category) error {
	query := `
		INSERT INTO categories (name, is_active)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query, category.Name, category.IsActive).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *pgCategoryRepository) FindByID(ctx context.Context, id string) (*Category, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM categories WHERE id = $1
	`
	category := &Category{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.IsActive, &category.CreatedAt, &category.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *pgCategoryRepository) ListActive(ctx context.Context) ([]*Category, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM categories
		WHERE is_active = TRUE
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(
			&category.ID, &category.Name, &category.IsActive, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *pgCategoryRepository) Update(ctx context.Context, category *Category) error {
	query := `
		UPDATE categories SET name = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, category.ID, category.Name, category.IsActive)
	return err
}
