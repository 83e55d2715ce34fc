package repositories

import (
	"context"
	"database/sql"

	"ayudamosBack/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) GetActiveCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, icon, color, description, is_active, created_at, updated_at
		FROM categories
		WHERE is_active = 1
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	query := `
		SELECT id, name, icon, color, description, is_active, created_at, updated_at
		FROM categories
		WHERE id = ?
	`
	var c models.Category
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Category{}, models.ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	return c, nil
}

// UpsertCategory inserts the category if its name is new and otherwise leaves
// the existing row untouched, mirroring the bootstrap seed semantics.
func (r *CategoryRepository) UpsertCategory(ctx context.Context, c models.Category) error {
	query := `
		INSERT INTO categories (name, icon, color, description, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, NOW(), NOW())
		ON DUPLICATE KEY UPDATE id = id
	`
	_, err := r.DB.ExecContext(ctx, query, c.Name, c.Icon, c.Color, c.Description)
	return err
}
