package repositories

import (
	"context"
	"database/sql"
	"errors"

	"barterBack/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (models.Category, error) {
	var category models.Category

	query := `SELECT id, name FROM categories WHERE name = ?`
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, models.ErrCategoryNotFound
		}
		return models.Category{}, err
	}

	return category, nil
}
