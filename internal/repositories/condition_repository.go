package repositories

import (
	"context"
	"database/sql"
	"errors"

	"barterBack/internal/models"
)

type ConditionRepository struct {
	DB *sql.DB
}

func (r *ConditionRepository) GetAllConditions(ctx context.Context) ([]models.Condition, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM conditions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conditions []models.Condition
	for rows.Next() {
		var condition models.Condition
		if err := rows.Scan(&condition.ID, &condition.Name); err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}

	return conditions, rows.Err()
}

func (r *ConditionRepository) GetConditionByName(ctx context.Context, name string) (models.Condition, error) {
	var condition models.Condition

	query := `SELECT id, name FROM conditions WHERE name = ?`
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&condition.ID, &condition.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Condition{}, models.ErrConditionNotFound
		}
		return models.Condition{}, err
	}

	return condition, nil
}
