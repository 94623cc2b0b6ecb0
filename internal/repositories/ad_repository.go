package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"barterBack/internal/models"
)

type AdRepository struct {
	DB *sql.DB
}

const adColumns = `
	a.id, a.user_id, u.username, a.title, a.description,
	c.id, c.name, cond.id, cond.name, a.created_at
`

const adJoins = `
	FROM ads a
	JOIN users u ON u.id = a.user_id
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN conditions cond ON cond.id = a.condition_id
`

func scanAd(row interface {
	Scan(dest ...interface{}) error
}) (models.Ad, error) {
	var (
		ad            models.Ad
		categoryID    sql.NullInt64
		categoryName  sql.NullString
		conditionID   sql.NullInt64
		conditionName sql.NullString
	)
	err := row.Scan(
		&ad.ID,
		&ad.UserID,
		&ad.Username,
		&ad.Title,
		&ad.Description,
		&categoryID,
		&categoryName,
		&conditionID,
		&conditionName,
		&ad.CreatedAt,
	)
	if err != nil {
		return models.Ad{}, err
	}
	if categoryID.Valid {
		ad.Category = &models.Category{ID: int(categoryID.Int64), Name: categoryName.String}
	}
	if conditionID.Valid {
		ad.Condition = &models.Condition{ID: int(conditionID.Int64), Name: conditionName.String}
	}
	return ad, nil
}

func (r *AdRepository) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	query := `
		INSERT INTO ads (user_id, title, description, category_id, condition_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		ad.UserID, ad.Title, ad.Description, ad.Category.ID, ad.Condition.ID, ad.CreatedAt,
	)
	if err != nil {
		return models.Ad{}, err
	}

	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.Ad{}, err
	}
	ad.ID = int(insertedID)

	return ad, nil
}

func (r *AdRepository) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	query := `SELECT ` + adColumns + adJoins + ` WHERE a.id = ?`
	ad, err := scanAd(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ad{}, models.ErrAdNotFound
		}
		return models.Ad{}, err
	}
	return ad, nil
}

// GetAdByIDAndUserID resolves an ad only when it belongs to the given user.
// A foreign ad and a missing ad are the same ErrAdNotFound on purpose.
func (r *AdRepository) GetAdByIDAndUserID(ctx context.Context, id, userID int) (models.Ad, error) {
	query := `SELECT ` + adColumns + adJoins + ` WHERE a.id = ? AND a.user_id = ?`
	ad, err := scanAd(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ad{}, models.ErrAdNotFound
		}
		return models.Ad{}, err
	}
	return ad, nil
}

// UpdateAd overwrites title, description, category and condition in place.
// Owner and created_at are never touched by an edit.
func (r *AdRepository) UpdateAd(ctx context.Context, ad models.Ad) error {
	query := `
		UPDATE ads
		SET title = ?, description = ?, category_id = ?, condition_id = ?
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query,
		ad.Title, ad.Description, ad.Category.ID, ad.Condition.ID, ad.ID,
	)
	return err
}

func (r *AdRepository) DeleteAdByIDAndUserID(ctx context.Context, id, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM ads WHERE id = ? AND user_id = ?`, id, userID)
	return err
}

func (r *AdRepository) GetAdsFiltered(ctx context.Context, search models.AdSearch) ([]models.Ad, error) {
	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString(`SELECT ` + adColumns + adJoins + ` WHERE 1=1`)

	if search.Query != "" {
		sb.WriteString(` AND (LOWER(a.title) LIKE ? OR LOWER(a.description) LIKE ?)`)
		needle := "%" + strings.ToLower(search.Query) + "%"
		args = append(args, needle, needle)
	}
	if len(search.CategoryIDs) > 0 {
		sb.WriteString(` AND a.category_id IN (` + placeholders(len(search.CategoryIDs)) + `)`)
		for _, id := range search.CategoryIDs {
			args = append(args, id)
		}
	}
	if len(search.ConditionIDs) > 0 {
		sb.WriteString(` AND a.condition_id IN (` + placeholders(len(search.ConditionIDs)) + `)`)
		for _, id := range search.ConditionIDs {
			args = append(args, id)
		}
	}

	// created_at then id keeps the order stable for external pagination.
	sb.WriteString(` ORDER BY a.created_at, a.id LIMIT ? OFFSET ?`)
	args = append(args, search.Limit, search.Offset)

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []models.Ad
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
