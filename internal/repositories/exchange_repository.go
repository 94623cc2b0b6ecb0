package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"barterBack/internal/models"
)

type ExchangeRepository struct {
	DB *sql.DB
}

func (r *ExchangeRepository) CreateExchange(ctx context.Context, exchange models.ExchangeProposal) (models.ExchangeProposal, error) {
	exchange.CreatedAt = time.Now()

	query := `
		INSERT INTO exchange_proposals (ad_sender_id, ad_receiver_id, status, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	comment := sql.NullString{String: exchange.Comment, Valid: exchange.Comment != ""}
	result, err := r.DB.ExecContext(ctx, query,
		exchange.AdSenderID, exchange.AdReceiverID, exchange.Status, comment, exchange.CreatedAt,
	)
	if err != nil {
		return models.ExchangeProposal{}, err
	}

	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.ExchangeProposal{}, err
	}
	exchange.ID = int(insertedID)

	return exchange, nil
}

func (r *ExchangeRepository) GetExchangeByID(ctx context.Context, id int) (models.ExchangeProposal, error) {
	var (
		exchange models.ExchangeProposal
		comment  sql.NullString
	)

	query := `
		SELECT id, ad_sender_id, ad_receiver_id, status, comment, created_at
		FROM exchange_proposals
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&exchange.ID,
		&exchange.AdSenderID,
		&exchange.AdReceiverID,
		&exchange.Status,
		&comment,
		&exchange.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ExchangeProposal{}, models.ErrExchangeNotFound
		}
		return models.ExchangeProposal{}, err
	}
	exchange.Comment = comment.String

	return exchange, nil
}

func (r *ExchangeRepository) UpdateExchangeStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE exchange_proposals SET status = ? WHERE id = ?`, status, id)
	return err
}

// GetExchangesFiltered filters by the owners of the sender/receiver ads, not
// by a user column on the proposal itself.
func (r *ExchangeRepository) GetExchangesFiltered(ctx context.Context, search models.ExchangeSearch) ([]models.ExchangeProposal, error) {
	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString(`
		SELECT e.id, e.ad_sender_id, e.ad_receiver_id, e.status, e.comment, e.created_at
		FROM exchange_proposals e
		JOIN ads s ON s.id = e.ad_sender_id
		JOIN ads r ON r.id = e.ad_receiver_id
		WHERE 1=1
	`)

	if search.SenderUserID != nil {
		sb.WriteString(` AND s.user_id = ?`)
		args = append(args, *search.SenderUserID)
	}
	if search.ReceiverUserID != nil {
		sb.WriteString(` AND r.user_id = ?`)
		args = append(args, *search.ReceiverUserID)
	}
	if len(search.Statuses) > 0 {
		sb.WriteString(` AND e.status IN (` + placeholders(len(search.Statuses)) + `)`)
		for _, status := range search.Statuses {
			args = append(args, status)
		}
	}

	sb.WriteString(` ORDER BY e.created_at, e.id`)

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exchanges []models.ExchangeProposal
	for rows.Next() {
		var (
			exchange models.ExchangeProposal
			comment  sql.NullString
		)
		if err := rows.Scan(
			&exchange.ID,
			&exchange.AdSenderID,
			&exchange.AdReceiverID,
			&exchange.Status,
			&comment,
			&exchange.CreatedAt,
		); err != nil {
			return nil, err
		}
		exchange.Comment = comment.String
		exchanges = append(exchanges, exchange)
	}

	return exchanges, rows.Err()
}
