package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"barterBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (username, password, created_at)
		VALUES (?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, user.Username, user.Password, user.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}

	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(insertedID)
	user.Password = ""

	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User

	query := `
		SELECT id, username, password, created_at
		FROM users
		WHERE username = ?
	`
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User

	query := `
		SELECT id, username, created_at
		FROM users
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	// One active session per user; a fresh sign-in replaces the old token.
	query := `
		REPLACE INTO sessions (user_id, refresh_token, expires_at)
		VALUES (?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session

	query := `
		SELECT user_id, refresh_token, expires_at
		FROM sessions
		WHERE refresh_token = ?
	`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID,
		&session.RefreshToken,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, models.ErrNoRecord
		}
		return models.Session{}, err
	}

	return session, nil
}
