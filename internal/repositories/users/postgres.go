// Package users provides the PostgreSQL-backed repository for identity
// rows: creation, lookup, listing, and login-timestamp refresh.
package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"messagely/internal/common"
	"messagely/internal/dbx"
	"messagely/internal/models"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for a unique constraint
// violation, surfaced here as a ConflictError.
const pgUniqueViolation = "23505"

// PostgresRepository implements Repository over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user with join_at set by the database clock.
// user.Password must already be hashed. A duplicate username yields a
// ConflictError; last_login_at is left NULL.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, password, first_name, last_name, phone, join_at)
		VALUES ($1, $2, $3, $4, $5, current_timestamp)
		RETURNING join_at
		`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Password, user.FirstName, user.LastName, user.Phone).Scan(&user.JoinAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, &common.ConflictError{Username: user.Username}
		}
		return nil, &common.StoreError{Op: "users.Create", Err: err}
	}

	return user, nil
}

// GetByUsername returns the full identity row, including the password
// digest needed for credential verification.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, password, first_name, last_name, phone, join_at, last_login_at
		FROM users
		WHERE username = $1
		`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.JoinAt, &user.LastLoginAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &common.NotFoundError{Username: username}
		}
		return nil, &common.StoreError{Op: "users.GetByUsername", Err: err}
	}

	return user, nil
}

// All returns basic info on every user, ordered by (first_name,
// last_name) ascending.
func (r *PostgresRepository) All(ctx context.Context) ([]*models.UserSummary, error) {
	query := `
		SELECT username, first_name, last_name, phone
		FROM users
		ORDER BY first_name, last_name
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &common.StoreError{Op: "users.All", Err: err}
	}
	defer rows.Close()

	var result []*models.UserSummary
	for rows.Next() {
		var item models.UserSummary
		if err := rows.Scan(&item.Username, &item.FirstName, &item.LastName, &item.Phone); err != nil {
			return nil, &common.StoreError{Op: "users.All", Err: err}
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.StoreError{Op: "users.All", Err: err}
	}
	return result, nil
}

// UpdateLoginTimestamp sets last_login_at to the database clock and
// returns the username with the new timestamp. Repeated calls simply
// advance the timestamp. An unknown username yields a NotFoundError.
func (r *PostgresRepository) UpdateLoginTimestamp(ctx context.Context, username string) (*models.User, error) {
	query := `
		UPDATE users
		SET last_login_at = current_timestamp
		WHERE username = $1
		RETURNING username, last_login_at
		`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.LastLoginAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &common.NotFoundError{Username: username}
		}
		return nil, &common.StoreError{Op: "users.UpdateLoginTimestamp", Err: err}
	}

	return user, nil
}
