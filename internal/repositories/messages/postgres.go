// Package messages provides the PostgreSQL-backed repository for
// directed messages. The directional queries join the counterpart's
// identity into the returned view, so callers never see raw foreign
// keys.
package messages

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"messagely/internal/common"
	"messagely/internal/dbx"
	"messagely/internal/models"
)

// pgForeignKeyViolation is the PostgreSQL SQLSTATE raised when a message
// references a username that does not exist.
const pgForeignKeyViolation = "23503"

// PostgresRepository implements Repository over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FromUser returns every message sent by username, joined with the
// recipient's identity, ordered by sent_at (id as tiebreaker). No rows
// is an empty slice, not an error; the caller decides whether the user
// itself exists.
func (r *PostgresRepository) FromUser(ctx context.Context, username string) ([]*models.SentMessage, error) {
	query := `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages AS m
		JOIN users AS u ON m.to_username = u.username
		WHERE m.from_username = $1
		ORDER BY m.sent_at, m.id
		`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, &common.StoreError{Op: "messages.FromUser", Err: err}
	}
	defer rows.Close()

	var result []*models.SentMessage
	for rows.Next() {
		var item models.SentMessage
		if err := rows.Scan(
			&item.ID, &item.Body, &item.SentAt, &item.ReadAt,
			&item.ToUser.Username, &item.ToUser.FirstName, &item.ToUser.LastName, &item.ToUser.Phone,
		); err != nil {
			return nil, &common.StoreError{Op: "messages.FromUser", Err: err}
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.StoreError{Op: "messages.FromUser", Err: err}
	}
	return result, nil
}

// ToUser returns every message received by username, joined with the
// sender's identity, ordered by sent_at (id as tiebreaker).
func (r *PostgresRepository) ToUser(ctx context.Context, username string) ([]*models.ReceivedMessage, error) {
	query := `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages AS m
		JOIN users AS u ON m.from_username = u.username
		WHERE m.to_username = $1
		ORDER BY m.sent_at, m.id
		`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, &common.StoreError{Op: "messages.ToUser", Err: err}
	}
	defer rows.Close()

	var result []*models.ReceivedMessage
	for rows.Next() {
		var item models.ReceivedMessage
		if err := rows.Scan(
			&item.ID, &item.Body, &item.SentAt, &item.ReadAt,
			&item.FromUser.Username, &item.FromUser.FirstName, &item.FromUser.LastName, &item.FromUser.Phone,
		); err != nil {
			return nil, &common.StoreError{Op: "messages.ToUser", Err: err}
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.StoreError{Op: "messages.ToUser", Err: err}
	}
	return result, nil
}

// Create inserts a message with sent_at set by the database clock. The
// foreign keys resolve unknown endpoints: a violation on either side
// yields a NotFoundError naming the offending username.
func (r *PostgresRepository) Create(ctx context.Context, fromUsername, toUsername, body string) (*models.Message, error) {
	query := `
		INSERT INTO messages (from_username, to_username, body, sent_at)
		VALUES ($1, $2, $3, current_timestamp)
		RETURNING id, sent_at
		`

	msg := &models.Message{FromUsername: fromUsername, ToUsername: toUsername, Body: body}
	err := r.db.QueryRowContext(ctx, query, fromUsername, toUsername, body).Scan(&msg.ID, &msg.SentAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			username := fromUsername
			if pgErr.ConstraintName == "messages_to_username_fkey" {
				username = toUsername
			}
			return nil, &common.NotFoundError{Username: username}
		}
		return nil, &common.StoreError{Op: "messages.Create", Err: err}
	}

	return msg, nil
}

// MarkRead performs the single read_at transition. COALESCE keeps the
// column write-once: marking an already-read message returns the
// original timestamp unchanged. An unknown id yields a NotFoundError.
func (r *PostgresRepository) MarkRead(ctx context.Context, id int64) (*models.Message, error) {
	query := `
		UPDATE messages
		SET read_at = COALESCE(read_at, current_timestamp)
		WHERE id = $1
		RETURNING id, from_username, to_username, body, sent_at, read_at
		`

	msg := &models.Message{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&msg.ID, &msg.FromUsername, &msg.ToUsername, &msg.Body, &msg.SentAt, &msg.ReadAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &common.NotFoundError{MessageID: id}
		}
		return nil, &common.StoreError{Op: "messages.MarkRead", Err: err}
	}

	return msg, nil
}
