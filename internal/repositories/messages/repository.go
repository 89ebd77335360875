package messages

import (
	"context"

	"messagely/internal/models"
)

// Repository is the persistence boundary of the message store.
type Repository interface {
	FromUser(ctx context.Context, username string) ([]*models.SentMessage, error)
	ToUser(ctx context.Context, username string) ([]*models.ReceivedMessage, error)
	Create(ctx context.Context, fromUsername, toUsername, body string) (*models.Message, error)
	MarkRead(ctx context.Context, id int64) (*models.Message, error)
}
