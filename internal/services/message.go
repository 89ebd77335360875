package services

import (
	"context"
	"database/sql"

	"messagely/internal/common"
	"messagely/internal/models"
	"messagely/internal/repositories/repomanager"
)

// MessageService retrieves directional message views with the
// counterpart's identity embedded, and records new messages.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMessageService constructs a MessageService.
func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// MessagesFrom returns every message sent by username with the recipient
// embedded, ordered by sent_at. An unknown username is a NotFoundError;
// a known user with no messages gets an empty slice.
func (s *MessageService) MessagesFrom(ctx context.Context, username string) ([]*models.SentMessage, error) {
	if _, err := s.repomanager.Users(s.db).GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.repomanager.Messages(s.db).FromUser(ctx, username)
}

// MessagesTo returns every message received by username with the sender
// embedded, ordered by sent_at. Error semantics match MessagesFrom.
func (s *MessageService) MessagesTo(ctx context.Context, username string) ([]*models.ReceivedMessage, error) {
	if _, err := s.repomanager.Users(s.db).GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.repomanager.Messages(s.db).ToUser(ctx, username)
}

// Send records a message from fromUsername to toUsername. Empty inputs
// are a ValidationError naming every missing field; an unknown endpoint
// surfaces as a NotFoundError from the store's foreign keys.
func (s *MessageService) Send(ctx context.Context, fromUsername, toUsername, body string) (*models.Message, error) {
	var missing []string
	if fromUsername == "" {
		missing = append(missing, "from_username")
	}
	if toUsername == "" {
		missing = append(missing, "to_username")
	}
	if body == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return nil, &common.ValidationError{Fields: missing}
	}

	return s.repomanager.Messages(s.db).Create(ctx, fromUsername, toUsername, body)
}

// MarkRead performs the message's single read_at transition. Marking an
// already-read message returns the original timestamp unchanged.
func (s *MessageService) MarkRead(ctx context.Context, id int64) (*models.Message, error) {
	return s.repomanager.Messages(s.db).MarkRead(ctx, id)
}
