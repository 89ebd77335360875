package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"messagely/internal/common"
	"messagely/internal/models"
)

func TestMessagesFrom_EmbedsRecipient(t *testing.T) {
	db := newSQLMockDB(t)
	sent := time.Now()
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{Username: "alice"}},
		m: &fakeMessagesRepo{fromOut: []*models.SentMessage{{
			ID:     1,
			ToUser: models.UserSummary{Username: "bob", FirstName: "Bob", LastName: "Jones", Phone: "555-0200"},
			Body:   "hi",
			SentAt: sent,
		}}},
	}
	s := NewMessageService(db, rm)

	got, err := s.MessagesFrom(context.Background(), "alice")
	if err != nil {
		t.Fatalf("MessagesFrom error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got))
	}
	if got[0].ToUser.Username != "bob" || got[0].Body != "hi" {
		t.Fatalf("unexpected message: %+v", got[0])
	}
}

func TestMessagesFrom_UnknownUserSkipsMessageQuery(t *testing.T) {
	db := newSQLMockDB(t)
	msgs := &fakeMessagesRepo{}
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getErr: &common.NotFoundError{Username: "ghost"}},
		m: msgs,
	}
	s := NewMessageService(db, rm)

	_, err := s.MessagesFrom(context.Background(), "ghost")
	if !common.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if msgs.fromCalls != 0 {
		t.Fatalf("message query must not run for an unknown user")
	}
}

func TestMessagesFrom_NoMessagesIsEmptyNotError(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{Username: "alice"}},
		m: &fakeMessagesRepo{},
	}
	s := NewMessageService(db, rm)

	got, err := s.MessagesFrom(context.Background(), "alice")
	if err != nil {
		t.Fatalf("zero messages must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %d", len(got))
	}
}

func TestMessagesTo_EmbedsSender(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{Username: "bob"}},
		m: &fakeMessagesRepo{toOut: []*models.ReceivedMessage{{
			ID:       1,
			FromUser: models.UserSummary{Username: "alice", FirstName: "Alice", LastName: "Smith", Phone: "555-0100"},
			Body:     "hi",
			SentAt:   time.Now(),
		}}},
	}
	s := NewMessageService(db, rm)

	got, err := s.MessagesTo(context.Background(), "bob")
	if err != nil {
		t.Fatalf("MessagesTo error: %v", err)
	}
	if len(got) != 1 || got[0].FromUser.Username != "alice" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMessagesTo_UnknownUser(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getErr: &common.NotFoundError{Username: "ghost"}},
		m: &fakeMessagesRepo{},
	}
	s := NewMessageService(db, rm)

	_, err := s.MessagesTo(context.Background(), "ghost")
	if !common.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestSend_MissingFieldsAreEnumerated(t *testing.T) {
	db := newSQLMockDB(t)
	s := NewMessageService(db, &fakeRepoManager{m: &fakeMessagesRepo{}})

	_, err := s.Send(context.Background(), "alice", "", "")

	var validation *common.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(validation.Fields) != 2 || validation.Fields[0] != "to_username" || validation.Fields[1] != "body" {
		t.Fatalf("unexpected fields: %v", validation.Fields)
	}
}

func TestSend_Success(t *testing.T) {
	db := newSQLMockDB(t)
	want := &models.Message{ID: 1, FromUsername: "alice", ToUsername: "bob", Body: "hi", SentAt: time.Now()}
	s := NewMessageService(db, &fakeRepoManager{m: &fakeMessagesRepo{createOut: want}})

	got, err := s.Send(context.Background(), "alice", "bob", "hi")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestSend_UnknownRecipient(t *testing.T) {
	db := newSQLMockDB(t)
	s := NewMessageService(db, &fakeRepoManager{
		m: &fakeMessagesRepo{createErr: &common.NotFoundError{Username: "ghost"}},
	})

	_, err := s.Send(context.Background(), "alice", "ghost", "hi")
	if !common.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestMarkRead_Passthrough(t *testing.T) {
	db := newSQLMockDB(t)
	want := &models.Message{ID: 7}
	s := NewMessageService(db, &fakeRepoManager{m: &fakeMessagesRepo{markOut: want}})

	got, err := s.MarkRead(context.Background(), 7)
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected message: %+v", got)
	}

	s2 := NewMessageService(db, &fakeRepoManager{
		m: &fakeMessagesRepo{markErr: &common.NotFoundError{MessageID: 99}},
	})
	if _, err := s2.MarkRead(context.Background(), 99); !common.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}
