package models

import (
	"database/sql"
	"time"
)

// Message is a full message row. ReadAt stays invalid until the single
// mark-read transition.
type Message struct {
	ID           int64
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
	ReadAt       sql.NullTime
}

// SentMessage is the outgoing-thread view: a message joined with the
// recipient's identity.
type SentMessage struct {
	ID     int64
	ToUser UserSummary
	Body   string
	SentAt time.Time
	ReadAt sql.NullTime
}

// ReceivedMessage is the incoming-thread view: a message joined with the
// sender's identity.
type ReceivedMessage struct {
	ID       int64
	FromUser UserSummary
	Body     string
	SentAt   time.Time
	ReadAt   sql.NullTime
}
