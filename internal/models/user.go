// Package models defines the rows and projections shared by
// repositories and services.
package models

import (
	"database/sql"
	"time"
)

// User is a full identity row. Password always holds the bcrypt digest,
// never the plaintext. LastLoginAt stays invalid until the user's first
// successful login.
type User struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	JoinAt      time.Time
	LastLoginAt sql.NullTime
}

// UserSummary is the identity projection embedded in message views and
// returned by listings. It never carries credential material.
type UserSummary struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}
