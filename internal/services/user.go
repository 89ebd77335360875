// Package services contains the business logic of the messagely core.
// This file implements UserService, the single source of truth for user
// identity and credential state.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"messagely/internal/auth"
	"messagely/internal/common"
	"messagely/internal/config"
	"messagely/internal/cryptox"
	"messagely/internal/models"
	"messagely/internal/repositories/repomanager"
)

// RegisterParams carries the candidate fields for a new user. Password
// is the plaintext; it is hashed before anything is persisted and never
// stored or logged.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserService provides identity operations:
//   - Register: create users with hashed credentials
//   - Authenticate: verify a password against the stored digest
//   - UpdateLoginTimestamp / Get / All: bookkeeping and lookups
//   - Login: the composite the route layer consumes (verify, mint a
//     token, bump last_login_at)
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

// NewUserService constructs a UserService using repositories and config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BCryptCost,
	}
}

// Register validates the candidate, hashes the password, and inserts the
// row. join_at is set by the store; last_login_at stays unset until the
// first successful Login. The returned User carries the digest, never
// the plaintext.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"username", params.Username},
		{"password", params.Password},
		{"first_name", params.FirstName},
		{"last_name", params.LastName},
		{"phone", params.Phone},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &common.ValidationError{Fields: missing}
	}

	digest, err := cryptox.HashPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:  params.Username,
		Password:  digest,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Phone:     params.Phone,
	}

	repo := s.repomanager.Users(s.db)
	return repo.Create(ctx, user)
}

// Authenticate reports whether password matches the stored digest for
// username. A wrong password is an ordinary false; an unknown username
// is a NotFoundError. Callers facing untrusted clients must map both to
// the same response (Login does this).
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return cryptox.CheckPassword([]byte(password), user.Password)
}

// UpdateLoginTimestamp sets last_login_at to the current instant and
// returns the username with the new value. Unknown usernames yield a
// NotFoundError.
func (s *UserService) UpdateLoginTimestamp(ctx context.Context, username string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.UpdateLoginTimestamp(ctx, username)
}

// Get returns the full projection for username.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByUsername(ctx, username)
}

// All returns basic info on every user, ordered by (first_name,
// last_name).
func (s *UserService) All(ctx context.Context) ([]*models.UserSummary, error) {
	repo := s.repomanager.Users(s.db)
	return repo.All(ctx)
}

// Login verifies the credentials and, on success, mints a token and
// advances last_login_at. Unknown usernames and wrong passwords are both
// reported as ErrInvalidCredentials so the response cannot be used to
// enumerate usernames.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if common.IsNotFound(err) {
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	if _, err := s.UpdateLoginTimestamp(ctx, username); err != nil {
		// The user passed authentication a moment ago; a NotFound here
		// means the store changed underneath us and is worth surfacing.
		return "", err
	}

	return token, nil
}
