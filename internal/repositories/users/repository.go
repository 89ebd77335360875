package users

import (
	"context"

	"messagely/internal/models"
)

// Repository is the persistence boundary of the identity store.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	All(ctx context.Context) ([]*models.UserSummary, error)
	UpdateLoginTimestamp(ctx context.Context, username string) (*models.User, error)
}
