package repository

import (
	"context"
	"database/sql"

	"newton_cooling/internal/models"
)

// Authorization stores API accounts. Estimates themselves are never stored.
type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Repository struct {
	Auth Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth: NewUserRepository(db),
	}
}
