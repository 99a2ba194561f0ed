package repository

import (
	"context"
	"errors"

	"github.com/printforge/slicectl/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// JobRepo stores and retrieves recorded slicing jobs.
type JobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
