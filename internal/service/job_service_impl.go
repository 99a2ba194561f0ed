package service

import (
	"context"

	"github.com/printforge/slicectl/internal/domain"
	"github.com/printforge/slicectl/internal/repository"
)

type jobService struct {
	jobs repository.JobRepo
}

// NewJobService creates the job history service.
func NewJobService(jobs repository.JobRepo) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) ListRecent(ctx context.Context, limit int) ([]*domain.Job, error) {
	return s.jobs.ListRecent(ctx, limit)
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}
