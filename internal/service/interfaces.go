package service

import (
	"context"

	"github.com/printforge/slicectl/internal/domain"
)

// SliceFileParams describe a single slice-and-save run.
type SliceFileParams struct {
	ModelPath  string
	OutputPath string

	// Preset overrides; empty fields fall back to the configured defaults.
	Presets domain.PresetSelection

	// CustomParams are passed through to the service verbatim.
	CustomParams [][2]string

	// SkipHistory suppresses the local job record for this run.
	SkipHistory bool
}

// SliceOutcome reports what a slice run produced.
type SliceOutcome struct {
	Job *domain.Job

	// HistoryErr is non-nil when the slice succeeded but the record could
	// not be saved. Callers surface it as a warning, not a failure.
	HistoryErr error
}

type SliceService interface {
	SliceFile(ctx context.Context, params SliceFileParams) (*SliceOutcome, error)
}

type JobService interface {
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
