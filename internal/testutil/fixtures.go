package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/printforge/slicectl/internal/domain"
)

// JobOption mutates a test job before it is returned.
type JobOption func(*domain.Job)

// WithServiceJobID sets the service-assigned job id.
func WithServiceJobID(id string) JobOption {
	return func(j *domain.Job) {
		j.ServiceJobID = id
	}
}

// WithCreatedAt sets the record timestamp.
func WithCreatedAt(t time.Time) JobOption {
	return func(j *domain.Job) {
		j.CreatedAt = t
	}
}

// WithStats sets the reported print statistics.
func WithStats(printTime string, mm, grams, cost float64) JobOption {
	return func(j *domain.Job) {
		j.EstimatedPrintTime = printTime
		j.FilamentMM = mm
		j.FilamentGrams = grams
		j.Cost = cost
	}
}

// NewTestJob builds a job record with reasonable defaults for tests.
func NewTestJob(modelName string, opts ...JobOption) *domain.Job {
	j := &domain.Job{
		ID:                 uuid.New().String(),
		ServiceJobID:       uuid.New().String(),
		ModelPath:          "/models/" + modelName,
		ModelName:          modelName,
		OutputPath:         "/output/" + modelName + ".gcode",
		GCodeBytes:         1024,
		PrinterPreset:      "Bambu Lab A1",
		FilamentPreset:     "Bambu PLA Basic @BBL A1",
		ProcessPreset:      "0.20mm Standard @BBL A1",
		EstimatedPrintTime: "1h 30m",
		FilamentMM:         5000,
		FilamentGrams:      15,
		Cost:               0.45,
		CreatedAt:          time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}
