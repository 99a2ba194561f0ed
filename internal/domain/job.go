package domain

import "time"

// Job is a locally recorded slicing job: what was sent, which presets were
// used, and the statistics the service reported back.
type Job struct {
	ID             string // local record id
	ServiceJobID   string // job_id assigned by the slicing service
	ModelPath      string
	ModelName      string
	OutputPath     string
	GCodeBytes     int64
	PrinterPreset  string
	FilamentPreset string
	ProcessPreset  string

	EstimatedPrintTime string
	FilamentMM         float64
	FilamentGrams      float64
	Cost               float64

	CreatedAt time.Time
}
