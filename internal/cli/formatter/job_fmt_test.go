package formatter

import (
	"testing"
	"time"

	"github.com/printforge/slicectl/internal/domain"
	"github.com/printforge/slicectl/internal/slicer"
	"github.com/stretchr/testify/assert"
)

func sampleJob() *domain.Job {
	return &domain.Job{
		ID:                 "local-1",
		ServiceJobID:       "9f8e7d6c-0000-4000-8000-000000000000",
		ModelPath:          "/models/cube.stl",
		ModelName:          "cube.stl",
		OutputPath:         "/tmp/cube.gcode",
		GCodeBytes:         2048,
		PrinterPreset:      "Bambu Lab A1",
		FilamentPreset:     "Bambu PLA Basic @BBL A1",
		ProcessPreset:      "0.20mm Standard @BBL A1",
		EstimatedPrintTime: "1h 12m",
		FilamentMM:         100.5,
		FilamentGrams:      10.2,
		Cost:               1.23,
		CreatedAt:          time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderSliceSummary(t *testing.T) {
	out := RenderSliceSummary(sampleJob())

	assert.Contains(t, out, "9f8e7d6c-0000-4000-8000-000000000000")
	assert.Contains(t, out, "1h 12m")
	assert.Contains(t, out, "100.50 mm (10.20 g)")
	assert.Contains(t, out, "$1.23")
	assert.Contains(t, out, "/tmp/cube.gcode (2048 bytes)")
}

func TestRenderJobTable(t *testing.T) {
	out := RenderJobTable([]*domain.Job{sampleJob()})

	assert.Contains(t, out, "JOB")
	assert.Contains(t, out, "9f8e7d6c")
	assert.NotContains(t, out, "9f8e7d6c-0000", "table should abbreviate job ids")
	assert.Contains(t, out, "cube.stl")
	assert.Contains(t, out, "$1.23")
}

func TestRenderJobTable_Empty(t *testing.T) {
	out := RenderJobTable(nil)
	assert.Contains(t, out, "No recorded jobs")
}

func TestRenderJobDetail(t *testing.T) {
	out := RenderJobDetail(sampleJob())

	assert.Contains(t, out, "/models/cube.stl")
	assert.Contains(t, out, "Bambu PLA Basic @BBL A1")
	assert.Contains(t, out, "100.50 mm (10.20 g), $1.23")
}

func TestRenderHealth(t *testing.T) {
	out := RenderHealth("http://localhost:8080", &slicer.HealthStatus{
		Status:       "healthy",
		Version:      "0.3.1",
		BambuVersion: "01.09.05.51",
	})

	assert.Contains(t, out, "HEALTHY")
	assert.Contains(t, out, "http://localhost:8080")
	assert.Contains(t, out, "0.3.1")
	assert.Contains(t, out, "01.09.05.51")
}
