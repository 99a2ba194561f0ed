package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/printforge/slicectl/internal/domain"
	"github.com/printforge/slicectl/internal/gcode"
	"github.com/printforge/slicectl/internal/repository"
	"github.com/printforge/slicectl/internal/slicer"
)

type sliceService struct {
	cfg    slicer.Config
	client slicer.Client
	jobs   repository.JobRepo // nil disables history
}

// NewSliceService creates the slice orchestration service. jobs may be nil,
// in which case no history is recorded.
func NewSliceService(cfg slicer.Config, client slicer.Client, jobs repository.JobRepo) SliceService {
	return &sliceService{cfg: cfg, client: client, jobs: jobs}
}

// SliceFile reads the model, submits it to the slicing service, decodes the
// returned G-code, and writes it to the output path. A history record is
// saved on success unless suppressed.
func (s *sliceService) SliceFile(ctx context.Context, params SliceFileParams) (*SliceOutcome, error) {
	model, err := os.ReadFile(params.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}

	presets := s.resolvePresets(params.Presets)
	result, err := s.client.Slice(ctx, slicer.SliceRequest{
		ModelName: filepath.Base(params.ModelPath),
		Model:     model,
		Config: slicer.SliceConfig{
			PrinterPreset:  presets.Printer,
			FilamentPreset: presets.Filament,
			ProcessPreset:  presets.Process,
			CustomParams:   params.CustomParams,
		},
	})
	if err != nil {
		return nil, err
	}

	data, err := gcode.Decode(result.GCode)
	if err != nil {
		return nil, fmt.Errorf("decoding G-code from response: %w", err)
	}

	if err := os.WriteFile(params.OutputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("writing G-code: %w", err)
	}

	job := &domain.Job{
		ID:                 uuid.New().String(),
		ServiceJobID:       result.JobID,
		ModelPath:          params.ModelPath,
		ModelName:          filepath.Base(params.ModelPath),
		OutputPath:         params.OutputPath,
		GCodeBytes:         int64(len(data)),
		PrinterPreset:      presets.Printer,
		FilamentPreset:     presets.Filament,
		ProcessPreset:      presets.Process,
		EstimatedPrintTime: result.Stats.EstimatedPrintTime,
		FilamentMM:         result.Stats.TotalUsedFilament,
		FilamentGrams:      result.Stats.TotalWeight,
		Cost:               result.Stats.TotalCost,
		CreatedAt:          time.Now().UTC(),
	}

	outcome := &SliceOutcome{Job: job}
	if s.jobs != nil && !params.SkipHistory {
		if err := s.jobs.Create(ctx, job); err != nil {
			outcome.HistoryErr = fmt.Errorf("recording job history: %w", err)
		}
	}
	return outcome, nil
}

func (s *sliceService) resolvePresets(sel domain.PresetSelection) domain.PresetSelection {
	if sel.Printer == "" {
		sel.Printer = s.cfg.PrinterPreset
	}
	if sel.Filament == "" {
		sel.Filament = s.cfg.FilamentPreset
	}
	if sel.Process == "" {
		sel.Process = s.cfg.ProcessPreset
	}
	return sel
}
