package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/printforge/slicectl/internal/domain"
	"github.com/printforge/slicectl/internal/gcode"
	"github.com/printforge/slicectl/internal/repository"
	"github.com/printforge/slicectl/internal/slicer"
	"github.com/printforge/slicectl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns canned responses and records the last request.
type fakeClient struct {
	result  *slicer.SliceResult
	err     error
	lastReq slicer.SliceRequest
	calls   int
}

func (f *fakeClient) Slice(ctx context.Context, req slicer.SliceRequest) (*slicer.SliceResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeClient) Health(ctx context.Context) (*slicer.HealthStatus, error) {
	return &slicer.HealthStatus{Status: "healthy"}, nil
}

func (f *fakeClient) Available(ctx context.Context) bool { return true }

// failingJobRepo fails every write.
type failingJobRepo struct{}

func (failingJobRepo) Create(ctx context.Context, j *domain.Job) error {
	return errors.New("disk full")
}
func (failingJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return nil, repository.ErrNotFound
}
func (failingJobRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Job, error) {
	return nil, nil
}
func (failingJobRepo) Delete(ctx context.Context, id string) error { return nil }

func writeModel(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "cube.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid cube"), 0644))
	return path
}

func okResult(gcodeBytes []byte) *slicer.SliceResult {
	return &slicer.SliceResult{
		JobID: "abc",
		Stats: slicer.SliceStats{
			EstimatedPrintTime: "1h",
			TotalUsedFilament:  100.5,
			TotalWeight:        10.2,
			TotalCost:          1.23,
		},
		GCode: gcode.Encode(gcodeBytes),
	}
}

func TestSliceFile_WritesDecodedGCode(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeModel(t, dir)
	outPath := filepath.Join(dir, "out.gcode")

	client := &fakeClient{result: okResult([]byte("X"))}
	repo := repository.NewSQLiteJobRepo(testutil.NewTestDB(t))
	svc := NewSliceService(slicer.DefaultConfig(), client, repo)

	outcome, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:  modelPath,
		OutputPath: outPath,
	})
	require.NoError(t, err)
	require.NoError(t, outcome.HistoryErr)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("X"), data)

	assert.Equal(t, "abc", outcome.Job.ServiceJobID)
	assert.Equal(t, int64(1), outcome.Job.GCodeBytes)
	assert.Equal(t, "1h", outcome.Job.EstimatedPrintTime)

	// The record must be retrievable afterwards.
	saved, err := repo.GetByID(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, outPath, saved.OutputPath)
}

func TestSliceFile_DefaultPresetsFromConfig(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{result: okResult([]byte("G28\n"))}
	svc := NewSliceService(slicer.DefaultConfig(), client, nil)

	_, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:  writeModel(t, dir),
		OutputPath: filepath.Join(dir, "out.gcode"),
	})
	require.NoError(t, err)

	assert.Equal(t, "cube.stl", client.lastReq.ModelName)
	assert.Equal(t, "Bambu Lab A1", client.lastReq.Config.PrinterPreset)
	assert.Equal(t, "Bambu PLA Basic @BBL A1", client.lastReq.Config.FilamentPreset)
	assert.Equal(t, "0.20mm Standard @BBL A1", client.lastReq.Config.ProcessPreset)
}

func TestSliceFile_PresetOverridesAndParams(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{result: okResult([]byte("G28\n"))}
	svc := NewSliceService(slicer.DefaultConfig(), client, nil)

	_, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:    writeModel(t, dir),
		OutputPath:   filepath.Join(dir, "out.gcode"),
		Presets:      domain.PresetSelection{Printer: "Bambu Lab P1S"},
		CustomParams: [][2]string{{"sparse_infill_density", "20%"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bambu Lab P1S", client.lastReq.Config.PrinterPreset)
	// Unset presets still fall back to the defaults.
	assert.Equal(t, "Bambu PLA Basic @BBL A1", client.lastReq.Config.FilamentPreset)
	assert.Equal(t, [][2]string{{"sparse_infill_density", "20%"}}, client.lastReq.Config.CustomParams)
}

func TestSliceFile_MissingModel(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{result: okResult(nil)}
	svc := NewSliceService(slicer.DefaultConfig(), client, nil)

	_, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:  filepath.Join(dir, "missing.stl"),
		OutputPath: filepath.Join(dir, "out.gcode"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, client.calls, "no request should be made for a missing model")
}

func TestSliceFile_ServiceErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.gcode")
	client := &fakeClient{err: &slicer.StatusError{Code: http.StatusInternalServerError, Body: `{"error":"Slicing failed"}`}}
	svc := NewSliceService(slicer.DefaultConfig(), client, nil)

	_, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:  writeModel(t, dir),
		OutputPath: outPath,
	})

	var statusErr *slicer.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)

	_, statErr := os.Stat(outPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestSliceFile_InvalidGCodeEncoding(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{result: &slicer.SliceResult{JobID: "abc", GCode: "not base64!!!"}}
	svc := NewSliceService(slicer.DefaultConfig(), client, nil)

	_, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:  writeModel(t, dir),
		OutputPath: filepath.Join(dir, "out.gcode"),
	})
	assert.ErrorIs(t, err, gcode.ErrInvalidEncoding)
}

func TestSliceFile_SkipHistory(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{result: okResult([]byte("X"))}
	repo := repository.NewSQLiteJobRepo(testutil.NewTestDB(t))
	svc := NewSliceService(slicer.DefaultConfig(), client, repo)

	_, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:   writeModel(t, dir),
		OutputPath:  filepath.Join(dir, "out.gcode"),
		SkipHistory: true,
	})
	require.NoError(t, err)

	jobs, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSliceFile_HistoryFailureIsBestEffort(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.gcode")
	client := &fakeClient{result: okResult([]byte("X"))}
	svc := NewSliceService(slicer.DefaultConfig(), client, failingJobRepo{})

	outcome, err := svc.SliceFile(context.Background(), SliceFileParams{
		ModelPath:  writeModel(t, dir),
		OutputPath: outPath,
	})
	require.NoError(t, err, "a history failure must not fail the slice")
	assert.Error(t, outcome.HistoryErr)

	// The G-code still landed on disk.
	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("X"), data)
}
