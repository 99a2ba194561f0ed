package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/printforge/slicectl/internal/domain"
)

// SQLiteJobRepo implements JobRepo using a SQLite database.
type SQLiteJobRepo struct {
	db *sql.DB
}

// NewSQLiteJobRepo creates a new SQLiteJobRepo.
func NewSQLiteJobRepo(db *sql.DB) *SQLiteJobRepo {
	return &SQLiteJobRepo{db: db}
}

const jobColumns = `id, service_job_id, model_path, model_name, output_path, gcode_bytes,
	printer_preset, filament_preset, process_preset,
	estimated_print_time, filament_mm, filament_g, cost, created_at`

func (r *SQLiteJobRepo) Create(ctx context.Context, j *domain.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID,
		j.ServiceJobID,
		j.ModelPath,
		j.ModelName,
		j.OutputPath,
		j.GCodeBytes,
		j.PrinterPreset,
		j.FilamentPreset,
		j.ProcessPreset,
		j.EstimatedPrintTime,
		j.FilamentMM,
		j.FilamentGrams,
		j.Cost,
		j.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}
	return nil
}

func (r *SQLiteJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ? OR service_job_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, id)
	return r.scanJob(row)
}

func (r *SQLiteJobRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent jobs: %w", err)
	}
	defer rows.Close()
	return r.scanJobs(rows)
}

func (r *SQLiteJobRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM jobs WHERE id = ? OR service_job_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, id)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("job: %w", ErrNotFound)
	}
	return nil
}

// scanJob scans a single job from a *sql.Row.
func (r *SQLiteJobRepo) scanJob(row *sql.Row) (*domain.Job, error) {
	var j domain.Job
	var createdAtStr string

	err := row.Scan(
		&j.ID, &j.ServiceJobID, &j.ModelPath, &j.ModelName, &j.OutputPath, &j.GCodeBytes,
		&j.PrinterPreset, &j.FilamentPreset, &j.ProcessPreset,
		&j.EstimatedPrintTime, &j.FilamentMM, &j.FilamentGrams, &j.Cost, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("job: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning job: %w", err)
	}

	j.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &j, nil
}

// scanJobs scans multiple jobs from *sql.Rows.
func (r *SQLiteJobRepo) scanJobs(rows *sql.Rows) ([]*domain.Job, error) {
	var jobs []*domain.Job
	for rows.Next() {
		var j domain.Job
		var createdAtStr string

		err := rows.Scan(
			&j.ID, &j.ServiceJobID, &j.ModelPath, &j.ModelName, &j.OutputPath, &j.GCodeBytes,
			&j.PrinterPreset, &j.FilamentPreset, &j.ProcessPreset,
			&j.EstimatedPrintTime, &j.FilamentMM, &j.FilamentGrams, &j.Cost, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		j.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	return jobs, nil
}
