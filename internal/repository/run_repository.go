package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/debjganguly/uhi-backend-go/internal/database"
	"github.com/debjganguly/uhi-backend-go/internal/models"
)

// RunRepository handles database operations for analysis runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save persists a run and its sample points in one transaction
func (r *RunRepository) Save(run models.AnalysisRun, points []models.Point) error {
	statsJSON, err := json.Marshal(run.Statistics)
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}

	return database.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO analysis_runs (id, points, days, total_points, max_uhi_intensity, statistics, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, run.Points, run.Days, run.TotalPoints, run.MaxUHIIntensity,
			string(statsJSON), run.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO analysis_points
				(run_id, lat, lon, lst, ndvi, uhi_intensity, timestamp, zone,
				 vegetation, color, severity, priority, recommendation)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare point insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range points {
			if _, err := stmt.Exec(run.ID, p.Lat, p.Lon, p.LST, p.NDVI, p.UHIIntensity,
				p.Timestamp, p.Zone, p.Vegetation, p.Color, p.Severity, p.Priority,
				p.Recommendation); err != nil {
				return fmt.Errorf("failed to insert point: %w", err)
			}
		}

		return nil
	})
}

// List returns the most recent runs, newest first
func (r *RunRepository) List(limit int) ([]models.AnalysisRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT id, points, days, total_points, max_uhi_intensity, statistics, created_at
		FROM analysis_runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.AnalysisRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetByID returns a run together with its sample points
func (r *RunRepository) GetByID(id string) (*models.AnalysisRunDetail, error) {
	row := r.db.QueryRow(`
		SELECT id, points, days, total_points, max_uhi_intensity, statistics, created_at
		FROM analysis_runs
		WHERE id = ?`, id)

	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT lat, lon, lst, ndvi, uhi_intensity, timestamp, zone,
		       vegetation, color, severity, priority, recommendation
		FROM analysis_points
		WHERE run_id = ?
		ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query run points: %w", err)
	}
	defer rows.Close()

	detail := &models.AnalysisRunDetail{AnalysisRun: run}
	for rows.Next() {
		var p models.Point
		if err := rows.Scan(&p.Lat, &p.Lon, &p.LST, &p.NDVI, &p.UHIIntensity,
			&p.Timestamp, &p.Zone, &p.Vegetation, &p.Color, &p.Severity,
			&p.Priority, &p.Recommendation); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		detail.Data = append(detail.Data, p)
	}

	return detail, rows.Err()
}

// Delete removes a run and, via cascade, its points. Returns whether a
// row was deleted.
func (r *RunRepository) Delete(id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM analysis_runs WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (models.AnalysisRun, error) {
	var run models.AnalysisRun
	var statsJSON string
	var createdAt string

	if err := s.Scan(&run.ID, &run.Points, &run.Days, &run.TotalPoints,
		&run.MaxUHIIntensity, &statsJSON, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return run, err
		}
		return run, fmt.Errorf("failed to scan run: %w", err)
	}

	if statsJSON != "" {
		var stats models.Statistics
		if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
			return run, fmt.Errorf("failed to decode statistics: %w", err)
		}
		run.Statistics = &stats
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = t
	}

	return run, nil
}
