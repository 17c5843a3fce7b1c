package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/domain"
)

type SQLiteAnalysisRunRepo struct {
	db db.DBTX
}

func NewSQLiteAnalysisRunRepo(conn db.DBTX) *SQLiteAnalysisRunRepo {
	return &SQLiteAnalysisRunRepo{db: conn}
}

func (r *SQLiteAnalysisRunRepo) Create(ctx context.Context, run *domain.AnalysisRun) error {
	query := `INSERT INTO analysis_runs (id, appointment_id, barber_id, start_time, duration_min,
		risk_score, conflict_count, top_strategy, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.AppointmentID,
		run.BarberID,
		timeToString(run.StartTime),
		run.DurationMin,
		run.RiskScore,
		run.ConflictCount,
		run.TopStrategy,
		timeToString(run.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis run: %w", err)
	}
	return nil
}

// ListRecent returns the newest runs first.
func (r *SQLiteAnalysisRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRun, error) {
	query := `SELECT id, appointment_id, barber_id, start_time, duration_min, risk_score,
		conflict_count, top_strategy, created_at
		FROM analysis_runs ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.AnalysisRun
	for rows.Next() {
		var run domain.AnalysisRun
		var startStr, createdAtStr string
		if err := rows.Scan(
			&run.ID,
			&run.AppointmentID,
			&run.BarberID,
			&startStr,
			&run.DurationMin,
			&run.RiskScore,
			&run.ConflictCount,
			&run.TopStrategy,
			&createdAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning analysis run: %w", err)
		}
		if run.StartTime, err = parseStoredTime(startStr); err != nil {
			return nil, fmt.Errorf("parsing start_time: %w", err)
		}
		if run.CreatedAt, err = parseStoredTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analysis runs: %w", err)
	}
	return runs, nil
}
