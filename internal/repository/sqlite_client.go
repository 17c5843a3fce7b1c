package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/domain"
)

type SQLiteClientPreferencesRepo struct {
	db db.DBTX
}

func NewSQLiteClientPreferencesRepo(conn db.DBTX) *SQLiteClientPreferencesRepo {
	return &SQLiteClientPreferencesRepo{db: conn}
}

const clientColumns = `client_id, preferred_times, avoid_times, preferred_days, flexibility, rescheduling_count, updated_at`

func (r *SQLiteClientPreferencesRepo) Get(ctx context.Context, clientID string) (*domain.ClientPreferences, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM client_preferences WHERE client_id = ?`, clientID)
	p, err := scanClientPreferences(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client preferences %s: %w", clientID, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteClientPreferencesRepo) List(ctx context.Context) ([]*domain.ClientPreferences, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM client_preferences ORDER BY client_id`)
	if err != nil {
		return nil, fmt.Errorf("listing client preferences: %w", err)
	}
	defer rows.Close()

	var out []*domain.ClientPreferences
	for rows.Next() {
		p, err := scanClientPreferences(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client preferences: %w", err)
	}
	return out, nil
}

func (r *SQLiteClientPreferencesRepo) Upsert(ctx context.Context, p *domain.ClientPreferences) error {
	query := `INSERT INTO client_preferences (` + clientColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			preferred_times = excluded.preferred_times,
			avoid_times = excluded.avoid_times,
			preferred_days = excluded.preferred_days,
			flexibility = excluded.flexibility,
			rescheduling_count = excluded.rescheduling_count,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ClientID,
		joinWindows(p.PreferredTimes),
		joinWindows(p.AvoidTimes),
		joinWeekdays(p.PreferredDays),
		p.FlexibilityScore,
		p.ReschedulingCount,
		timeToString(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting client preferences: %w", err)
	}
	return nil
}

func (r *SQLiteClientPreferencesRepo) IncrementReschedulingCount(ctx context.Context, clientID string) error {
	query := `INSERT INTO client_preferences (client_id, rescheduling_count, updated_at) VALUES (?, 1, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			rescheduling_count = rescheduling_count + 1,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, clientID, nowUTC()); err != nil {
		return fmt.Errorf("incrementing rescheduling count: %w", err)
	}
	return nil
}

func scanClientPreferences(row rowScanner) (*domain.ClientPreferences, error) {
	var p domain.ClientPreferences
	var preferred, avoid, days, updatedAtStr string
	err := row.Scan(&p.ClientID, &preferred, &avoid, &days, &p.FlexibilityScore, &p.ReschedulingCount, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning client preferences: %w", err)
	}
	if p.PreferredTimes, err = splitWindows(preferred); err != nil {
		return nil, fmt.Errorf("parsing preferred times: %w", err)
	}
	if p.AvoidTimes, err = splitWindows(avoid); err != nil {
		return nil, fmt.Errorf("parsing avoid times: %w", err)
	}
	if p.PreferredDays, err = splitWeekdays(days); err != nil {
		return nil, fmt.Errorf("parsing preferred days: %w", err)
	}
	if p.UpdatedAt, err = parseStoredTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
