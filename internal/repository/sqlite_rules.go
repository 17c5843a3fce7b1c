package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/domain"
)

// SQLiteBusinessRulesRepo reads and writes the single shop-wide rules row.
type SQLiteBusinessRulesRepo struct {
	db db.DBTX
}

func NewSQLiteBusinessRulesRepo(conn db.DBTX) *SQLiteBusinessRulesRepo {
	return &SQLiteBusinessRulesRepo{db: conn}
}

func (r *SQLiteBusinessRulesRepo) Get(ctx context.Context) (*domain.BusinessRules, error) {
	query := `SELECT peak_hours, minimum_notice_hours, max_reschedulings, target_utilization, allow_weekends
		FROM business_rules WHERE id = 1`
	var rules domain.BusinessRules
	var peak string
	var weekends int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&peak,
		&rules.MinimumNoticeHours,
		&rules.MaxReschedulingsPerClient,
		&rules.TargetUtilizationPct,
		&weekends,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("business rules: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning business rules: %w", err)
	}
	if rules.PeakHours, err = splitWindows(peak); err != nil {
		return nil, fmt.Errorf("parsing peak hours: %w", err)
	}
	rules.AllowWeekendScheduling = intToBool(weekends)
	return &rules, nil
}

func (r *SQLiteBusinessRulesRepo) Save(ctx context.Context, rules *domain.BusinessRules) error {
	query := `INSERT OR REPLACE INTO business_rules
		(id, peak_hours, minimum_notice_hours, max_reschedulings, target_utilization, allow_weekends, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		joinWindows(rules.PeakHours),
		rules.MinimumNoticeHours,
		rules.MaxReschedulingsPerClient,
		rules.TargetUtilizationPct,
		boolToInt(rules.AllowWeekendScheduling),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving business rules: %w", err)
	}
	return nil
}
