package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/domain"
)

const dateLayout = "2006-01-02"

type SQLiteBarberRepo struct {
	db db.DBTX
}

func NewSQLiteBarberRepo(conn db.DBTX) *SQLiteBarberRepo {
	return &SQLiteBarberRepo{db: conn}
}

const barberColumns = `id, name, email, work_start, work_end, work_days, skills, available, created_at, updated_at`

func (r *SQLiteBarberRepo) Create(ctx context.Context, b *domain.Barber) error {
	start, end, days := workingHoursValues(b.WorkingHours)
	query := `INSERT INTO barbers (` + barberColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.Email,
		start,
		end,
		days,
		joinList(b.Skills),
		boolToInt(b.Available),
		timeToString(b.CreatedAt),
		timeToString(b.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting barber: %w", err)
	}
	return r.insertBreaks(ctx, b.ID, b.Breaks)
}

func (r *SQLiteBarberRepo) GetByID(ctx context.Context, id string) (*domain.Barber, error) {
	query := `SELECT ` + barberColumns + ` FROM barbers WHERE id = ?`
	b, err := scanBarber(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("barber %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if b.Breaks, err = r.loadBreaks(ctx, b.ID); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *SQLiteBarberRepo) List(ctx context.Context, availableOnly bool) ([]*domain.Barber, error) {
	query := `SELECT ` + barberColumns + ` FROM barbers`
	if availableOnly {
		query += ` WHERE available = 1`
	}
	query += ` ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing barbers: %w", err)
	}
	var barbers []*domain.Barber
	for rows.Next() {
		b, err := scanBarber(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		barbers = append(barbers, b)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating barbers: %w", err)
	}
	rows.Close()

	// Breaks are loaded after the cursor is closed; an in-memory database
	// runs on a single connection.
	for _, b := range barbers {
		if b.Breaks, err = r.loadBreaks(ctx, b.ID); err != nil {
			return nil, err
		}
	}
	return barbers, nil
}

// Update rewrites the barber row and replaces its breaks.
func (r *SQLiteBarberRepo) Update(ctx context.Context, b *domain.Barber) error {
	start, end, days := workingHoursValues(b.WorkingHours)
	query := `UPDATE barbers SET name = ?, email = ?, work_start = ?, work_end = ?, work_days = ?,
		skills = ?, available = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Name,
		b.Email,
		start,
		end,
		days,
		joinList(b.Skills),
		boolToInt(b.Available),
		timeToString(b.UpdatedAt),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating barber: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("barber %s: %w", b.ID, ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM barber_breaks WHERE barber_id = ?`, b.ID); err != nil {
		return fmt.Errorf("clearing barber breaks: %w", err)
	}
	return r.insertBreaks(ctx, b.ID, b.Breaks)
}

func (r *SQLiteBarberRepo) insertBreaks(ctx context.Context, barberID string, breaks []domain.BreakTime) error {
	query := `INSERT INTO barber_breaks (barber_id, start_clock, end_clock, days, on_date, label)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, br := range breaks {
		var onDate any
		if br.Date != nil {
			onDate = br.Date.Format(dateLayout)
		}
		_, err := r.db.ExecContext(ctx, query,
			barberID,
			br.Start.String(),
			br.End.String(),
			joinWeekdays(br.Days),
			onDate,
			br.Label,
		)
		if err != nil {
			return fmt.Errorf("inserting barber break: %w", err)
		}
	}
	return nil
}

func (r *SQLiteBarberRepo) loadBreaks(ctx context.Context, barberID string) ([]domain.BreakTime, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT start_clock, end_clock, days, on_date, label
		FROM barber_breaks WHERE barber_id = ? ORDER BY id`, barberID)
	if err != nil {
		return nil, fmt.Errorf("listing barber breaks: %w", err)
	}
	defer rows.Close()

	var breaks []domain.BreakTime
	for rows.Next() {
		var startStr, endStr, daysStr, label string
		var onDate sql.NullString
		if err := rows.Scan(&startStr, &endStr, &daysStr, &onDate, &label); err != nil {
			return nil, fmt.Errorf("scanning barber break: %w", err)
		}
		br := domain.BreakTime{Label: label}
		if br.Start, err = domain.ParseClock(startStr); err != nil {
			return nil, fmt.Errorf("parsing break start: %w", err)
		}
		if br.End, err = domain.ParseClock(endStr); err != nil {
			return nil, fmt.Errorf("parsing break end: %w", err)
		}
		if br.Days, err = splitWeekdays(daysStr); err != nil {
			return nil, fmt.Errorf("parsing break days: %w", err)
		}
		if onDate.Valid && onDate.String != "" {
			d, err := time.ParseInLocation(dateLayout, onDate.String, time.Local)
			if err != nil {
				return nil, fmt.Errorf("parsing break date: %w", err)
			}
			br.Date = &d
		}
		breaks = append(breaks, br)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating barber breaks: %w", err)
	}
	return breaks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var b domain.Barber
	var workStart, workEnd sql.NullString
	var workDays, skills, createdAtStr, updatedAtStr string
	var available int
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&workStart,
		&workEnd,
		&workDays,
		&skills,
		&available,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning barber: %w", err)
	}
	b.Available = intToBool(available)
	b.Skills = splitList(skills)

	start, err := parseNullableClock(workStart)
	if err != nil {
		return nil, err
	}
	end, err := parseNullableClock(workEnd)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil {
		days, err := splitWeekdays(workDays)
		if err != nil {
			return nil, fmt.Errorf("parsing work days: %w", err)
		}
		b.WorkingHours = &domain.WorkingHours{Start: *start, End: *end, Days: days}
	}

	if b.CreatedAt, err = parseStoredTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if b.UpdatedAt, err = parseStoredTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &b, nil
}

func workingHoursValues(wh *domain.WorkingHours) (start, end any, days string) {
	if wh == nil {
		return nil, nil, ""
	}
	return wh.Start.String(), wh.End.String(), joinWeekdays(wh.Days)
}

func joinList(items []string) string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ",")
}
