package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/domain"
)

type SQLiteAppointmentRepo struct {
	db db.DBTX
}

func NewSQLiteAppointmentRepo(conn db.DBTX) *SQLiteAppointmentRepo {
	return &SQLiteAppointmentRepo{db: conn}
}

const appointmentColumns = `id, barber_id, start_time, duration_min, client_id, client_name, service_name,
	status, buffer_before_min, buffer_after_min, priority, created_at, updated_at`

func (r *SQLiteAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	query := `INSERT INTO appointments (` + appointmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.BarberID,
		timeToString(a.StartTime),
		a.Range().Minutes(),
		a.ClientID,
		a.ClientName,
		a.ServiceName,
		string(statusOrDefault(a.Status)),
		nullableIntToValue(a.BufferBeforeMin),
		nullableIntToValue(a.BufferAfterMin),
		nullableIntToValue(a.Priority),
		timeToString(a.CreatedAt),
		timeToString(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}
	return nil
}

func (r *SQLiteAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`
	a, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteAppointmentRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time, id`
	return r.list(ctx, query, timeToString(from), timeToString(to))
}

func (r *SQLiteAppointmentRepo) ListByBarberBetween(ctx context.Context, barberID string, from, to time.Time) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE barber_id = ? AND start_time >= ? AND start_time < ? ORDER BY start_time, id`
	return r.list(ctx, query, barberID, timeToString(from), timeToString(to))
}

// Update persists a moved or edited appointment. The end time is not
// stored; it is always start plus duration.
func (r *SQLiteAppointmentRepo) Update(ctx context.Context, a *domain.Appointment) error {
	query := `UPDATE appointments SET barber_id = ?, start_time = ?, duration_min = ?, client_id = ?,
		client_name = ?, service_name = ?, status = ?, buffer_before_min = ?, buffer_after_min = ?,
		priority = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.BarberID,
		timeToString(a.StartTime),
		a.Range().Minutes(),
		a.ClientID,
		a.ClientName,
		a.ServiceName,
		string(statusOrDefault(a.Status)),
		nullableIntToValue(a.BufferBeforeMin),
		nullableIntToValue(a.BufferAfterMin),
		nullableIntToValue(a.Priority),
		timeToString(a.UpdatedAt),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating appointment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("appointment %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE appointments SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating appointment status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAppointmentRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}
	return out, nil
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var startStr, statusStr, createdAtStr, updatedAtStr string
	var before, after, priority sql.NullInt64
	err := row.Scan(
		&a.ID,
		&a.BarberID,
		&startStr,
		&a.DurationMin,
		&a.ClientID,
		&a.ClientName,
		&a.ServiceName,
		&statusStr,
		&before,
		&after,
		&priority,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning appointment: %w", err)
	}
	a.Status = domain.AppointmentStatus(statusStr)
	a.BufferBeforeMin = nullIntToPtr(before)
	a.BufferAfterMin = nullIntToPtr(after)
	a.Priority = nullIntToPtr(priority)
	if a.StartTime, err = parseStoredTime(startStr); err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	if a.CreatedAt, err = parseStoredTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if a.UpdatedAt, err = parseStoredTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &a, nil
}

func statusOrDefault(s domain.AppointmentStatus) domain.AppointmentStatus {
	if s == "" {
		return domain.StatusScheduled
	}
	return s
}
