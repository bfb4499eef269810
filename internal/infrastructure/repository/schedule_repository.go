package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"go.uber.org/zap"
)

// ScheduleRepository stores open time slots and booked appointments
type ScheduleRepository struct {
	store
}

func NewScheduleRepository(db *database.Postgres, logger *zap.Logger) *ScheduleRepository {
	return &ScheduleRepository{store{db: db, logger: logger}}
}

// AddTimeSlots inserts the whole batch in one statement so a duplicate leaves nothing behind
func (r *ScheduleRepository) AddTimeSlots(ctx context.Context, date string, times []string) (int64, error) {
	tag, err := r.db.ExecRaw(ctx, `
		INSERT INTO time_slot (date, available_time)
		SELECT $1::date, t::time FROM unnest($2::text[]) AS t
	`, date, times)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, domain.ErrConflict.WithMessage("Duplicate time slot. The specified date and time already exist.")
		}
		return 0, r.storageErr("add time slots", "Time slot", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ScheduleRepository) SlotsForDate(ctx context.Context, date string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(available_time, 'HH24:MI')
		FROM time_slot WHERE date = $1::date
		ORDER BY available_time
	`, date)
	if err != nil {
		return nil, r.storageErr("slots for date", "Time slot", err)
	}
	times, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, r.storageErr("slots for date", "Time slot", err)
	}
	return times, nil
}

func (r *ScheduleRepository) AllSlots(ctx context.Context) ([]domain.DaySlots, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), to_char(available_time, 'HH24:MI')
		FROM time_slot ORDER BY date, available_time
	`)
	if err != nil {
		return nil, r.storageErr("all slots", "Time slot", err)
	}
	defer rows.Close()

	days := make([]domain.DaySlots, 0)
	for rows.Next() {
		var date, at string
		if err := rows.Scan(&date, &at); err != nil {
			return nil, r.storageErr("scan slot", "Time slot", err)
		}
		if n := len(days); n == 0 || days[n-1].Date != date {
			days = append(days, domain.DaySlots{Date: date})
		}
		last := &days[len(days)-1]
		last.TimeSlots = append(last.TimeSlots, at)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("all slots", "Time slot", err)
	}
	return days, nil
}

func (r *ScheduleRepository) CreateAppointment(ctx context.Context, a *domain.Appointment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO appointments (id, location, category_id, service_id, appointment_date, appointment_time)
		VALUES ($1, $2, $3, $4, $5::date, $6::time)
		RETURNING created_at
	`, a.ID.String(), a.Location, a.CategoryID.String(), a.ServiceID.String(), a.AppointmentDate, a.AppointmentTime).
		Scan(&a.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.NewValidationError("Unknown category or service")
		}
		return r.storageErr("create appointment", "Appointment", err)
	}
	return nil
}

func (r *ScheduleRepository) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, location, category_id, service_id,
		       to_char(appointment_date, 'YYYY-MM-DD'), to_char(appointment_time, 'HH24:MI'), created_at
		FROM appointments ORDER BY appointment_date, appointment_time
	`)
	if err != nil {
		return nil, r.storageErr("list appointments", "Appointment", err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a := &domain.Appointment{}
		if err := rows.Scan(&a.ID, &a.Location, &a.CategoryID, &a.ServiceID, &a.AppointmentDate, &a.AppointmentTime, &a.CreatedAt); err != nil {
			return nil, r.storageErr("scan appointment", "Appointment", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list appointments", "Appointment", err)
	}
	return appointments, nil
}
