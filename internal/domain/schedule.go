package domain

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	DateLayout    = "2006-01-02"
	Clock24Layout = "15:04"
	Clock12Layout = "3:04 PM"
)

// DaySlots lists the bookable times of one day, formatted as 12-hour clock strings
type DaySlots struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}

// TimeSlotBatch is a request to open several times on a single date
type TimeSlotBatch struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}

// Normalize validates the batch and returns its times as HH:MM
func (b TimeSlotBatch) Normalize() ([]string, error) {
	if IsBlank(b.Date) || !ValidDate(b.Date) {
		return nil, NewValidationError("Invalid or missing date. Use YYYY-MM-DD format.")
	}
	if len(b.TimeSlots) == 0 {
		return nil, NewValidationError("TimeSlots array is required and cannot be empty.")
	}
	times := make([]string, 0, len(b.TimeSlots))
	for _, t := range b.TimeSlots {
		c, err := ParseClock(t)
		if err != nil {
			return nil, err
		}
		times = append(times, c)
	}
	return times, nil
}

// Appointment is a booked grooming visit
type Appointment struct {
	ID              ulid.ULID `json:"id"`
	Location        string    `json:"location"`
	CategoryID      ulid.ULID `json:"category_id"`
	ServiceID       ulid.ULID `json:"service_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentRequest is the body of a booking; the time may use either clock
type AppointmentRequest struct {
	Location        string `json:"location"`
	CategoryID      string `json:"categoryId"`
	ServiceID       string `json:"serviceId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// ParseClock accepts either a 24-hour ("14:30", "14:30:00") or a 12-hour
// ("2:30 PM") time and returns it as HH:MM.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{Clock24Layout, "15:04:05", Clock12Layout, "03:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t.Format(Clock24Layout), nil
		}
	}
	return "", NewValidationError("Invalid time format")
}

// FormatClock renders an HH:MM time as "h:mm AM/PM"
func FormatClock(hhmm string) string {
	t, err := time.Parse(Clock24Layout, hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format(Clock12Layout)
}

type ScheduleRepository interface {
	// AddTimeSlots inserts all times for date in one statement; a time that is
	// already open for the date fails the whole batch with ErrConflict
	AddTimeSlots(ctx context.Context, date string, times []string) (int64, error)
	SlotsForDate(ctx context.Context, date string) ([]string, error)

	// AllSlots returns the 24-hour times of every date, ordered by date then time
	AllSlots(ctx context.Context) ([]DaySlots, error)

	CreateAppointment(ctx context.Context, a *Appointment) error
	ListAppointments(ctx context.Context) ([]*Appointment, error)
}
