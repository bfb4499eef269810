package application

import (
	"context"
	"strings"

	"github.com/myanimal/petcare-service/internal/domain"
	"go.uber.org/zap"
)

type ScheduleService struct {
	repo   domain.ScheduleRepository
	logger *zap.Logger
}

func NewScheduleService(repo domain.ScheduleRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, logger: logger}
}

// AddTimeSlots opens every time of the batch; nothing is stored when one already exists
func (s *ScheduleService) AddTimeSlots(ctx context.Context, batch domain.TimeSlotBatch) (int64, error) {
	times, err := batch.Normalize()
	if err != nil {
		return 0, err
	}
	n, err := s.repo.AddTimeSlots(ctx, batch.Date, times)
	if err != nil {
		return 0, err
	}
	s.logger.Info("time slots added", zap.String("date", batch.Date), zap.Int64("count", n))
	return n, nil
}

// SlotsForDate returns the open times of date on the 12-hour clock
func (s *ScheduleService) SlotsForDate(ctx context.Context, date string) (*domain.DaySlots, error) {
	if !domain.ValidDate(date) {
		return nil, domain.NewValidationError("Invalid date format. Use YYYY-MM-DD format.")
	}
	times, err := s.repo.SlotsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return &domain.DaySlots{Date: date, TimeSlots: formatClocks(times)}, nil
}

// AllSlots groups every open time by date on the 12-hour clock
func (s *ScheduleService) AllSlots(ctx context.Context) (map[string][]string, error) {
	days, err := s.repo.AllSlots(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]string, len(days))
	for _, d := range days {
		grouped[d.Date] = formatClocks(d.TimeSlots)
	}
	return grouped, nil
}

// BookAppointment stores a booking with its time converted to the 24-hour clock
func (s *ScheduleService) BookAppointment(ctx context.Context, req domain.AppointmentRequest) (*domain.Appointment, error) {
	if domain.IsBlank(req.Location) || domain.IsBlank(req.CategoryID) || domain.IsBlank(req.ServiceID) ||
		domain.IsBlank(req.AppointmentDate) || domain.IsBlank(req.AppointmentTime) {
		return nil, domain.NewValidationError("All fields are required")
	}

	categoryID, err := domain.ParseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	serviceID, err := domain.ParseID(req.ServiceID)
	if err != nil {
		return nil, err
	}
	date := strings.TrimSpace(req.AppointmentDate)
	if !domain.ValidDate(date) {
		return nil, domain.NewValidationError("Invalid date format. Use YYYY-MM-DD format.")
	}
	at, err := domain.ParseClock(req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		ID:              domain.NewID(),
		Location:        strings.TrimSpace(req.Location),
		CategoryID:      categoryID,
		ServiceID:       serviceID,
		AppointmentDate: date,
		AppointmentTime: at,
	}
	if err := s.repo.CreateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	s.logger.Info("appointment booked",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("date", date),
		zap.String("time", at),
	)
	return appointment, nil
}

func (s *ScheduleService) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return s.repo.ListAppointments(ctx)
}

func formatClocks(times []string) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = domain.FormatClock(t)
	}
	return out
}
