package application

import (
	"context"
	"testing"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduleService_AddTimeSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes before storing", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		svc := NewScheduleService(repo, zap.NewNop())
		repo.On("AddTimeSlots", ctx, "2024-11-20", []string{"09:30", "14:00"}).Return(int64(2), nil)

		n, err := svc.AddTimeSlots(ctx, domain.TimeSlotBatch{
			Date:      "2024-11-20",
			TimeSlots: []string{"9:30 AM", "14:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		svc := NewScheduleService(repo, zap.NewNop())
		repo.On("AddTimeSlots", ctx, "2024-11-20", []string{"09:30"}).Return(int64(0), domain.ErrConflict)

		_, err := svc.AddTimeSlots(ctx, domain.TimeSlotBatch{Date: "2024-11-20", TimeSlots: []string{"09:30"}})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("bad batch", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		svc := NewScheduleService(repo, zap.NewNop())

		_, err := svc.AddTimeSlots(ctx, domain.TimeSlotBatch{Date: "20-11-2024", TimeSlots: []string{"09:30"}})
		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "AddTimeSlots", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScheduleService_Slots(t *testing.T) {
	ctx := context.Background()
	repo := new(MockScheduleRepository)
	svc := NewScheduleService(repo, zap.NewNop())

	repo.On("SlotsForDate", ctx, "2024-11-20").Return([]string{"09:30", "14:00"}, nil)
	repo.On("AllSlots", ctx).Return([]domain.DaySlots{
		{Date: "2024-11-20", TimeSlots: []string{"09:30"}},
		{Date: "2024-11-21", TimeSlots: []string{"00:15", "12:00"}},
	}, nil)

	day, err := svc.SlotsForDate(ctx, "2024-11-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:30 AM", "2:00 PM"}, day.TimeSlots)

	all, err := svc.AllSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"2024-11-20": {"9:30 AM"},
		"2024-11-21": {"12:15 AM", "12:00 PM"},
	}, all)

	_, err = svc.SlotsForDate(ctx, "tomorrow")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_BookAppointment(t *testing.T) {
	ctx := context.Background()
	categoryID := domain.NewID()
	serviceID := domain.NewID()

	valid := domain.AppointmentRequest{
		Location:        "Indiranagar",
		CategoryID:      categoryID.String(),
		ServiceID:       serviceID.String(),
		AppointmentDate: "2024-11-20",
		AppointmentTime: "2:30 PM",
	}

	t.Run("stores 24-hour time", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		svc := NewScheduleService(repo, zap.NewNop())
		repo.On("CreateAppointment", ctx, mock.MatchedBy(func(a *domain.Appointment) bool {
			return a.AppointmentTime == "14:30" && a.CategoryID == categoryID && a.ServiceID == serviceID
		})).Return(nil)

		a, err := svc.BookAppointment(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "14:30", a.AppointmentTime)
	})

	tests := []struct {
		name   string
		modify func(r *domain.AppointmentRequest)
		msg    string
	}{
		{"missing location", func(r *domain.AppointmentRequest) { r.Location = "" }, "All fields are required"},
		{"bad time", func(r *domain.AppointmentRequest) { r.AppointmentTime = "25:99" }, "Invalid time format"},
		{"bad date", func(r *domain.AppointmentRequest) { r.AppointmentDate = "2024-13-45" }, "Invalid date format. Use YYYY-MM-DD format."},
		{"bad category", func(r *domain.AppointmentRequest) { r.CategoryID = "x" }, "Invalid ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockScheduleRepository)
			svc := NewScheduleService(repo, zap.NewNop())
			req := valid
			tt.modify(&req)

			_, err := svc.BookAppointment(ctx, req)
			require.Error(t, err)
			assert.Equal(t, tt.msg, domain.AsError(err).GetMessage())
			repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
		})
	}
}
