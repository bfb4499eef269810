package application

import (
	"context"
	"time"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/mock"
)

type MockPhoneRegistry struct {
	mock.Mock
}

func (m *MockPhoneRegistry) GetOrCreate(ctx context.Context, phoneNumber string) (ulid.ULID, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Get(0).(ulid.ULID), args.Error(1)
}

func (m *MockPhoneRegistry) FindIDByPhone(ctx context.Context, phoneNumber string) (ulid.ULID, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Get(0).(ulid.ULID), args.Error(1)
}

type MockOTPGateway struct {
	mock.Mock
}

func (m *MockOTPGateway) SendOTP(ctx context.Context, phoneNumber string) error {
	return m.Called(ctx, phoneNumber).Error(0)
}

func (m *MockOTPGateway) VerifyOTP(ctx context.Context, phoneNumber, code string) (domain.MatchOutcome, error) {
	args := m.Called(ctx, phoneNumber, code)
	return args.Get(0).(domain.MatchOutcome), args.Error(1)
}

func (m *MockOTPGateway) ResendOTP(ctx context.Context, phoneNumber string) error {
	return m.Called(ctx, phoneNumber).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssueToken(userID ulid.ULID) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockProfileRepository struct {
	MockPhoneRegistry
}

func (m *MockProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateName(ctx context.Context, id ulid.ULID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ProfilePatch) ([]string, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id ulid.ULID, patch domain.UserPatch) ([]string, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) AddTimeSlots(ctx context.Context, date string, times []string) (int64, error) {
	args := m.Called(ctx, date, times)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) SlotsForDate(ctx context.Context, date string) ([]string, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockScheduleRepository) AllSlots(ctx context.Context) ([]domain.DaySlots, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DaySlots), args.Error(1)
}

func (m *MockScheduleRepository) CreateAppointment(ctx context.Context, a *domain.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockScheduleRepository) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}
