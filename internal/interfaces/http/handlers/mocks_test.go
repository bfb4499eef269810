package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/myanimal/petcare-service/internal/application"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOTPService struct {
	mock.Mock
}

func (m *mockOTPService) Initiate(ctx context.Context, phoneNumber string) (*domain.OTPInitiation, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OTPInitiation), args.Error(1)
}

func (m *mockOTPService) Resend(ctx context.Context, phoneNumber string) (domain.OTPState, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Get(0).(domain.OTPState), args.Error(1)
}

func (m *mockOTPService) Verify(ctx context.Context, phoneNumber, code string) (*domain.VerificationResult, error) {
	args := m.Called(ctx, phoneNumber, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationResult), args.Error(1)
}

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *mockProfileService) GetProfile(ctx context.Context, id ulid.ULID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileService) UpdateName(ctx context.Context, id ulid.ULID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, id ulid.ULID, in application.ProfileUpdate) ([]string, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, fields domain.UserFields, userImg string) (*domain.User, error) {
	args := m.Called(ctx, fields, userImg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id ulid.ULID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id ulid.ULID, fields domain.UserFields, userImg string) ([]string, error) {
	args := m.Called(ctx, id, fields, userImg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id ulid.ULID) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockScheduleService struct {
	mock.Mock
}

func (m *mockScheduleService) AddTimeSlots(ctx context.Context, batch domain.TimeSlotBatch) (int64, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockScheduleService) SlotsForDate(ctx context.Context, date string) (*domain.DaySlots, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DaySlots), args.Error(1)
}

func (m *mockScheduleService) AllSlots(ctx context.Context) (map[string][]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *mockScheduleService) BookAppointment(ctx context.Context, req domain.AppointmentRequest) (*domain.Appointment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *mockScheduleService) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Save(fh *multipart.FileHeader, policy uploads.Policy) (string, error) {
	args := m.Called(fh.Filename, policy)
	return args.String(0), args.Error(1)
}

func (m *mockFileStore) Discard(paths ...string) {
	m.Called(paths)
}

func (m *mockFileStore) MaxBytes() int64 {
	return 1 << 20
}

type mockGroomerRepository struct {
	mock.Mock
}

func (m *mockGroomerRepository) Create(ctx context.Context, g *domain.Groomer) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGroomerRepository) List(ctx context.Context) ([]*domain.Groomer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Groomer), args.Error(1)
}

func (m *mockGroomerRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Groomer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Groomer), args.Error(1)
}

func (m *mockGroomerRepository) Update(ctx context.Context, id ulid.ULID, patch domain.GroomerPatch) ([]string, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockGroomerRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Contact), args.Error(1)
}

func (m *mockContactRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *mockContactRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ContactPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *mockContactRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return m.Called(ctx, id).Error(0)
}

// multipartRequest builds a multipart body from text fields and named files
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, filename := range files {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("file-content"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) Update(ctx context.Context, id ulid.ULID, patch domain.CategoryPatch) ([]string, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockServiceRepository struct {
	mock.Mock
}

func (m *mockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockServiceRepository) ListByCategory(ctx context.Context, categoryID ulid.ULID) ([]*domain.Service, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *mockServiceRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ServicePatch) ([]string, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockServiceRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockPriceServiceRepository struct {
	mock.Mock
}

func (m *mockPriceServiceRepository) Create(ctx context.Context, p *domain.PriceService) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPriceServiceRepository) List(ctx context.Context) ([]*domain.PriceService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PriceService), args.Error(1)
}

func (m *mockPriceServiceRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.PriceService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceService), args.Error(1)
}

func (m *mockPriceServiceRepository) Update(ctx context.Context, id ulid.ULID, patch domain.PriceServicePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *mockPriceServiceRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPriceServiceRepository) ListWithSubServices(ctx context.Context) ([]*domain.PriceServiceWithSubs, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PriceServiceWithSubs), args.Error(1)
}

func (m *mockPriceServiceRepository) FindWithSubServices(ctx context.Context, id ulid.ULID) (*domain.PriceServiceWithSubs, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceServiceWithSubs), args.Error(1)
}

type mockSubServiceRepository struct {
	mock.Mock
}

func (m *mockSubServiceRepository) Create(ctx context.Context, s *domain.SubService) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSubServiceRepository) List(ctx context.Context) ([]*domain.SubService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SubService), args.Error(1)
}

func (m *mockSubServiceRepository) ListByService(ctx context.Context, serviceID ulid.ULID) ([]*domain.SubService, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SubService), args.Error(1)
}

func (m *mockSubServiceRepository) Update(ctx context.Context, id ulid.ULID, patch domain.SubServicePatch) ([]string, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockSubServiceRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockNameRepository struct {
	mock.Mock
}

func (m *mockNameRepository) Create(ctx context.Context, n *domain.FullName) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNameRepository) List(ctx context.Context) ([]*domain.FullName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FullName), args.Error(1)
}

func (m *mockNameRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.FullName, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FullName), args.Error(1)
}

func (m *mockNameRepository) Update(ctx context.Context, id ulid.ULID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *mockNameRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return m.Called(ctx, id).Error(0)
}

type mockScreenRepository struct {
	mock.Mock
}

func (m *mockScreenRepository) Create(ctx context.Context, s *domain.Screen) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockScreenRepository) List(ctx context.Context) ([]*domain.Screen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Screen), args.Error(1)
}

func (m *mockScreenRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screen), args.Error(1)
}

func (m *mockScreenRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ScreenPatch) ([]string, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockScreenRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
