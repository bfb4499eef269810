package application

import (
	"context"
	"errors"
	"strings"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// ProfileUpdate carries the raw profile fields of an update; empty means absent
type ProfileUpdate struct {
	PhoneNumber string
	Name        string
	Email       string
	AadharNo    string
	Password    string
	UserImg     string
}

type ProfileService struct {
	repo   domain.ProfileRepository
	hasher domain.PasswordHasher
	logger *zap.Logger
}

func NewProfileService(repo domain.ProfileRepository, hasher domain.PasswordHasher, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return s.repo.List(ctx)
}

func (s *ProfileService) GetProfile(ctx context.Context, id ulid.ULID) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) UpdateName(ctx context.Context, id ulid.ULID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("User ID and name are required.")
	}
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("User ID")
		}
		return err
	}
	s.logger.Info("profile name updated", zap.String("user_id", id.String()))
	return nil
}

// UpdateProfile applies the present fields and returns the upload paths the update superseded
func (s *ProfileService) UpdateProfile(ctx context.Context, id ulid.ULID, in ProfileUpdate) ([]string, error) {
	var errs domain.ValidationErrors
	if in.Email != "" && !domain.ValidEmail(in.Email) {
		errs.Add("email", "Invalid email format.")
	}
	if in.AadharNo != "" && !domain.ValidAadhar(in.AadharNo) {
		errs.Add("aadharNo", "Aadhar number must be a 12-digit numeric value.")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	patch := domain.ProfilePatch{
		PhoneNumber: present(in.PhoneNumber),
		Name:        present(in.Name),
		Email:       present(in.Email),
		AadharNo:    present(in.AadharNo),
		UserImg:     present(in.UserImg),
	}
	if in.Password != "" {
		hashed, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hashed
	}
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	superseded, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("profile updated", zap.String("user_id", id.String()))
	return superseded, nil
}

// present returns nil for an absent (blank) request field
func present(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
