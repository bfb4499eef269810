package application

import (
	"context"
	"time"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// UserService manages the accounts behind /api/user
type UserService struct {
	repo   domain.UserRepository
	hasher domain.PasswordHasher
	logger *zap.Logger
}

func NewUserService(repo domain.UserRepository, hasher domain.PasswordHasher, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// CreateUser validates every field, hashes the password and stores the account
func (s *UserService) CreateUser(ctx context.Context, fields domain.UserFields, userImg string) (*domain.User, error) {
	if err := fields.Validate(false); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(fields.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:        domain.NewID(),
		UserImg:   present(userImg),
		UserName:  fields.UserName,
		Email:     fields.Email,
		MobileNo:  fields.MobileNo,
		AadharNo:  fields.AadharNo,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.String("user_id", user.ID.String()))
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id ulid.ULID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser validates and applies the present fields, returning the superseded upload paths
func (s *UserService) UpdateUser(ctx context.Context, id ulid.ULID, fields domain.UserFields, userImg string) ([]string, error) {
	if err := fields.Validate(true); err != nil {
		return nil, err
	}

	patch := domain.UserPatch{
		UserName: present(fields.UserName),
		Email:    present(fields.Email),
		MobileNo: present(fields.MobileNo),
		AadharNo: present(fields.AadharNo),
		UserImg:  present(userImg),
	}
	if fields.Password != "" {
		hashed, err := s.hasher.Hash(fields.Password)
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
	s.logger.Info("user updated", zap.String("user_id", id.String()))
	return superseded, nil
}

// DeleteUser removes the account and returns its upload paths
func (s *UserService) DeleteUser(ctx context.Context, id ulid.ULID) ([]string, error) {
	paths, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return paths, nil
}
