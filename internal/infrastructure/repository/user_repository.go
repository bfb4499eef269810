package repository

import (
	"context"
	"time"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type UserRepository struct {
	store
}

func NewUserRepository(db *database.Postgres, logger *zap.Logger) *UserRepository {
	return &UserRepository{store{db: db, logger: logger}}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.Exec(ctx, `
		INSERT INTO users (id, user_img, user_name, email, mobile_no, aadhar_no, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, user.ID.String(), user.UserImg, user.UserName, user.Email, user.MobileNo, user.AadharNo, user.Password, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return r.storageErr("create user", "User", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_img, user_name, email, mobile_no, aadhar_no, created_at, updated_at
		FROM users WHERE id = $1
	`, id.String()).Scan(&user.ID, &user.UserImg, &user.UserName, &user.Email, &user.MobileNo, &user.AadharNo, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, r.storageErr("find user", "User", err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_img, user_name, email, mobile_no, aadhar_no, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, r.storageErr("list users", "User", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.UserImg, &user.UserName, &user.Email, &user.MobileNo, &user.AadharNo, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, r.storageErr("scan user", "User", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list users", "User", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id ulid.ULID, patch domain.UserPatch) ([]string, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	fs := database.NewFieldSet()
	database.SetPresent(fs, "user_name", patch.UserName)
	database.SetPresent(fs, "email", patch.Email)
	database.SetPresent(fs, "mobile_no", patch.MobileNo)
	database.SetPresent(fs, "aadhar_no", patch.AadharNo)
	database.SetPresent(fs, "password", patch.Password)
	database.SetPresent(fs, "user_img", patch.UserImg)
	fs.Set("updated_at", time.Now())

	return r.updateReplacing(ctx, "users", "User", id, fs, "user_img")
}

func (r *UserRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	return r.deleteReturning(ctx, "users", "User", id, "user_img")
}
