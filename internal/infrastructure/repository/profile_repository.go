package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const profileColumns = `id, phone_number, name, email, aadhar_no, user_img, created_at, updated_at`

// ProfileRepository stores phone-registered customers in users_details
type ProfileRepository struct {
	store
}

func NewProfileRepository(db *database.Postgres, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{store{db: db, logger: logger}}
}

// GetOrCreate relies on the unique phone_number constraint: concurrent callers
// with the same number all receive the id of the single stored row.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, phoneNumber string) (ulid.ULID, error) {
	var id ulid.ULID
	err := r.db.QueryRow(ctx, `
		INSERT INTO users_details (id, phone_number)
		VALUES ($1, $2)
		ON CONFLICT (phone_number) DO UPDATE SET phone_number = EXCLUDED.phone_number
		RETURNING id
	`, domain.NewID().String(), phoneNumber).Scan(&id)
	if err != nil {
		r.logger.Error("failed to register phone number", zap.String("phone_number", phoneNumber), zap.Error(err))
		return ulid.ULID{}, domain.NewStorageError(err)
	}
	return id, nil
}

func (r *ProfileRepository) FindIDByPhone(ctx context.Context, phoneNumber string) (ulid.ULID, error) {
	var id ulid.ULID
	err := r.db.QueryRow(ctx, `SELECT id FROM users_details WHERE phone_number = $1`, phoneNumber).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ulid.ULID{}, domain.ErrPhoneNotRegistered
		}
		return ulid.ULID{}, r.storageErr("find profile by phone", "User", err)
	}
	return id, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM users_details ORDER BY created_at DESC`)
	if err != nil {
		return nil, r.storageErr("list profiles", "User", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		p := &domain.Profile{}
		if err := rows.Scan(&p.ID, &p.PhoneNumber, &p.Name, &p.Email, &p.AadharNo, &p.UserImg, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, r.storageErr("scan profile", "User", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list profiles", "User", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM users_details WHERE id = $1`, id.String()).
		Scan(&p.ID, &p.PhoneNumber, &p.Name, &p.Email, &p.AadharNo, &p.UserImg, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, r.storageErr("find profile", "User", err)
	}
	return p, nil
}

func (r *ProfileRepository) UpdateName(ctx context.Context, id ulid.ULID, name string) error {
	fs := database.NewFieldSet().
		Set("name", name).
		Set("updated_at", time.Now())
	return r.update(ctx, "users_details", "User", id, fs)
}

func (r *ProfileRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ProfilePatch) ([]string, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	fs := database.NewFieldSet()
	database.SetPresent(fs, "phone_number", patch.PhoneNumber)
	database.SetPresent(fs, "name", patch.Name)
	database.SetPresent(fs, "email", patch.Email)
	database.SetPresent(fs, "aadhar_no", patch.AadharNo)
	database.SetPresent(fs, "password", patch.Password)
	database.SetPresent(fs, "user_img", patch.UserImg)
	fs.Set("updated_at", time.Now())

	return r.updateReplacing(ctx, "users_details", "User", id, fs, "user_img")
}
