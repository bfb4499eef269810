package repository

import (
	"context"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type ScreenRepository struct {
	store
}

func NewScreenRepository(db *database.Postgres, logger *zap.Logger) *ScreenRepository {
	return &ScreenRepository{store{db: db, logger: logger}}
}

func (r *ScreenRepository) Create(ctx context.Context, s *domain.Screen) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO screens (id, name, image, detailsimage, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, s.ID.String(), s.Name, s.Image, s.DetailsImage, s.Description).Scan(&s.CreatedAt)
	if err != nil {
		return r.storageErr("create screen", "Screen", err)
	}
	return nil
}

func (r *ScreenRepository) List(ctx context.Context) ([]*domain.Screen, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, image, detailsimage, description, created_at
		FROM screens ORDER BY created_at
	`)
	if err != nil {
		return nil, r.storageErr("list screens", "Screen", err)
	}
	defer rows.Close()

	screens := make([]*domain.Screen, 0)
	for rows.Next() {
		s := &domain.Screen{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Image, &s.DetailsImage, &s.Description, &s.CreatedAt); err != nil {
			return nil, r.storageErr("scan screen", "Screen", err)
		}
		screens = append(screens, s)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list screens", "Screen", err)
	}
	return screens, nil
}

func (r *ScreenRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Screen, error) {
	s := &domain.Screen{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, image, detailsimage, description, created_at
		FROM screens WHERE id = $1
	`, id.String()).Scan(&s.ID, &s.Name, &s.Image, &s.DetailsImage, &s.Description, &s.CreatedAt)
	if err != nil {
		return nil, r.storageErr("find screen", "Screen", err)
	}
	return s, nil
}

func (r *ScreenRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ScreenPatch) ([]string, error) {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "name", patch.Name)
	database.SetPresent(fs, "description", patch.Description)
	database.SetPresent(fs, "image", patch.Image)
	database.SetPresent(fs, "detailsimage", patch.DetailsImage)
	return r.updateReplacing(ctx, "screens", "Screen", id, fs, "image", "detailsimage")
}

func (r *ScreenRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	return r.deleteReturning(ctx, "screens", "Screen", id, "image", "detailsimage")
}
