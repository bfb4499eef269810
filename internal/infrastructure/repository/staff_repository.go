package repository

import (
	"context"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type DoctorRepository struct {
	store
}

func NewDoctorRepository(db *database.Postgres, logger *zap.Logger) *DoctorRepository {
	return &DoctorRepository{store{db: db, logger: logger}}
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO doctors (id, image, doctor_name, title, year_of_experience)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, d.ID.String(), d.Image, d.DoctorName, d.Title, d.YearOfExperience).Scan(&d.CreatedAt)
	if err != nil {
		return r.storageErr("create doctor", "Doctor", err)
	}
	return nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, image, doctor_name, title, year_of_experience, created_at
		FROM doctors ORDER BY created_at
	`)
	if err != nil {
		return nil, r.storageErr("list doctors", "Doctor", err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		d := &domain.Doctor{}
		if err := rows.Scan(&d.ID, &d.Image, &d.DoctorName, &d.Title, &d.YearOfExperience, &d.CreatedAt); err != nil {
			return nil, r.storageErr("scan doctor", "Doctor", err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list doctors", "Doctor", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Doctor, error) {
	d := &domain.Doctor{}
	err := r.db.QueryRow(ctx, `
		SELECT id, image, doctor_name, title, year_of_experience, created_at
		FROM doctors WHERE id = $1
	`, id.String()).Scan(&d.ID, &d.Image, &d.DoctorName, &d.Title, &d.YearOfExperience, &d.CreatedAt)
	if err != nil {
		return nil, r.storageErr("find doctor", "Doctor", err)
	}
	return d, nil
}

func (r *DoctorRepository) Update(ctx context.Context, id ulid.ULID, patch domain.DoctorPatch) ([]string, error) {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "doctor_name", patch.DoctorName)
	database.SetPresent(fs, "title", patch.Title)
	database.SetPresent(fs, "year_of_experience", patch.YearOfExperience)
	database.SetPresent(fs, "image", patch.Image)
	return r.updateReplacing(ctx, "doctors", "Doctor", id, fs, "image")
}

func (r *DoctorRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	return r.deleteReturning(ctx, "doctors", "Doctor", id, "image")
}

type GroomerRepository struct {
	store
}

func NewGroomerRepository(db *database.Postgres, logger *zap.Logger) *GroomerRepository {
	return &GroomerRepository{store{db: db, logger: logger}}
}

func (r *GroomerRepository) Create(ctx context.Context, g *domain.Groomer) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO groomers (id, name, years_of_experience, photo)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, g.ID.String(), g.Name, g.YearsOfExperience, g.Photo).Scan(&g.CreatedAt)
	if err != nil {
		return r.storageErr("create groomer", "Groomer", err)
	}
	return nil
}

func (r *GroomerRepository) List(ctx context.Context) ([]*domain.Groomer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, years_of_experience, photo, created_at
		FROM groomers ORDER BY created_at
	`)
	if err != nil {
		return nil, r.storageErr("list groomers", "Groomer", err)
	}
	defer rows.Close()

	groomers := make([]*domain.Groomer, 0)
	for rows.Next() {
		g := &domain.Groomer{}
		if err := rows.Scan(&g.ID, &g.Name, &g.YearsOfExperience, &g.Photo, &g.CreatedAt); err != nil {
			return nil, r.storageErr("scan groomer", "Groomer", err)
		}
		groomers = append(groomers, g)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list groomers", "Groomer", err)
	}
	return groomers, nil
}

func (r *GroomerRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Groomer, error) {
	g := &domain.Groomer{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, years_of_experience, photo, created_at
		FROM groomers WHERE id = $1
	`, id.String()).Scan(&g.ID, &g.Name, &g.YearsOfExperience, &g.Photo, &g.CreatedAt)
	if err != nil {
		return nil, r.storageErr("find groomer", "Groomer", err)
	}
	return g, nil
}

func (r *GroomerRepository) Update(ctx context.Context, id ulid.ULID, patch domain.GroomerPatch) ([]string, error) {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "name", patch.Name)
	database.SetPresent(fs, "years_of_experience", patch.YearsOfExperience)
	database.SetPresent(fs, "photo", patch.Photo)
	return r.updateReplacing(ctx, "groomers", "Groomer", id, fs, "photo")
}

func (r *GroomerRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	return r.deleteReturning(ctx, "groomers", "Groomer", id, "photo")
}
