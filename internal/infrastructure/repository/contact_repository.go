package repository

import (
	"context"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type ContactRepository struct {
	store
}

func NewContactRepository(db *database.Postgres, logger *zap.Logger) *ContactRepository {
	return &ContactRepository{store{db: db, logger: logger}}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO contactdetails (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, c.ID.String(), c.Name, c.Email, c.Message).Scan(&c.CreatedAt)
	if err != nil {
		return r.storageErr("create contact", "Contact", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, message, created_at
		FROM contactdetails
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, r.storageErr("list contacts", "Contact", err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c := &domain.Contact{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, r.storageErr("scan contact", "Contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list contacts", "Contact", err)
	}
	return contacts, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.Contact, error) {
	c := &domain.Contact{}
	err := r.db.QueryRow(ctx, `SELECT id, name, email, message, created_at FROM contactdetails WHERE id = $1`, id.String()).
		Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt)
	if err != nil {
		return nil, r.storageErr("find contact", "Contact", err)
	}
	return c, nil
}

func (r *ContactRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ContactPatch) error {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "name", patch.Name)
	database.SetPresent(fs, "email", patch.Email)
	database.SetPresent(fs, "message", patch.Message)
	return r.update(ctx, "contactdetails", "Contact", id, fs)
}

func (r *ContactRepository) Delete(ctx context.Context, id ulid.ULID) error {
	_, err := r.deleteReturning(ctx, "contactdetails", "Contact", id)
	return err
}
