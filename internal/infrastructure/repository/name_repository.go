package repository

import (
	"context"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type NameRepository struct {
	store
}

func NewNameRepository(db *database.Postgres, logger *zap.Logger) *NameRepository {
	return &NameRepository{store{db: db, logger: logger}}
}

func (r *NameRepository) Create(ctx context.Context, n *domain.FullName) error {
	err := r.db.QueryRow(ctx, `INSERT INTO names (id, name) VALUES ($1, $2) RETURNING created_at`,
		n.ID.String(), n.Name).Scan(&n.CreatedAt)
	if err != nil {
		return r.storageErr("create name", "Name", err)
	}
	return nil
}

func (r *NameRepository) List(ctx context.Context) ([]*domain.FullName, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM names ORDER BY created_at`)
	if err != nil {
		return nil, r.storageErr("list names", "Name", err)
	}
	defer rows.Close()

	names := make([]*domain.FullName, 0)
	for rows.Next() {
		n := &domain.FullName{}
		if err := rows.Scan(&n.ID, &n.Name, &n.CreatedAt); err != nil {
			return nil, r.storageErr("scan name", "Name", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list names", "Name", err)
	}
	return names, nil
}

func (r *NameRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.FullName, error) {
	n := &domain.FullName{}
	err := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM names WHERE id = $1`, id.String()).
		Scan(&n.ID, &n.Name, &n.CreatedAt)
	if err != nil {
		return nil, r.storageErr("find name", "Name", err)
	}
	return n, nil
}

func (r *NameRepository) Update(ctx context.Context, id ulid.ULID, name string) error {
	return r.update(ctx, "names", "Name", id, database.NewFieldSet().Set("name", name))
}

func (r *NameRepository) Delete(ctx context.Context, id ulid.ULID) error {
	_, err := r.deleteReturning(ctx, "names", "Name", id)
	return err
}
