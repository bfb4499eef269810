package repository

import (
	"context"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	store
}

func NewCategoryRepository(db *database.Postgres, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{store{db: db, logger: logger}}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (id, category_name, category_img, description, price, colorcode)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, c.ID.String(), c.CategoryName, c.CategoryImg, c.Description, c.Price, c.ColorCode).Scan(&c.CreatedAt)
	if err != nil {
		return r.storageErr("create category", "Category", err)
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category_name, category_img, description, price::float8, colorcode, created_at
		FROM categories ORDER BY created_at
	`)
	if err != nil {
		return nil, r.storageErr("list categories", "Category", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.CategoryImg, &c.Description, &c.Price, &c.ColorCode, &c.CreatedAt); err != nil {
			return nil, r.storageErr("scan category", "Category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list categories", "Category", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id ulid.ULID, patch domain.CategoryPatch) ([]string, error) {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "category_name", patch.CategoryName)
	database.SetPresent(fs, "description", patch.Description)
	database.SetPresent(fs, "price", patch.Price)
	database.SetPresent(fs, "colorcode", patch.ColorCode)
	database.SetPresent(fs, "category_img", patch.CategoryImg)
	return r.updateReplacing(ctx, "categories", "Category", id, fs, "category_img")
}

// Delete removes the category together with its services and returns the
// upload paths of all removed rows
func (r *CategoryRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	var paths []string
	rows, err := r.db.Query(ctx, `
		SELECT service_img, service_icon FROM services WHERE category_id = $1
	`, id.String())
	if err != nil {
		return nil, r.storageErr("list category uploads", "Category", err)
	}
	for rows.Next() {
		var img, icon *string
		if err := rows.Scan(&img, &icon); err != nil {
			rows.Close()
			return nil, r.storageErr("scan category uploads", "Category", err)
		}
		paths = appendPresent(paths, img, icon)
	}
	rows.Close()

	own, err := r.deleteReturning(ctx, "categories", "Category", id, "category_img")
	if err != nil {
		return nil, err
	}
	return append(own, paths...), nil
}

type ServiceRepository struct {
	store
}

func NewServiceRepository(db *database.Postgres, logger *zap.Logger) *ServiceRepository {
	return &ServiceRepository{store{db: db, logger: logger}}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO services (id, category_id, service_name, color_resource, service_img, service_icon, description, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, s.ID.String(), s.CategoryID.String(), s.ServiceName, s.ColorResource, s.ServiceImg, s.ServiceIcon, s.Description, s.Price).
		Scan(&s.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.NewNotFoundError("Category")
		}
		return r.storageErr("create service", "Service", err)
	}
	return nil
}

func (r *ServiceRepository) ListByCategory(ctx context.Context, categoryID ulid.ULID) ([]*domain.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, service_name, color_resource, service_img, service_icon, description, price::float8, created_at
		FROM services WHERE category_id = $1 ORDER BY created_at
	`, categoryID.String())
	if err != nil {
		return nil, r.storageErr("list services", "Service", err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s := &domain.Service{}
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.ServiceName, &s.ColorResource, &s.ServiceImg, &s.ServiceIcon, &s.Description, &s.Price, &s.CreatedAt); err != nil {
			return nil, r.storageErr("scan service", "Service", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list services", "Service", err)
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id ulid.ULID, patch domain.ServicePatch) ([]string, error) {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "service_name", patch.ServiceName)
	database.SetPresent(fs, "color_resource", patch.ColorResource)
	database.SetPresent(fs, "description", patch.Description)
	database.SetPresent(fs, "price", patch.Price)
	database.SetPresent(fs, "service_img", patch.ServiceImg)
	database.SetPresent(fs, "service_icon", patch.ServiceIcon)
	return r.updateReplacing(ctx, "services", "Service", id, fs, "service_img", "service_icon")
}

func (r *ServiceRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	return r.deleteReturning(ctx, "services", "Service", id, "service_img", "service_icon")
}

func appendPresent(paths []string, values ...*string) []string {
	for _, v := range values {
		if v != nil && *v != "" {
			paths = append(paths, *v)
		}
	}
	return paths
}
