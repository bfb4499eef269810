package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type PriceServiceRepository struct {
	store
}

func NewPriceServiceRepository(db *database.Postgres, logger *zap.Logger) *PriceServiceRepository {
	return &PriceServiceRepository{store{db: db, logger: logger}}
}

func (r *PriceServiceRepository) Create(ctx context.Context, p *domain.PriceService) error {
	err := r.db.Exec(ctx, `INSERT INTO price_services (id, name, price) VALUES ($1, $2, $3)`,
		p.ID.String(), p.Name, p.Price)
	if err != nil {
		return r.storageErr("create price service", "Service", err)
	}
	return nil
}

func (r *PriceServiceRepository) List(ctx context.Context) ([]*domain.PriceService, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price::float8 FROM price_services ORDER BY id`)
	if err != nil {
		return nil, r.storageErr("list price services", "Service", err)
	}
	defer rows.Close()

	services := make([]*domain.PriceService, 0)
	for rows.Next() {
		p := &domain.PriceService{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, r.storageErr("scan price service", "Service", err)
		}
		services = append(services, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list price services", "Service", err)
	}
	return services, nil
}

func (r *PriceServiceRepository) FindByID(ctx context.Context, id ulid.ULID) (*domain.PriceService, error) {
	p := &domain.PriceService{}
	err := r.db.QueryRow(ctx, `SELECT id, name, price::float8 FROM price_services WHERE id = $1`, id.String()).
		Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		return nil, r.storageErr("find price service", "Service", err)
	}
	return p, nil
}

func (r *PriceServiceRepository) Update(ctx context.Context, id ulid.ULID, patch domain.PriceServicePatch) error {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "name", patch.Name)
	database.SetPresent(fs, "price", patch.Price)
	return r.update(ctx, "price_services", "Service", id, fs)
}

// Delete cascades to the sub-services; their images are left to the upload sweeper
func (r *PriceServiceRepository) Delete(ctx context.Context, id ulid.ULID) error {
	_, err := r.deleteReturning(ctx, "price_services", "Service", id)
	return err
}

const withSubServicesQuery = `
	SELECT p.id, p.name, p.price::float8, s.id, s.name, s.img, s.color
	FROM price_services p
	LEFT JOIN sub_services s ON s.service_id = p.id
`

func (r *PriceServiceRepository) ListWithSubServices(ctx context.Context) ([]*domain.PriceServiceWithSubs, error) {
	rows, err := r.db.Query(ctx, withSubServicesQuery+` ORDER BY p.id, s.id`)
	if err != nil {
		return nil, r.storageErr("list price services with subs", "Service", err)
	}
	return r.collectWithSubs(rows)
}

func (r *PriceServiceRepository) FindWithSubServices(ctx context.Context, id ulid.ULID) (*domain.PriceServiceWithSubs, error) {
	rows, err := r.db.Query(ctx, withSubServicesQuery+` WHERE p.id = $1 ORDER BY s.id`, id.String())
	if err != nil {
		return nil, r.storageErr("find price service with subs", "Service", err)
	}
	services, err := r.collectWithSubs(rows)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, domain.NewNotFoundError("Service")
	}
	return services[0], nil
}

func (r *PriceServiceRepository) collectWithSubs(rows pgx.Rows) ([]*domain.PriceServiceWithSubs, error) {
	defer rows.Close()

	services := make([]*domain.PriceServiceWithSubs, 0)
	for rows.Next() {
		var (
			svc                      domain.PriceServiceWithSubs
			subID, subName, subColor *string
			subImg                   *string
		)
		if err := rows.Scan(&svc.ServiceID, &svc.ServiceName, &svc.Price, &subID, &subName, &subImg, &subColor); err != nil {
			return nil, r.storageErr("scan price service with subs", "Service", err)
		}

		n := len(services)
		if n == 0 || services[n-1].ServiceID != svc.ServiceID {
			svc.SubServices = make([]*domain.SubService, 0)
			services = append(services, &svc)
		}
		if subID == nil {
			continue
		}
		subULID, err := ulid.Parse(*subID)
		if err != nil {
			return nil, r.storageErr("scan price service with subs", "Service", err)
		}
		current := services[len(services)-1]
		current.SubServices = append(current.SubServices, &domain.SubService{
			ID:        subULID,
			ServiceID: svc.ServiceID,
			Name:      deref(subName),
			Img:       subImg,
			Color:     deref(subColor),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list price services with subs", "Service", err)
	}
	return services, nil
}

type SubServiceRepository struct {
	store
}

func NewSubServiceRepository(db *database.Postgres, logger *zap.Logger) *SubServiceRepository {
	return &SubServiceRepository{store{db: db, logger: logger}}
}

func (r *SubServiceRepository) Create(ctx context.Context, s *domain.SubService) error {
	err := r.db.Exec(ctx, `
		INSERT INTO sub_services (id, service_id, name, img, color)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID.String(), s.ServiceID.String(), s.Name, s.Img, s.Color)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.NewNotFoundError("Service")
		}
		return r.storageErr("create sub-service", "Sub-service", err)
	}
	return nil
}

func (r *SubServiceRepository) List(ctx context.Context) ([]*domain.SubService, error) {
	rows, err := r.db.Query(ctx, `SELECT id, service_id, name, img, color FROM sub_services ORDER BY id`)
	if err != nil {
		return nil, r.storageErr("list sub-services", "Sub-service", err)
	}
	return r.collect(rows)
}

func (r *SubServiceRepository) ListByService(ctx context.Context, serviceID ulid.ULID) ([]*domain.SubService, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, service_id, name, img, color FROM sub_services
		WHERE service_id = $1 ORDER BY id
	`, serviceID.String())
	if err != nil {
		return nil, r.storageErr("list sub-services", "Sub-service", err)
	}
	return r.collect(rows)
}

func (r *SubServiceRepository) collect(rows pgx.Rows) ([]*domain.SubService, error) {
	defer rows.Close()

	subs := make([]*domain.SubService, 0)
	for rows.Next() {
		s := &domain.SubService{}
		if err := rows.Scan(&s.ID, &s.ServiceID, &s.Name, &s.Img, &s.Color); err != nil {
			return nil, r.storageErr("scan sub-service", "Sub-service", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr("list sub-services", "Sub-service", err)
	}
	return subs, nil
}

func (r *SubServiceRepository) Update(ctx context.Context, id ulid.ULID, patch domain.SubServicePatch) ([]string, error) {
	fs := database.NewFieldSet()
	database.SetPresent(fs, "name", patch.Name)
	database.SetPresent(fs, "color", patch.Color)
	database.SetPresent(fs, "img", patch.Img)
	return r.updateReplacing(ctx, "sub_services", "Sub-service", id, fs, "img")
}

func (r *SubServiceRepository) Delete(ctx context.Context, id ulid.ULID) ([]string, error) {
	return r.deleteReturning(ctx, "sub_services", "Sub-service", id, "img")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
