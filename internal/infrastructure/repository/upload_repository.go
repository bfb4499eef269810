package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"go.uber.org/zap"
)

// UploadReferenceRepository lists every upload path still stored in a table
type UploadReferenceRepository struct {
	store
}

func NewUploadReferenceRepository(db *database.Postgres, logger *zap.Logger) *UploadReferenceRepository {
	return &UploadReferenceRepository{store{db: db, logger: logger}}
}

func (r *UploadReferenceRepository) ReferencedUploads(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT path FROM (
			SELECT user_img AS path FROM users_details
			UNION SELECT user_img FROM users
			UNION SELECT image FROM doctors
			UNION SELECT photo FROM groomers
			UNION SELECT image FROM screens
			UNION SELECT detailsimage FROM screens
			UNION SELECT category_img FROM categories
			UNION SELECT service_img FROM services
			UNION SELECT service_icon FROM services
			UNION SELECT img FROM sub_services
		) refs
		WHERE path IS NOT NULL AND path <> ''
	`)
	if err != nil {
		return nil, r.storageErr("referenced uploads", "Upload", err)
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, r.storageErr("referenced uploads", "Upload", err)
	}
	return paths, nil
}
