package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// store holds what every repository shares
type store struct {
	db     *database.Postgres
	logger *zap.Logger
}

// storageErr logs err and converts it at the repository boundary. A missing
// row becomes a not-found error for resource.
func (s store) storageErr(op, resource string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(resource)
	}
	var de domain.Error
	if errors.As(err, &de) {
		return err
	}
	if database.IsUniqueViolation(err) {
		return domain.ErrConflict.Wrap(err)
	}
	if database.IsForeignKeyViolation(err) {
		return domain.NewValidationError(fmt.Sprintf("Referenced record does not exist for %s", strings.ToLower(resource))).Wrap(err)
	}
	s.logger.Error("database error", zap.String("op", op), zap.Error(err))
	return domain.NewStorageError(err)
}

// updateReplacing applies fs to the row with id inside a transaction and
// returns the previous values of the upload columns fs overwrote
func (s store) updateReplacing(ctx context.Context, table, resource string, id ulid.ULID, fs *database.FieldSet, uploadColumns ...string) ([]string, error) {
	op := "update " + table
	query, args, err := fs.UpdateSQL(table, "id", id.String())
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, s.storageErr(op, resource, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var replaced []string
	for _, c := range uploadColumns {
		if fs.Has(c) {
			replaced = append(replaced, c)
		}
	}

	var superseded []string
	if len(replaced) > 0 {
		previous := make([]*string, len(replaced))
		dest := make([]interface{}, len(replaced))
		for i := range previous {
			dest[i] = &previous[i]
		}
		lock := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 FOR UPDATE", strings.Join(replaced, ", "), table)
		if err := tx.QueryRow(ctx, lock, id.String()).Scan(dest...); err != nil {
			return nil, s.storageErr(op, resource, err)
		}
		for i, c := range replaced {
			next, _ := fs.Value(c)
			if old := previous[i]; old != nil && *old != "" && *old != next {
				superseded = append(superseded, *old)
			}
		}
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, s.storageErr(op, resource, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError(resource)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, s.storageErr(op, resource, err)
	}
	return superseded, nil
}

// update applies fs to the row with id
func (s store) update(ctx context.Context, table, resource string, id ulid.ULID, fs *database.FieldSet) error {
	query, args, err := fs.UpdateSQL(table, "id", id.String())
	if err != nil {
		return err
	}
	tag, err := s.db.ExecRaw(ctx, query, args...)
	if err != nil {
		return s.storageErr("update "+table, resource, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(resource)
	}
	return nil
}

// deleteReturning removes the row with id and returns its non-empty upload paths
func (s store) deleteReturning(ctx context.Context, table, resource string, id ulid.ULID, uploadColumns ...string) ([]string, error) {
	op := "delete " + table
	if len(uploadColumns) == 0 {
		tag, err := s.db.ExecRaw(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id.String())
		if err != nil {
			return nil, s.storageErr(op, resource, err)
		}
		if tag.RowsAffected() == 0 {
			return nil, domain.NewNotFoundError(resource)
		}
		return nil, nil
	}

	values := make([]*string, len(uploadColumns))
	dest := make([]interface{}, len(uploadColumns))
	for i := range values {
		dest[i] = &values[i]
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", table, strings.Join(uploadColumns, ", "))
	if err := s.db.QueryRow(ctx, query, id.String()).Scan(dest...); err != nil {
		return nil, s.storageErr(op, resource, err)
	}

	var paths []string
	for _, v := range values {
		if v != nil && *v != "" {
			paths = append(paths, *v)
		}
	}
	return paths, nil
}
