package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// resourceRepository implements [ResourceRepository] for any record type
// described by a [schema]. Queries are built with squirrel using the
// placeholder format of the underlying [DB].
type resourceRepository[T any] struct {
	*DB
	schema schema[T]
	ids    IDGenerator
	now    func() time.Time
}

func newResourceRepository[T any](db *DB, s schema[T], ids IDGenerator) *resourceRepository[T] {
	return &resourceRepository[T]{
		DB:     db,
		schema: s,
		ids:    ids,
		now:    time.Now,
	}
}

// NewCardRepository returns the SQL-backed repository of catalog cards.
func NewCardRepository(db *DB, ids IDGenerator, log *logger.Logger) ResourceRepository[models.Card] {
	log.Debug().Msg("creating card repository")
	return newResourceRepository(db, cardSchema, ids)
}

// NewOrderRepository returns the SQL-backed repository of orders.
func NewOrderRepository(db *DB, ids IDGenerator, log *logger.Logger) ResourceRepository[models.Order] {
	log.Debug().Msg("creating order repository")
	return newResourceRepository(db, orderSchema, ids)
}

// List returns every record ordered by creation time.
func (r *resourceRepository[T]) List(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(r.schema.columns...).
		From(r.schema.table).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.List").Str("table", r.schema.table).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.List").
			Str("table", r.schema.table).
			Stringer("class", r.errorClassificator.Classify(err)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, 16)
	for rows.Next() {
		item, scanErr := r.schema.scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "resourceRepository.List").Str("table", r.schema.table).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "resourceRepository.List").Str("table", r.schema.table).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// GetByID returns the record with the given id. Ids that are not valid
// UUIDs yield [ErrNotFound] without a query.
func (r *resourceRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	if !isValidID(id) {
		var zero T
		return zero, ErrNotFound
	}

	return r.getOne(ctx, sq.Eq{"id": id})
}

// getOne returns the first record matching where.
func (r *resourceRepository[T]) getOne(ctx context.Context, where sq.Eq) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := r.builder.
		Select(r.schema.columns...).
		From(r.schema.table).
		Where(where).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.getOne").Str("table", r.schema.table).Msg("failed to build query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := r.schema.scan(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.getOne").
			Str("table", r.schema.table).
			Stringer("class", r.errorClassificator.Classify(err)).
			Msg("failed to query row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Create assigns a new id and creation time to item, inserts it and returns
// the stored record.
func (r *resourceRepository[T]) Create(ctx context.Context, item T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	r.schema.stamp(&item, r.ids.Generate(), r.now().UTC().Truncate(time.Microsecond))

	query, args, err := r.builder.
		Insert(r.schema.table).
		Columns(r.schema.columns...).
		Values(r.schema.values(item)...).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Create").Str("table", r.schema.table).Msg("failed to build query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		class := r.errorClassificator.Classify(err)
		if class == Duplicate {
			if r.schema.duplicateErr != nil {
				return zero, r.schema.duplicateErr
			}
			return zero, ErrDuplicateRecord
		}

		log.Err(err).
			Str("func", "resourceRepository.Create").
			Str("table", r.schema.table).
			Stringer("class", class).
			Msg("failed to insert record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// DeleteByID removes the record with the given id.
func (r *resourceRepository[T]) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !isValidID(id) {
		return ErrNotFound
	}

	query, args, err := r.builder.
		Delete(r.schema.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.DeleteByID").Str("table", r.schema.table).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.DeleteByID").Str("table", r.schema.table).Msg("failed to delete record")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// update applies set to the records matching where and returns the number
// of affected rows.
func (r *resourceRepository[T]) update(ctx context.Context, set map[string]any, where sq.Eq) (int64, error) {
	query, args, err := r.builder.
		Update(r.schema.table).
		SetMap(set).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, query, args)
}

func (r *resourceRepository[T]) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
