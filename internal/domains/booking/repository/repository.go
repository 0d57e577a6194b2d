package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"adspot/infras/otel"
	"adspot/infras/postgres"
	"adspot/internal/domains/booking/model"
	"adspot/shared/constant"
	gDto "adspot/shared/dto"
	"adspot/shared/failure"
	"adspot/shared/logger"
	gRepo "adspot/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	GetAllForOwner(ctx context.Context, ownerID string, params gDto.QueryParams) ([]model.Booking, int, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	FindOverlapping(ctx context.Context, spaceID string, start, end time.Time) ([]model.Booking, error)
	InsertSerialized(ctx context.Context, booking model.Booking) error
	LockSpaceTx(ctx context.Context, tx *sqlx.Tx, spaceID string) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches active bookings whose half-open range intersects
// [start, end): existing.start < end AND existing.end > start.
func OverlapFilter(spaceID string, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSpaceID,
				Value:    spaceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_end",
				Field:    model.FieldStartDate,
				Value:    end,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_start",
				Field:    model.FieldEndDate,
				Value:    start,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.ActiveStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}
}

func (r *repositoryImpl) FindOverlapping(ctx context.Context, spaceID string, start, end time.Time) ([]model.Booking, error) {
	return r.GetAll(ctx, gDto.QueryParams{}, OverlapFilter(spaceID, start, end))
}

// InsertSerialized inserts a booking after re-checking overlaps under an
// advisory lock keyed on the space, so two concurrent creations for the
// same space serialize and the loser observes the winner's row.
func (r *repositoryImpl) InsertSerialized(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertSerialized")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.LockSpaceTx(ctx, tx, booking.SpaceID); err != nil {
			return err
		}

		where, args := r.BuildWhereClause(OverlapFilter(booking.SpaceID, booking.StartDate, booking.EndDate))

		query, queryArgs, err := sqlx.Named(fmt.Sprintf("SELECT COUNT(*) FROM %s %s", model.TableName, where), args)
		if err != nil {
			return fmt.Errorf("failed to build overlap query: %w", err)
		}

		var overlapping int
		if err := tx.GetContext(ctx, &overlapping, tx.Rebind(query), queryArgs...); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to check overlapping bookings: %w", err)
		}

		if overlapping > 0 {
			return failure.Conflict(failure.KindBookingConflict, "the requested dates overlap an existing booking") // nolint:wrapcheck
		}

		return r.InsertTx(ctx, tx, booking)
	})

	return mapConflictError(err)
}

// LockSpaceTx takes the per-space advisory lock inside the caller's
// transaction. Every writer touching a space's bookings or ledger takes it
// first, so conflict reads and the writes they guard serialize per space.
func (r *repositoryImpl) LockSpaceTx(ctx context.Context, tx *sqlx.Tx, spaceID string) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, spaceID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to take space lock: %w", err)
	}

	return nil
}

// GetAllForOwner lists bookings made against any space the owner holds,
// newest first, with the total count for pagination.
func (r *repositoryImpl) GetAllForOwner(ctx context.Context, ownerID string, params gDto.QueryParams) (bookings []model.Booking, total int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAllForOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	countQuery := `
		SELECT COUNT(*) FROM bookings
		JOIN spaces ON spaces.id = bookings.space_id
		WHERE spaces.owner_id = $1`

	if err = r.db.Read.GetContext(ctx, &total, countQuery, ownerID); err != nil {
		logger.ErrorWithStack(err)

		return nil, 0, fmt.Errorf("failed to count owner bookings: %w", err)
	}

	query := `
		SELECT bookings.* FROM bookings
		JOIN spaces ON spaces.id = bookings.space_id
		WHERE spaces.owner_id = $1
		ORDER BY bookings.created_at DESC
		LIMIT $2 OFFSET $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	limit := params.Limit
	if limit <= 0 {
		limit = constant.DefaultValueLimit
	}

	page := params.Page
	if page <= 0 {
		page = constant.DefaultValuePage
	}

	bookings = []model.Booking{}

	if err = r.db.Read.SelectContext(ctx, &bookings, query, ownerID, limit, (page-1)*limit); err != nil {
		logger.ErrorWithStack(err)

		return nil, 0, fmt.Errorf("failed to get owner bookings: %w", err)
	}

	return bookings, total, nil
}

// mapConflictError turns the storage-level symptoms of a lost race into the
// domain conflict error. The ledger's unique key and serialization failures
// both mean another writer won.
func mapConflictError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		if code == constant.PqErrorCodeUniqueViolation || code == constant.PqErrorCodeSerializationFailure {
			return failure.Conflict(failure.KindBookingConflict, "the requested dates overlap an existing booking")
		}
	}

	return err
}

// MapConflictError is exported for callers running multi-repository
// transactions.
func MapConflictError(err error) error {
	return mapConflictError(err)
}
