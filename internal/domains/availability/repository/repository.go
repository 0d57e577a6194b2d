package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"adspot/infras/otel"
	"adspot/infras/postgres"
	"adspot/internal/domains/availability/model"
	"adspot/shared/constant"
	"adspot/shared/failure"
	"adspot/shared/logger"
	gModel "adspot/shared/model"
	"adspot/shared/timezone"
)

const upsertQuery = `
	INSERT INTO availability_entries
		(id, space_id, date, type, notes, price_override, booking_id, created_at, created_by, modified_at, modified_by)
	VALUES
		(:id, :space_id, :date, :type, :notes, :price_override, :booking_id, :created_at, :created_by, :modified_at, :modified_by)
	ON CONFLICT (space_id, date) DO UPDATE SET
		type = EXCLUDED.type,
		notes = EXCLUDED.notes,
		price_override = EXCLUDED.price_override,
		modified_at = EXCLUDED.modified_at,
		modified_by = EXCLUDED.modified_by
	WHERE availability_entries.type <> 'booked'`

const markBookedQuery = `
	INSERT INTO availability_entries
		(id, space_id, date, type, notes, price_override, booking_id, created_at, created_by, modified_at, modified_by)
	VALUES
		(:id, :space_id, :date, :type, :notes, :price_override, :booking_id, :created_at, :created_by, :modified_at, :modified_by)
	ON CONFLICT (space_id, date) DO UPDATE SET
		type = EXCLUDED.type,
		booking_id = EXCLUDED.booking_id,
		modified_at = EXCLUDED.modified_at,
		modified_by = EXCLUDED.modified_by`

type Availability interface {
	GetRange(ctx context.Context, spaceID string, from, until time.Time) ([]model.Entry, error)
	UpsertBulk(ctx context.Context, entries []model.Entry) error
	DeleteBlocked(ctx context.Context, spaceID string, dates []time.Time) (int, error)
	MarkBookedTx(ctx context.Context, tx *sqlx.Tx, spaceID, bookingID, user string, days []time.Time) error
	ReleaseBookedTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// GetRange returns the ledger entries of a space with from <= date < until,
// ordered by date. Callers wanting an inclusive end pass until plus one day.
func (r *repositoryImpl) GetRange(ctx context.Context, spaceID string, from, until time.Time) (entries []model.Entry, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.GetRange")
	defer scope.End()

	query := `SELECT * FROM availability_entries WHERE space_id = $1 AND date >= $2 AND date < $3 ORDER BY date`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	entries = []model.Entry{}

	if err = r.db.Read.SelectContext(ctx, &entries, query, spaceID, from, until); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get availability entries: %w", err)
	}

	return entries, nil
}

// UpsertBulk writes owner-managed entries keyed on (space_id, date). Booked
// rows are left untouched; the booking lifecycle owns them.
func (r *repositoryImpl) UpsertBulk(ctx context.Context, entries []model.Entry) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.UpsertBulk")
	defer scope.End()

	if len(entries) == 0 {
		return nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	if _, err = r.db.Write.NamedExecContext(ctx, upsertQuery, entries); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert availability entries: %w", err)
	}

	return nil
}

// DeleteBlocked removes blocked entries for the given dates and reports how
// many rows went away. Booked entries never match.
func (r *repositoryImpl) DeleteBlocked(ctx context.Context, spaceID string, dates []time.Time) (deleted int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.DeleteBlocked")
	defer scope.End()

	query := `DELETE FROM availability_entries WHERE space_id = $1 AND date = ANY($2) AND type = 'blocked'`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, spaceID, pq.Array(dates))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete blocked entries: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return int(affected), nil
}

// MarkBookedTx materializes booked entries for every given day inside the
// caller's transaction. Days already blocked, or booked by another booking,
// make the whole call fail so the transaction rolls back.
func (r *repositoryImpl) MarkBookedTx(ctx context.Context, tx *sqlx.Tx, spaceID, bookingID, user string, days []time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.MarkBookedTx")
	defer scope.End()

	conflictQuery := `
		SELECT date FROM availability_entries
		WHERE space_id = $1 AND date = ANY($2)
		AND (type = 'blocked' OR (type = 'booked' AND booking_id <> $3))`

	var conflicts []time.Time
	if err = tx.SelectContext(ctx, &conflicts, conflictQuery, spaceID, pq.Array(days), bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to check booked-day conflicts: %w", err)
	}

	if len(conflicts) > 0 {
		return failure.Conflict(failure.KindBookingConflict, fmt.Sprintf("%d day(s) in the range are no longer available", len(conflicts))) // nolint:wrapcheck
	}

	entries := make([]model.Entry, len(days))
	for i, day := range days {
		entries[i] = model.Entry{
			ID:        uuid.NewString(),
			SpaceID:   spaceID,
			Date:      day,
			Type:      model.TypeBooked,
			BookingID: &bookingID,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, markBookedQuery)

	if _, err = tx.NamedExecContext(ctx, markBookedQuery, entries); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to mark days booked: %w", err)
	}

	return nil
}

// ReleaseBookedTx removes the booked entries a booking materialized.
func (r *repositoryImpl) ReleaseBookedTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.ReleaseBookedTx")
	defer scope.End()

	query := `DELETE FROM availability_entries WHERE booking_id = $1 AND type = 'booked'`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to release booked entries: %w", err)
	}

	return nil
}
