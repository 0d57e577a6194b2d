package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"adspot/config"
	"adspot/infras/otel"
	"adspot/internal/domains/availability/model"
	"adspot/internal/domains/availability/model/dto"
	"adspot/internal/domains/availability/repository"
	bookingRepo "adspot/internal/domains/booking/repository"
	spaceModel "adspot/internal/domains/space/model"
	spaceRepo "adspot/internal/domains/space/repository"
	"adspot/shared/constant"
	"adspot/shared/daterange"
	"adspot/shared/failure"
)

type Availability interface {
	QueryRange(ctx context.Context, spaceID, startDate, endDate string) (dto.QueryRangeResponse, error)
	CheckRange(ctx context.Context, spaceID, startDate, endDate string) (dto.CheckRangeResponse, error)
	SetAvailability(ctx context.Context, spaceID string, req dto.SetAvailabilityRequest) error
	BlockDates(ctx context.Context, spaceID string, req dto.BlockDatesRequest) error
	SetPriceOverride(ctx context.Context, spaceID string, req dto.SetPriceOverrideRequest) error
	UnblockDates(ctx context.Context, spaceID string, req dto.UnblockDatesRequest) (dto.UnblockDatesResponse, error)
}

type serviceImpl struct {
	repo        repository.Availability
	spaceRepo   spaceRepo.Space
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Availability,
	spaceRepo spaceRepo.Space,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		repo:        repo,
		spaceRepo:   spaceRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// QueryRange returns the sparse ledger for [startDate, endDate], both
// inclusive. Days without an entry are implicitly available at the base
// price.
func (s *serviceImpl) QueryRange(ctx context.Context, spaceID, startDate, endDate string) (res dto.QueryRangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QueryRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return res, err
	}

	if end.Before(start) {
		return res, failure.BadRequestKind(failure.KindInvalidDateRange, "end date must not be before start date") // nolint:wrapcheck
	}

	space, err := s.liveSpace(ctx, spaceID)
	if err != nil {
		return res, err
	}

	entries, err := s.repo.GetRange(ctx, spaceID, start, end.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability range")

		return res, fmt.Errorf("failed to get availability range: %w", err)
	}

	// Pending bookings hold their range before any ledger entry exists, so
	// the range query reports intersecting active bookings as well.
	bookings, err := s.bookingRepo.FindOverlapping(ctx, spaceID, start, end.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping bookings")

		return res, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	res.SpaceID = spaceID
	res.StartDate = daterange.Format(start)
	res.EndDate = daterange.Format(end)
	res.BasePrice = space.BasePrice
	res.FromModels(entries)
	res.FromBookingModels(bookings)

	return res, nil
}

// CheckRange reports whether the half-open range [startDate, endDate) can be
// booked, reconciling the ledger with the active bookings that have not been
// materialized into it yet.
func (s *serviceImpl) CheckRange(ctx context.Context, spaceID, startDate, endDate string) (res dto.CheckRangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return res, err
	}

	if !end.After(start) {
		return res, failure.BadRequestKind(failure.KindInvalidDateRange, "end date must be after start date") // nolint:wrapcheck
	}

	if _, err = s.liveSpace(ctx, spaceID); err != nil {
		return res, err
	}

	entries, err := s.repo.GetRange(ctx, spaceID, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability range")

		return res, fmt.Errorf("failed to get availability range: %w", err)
	}

	conflicts := map[string]struct{}{}

	for _, entry := range entries {
		if entry.Type == model.TypeBlocked || entry.Type == model.TypeBooked {
			conflicts[daterange.Format(entry.Date)] = struct{}{}
		}
	}

	// Pending bookings hold their range before any ledger entry exists, so
	// the overlap query is the second half of the truth.
	bookings, err := s.bookingRepo.FindOverlapping(ctx, spaceID, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to find overlapping bookings")

		return res, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	for _, booking := range bookings {
		for _, day := range clipDays(booking.StartDate, booking.EndDate, start, end) {
			conflicts[daterange.Format(day)] = struct{}{}
		}
	}

	res.Available = len(conflicts) == 0
	res.Conflicts = make([]string, 0, len(conflicts))

	for day := range conflicts {
		res.Conflicts = append(res.Conflicts, day)
	}

	sort.Strings(res.Conflicts)

	return res, nil
}

func (s *serviceImpl) SetAvailability(ctx context.Context, spaceID string, req dto.SetAvailabilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.ownedSpace(ctx, spaceID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entries, err := req.ToModels(spaceID, user)
	if err != nil {
		return err
	}

	if err = s.repo.UpsertBulk(ctx, entries); err != nil {
		log.Error().Err(err).Msg("failed to set availability")

		return fmt.Errorf("failed to set availability: %w", err)
	}

	return nil
}

func (s *serviceImpl) BlockDates(ctx context.Context, spaceID string, req dto.BlockDatesRequest) error {
	entries := make([]dto.DayEntryRequest, len(req.Dates))
	for i, date := range req.Dates {
		entries[i] = dto.DayEntryRequest{
			Date:  date,
			Type:  model.TypeBlocked,
			Notes: req.Notes,
		}
	}

	return s.SetAvailability(ctx, spaceID, dto.SetAvailabilityRequest{Entries: entries})
}

func (s *serviceImpl) SetPriceOverride(ctx context.Context, spaceID string, req dto.SetPriceOverrideRequest) error {
	entries := make([]dto.DayEntryRequest, len(req.Dates))
	for i, date := range req.Dates {
		entries[i] = dto.DayEntryRequest{
			Date:          date,
			Type:          model.TypeAvailable,
			PriceOverride: &req.Price,
		}
	}

	return s.SetAvailability(ctx, spaceID, dto.SetAvailabilityRequest{Entries: entries})
}

// UnblockDates removes blocked entries for the given days. Booked days are
// untouchable from here; unknown days simply do not count.
func (s *serviceImpl) UnblockDates(ctx context.Context, spaceID string, req dto.UnblockDatesRequest) (res dto.UnblockDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnblockDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.ownedSpace(ctx, spaceID); err != nil {
		return res, err
	}

	dates := make([]time.Time, len(req.Dates))

	for i, raw := range req.Dates {
		date, parseErr := daterange.ParseDay(raw)
		if parseErr != nil {
			return res, failure.BadRequestKind(failure.KindInvalidDate, "invalid date: "+raw) // nolint:wrapcheck
		}

		dates[i] = date
	}

	deleted, err := s.repo.DeleteBlocked(ctx, spaceID, dates)
	if err != nil {
		log.Error().Err(err).Msg("failed to unblock dates")

		return res, fmt.Errorf("failed to unblock dates: %w", err)
	}

	res.DeletedCount = deleted

	return res, nil
}

func parseRange(startDate, endDate string) (start, end time.Time, err error) {
	start, err = daterange.ParseDay(startDate)
	if err != nil {
		return start, end, failure.BadRequestKind(failure.KindInvalidDate, "invalid start date: "+startDate)
	}

	end, err = daterange.ParseDay(endDate)
	if err != nil {
		return start, end, failure.BadRequestKind(failure.KindInvalidDate, "invalid end date: "+endDate)
	}

	return start, end, nil
}

func (s *serviceImpl) liveSpace(ctx context.Context, id string) (spaceModel.Space, error) {
	space, err := s.spaceRepo.Get(ctx, spaceRepo.NotDeletedByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return space, fmt.Errorf("failed to get space: %w", err)
	}

	if space.ID == constant.Empty {
		return space, failure.NotFoundKind(failure.KindSpaceNotFound, "space not found") // nolint:wrapcheck
	}

	return space, nil
}

// ownedSpace loads a live space and checks the caller may edit its ledger.
func (s *serviceImpl) ownedSpace(ctx context.Context, id string) (spaceModel.Space, error) {
	space, err := s.liveSpace(ctx, id)
	if err != nil {
		return space, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && space.OwnerID != user {
		return space, failure.Forbidden("only the space owner may manage availability") // nolint:wrapcheck
	}

	return space, nil
}

// clipDays enumerates the occupied days of a half-open booking range clipped
// to the half-open window [from, until).
func clipDays(bookingStart, bookingEnd, from, until time.Time) []time.Time {
	start := bookingStart
	if start.Before(from) {
		start = from
	}

	end := bookingEnd
	if end.After(until) {
		end = until
	}

	return daterange.DaysInclusive(start, end.AddDate(0, 0, -1))
}
