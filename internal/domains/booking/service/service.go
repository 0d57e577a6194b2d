package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"adspot/config"
	"adspot/infras/otel"
	"adspot/infras/postgres"
	availRepo "adspot/internal/domains/availability/repository"
	"adspot/internal/domains/booking/model"
	"adspot/internal/domains/booking/model/dto"
	"adspot/internal/domains/booking/repository"
	spaceModel "adspot/internal/domains/space/model"
	spaceRepo "adspot/internal/domains/space/repository"
	"adspot/internal/events"
	"adspot/shared"
	"adspot/shared/cache"
	"adspot/shared/constant"
	"adspot/shared/daterange"
	gDto "adspot/shared/dto"
	"adspot/shared/failure"
	"adspot/shared/timezone"
)

// Single-booking reads are not cached: visibility depends on the caller, so
// a shared per-id entry would leak bookings across actors. List responses are
// safe because the visibility filter is part of the cache key.
const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	spaceRepo spaceRepo.Space
	availRepo availRepo.Availability
	tx        postgres.TxRunner
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	spaceRepo spaceRepo.Space,
	availRepo availRepo.Availability,
	tx postgres.TxRunner,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		spaceRepo: spaceRepo,
		availRepo: availRepo,
		tx:        tx,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	space, err := s.spaceRepo.Get(ctx, spaceRepo.NotDeletedByID(req.SpaceID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return res, fmt.Errorf("failed to get space: %w", err)
	}

	if space.ID == constant.Empty || !space.Active {
		return res, failure.NotFoundKind(failure.KindSpaceNotFound, "space not found or not open for booking") // nolint:wrapcheck
	}

	if space.OwnerID == actor {
		return res, failure.BadRequestKind(failure.KindBookingOwnSpace, "cannot book your own space") // nolint:wrapcheck
	}

	// At least one night is always charged, whatever the parsed range says.
	totalPrice := float64(max(daterange.Nights(start, end), 1)) * space.BasePrice
	booking := req.ToModel(actor, start, end, totalPrice)

	if err = s.repo.InsertSerialized(ctx, booking); err != nil {
		if failure.IsKind(err, failure.KindBookingConflict) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	// Visibility: advertisers see their own bookings, owners the bookings
	// made against their spaces, admins everything.
	switch role {
	case constant.RoleOwner:
		models, total, err := s.repo.GetAllForOwner(ctx, actor, req)
		if err != nil {
			log.Error().Err(err).Msg("failed to get owner bookings")

			return res, fmt.Errorf("failed to get owner bookings: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	case constant.RoleAdmin:
		// No extra filter.
	default:
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAdvertiserID,
			Value:    actor,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if _, err = s.visibleSpace(ctx, booking); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	space, err := s.visibleSpace(ctx, booking)
	if err != nil {
		return res, err
	}

	if err = checkTransition(booking.Status, req.Status); err != nil {
		return res, err
	}

	if err = s.authorizeTransition(ctx, booking, space, req.Status); err != nil {
		return res, err
	}

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if req.Status == model.StatusConfirmed {
			// Serialize against concurrent creations and owner blocks on
			// this space before the ledger is re-read and written.
			if err := s.repo.LockSpaceTx(ctx, tx, booking.SpaceID); err != nil {
				return err
			}

			// Occupied nights are start through end minus one; the end
			// date is checkout day.
			days := daterange.DaysInclusive(booking.StartDate, booking.EndDate.AddDate(0, 0, -1))

			if err := s.availRepo.MarkBookedTx(ctx, tx, booking.SpaceID, booking.ID, actor, days); err != nil {
				return err
			}
		}

		if booking.Status == model.StatusConfirmed && req.Status == model.StatusCancelled {
			if err := s.availRepo.ReleaseBookedTx(ctx, tx, booking.ID); err != nil {
				return err
			}
		}

		updatedFields := map[string]any{
			model.FieldStatus:        req.Status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor,
		}

		return s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		err = repository.MapConflictError(err)
		if failure.IsKind(err, failure.KindBookingConflict) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to transition booking status")

		return res, fmt.Errorf("failed to transition booking status: %w", err)
	}

	booking.Status = req.Status

	if req.Status == model.StatusConfirmed {
		s.publishConfirmed(ctx, booking)
	}

	s.invalidateLists(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.UpdateStatus(ctx, id, dto.UpdateStatusRequest{Status: model.StatusCancelled})
}

func (s *serviceImpl) loadBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// visibleSpace resolves the booking's space and enforces visibility: the
// advertiser, the space owner, and admins may see a booking. Everyone else
// is forbidden.
func (s *serviceImpl) visibleSpace(ctx context.Context, booking model.Booking) (spaceModel.Space, error) {
	space, err := s.spaceRepo.Get(ctx, spaceRepo.NotDeletedByID(booking.SpaceID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return space, fmt.Errorf("failed to get space: %w", err)
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin || booking.AdvertiserID == actor || space.OwnerID == actor {
		return space, nil
	}

	return space, failure.Forbidden("you may not view this booking") // nolint:wrapcheck
}

// checkTransition enforces the status state machine independent of who is
// asking.
func checkTransition(from, to string) error {
	if from == model.StatusCancelled && to == model.StatusCancelled {
		return failure.Conflict(failure.KindAlreadyCancelled, "booking is already cancelled")
	}

	if !model.TransitionAllowed(from, to) {
		return failure.Conflict(failure.KindInvalidTransition, fmt.Sprintf("cannot transition booking from %s to %s", from, to))
	}

	return nil
}

// authorizeTransition enforces who may drive which transition: the space
// owner or an admin decides CONFIRMED/REJECTED, the advertiser or an admin
// cancels.
func (s *serviceImpl) authorizeTransition(ctx context.Context, booking model.Booking, space spaceModel.Space, to string) error {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin {
		return nil
	}

	switch to {
	case model.StatusConfirmed, model.StatusRejected:
		if space.OwnerID != actor {
			return failure.Forbidden("only the space owner may decide this booking")
		}
	case model.StatusCancelled:
		if booking.AdvertiserID != actor {
			return failure.Forbidden("only the requester may cancel this booking")
		}
	}

	return nil
}

// publishConfirmed emits the booking-confirmed event after the transaction
// committed. Failures are logged and swallowed; the confirmation stands.
func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingConfirmedEvent{
			BookingID:    booking.ID,
			SpaceID:      booking.SpaceID,
			AdvertiserID: booking.AdvertiserID,
			StartDate:    daterange.Format(booking.StartDate),
			EndDate:      daterange.Format(booking.EndDate),
			TotalPrice:   booking.TotalPrice,
			ConfirmedAt:  timezone.Now().Format(constant.DateFormat),
		}

		if err := s.publisher.BookingConfirmed(c, event); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking confirmed event")
		}
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

