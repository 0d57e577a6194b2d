package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"adspot/config"
	"adspot/infras/otel/mocks"
	postgresMocks "adspot/infras/postgres/mocks"
	availMocks "adspot/internal/domains/availability/mocks"
	bookingMocks "adspot/internal/domains/booking/mocks"
	"adspot/internal/domains/booking/model"
	"adspot/internal/domains/booking/model/dto"
	"adspot/internal/domains/booking/service"
	spaceMocks "adspot/internal/domains/space/mocks"
	spaceModel "adspot/internal/domains/space/model"
	eventMocks "adspot/internal/events/mocks"
	cacheMocks "adspot/shared/cache/mocks"
	"adspot/shared/constant"
	"adspot/shared/daterange"
	gDto "adspot/shared/dto"
	"adspot/shared/failure"
	gModel "adspot/shared/model"
	"adspot/shared/timezone"
)

type testDeps struct {
	repo      *bookingMocks.MockBooking
	spaceRepo *spaceMocks.MockSpace
	availRepo *availMocks.MockAvailability
	tx        *postgresMocks.MockTxRunner
	publisher *eventMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Booking, testDeps) {
	deps := testDeps{
		repo:      bookingMocks.NewMockBooking(ctrl),
		spaceRepo: spaceMocks.NewMockSpace(ctrl),
		availRepo: availMocks.NewMockAvailability(ctrl),
		tx:        postgresMocks.NewMockTxRunner(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(deps.repo, deps.spaceRepo, deps.availRepo, deps.tx, deps.publisher, cfg, deps.cache, mocks.NewOtel())

	return svc, deps
}

func newTestContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func bookableSpace() spaceModel.Space {
	return spaceModel.Space{
		ID:        "space-id-123",
		OwnerID:   "owner-id-123",
		Title:     "Billboard on Main St",
		BasePrice: 100,
		Active:    true,
	}
}

func pendingBooking(start, end time.Time) model.Booking {
	return model.Booking{
		ID:           "booking-id-123",
		SpaceID:      "space-id-123",
		AdvertiserID: "advertiser-id-123",
		StartDate:    start,
		EndDate:      end,
		Status:       model.StatusPending,
		TotalPrice:   300,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// runInTx makes the transaction runner execute the closure with a nil tx;
// the repository mocks ignore the handle.
func runInTx(tx *postgresMocks.MockTxRunner) *gomock.Call {
	return tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestBookingService_Create(t *testing.T) {
	start := timezone.Today().AddDate(0, 0, 10)
	end := start.AddDate(0, 0, 3)

	tests := []struct {
		name      string
		actor     string
		req       dto.CreateBookingRequest
		setupMock func(deps testDeps)
		wantErr   bool
		wantKind  string
	}{
		{
			name:  "successful booking prices by nights",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: daterange.Format(start),
				EndDate:   daterange.Format(end),
			},
			setupMock: func(deps testDeps) {
				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				deps.repo.EXPECT().
					InsertSerialized(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.InDelta(t, 300.0, booking.TotalPrice, 0.001)

						return nil
					})

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:  "back to back bookings share the boundary day",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: daterange.Format(end),
				EndDate:   daterange.Format(end.AddDate(0, 0, 2)),
			},
			setupMock: func(deps testDeps) {
				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				deps.repo.EXPECT().
					InsertSerialized(gomock.Any(), gomock.Any()).
					Return(nil)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:  "overlapping dates are rejected",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: daterange.Format(start),
				EndDate:   daterange.Format(end),
			},
			setupMock: func(deps testDeps) {
				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				deps.repo.EXPECT().
					InsertSerialized(gomock.Any(), gomock.Any()).
					Return(failure.Conflict(failure.KindBookingConflict, "the requested dates overlap an existing booking"))
			},
			wantErr:  true,
			wantKind: failure.KindBookingConflict,
		},
		{
			name:  "owner cannot book own space",
			actor: "owner-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: daterange.Format(start),
				EndDate:   daterange.Format(end),
			},
			setupMock: func(deps testDeps) {
				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindBookingOwnSpace,
		},
		{
			name:  "space not found",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "missing-space",
				StartDate: daterange.Format(start),
				EndDate:   daterange.Format(end),
			},
			setupMock: func(deps testDeps) {
				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(spaceModel.Space{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindSpaceNotFound,
		},
		{
			name:  "inactive space is not bookable",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: daterange.Format(start),
				EndDate:   daterange.Format(end),
			},
			setupMock: func(deps testDeps) {
				space := bookableSpace()
				space.Active = false

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(space, nil)
			},
			wantErr:  true,
			wantKind: failure.KindSpaceNotFound,
		},
		{
			name:  "end date must follow start date",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: daterange.Format(start),
				EndDate:   daterange.Format(start),
			},
			setupMock: func(testDeps) {},
			wantErr:   true,
			wantKind:  failure.KindInvalidDateRange,
		},
		{
			name:  "start date in the past",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: daterange.Format(timezone.Today().AddDate(0, 0, -2)),
				EndDate:   daterange.Format(timezone.Today().AddDate(0, 0, 1)),
			},
			setupMock: func(testDeps) {},
			wantErr:   true,
			wantKind:  failure.KindInvalidDateRange,
		},
		{
			name:  "unparseable date",
			actor: "advertiser-id-123",
			req: dto.CreateBookingRequest{
				SpaceID:   "space-id-123",
				StartDate: "not-a-date",
				EndDate:   daterange.Format(end),
			},
			setupMock: func(testDeps) {},
			wantErr:   true,
			wantKind:  failure.KindInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)
			tt.setupMock(deps)

			res, err := svc.Create(newTestContext(tt.actor, constant.RoleAdvertiser), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, model.StatusPending, res.Status)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	start := timezone.Today().AddDate(0, 0, 10)
	end := start.AddDate(0, 0, 3)

	tests := []struct {
		name      string
		ctx       context.Context
		status    string
		setupMock func(deps testDeps)
		wantErr   bool
		wantKind  string
	}{
		{
			name:   "owner confirms and occupied nights are materialized",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusConfirmed,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(start, end), nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				runInTx(deps.tx)

				lock := deps.repo.EXPECT().
					LockSpaceTx(gomock.Any(), gomock.Any(), "space-id-123").
					Return(nil)

				deps.availRepo.EXPECT().
					MarkBookedTx(gomock.Any(), gomock.Any(), "space-id-123", "booking-id-123", "owner-id-123", gomock.Any()).
					After(lock).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, _, _ string, days []time.Time) error {
						// Three nights: the checkout day is not occupied.
						assert.Len(t, days, 3)
						assert.True(t, days[0].Equal(start))
						assert.True(t, days[2].Equal(end.AddDate(0, 0, -1)))

						return nil
					})

				deps.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])

						return nil
					})

				deps.publisher.EXPECT().
					BookingConfirmed(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:   "confirm succeeds even when the event publish fails",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusConfirmed,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(start, end), nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				runInTx(deps.tx)

				deps.repo.EXPECT().
					LockSpaceTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.availRepo.EXPECT().
					MarkBookedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.publisher.EXPECT().
					BookingConfirmed(gomock.Any(), gomock.Any()).
					Return(assert.AnError).
					AnyTimes()

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:   "owner rejects pending booking",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusRejected,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(start, end), nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				runInTx(deps.tx)

				deps.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:   "advertiser cancels confirmed booking and days are released",
			ctx:    newTestContext("advertiser-id-123", constant.RoleAdvertiser),
			status: model.StatusCancelled,
			setupMock: func(deps testDeps) {
				booking := pendingBooking(start, end)
				booking.Status = model.StatusConfirmed

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				runInTx(deps.tx)

				deps.availRepo.EXPECT().
					ReleaseBookedTx(gomock.Any(), gomock.Any(), "booking-id-123").
					Return(nil)

				deps.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:   "advertiser cannot confirm",
			ctx:    newTestContext("advertiser-id-123", constant.RoleAdvertiser),
			status: model.StatusConfirmed,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(start, end), nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
		{
			name:   "owner cannot cancel on the advertiser's behalf",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusCancelled,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(start, end), nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
		{
			name:   "admin may cancel any booking",
			ctx:    newTestContext("admin-id", constant.RoleAdmin),
			status: model.StatusCancelled,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(start, end), nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				runInTx(deps.tx)

				deps.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:   "confirmed booking cannot be rejected",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusRejected,
			setupMock: func(deps testDeps) {
				booking := pendingBooking(start, end)
				booking.Status = model.StatusConfirmed

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidTransition,
		},
		{
			name:   "rejected booking cannot be confirmed",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusConfirmed,
			setupMock: func(deps testDeps) {
				booking := pendingBooking(start, end)
				booking.Status = model.StatusRejected

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidTransition,
		},
		{
			name:   "rejected booking cannot be cancelled",
			ctx:    newTestContext("advertiser-id-123", constant.RoleAdvertiser),
			status: model.StatusCancelled,
			setupMock: func(deps testDeps) {
				booking := pendingBooking(start, end)
				booking.Status = model.StatusRejected

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidTransition,
		},
		{
			name:   "cancelling twice reports already cancelled",
			ctx:    newTestContext("advertiser-id-123", constant.RoleAdvertiser),
			status: model.StatusCancelled,
			setupMock: func(deps testDeps) {
				booking := pendingBooking(start, end)
				booking.Status = model.StatusCancelled

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindAlreadyCancelled,
		},
		{
			name:   "confirming fails when a day was blocked meanwhile",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusConfirmed,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(start, end), nil)

				deps.spaceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableSpace(), nil)

				runInTx(deps.tx)

				deps.repo.EXPECT().
					LockSpaceTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.availRepo.EXPECT().
					MarkBookedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(failure.Conflict(failure.KindBookingConflict, "1 day(s) in the range are no longer available"))
			},
			wantErr:  true,
			wantKind: failure.KindBookingConflict,
		},
		{
			name:   "booking not found",
			ctx:    newTestContext("owner-id-123", constant.RoleOwner),
			status: model.StatusConfirmed,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)
			tt.setupMock(deps)

			res, err := svc.UpdateStatus(tt.ctx, "booking-id-123", dto.UpdateStatusRequest{Status: tt.status})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, res.Status)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	start := timezone.Today().AddDate(0, 0, 10)
	end := start.AddDate(0, 0, 3)

	tests := []struct {
		name     string
		ctx      context.Context
		wantErr  bool
		wantKind string
	}{
		{
			name: "advertiser sees own booking",
			ctx:  newTestContext("advertiser-id-123", constant.RoleAdvertiser),
		},
		{
			name: "space owner sees incoming booking",
			ctx:  newTestContext("owner-id-123", constant.RoleOwner),
		},
		{
			name:     "stranger is forbidden",
			ctx:      newTestContext("someone-else", constant.RoleAdvertiser),
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)

			deps.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(pendingBooking(start, end), nil)

			deps.spaceRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(bookableSpace(), nil)

			res, err := svc.Get(tt.ctx, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id-123", res.ID)
				assert.Equal(t, daterange.Format(start), res.StartDate)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	start := timezone.Today().AddDate(0, 0, 10)
	end := start.AddDate(0, 0, 3)

	t.Run("advertiser list is scoped to the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newService(ctrl)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				found := false
				for _, raw := range filter.Filters {
					if f, ok := raw.(gDto.Filter); ok && f.Field == model.FieldAdvertiserID {
						found = true
						assert.Equal(t, "advertiser-id-123", f.Value)
					}
				}
				assert.True(t, found, "expected an advertiser scope filter")

				return 1, nil
			})

		deps.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking(start, end)}, nil)

		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(newTestContext("advertiser-id-123", constant.RoleAdvertiser), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("owner list joins through owned spaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newService(ctrl)

		deps.repo.EXPECT().
			GetAllForOwner(gomock.Any(), "owner-id-123", gomock.Any()).
			Return([]model.Booking{pendingBooking(start, end)}, 1, nil)

		res, err := svc.GetAll(newTestContext("owner-id-123", constant.RoleOwner), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("admin list is unscoped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newService(ctrl)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Empty(t, filter.Filters)

				return 2, nil
			})

		deps.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking(start, end), pendingBooking(end, end.AddDate(0, 0, 2))}, nil)

		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(newTestContext("admin-id", constant.RoleAdmin), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	start := timezone.Today().AddDate(0, 0, 10)
	end := start.AddDate(0, 0, 3)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newService(ctrl)

	deps.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(pendingBooking(start, end), nil)

	deps.spaceRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookableSpace(), nil)

	runInTx(deps.tx)

	deps.repo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	deps.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Cancel(newTestContext("advertiser-id-123", constant.RoleAdvertiser), "booking-id-123")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, res.Status)
}
