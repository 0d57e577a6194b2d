package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"adspot/config"
	"adspot/infras/otel/mocks"
	spaceMocks "adspot/internal/domains/space/mocks"
	"adspot/internal/domains/space/model"
	"adspot/internal/domains/space/model/dto"
	"adspot/internal/domains/space/service"
	cacheMocks "adspot/shared/cache/mocks"
	"adspot/shared/constant"
	"adspot/shared/failure"
	gModel "adspot/shared/model"
	"adspot/shared/timezone"
)

func newTestContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func validSpace() model.Space {
	return model.Space{
		ID:        "space-id-123",
		OwnerID:   "owner-id-123",
		Title:     "Billboard on Main St",
		Address:   "1 Main St",
		City:      "Springfield",
		BasePrice: 100,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "owner-id-123",
			ModifiedBy: "owner-id-123",
		},
	}
}

func TestSpaceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := spaceMocks.NewMockSpace(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateSpaceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateSpaceRequest{
				Title:     "Billboard on Main St",
				Address:   "1 Main St",
				City:      "Springfield",
				BasePrice: 100,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateSpaceRequest{
				Title:     "Billboard on Main St",
				Address:   "1 Main St",
				City:      "Springfield",
				BasePrice: 100,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := newTestContext("owner-id-123", constant.RoleOwner)
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "owner-id-123", res.OwnerID)
			}
		})
	}
}

func TestSpaceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := spaceMocks.NewMockSpace(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "cache hit",
			id:   "space-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, found in db",
			id:   "space-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validSpace(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "space not found",
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Space{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindSpaceNotFound,
		},
		{
			name: "repository error",
			id:   "space-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Space{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSpaceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := spaceMocks.NewMockSpace(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateSpaceRequest
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "owner updates own space",
			req:  dto.UpdateSpaceRequest{Title: "Updated Title"},
			ctx:  newTestContext("owner-id-123", constant.RoleOwner),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validSpace(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "admin updates someone else's space",
			req:  dto.UpdateSpaceRequest{Title: "Updated Title"},
			ctx:  newTestContext("admin-id", constant.RoleAdmin),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validSpace(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "non-owner is rejected",
			req:  dto.UpdateSpaceRequest{Title: "Updated Title"},
			ctx:  newTestContext("someone-else", constant.RoleOwner),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validSpace(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateSpaceRequest{},
			ctx:       newTestContext("owner-id-123", constant.RoleOwner),
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "space not found",
			req:  dto.UpdateSpaceRequest{Title: "Updated Title"},
			ctx:  newTestContext("owner-id-123", constant.RoleOwner),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Space{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindSpaceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(tt.ctx, tt.req, "space-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSpaceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := spaceMocks.NewMockSpace(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("owner soft deletes own space", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validSpace(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Contains(t, fields, model.FieldDeletedAt)

				return nil
			})

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(newTestContext("owner-id-123", constant.RoleOwner), "space-id-123")
		assert.NoError(t, err)
	})

	t.Run("advertiser cannot delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validSpace(), nil)

		err := svc.Delete(newTestContext("advertiser-id", constant.RoleAdvertiser), "space-id-123")
		assert.Error(t, err)
		assert.Equal(t, failure.KindForbidden, failure.GetKind(err))
	})
}
