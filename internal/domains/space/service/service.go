package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"adspot/config"
	"adspot/infras/otel"
	"adspot/internal/domains/space/model"
	"adspot/internal/domains/space/model/dto"
	"adspot/internal/domains/space/repository"
	"adspot/shared"
	"adspot/shared/cache"
	"adspot/shared/constant"
	gDto "adspot/shared/dto"
	"adspot/shared/failure"
	"adspot/shared/timezone"
)

const (
	cacheGetSpace    = "space:get"
	cacheGetAllSpace = "space:gets"
	cacheCountSpace  = "space:count"
)

type Space interface {
	Create(ctx context.Context, req dto.CreateSpaceRequest) (dto.SpaceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSpacesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.SpaceResponse, error)
	Update(ctx context.Context, req dto.UpdateSpaceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Space
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Space, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Space {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSpaceRequest) (res dto.SpaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	space := req.ToModel(user)

	if err = s.repo.Insert(ctx, space); err != nil {
		log.Error().Err(err).Msg("failed to create space")

		return res, fmt.Errorf("failed to create space: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSpace)
		shared.InvalidateCaches(c, s.cache, cacheCountSpace)
	}()

	res.FromModel(space)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSpacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = repository.NotDeleted(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSpace, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for spaces")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count spaces")

		return res, fmt.Errorf("failed to count spaces: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get spaces")

		return res, fmt.Errorf("failed to get spaces: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save spaces to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSpace, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count spaces")

		return res, fmt.Errorf("failed to count spaces: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save space count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SpaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSpace, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for space")

		return res, nil
	}

	space, err := s.repo.Get(ctx, repository.NotDeletedByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return res, fmt.Errorf("failed to get space: %w", err)
	}

	if space.ID == constant.Empty {
		return res, failure.NotFoundKind(failure.KindSpaceNotFound, "space not found") // nolint:wrapcheck
	}

	res.FromModel(space)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save space to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSpaceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSpaceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	space, err := s.authorizedSpace(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, repository.NotDeletedByID(space.ID)); err != nil {
		log.Error().Err(err).Msg("failed to update space")

		return fmt.Errorf("failed to update space: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	space, err := s.authorizedSpace(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// Soft delete keeps booking history pointing at a resolvable row.
	updatedFields := map[string]any{
		model.FieldDeletedAt:     timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, repository.NotDeletedByID(space.ID)); err != nil {
		log.Error().Err(err).Msg("failed to delete space")

		return fmt.Errorf("failed to delete space: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// authorizedSpace loads a live space and checks the caller may mutate it.
func (s *serviceImpl) authorizedSpace(ctx context.Context, id string) (model.Space, error) {
	space, err := s.repo.Get(ctx, repository.NotDeletedByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return space, fmt.Errorf("failed to get space: %w", err)
	}

	if space.ID == constant.Empty {
		return space, failure.NotFoundKind(failure.KindSpaceNotFound, "space not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && space.OwnerID != user {
		return space, failure.Forbidden("only the space owner may modify this space") // nolint:wrapcheck
	}

	return space, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSpace, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete space from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSpace)
		shared.InvalidateCaches(c, s.cache, cacheCountSpace)
	}()
}
