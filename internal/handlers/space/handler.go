package space

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"adspot/infras/otel"
	"adspot/internal/domains/space/model"
	"adspot/internal/domains/space/model/dto"
	"adspot/internal/domains/space/service"
	"adspot/shared/constant"
	gDto "adspot/shared/dto"
	"adspot/shared/validator"
	"adspot/transport/http/response"
)

type Handler struct {
	service service.Space
	otel    otel.Otel
}

func New(service service.Space, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/spaces", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSpace)
		routerGroup.Get("/", handler.GetSpaces)
		routerGroup.Get("/{id}", handler.GetSpaceByID)
		routerGroup.Patch("/{id}", handler.UpdateSpace)
		routerGroup.Delete("/{id}", handler.DeleteSpace)
	})
}

// CreateSpace lists a new advertising space.
// @Summary Create a new space
// @Description List a new advertising space owned by the caller.
// @Tags Space
// @Accept json
// @Produce json
// @Param request body dto.CreateSpaceRequest true "Create Space Request"
// @Success 201 {object} dto.SpaceResponse "Space created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spaces [post]
// @Security BearerAuth
func (handler *Handler) CreateSpace(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSpace")
	defer scope.End()

	req := dto.CreateSpaceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create space")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Space created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetSpaces lists spaces with optional filters.
// @Summary Get all spaces
// @Description Retrieve all live spaces with optional filtering and pagination.
// @Tags Space
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city"
// @Param owner_id query string false "Filter by owner ID"
// @Success 200 {object} dto.GetSpacesResponse "List of spaces"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spaces [get]
func (handler *Handler) GetSpaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpaces")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	city := r.URL.Query().Get(model.FieldCity)
	ownerID := r.URL.Query().Get(model.FieldOwnerID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorEq,
			Value:    city,
			Table:    model.TableName,
		})
	}

	if ownerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    ownerID,
			Table:    model.TableName,
		})
	}

	spaces, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spaces")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Spaces retrieved successfully")

	response.WithJSON(w, http.StatusOK, spaces)
}

// GetSpaceByID retrieves a space by its ID.
// @Summary Get a space by ID
// @Description Retrieve a live space by its unique identifier.
// @Tags Space
// @Accept json
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {object} dto.SpaceResponse "Space details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spaces/{id} [get]
func (handler *Handler) GetSpaceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpaceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	space, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get space by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Space retrieved successfully")

	response.WithJSON(w, http.StatusOK, space)
}

// UpdateSpace updates an existing space.
// @Summary Update a space by ID
// @Description Update a space. Only the owner or an admin may modify it.
// @Tags Space
// @Accept json
// @Produce json
// @Param id path string true "Space ID"
// @Param request body dto.UpdateSpaceRequest true "Update Space Request"
// @Success 200 {object} response.Message "Space updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/spaces/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSpace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSpace")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSpaceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update space")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Space updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Space updated successfully")
}

// DeleteSpace soft deletes a space.
// @Summary Delete a space by ID
// @Description Soft delete a space so existing bookings keep resolving. Only the owner or an admin may delete it.
// @Tags Space
// @Accept json
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {object} response.Message "Space deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/spaces/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSpace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSpace")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete space")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Space deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Space deleted successfully")
}
