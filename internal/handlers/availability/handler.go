package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"adspot/infras/otel"
	"adspot/internal/domains/availability/model/dto"
	"adspot/internal/domains/availability/service"
	"adspot/shared/constant"
	"adspot/shared/validator"
	"adspot/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability/{spaceId}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.QueryRange)
		routerGroup.Get("/check", handler.CheckRange)
		routerGroup.Post("/", handler.SetAvailability)
		routerGroup.Post("/block", handler.BlockDates)
		routerGroup.Delete("/block", handler.UnblockDates)
		routerGroup.Post("/price", handler.SetPriceOverride)
	})
}

// QueryRange returns the availability ledger of a space for a date range.
// @Summary Query availability
// @Description List the ledger entries of a space between startDate and endDate, both inclusive. Days without an entry are available at the base price.
// @Tags Availability
// @Accept json
// @Produce json
// @Param spaceId path string true "Space ID"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.QueryRangeResponse "Availability entries"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availability/{spaceId} [get]
func (handler *Handler) QueryRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QueryRange")
	defer scope.End()

	spaceID := chi.URLParam(r, constant.RequestParamSpaceID)
	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	res, err := handler.service.QueryRange(ctx, spaceID, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to query availability range")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability range retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CheckRange reports whether a half-open range can be booked.
// @Summary Check a date range
// @Description Check whether [startDate, endDate) is free of blocked days, booked days and active bookings, listing the conflicting dates otherwise.
// @Tags Availability
// @Accept json
// @Produce json
// @Param spaceId path string true "Space ID"
// @Param startDate query string true "Range start (YYYY-MM-DD), inclusive"
// @Param endDate query string true "Range end (YYYY-MM-DD), exclusive"
// @Success 200 {object} dto.CheckRangeResponse "Availability verdict"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availability/{spaceId}/check [get]
func (handler *Handler) CheckRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRange")
	defer scope.End()

	spaceID := chi.URLParam(r, constant.RequestParamSpaceID)
	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	res, err := handler.service.CheckRange(ctx, spaceID, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability range")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability range checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SetAvailability writes per-day ledger entries for a space.
// @Summary Set availability entries
// @Description Upsert available/blocked entries with optional notes and price overrides. Booked days are never overwritten.
// @Tags Availability
// @Accept json
// @Produce json
// @Param spaceId path string true "Space ID"
// @Param request body dto.SetAvailabilityRequest true "Set Availability Request"
// @Success 200 {object} response.Message "Availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availability/{spaceId} [post]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	spaceID := chi.URLParam(r, constant.RequestParamSpaceID)

	req := dto.SetAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetAvailability(ctx, spaceID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set availability")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Availability updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Availability updated successfully")
}

// BlockDates marks a set of days as blocked.
// @Summary Block dates
// @Description Block a list of days so they cannot be booked, with an optional note.
// @Tags Availability
// @Accept json
// @Produce json
// @Param spaceId path string true "Space ID"
// @Param request body dto.BlockDatesRequest true "Block Dates Request"
// @Success 200 {object} response.Message "Dates blocked successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availability/{spaceId}/block [post]
// @Security BearerAuth
func (handler *Handler) BlockDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockDates")
	defer scope.End()

	spaceID := chi.URLParam(r, constant.RequestParamSpaceID)

	req := dto.BlockDatesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.BlockDates(ctx, spaceID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block dates")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Dates blocked successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Dates blocked successfully")
}

// UnblockDates removes blocked entries for a set of days.
// @Summary Unblock dates
// @Description Remove blocked entries for the given days, reporting how many were removed. Booked days are untouched.
// @Tags Availability
// @Accept json
// @Produce json
// @Param spaceId path string true "Space ID"
// @Param request body dto.UnblockDatesRequest true "Unblock Dates Request"
// @Success 200 {object} dto.UnblockDatesResponse "Dates unblocked"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availability/{spaceId}/block [delete]
// @Security BearerAuth
func (handler *Handler) UnblockDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockDates")
	defer scope.End()

	spaceID := chi.URLParam(r, constant.RequestParamSpaceID)

	req := dto.UnblockDatesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UnblockDates(ctx, spaceID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock dates")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Dates unblocked successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// SetPriceOverride sets a per-day price for a set of days.
// @Summary Set price overrides
// @Description Write available entries carrying a per-day price override for the given days.
// @Tags Availability
// @Accept json
// @Produce json
// @Param spaceId path string true "Space ID"
// @Param request body dto.SetPriceOverrideRequest true "Set Price Override Request"
// @Success 200 {object} response.Message "Price overrides set successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availability/{spaceId}/price [post]
// @Security BearerAuth
func (handler *Handler) SetPriceOverride(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPriceOverride")
	defer scope.End()

	spaceID := chi.URLParam(r, constant.RequestParamSpaceID)

	req := dto.SetPriceOverrideRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetPriceOverride(ctx, spaceID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set price overrides")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Price overrides set successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Price overrides set successfully")
}
