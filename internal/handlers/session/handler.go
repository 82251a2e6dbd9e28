package session

import (
	"net/http"

	"arcade/infras/otel"
	"arcade/internal/domains/session/model"
	"arcade/internal/domains/session/model/dto"
	"arcade/internal/domains/session/service"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/validator"
	"arcade/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartSession)
		routerGroup.Get("/", handler.GetSessions)
		routerGroup.Get("/{id}", handler.GetSessionByID)
		routerGroup.Patch("/{id}/extend", handler.ExtendSession)
		routerGroup.Patch("/{id}/shift", handler.ShiftSession)
		routerGroup.Patch("/{id}/close", handler.CloseSession)
	})
}

// StartSession opens a rental on a device and returns the created session.
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	req := dto.StartSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start session")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Session started successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

func (handler *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	branchID := r.URL.Query().Get(model.FieldBranchID)
	deviceID := r.URL.Query().Get(model.FieldDeviceID)
	customerID := r.URL.Query().Get(model.FieldCustomerID)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if branchID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBranchID,
			Operator: gDto.FilterOperatorEq,
			Value:    branchID,
			Table:    model.TableName,
		})
	}

	if deviceID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDeviceID,
			Operator: gDto.FilterOperatorEq,
			Value:    deviceID,
			Table:    model.TableName,
		})
	}

	if customerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Operator: gDto.FilterOperatorEq,
			Value:    customerID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	sessions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sessions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sessions retrieved successfully")

	response.WithJSON(w, http.StatusOK, sessions)
}

func (handler *Handler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session retrieved successfully")

	response.WithJSON(w, http.StatusOK, session)
}

func (handler *Handler) ExtendSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExtendSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ExtendSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Extend(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extend session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session extended successfully")

	response.WithMessage(w, http.StatusOK, "Session extended successfully")
}

// ShiftSession moves a live session onto another open device at the same
// branch.
func (handler *Handler) ShiftSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ShiftSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ShiftSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Shift(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to shift session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session shifted successfully")

	response.WithMessage(w, http.StatusOK, "Session shifted successfully")
}

// CloseSession settles the bill and returns the settlement breakdown.
func (handler *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CloseSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Close(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to close session")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Session closed successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
