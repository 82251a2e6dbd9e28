package cashdrawer

import (
	"net/http"

	"arcade/infras/otel"
	"arcade/internal/domains/cashdrawer/model/dto"
	"arcade/internal/domains/cashdrawer/service"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/validator"
	"arcade/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CashDrawer
	otel    otel.Otel
}

func New(service service.CashDrawer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cash-drawers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenDrawer)
		routerGroup.Get("/current", handler.GetCurrentDrawer)
		routerGroup.Get("/{id}", handler.GetDrawerByID)
		routerGroup.Post("/{id}/logs", handler.RecordCash)
		routerGroup.Get("/{id}/logs", handler.GetCashLogs)
	})
}

// OpenDrawer starts the staff member's drawer for the current business date.
func (handler *Handler) OpenDrawer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDrawer")
	defer scope.End()

	req := dto.OpenDrawerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Open(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open cash drawer")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cash drawer opened successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Cash drawer opened successfully")
}

// GetCurrentDrawer returns the authenticated user's open drawer at a branch.
func (handler *Handler) GetCurrentDrawer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentDrawer")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	branchID := r.URL.Query().Get(constant.RequestParamBranchID)
	if branchID == "" {
		err := failure.BadRequestFromString("branch_id query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	drawer, err := handler.service.FindOpen(ctx, branchID, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find open cash drawer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cash drawer retrieved successfully")

	response.WithJSON(w, http.StatusOK, drawer)
}

func (handler *Handler) GetDrawerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrawerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	drawer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cash drawer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cash drawer retrieved successfully")

	response.WithJSON(w, http.StatusOK, drawer)
}

// RecordCash appends a movement to the drawer's cash log.
func (handler *Handler) RecordCash(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordCash")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RecordCashRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Record(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record cash movement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cash movement recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Cash movement recorded successfully")
}

func (handler *Handler) GetCashLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCashLogs")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.Logs(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cash logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cash logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}
