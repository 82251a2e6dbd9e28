package pricing

import (
	"net/http"

	"arcade/infras/otel"
	"arcade/internal/domains/pricing/model/dto"
	"arcade/internal/domains/pricing/service"
	"arcade/shared/constant"
	"arcade/shared/failure"
	"arcade/shared/validator"
	"arcade/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing", func(routerGroup chi.Router) {
		routerGroup.Put("/", handler.UpsertPriceTier)
		routerGroup.Get("/", handler.GetPriceTable)
		routerGroup.Delete("/{id}", handler.DeletePriceTier)
	})
}

// UpsertPriceTier creates or replaces the tier for a branch and device type.
func (handler *Handler) UpsertPriceTier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertPriceTier")
	defer scope.End()

	req := dto.UpsertPriceTierRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertTier(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert price tier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price tier saved successfully")

	response.WithMessage(w, http.StatusOK, "Price tier saved successfully")
}

func (handler *Handler) GetPriceTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPriceTable")
	defer scope.End()

	branchID := r.URL.Query().Get(constant.RequestParamBranchID)
	if branchID == "" {
		err := failure.BadRequestFromString("branch_id query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	table, err := handler.service.GetTable(ctx, branchID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get price table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price table retrieved successfully")

	response.WithJSON(w, http.StatusOK, table)
}

func (handler *Handler) DeletePriceTier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePriceTier")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteTier(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete price tier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price tier deleted successfully")

	response.WithMessage(w, http.StatusOK, "Price tier deleted successfully")
}
