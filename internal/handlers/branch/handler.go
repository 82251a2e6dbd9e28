package branch

import (
	"net/http"

	"arcade/infras/otel"
	"arcade/internal/domains/branch/model"
	"arcade/internal/domains/branch/model/dto"
	"arcade/internal/domains/branch/service"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/validator"
	"arcade/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Branch
	otel    otel.Otel
}

func New(service service.Branch, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/branches", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBranch)
		routerGroup.Get("/", handler.GetBranches)
		routerGroup.Get("/{id}", handler.GetBranchByID)
		routerGroup.Patch("/{id}", handler.UpdateBranch)
	})
}

func (handler *Handler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBranch")
	defer scope.End()

	req := dto.CreateBranchRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create branch")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branch created successfully")

	response.WithMessage(w, http.StatusCreated, "Branch created successfully")
}

func (handler *Handler) GetBranches(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBranches")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	city := r.URL.Query().Get(model.FieldCity)
	active := r.URL.Query().Get(model.FieldActive)

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

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	branches, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get branches")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branches retrieved successfully")

	response.WithJSON(w, http.StatusOK, branches)
}

func (handler *Handler) GetBranchByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBranchByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	branch, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get branch")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branch retrieved successfully")

	response.WithJSON(w, http.StatusOK, branch)
}

func (handler *Handler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBranch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBranchRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update branch")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branch updated successfully")

	response.WithMessage(w, http.StatusOK, "Branch updated successfully")
}
