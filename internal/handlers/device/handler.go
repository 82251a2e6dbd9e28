package device

import (
	"net/http"

	"arcade/infras/otel"
	"arcade/internal/domains/device/model"
	"arcade/internal/domains/device/model/dto"
	"arcade/internal/domains/device/service"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/validator"
	"arcade/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Device
	otel    otel.Otel
}

func New(service service.Device, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/devices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDevice)
		routerGroup.Get("/", handler.GetDevices)
		routerGroup.Get("/available", handler.GetAvailableDevices)
		routerGroup.Get("/{id}", handler.GetDeviceByID)
		routerGroup.Patch("/{id}", handler.UpdateDevice)
		routerGroup.Delete("/{id}", handler.DeleteDevice)
	})
}

func (handler *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDevice")
	defer scope.End()

	req := dto.CreateDeviceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create device")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Device created successfully")

	response.WithMessage(w, http.StatusCreated, "Device created successfully")
}

func (handler *Handler) GetDevices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDevices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	branchID := r.URL.Query().Get(model.FieldBranchID)
	deviceType := r.URL.Query().Get(model.FieldType)
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

	if deviceType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    deviceType,
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

	devices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get devices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Devices retrieved successfully")

	response.WithJSON(w, http.StatusOK, devices)
}

// GetAvailableDevices lists open devices at a branch, optionally narrowed by
// device type, for the staff assignment screen.
func (handler *Handler) GetAvailableDevices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableDevices")
	defer scope.End()

	branchID := r.URL.Query().Get(constant.RequestParamBranchID)
	if branchID == "" {
		err := failure.BadRequestFromString("branch_id query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	deviceType := r.URL.Query().Get(model.FieldType)

	devices, err := handler.service.FindAvailable(ctx, branchID, deviceType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available devices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available devices retrieved successfully")

	response.WithJSON(w, http.StatusOK, devices)
}

func (handler *Handler) GetDeviceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeviceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	device, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get device")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Device retrieved successfully")

	response.WithJSON(w, http.StatusOK, device)
}

func (handler *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDevice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDeviceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update device")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Device updated successfully")

	response.WithMessage(w, http.StatusOK, "Device updated successfully")
}

func (handler *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDevice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete device")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Device deleted successfully")

	response.WithMessage(w, http.StatusOK, "Device deleted successfully")
}
