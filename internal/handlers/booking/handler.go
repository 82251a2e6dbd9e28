package booking

import (
	"net/http"

	"arcade/infras/otel"
	"arcade/internal/domains/booking/model/dto"
	"arcade/internal/domains/booking/service"
	"arcade/shared/constant"
	"arcade/shared/daterange"
	gDto "arcade/shared/dto"
	"arcade/shared/timezone"
	"arcade/shared/validator"
	"arcade/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AdvanceBooking
	otel    otel.Otel
}

func New(service service.AdvanceBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/close", handler.CloseBooking)
	})
}

func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create advance booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Advance booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookings lists advance bookings inside a date window, optionally
// narrowed to one branch. The window defaults to today and accepts the
// shared range presets.
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	branchID := r.URL.Query().Get(constant.RequestParamBranchID)

	window, err := daterange.FromPreset(
		r.URL.Query().Get(constant.RequestParamRange),
		timezone.Now(),
		r.URL.Query().Get(constant.RequestParamStart),
		r.URL.Query().Get(constant.RequestParamEnd),
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve date range")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetAll(ctx, queryParams, branchID, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get advance bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Advance bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get advance booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Advance booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) CloseBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Close(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to close advance booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Advance booking closed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Advance booking closed successfully")
}
