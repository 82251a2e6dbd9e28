package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"arcade/config"
	"arcade/infras/otel"
	customerModel "arcade/internal/domains/customer/model"
	customerRepo "arcade/internal/domains/customer/repository"
	"arcade/internal/domains/booking/model"
	"arcade/internal/domains/booking/model/dto"
	"arcade/internal/domains/booking/repository"
	"arcade/shared"
	"arcade/shared/cache"
	"arcade/shared/constant"
	"arcade/shared/daterange"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/timezone"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type AdvanceBooking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, branchID string, window daterange.Range) (dto.GetBookingsResponse, error)
	Close(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.AdvanceBooking
	customerRepo customerRepo.Customer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.AdvanceBooking, customerRepo customerRepo.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) AdvanceBooking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.VisitingTime.Before(timezone.Now()) {
		return res, failure.BadRequestFromString("visiting time is in the past") // nolint:wrapcheck
	}

	customerExists, err := s.customerRepo.Exist(ctx,
		shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !customerExists {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	booking := req.ToModel(user)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create advance booking")

		return res, fmt.Errorf("failed to create advance booking: %w", err)
	}

	s.invalidateCaches(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get advance booking")

		return res, fmt.Errorf("failed to get advance booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("advance booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// GetAll lists the bookings whose visiting time falls inside the window,
// newest window entries first by default sort.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, branchID string, window daterange.Range) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.windowFilter(branchID, window)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for advance bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count advance bookings")

		return res, fmt.Errorf("failed to count advance bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get advance bookings")

		return res, fmt.Errorf("failed to get advance bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save advance bookings to cache")
		}
	}()

	return res, nil
}

// Close marks a booking handled. The status guard makes the operation
// idempotent-safe: a second close reports the conflict instead of silently
// restamping who closed it.
func (s *serviceImpl) Close(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Close")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusClosed,
		model.FieldClosedBy:      user,
		model.FieldClosedAt:      timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusActive,
				Table:    model.TableName,
			},
		},
	}

	affected, err := s.repo.UpdateGuarded(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to close advance booking")

		return fmt.Errorf("failed to close advance booking: %w", err)
	}

	if affected == 0 {
		exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if advance booking exists")

			return fmt.Errorf("failed to check if advance booking exists: %w", err)
		}

		if !exist {
			return failure.NotFound("advance booking not found") // nolint:wrapcheck
		}

		return failure.Conflict(failure.KindAlreadyClosed, "advance booking is already closed") // nolint:wrapcheck
	}

	s.invalidateCaches(ctx)

	return nil
}

// windowFilter bounds the listing to the visiting-time window. The branch
// predicate is only added when a branch is asked for, so an empty branchID
// lists across all branches.
func (s *serviceImpl) windowFilter(branchID string, window daterange.Range) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVisitingTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    window.Start,
				Table:    model.TableName,
				ArgName:  "visiting_time_start",
			},
			gDto.Filter{
				Field:    model.FieldVisitingTime,
				Operator: gDto.FilterOperatorLess,
				Value:    window.End,
				Table:    model.TableName,
				ArgName:  "visiting_time_end",
			},
		},
	}

	if branchID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldBranchID,
			Operator: gDto.FilterOperatorEq,
			Value:    branchID,
			Table:    model.TableName,
		})
	}

	return filter
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
