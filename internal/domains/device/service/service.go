package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"arcade/config"
	"arcade/infras/otel"
	"arcade/internal/domains/device/model"
	"arcade/internal/domains/device/model/dto"
	"arcade/internal/domains/device/repository"
	"arcade/shared"
	"arcade/shared/cache"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/timezone"
)

const (
	cacheGetDevice    = "device:get"
	cacheGetAllDevice = "device:gets"
	cacheCountDevice  = "device:count"
)

type Device interface {
	Create(ctx context.Context, req dto.CreateDeviceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDevicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DeviceResponse, error)
	Update(ctx context.Context, req dto.UpdateDeviceRequest, id string) error
	Delete(ctx context.Context, id string) error

	FindAvailable(ctx context.Context, branchID, deviceType string) ([]dto.DeviceResponse, error)
	Reserve(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
	MarkActive(ctx context.Context, id string) error
	MarkExtended(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Device
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Device, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Device {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDeviceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create device")

		return fmt.Errorf("failed to create device: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDevice)
		shared.InvalidateCaches(c, s.cache, cacheCountDevice)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDevicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDevice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for devices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count devices")

		return res, fmt.Errorf("failed to count devices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get devices")

		return res, fmt.Errorf("failed to get devices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save devices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDevice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for device count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count devices")

		return res, fmt.Errorf("failed to count devices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save device count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DeviceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	device, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get device")

		return res, fmt.Errorf("failed to get device: %w", err)
	}

	if device.ID == constant.Empty {
		return res, failure.NotFound("device not found") // nolint:wrapcheck
	}

	res.FromModel(device)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDeviceRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateDeviceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if device exists")

		return fmt.Errorf("failed to check if device exists: %w", err)
	}

	if !exist {
		log.Error().Msg("device not found")

		return failure.NotFound("device not found") // nolint:wrapcheck
	}

	// Maintenance status edits may not interrupt a live rental; flagging a
	// device unavailable only applies while it sits open.
	if req.Status == model.StatusUnavailable || req.Status == model.StatusOpen {
		from := model.StatusOpen
		if req.Status == model.StatusOpen {
			from = model.StatusUnavailable
		}

		if err := s.transition(ctx, id, []string{from}, req.Status, failure.KindInvalidTransition, "device is in use"); err != nil {
			return err
		}

		req.Status = constant.Empty
		if req == (dto.UpdateDeviceRequest{}) {
			return nil
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update device")

		return fmt.Errorf("failed to update device: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDevice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete device from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDevice)
		shared.InvalidateCaches(c, s.cache, cacheCountDevice)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if device exists")

		return fmt.Errorf("failed to check if device exists: %w", err)
	}

	if !exist {
		log.Error().Msg("device not found")

		return failure.NotFound("device not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete device")

		return fmt.Errorf("failed to delete device: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDevice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete device from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDevice)
		shared.InvalidateCaches(c, s.cache, cacheCountDevice)
	}()

	return nil
}

// FindAvailable lists the open devices of a branch, optionally narrowed to a
// device type. The result is not cached: the counter picks a device from it
// and staleness here means avoidable reserve conflicts.
func (s *serviceImpl) FindAvailable(ctx context.Context, branchID, deviceType string) (res []dto.DeviceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBranchID,
				Operator: gDto.FilterOperatorEq,
				Value:    branchID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusOpen,
				Table:    model.TableName,
			},
		},
	}

	if deviceType != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    deviceType,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{SortBy: model.FieldName, SortDir: "ASC"}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to find available devices")

		return nil, fmt.Errorf("failed to find available devices: %w", err)
	}

	res = make([]dto.DeviceResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

// Reserve claims an open device for a new rental. Losing the claim to a
// concurrent start surfaces as a device_unavailable failure.
func (s *serviceImpl) Reserve(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, []string{model.StatusOpen}, model.StatusBooked,
		failure.KindDeviceUnavailable, "device is not open for rental")
}

// Release returns a device to open once its session ends or its reservation
// is rolled back.
func (s *serviceImpl) Release(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, []string{model.StatusBooked, model.StatusActive, model.StatusExtended}, model.StatusOpen,
		failure.KindInvalidTransition, "device is not in use")
}

func (s *serviceImpl) MarkActive(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, []string{model.StatusBooked}, model.StatusActive,
		failure.KindInvalidTransition, "device has no pending reservation")
}

func (s *serviceImpl) MarkExtended(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkExtended")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, []string{model.StatusActive, model.StatusExtended}, model.StatusExtended,
		failure.KindInvalidTransition, "device has no running session")
}

// transition is a single-row compare-and-set on device status. The guard
// carries the expected prior statuses, so a concurrent transition makes the
// update match zero rows instead of clobbering it.
func (s *serviceImpl) transition(ctx context.Context, id string, from []string, to string, missKind failure.Kind, missMessage string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

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
				Operator: gDto.FilterOperatorIn,
				Value:    from,
				Table:    model.TableName,
			},
		},
	}

	updatedFields := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	affected, err := s.repo.UpdateGuarded(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Str("device_id", id).Str("to", to).Msg("failed to transition device")

		return fmt.Errorf("failed to transition device: %w", err)
	}

	if affected == 0 {
		exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if device exists")

			return fmt.Errorf("failed to check if device exists: %w", err)
		}

		if !exist {
			return failure.NotFound("device not found") // nolint:wrapcheck
		}

		log.Warn().Str("device_id", id).Str("to", to).Msg("device transition guard missed")

		return failure.Conflict(missKind, missMessage) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDevice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete device from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDevice)
	}()

	return nil
}
