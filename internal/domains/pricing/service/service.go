package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"arcade/config"
	"arcade/infras/otel"
	"arcade/internal/domains/pricing/engine"
	"arcade/internal/domains/pricing/model"
	"arcade/internal/domains/pricing/model/dto"
	"arcade/internal/domains/pricing/repository"
	"arcade/shared"
	"arcade/shared/cache"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/timezone"
)

const (
	cacheGetPriceTable = "pricing:table"
)

type Pricing interface {
	UpsertTier(ctx context.Context, req dto.UpsertPriceTierRequest) error
	GetTable(ctx context.Context, branchID string) (dto.GetPriceTiersResponse, error)
	DeleteTier(ctx context.Context, id string) error
	BaseAmount(ctx context.Context, branchID, deviceType string, playerCount int) (int64, error)
}

type serviceImpl struct {
	repo  repository.Pricing
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Pricing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// UpsertTier creates or replaces the rate for one (branch, device type,
// tier) cell of the price table.
func (s *serviceImpl) UpsertTier(ctx context.Context, req dto.UpsertPriceTierRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertTier")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := s.tierFilter(req.BranchID, req.DeviceType, req.Tier)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if price tier exists")

		return fmt.Errorf("failed to check if price tier exists: %w", err)
	}

	if exist {
		updatedFields := map[string]any{
			model.FieldPricePerPlayer: req.PricePerPlayer,
			constant.FieldModifiedAt:  timezone.Now(),
			constant.FieldModifiedBy:  user,
		}

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update price tier")

			return fmt.Errorf("failed to update price tier: %w", err)
		}
	} else {
		if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
			log.Error().Err(err).Msg("failed to create price tier")

			return fmt.Errorf("failed to create price tier: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPriceTable)
	}()

	return nil
}

func (s *serviceImpl) GetTable(ctx context.Context, branchID string) (res dto.GetPriceTiersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPriceTable, branchID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for price table")

		return res, nil
	}

	models, err := s.loadTable(ctx, branchID)
	if err != nil {
		return res, err
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save price table to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteTier(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTier")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if price tier exists")

		return fmt.Errorf("failed to check if price tier exists: %w", err)
	}

	if !exist {
		return failure.NotFound("price tier not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete price tier")

		return fmt.Errorf("failed to delete price tier: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPriceTable)
	}()

	return nil
}

// BaseAmount loads the branch price table fresh from the record store and
// runs the tier engine over it. Billing never prices off the cached table.
func (s *serviceImpl) BaseAmount(ctx context.Context, branchID, deviceType string, playerCount int) (res int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BaseAmount")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.loadTable(ctx, branchID)
	if err != nil {
		return 0, err
	}

	amount, err := engine.BaseAmount(table, deviceType, playerCount)
	if err != nil {
		log.Error().Err(err).Str("branch_id", branchID).Str("device_type", deviceType).Msg("failed to price rental")

		return 0, err // nolint:wrapcheck
	}

	return amount, nil
}

func (s *serviceImpl) loadTable(ctx context.Context, branchID string) ([]model.PriceTier, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBranchID,
				Operator: gDto.FilterOperatorEq,
				Value:    branchID,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldDeviceType, SortDir: "ASC"}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get price table")

		return nil, fmt.Errorf("failed to get price table: %w", err)
	}

	return models, nil
}

func (s *serviceImpl) tierFilter(branchID, deviceType, tier string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBranchID,
				Operator: gDto.FilterOperatorEq,
				Value:    branchID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDeviceType,
				Operator: gDto.FilterOperatorEq,
				Value:    deviceType,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTier,
				Operator: gDto.FilterOperatorEq,
				Value:    tier,
				Table:    model.TableName,
			},
		},
	}
}
