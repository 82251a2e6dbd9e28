package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"arcade/config"
	"arcade/infras/kafka"
	"arcade/infras/otel"
	drawerModel "arcade/internal/domains/cashdrawer/model"
	drawerDto "arcade/internal/domains/cashdrawer/model/dto"
	drawerService "arcade/internal/domains/cashdrawer/service"
	customerModel "arcade/internal/domains/customer/model"
	customerRepo "arcade/internal/domains/customer/repository"
	deviceService "arcade/internal/domains/device/service"
	pricingService "arcade/internal/domains/pricing/service"
	"arcade/internal/domains/session/model"
	"arcade/internal/domains/session/model/dto"
	"arcade/internal/domains/session/repository"
	"arcade/internal/domains/settlement"
	"arcade/shared"
	"arcade/shared/cache"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/timezone"
)

const (
	cacheGetSession    = "session:get"
	cacheGetAllSession = "session:gets"
	cacheCountSession  = "session:count"
)

type Session interface {
	Start(ctx context.Context, req dto.StartSessionRequest) (dto.SessionResponse, error)
	Extend(ctx context.Context, req dto.ExtendSessionRequest, id string) error
	Shift(ctx context.Context, req dto.ShiftSessionRequest, id string) error
	Close(ctx context.Context, req dto.CloseSessionRequest, id string) (dto.SettlementResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSessionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
}

type serviceImpl struct {
	repo         repository.Session
	deviceSvc    deviceService.Device
	pricingSvc   pricingService.Pricing
	customerRepo customerRepo.Customer
	drawerSvc    drawerService.CashDrawer
	kafkaClient  kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Session,
	deviceSvc deviceService.Device,
	pricingSvc pricingService.Pricing,
	customerRepo customerRepo.Customer,
	drawerSvc drawerService.CashDrawer,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Session {
	return &serviceImpl{
		repo:         repo,
		deviceSvc:    deviceSvc,
		pricingSvc:   pricingSvc,
		customerRepo: customerRepo,
		drawerSvc:    drawerSvc,
		kafkaClient:  kafkaClient,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Start reserves the device, prices the rental, and opens the session. The
// device reservation is the exclusivity point: everything after it
// compensates with a release on failure.
func (s *serviceImpl) Start(ctx context.Context, req dto.StartSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	device, err := s.deviceSvc.Get(ctx, req.DeviceID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if req.PlayerCount > device.MaxPlayers {
		return res, failure.BadRequestFromString( // nolint:wrapcheck
			fmt.Sprintf("device seats at most %d players", device.MaxPlayers))
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

	// The device status guard already makes a double rental impossible; a
	// live session here means a transition was bypassed somewhere, which is
	// a defect worth its own log line.
	live, err := s.repo.Exist(ctx, s.liveSessionFilter(req.DeviceID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for live sessions")

		return res, fmt.Errorf("failed to check for live sessions: %w", err)
	}

	if live {
		log.Error().Str("device_id", req.DeviceID).Msg("defect: live session exists for device outside its status guard")

		return res, failure.Conflict(failure.KindConflict, "device already has a live session") // nolint:wrapcheck
	}

	if err = s.deviceSvc.Reserve(ctx, req.DeviceID); err != nil {
		return res, err // nolint:wrapcheck
	}

	sessionAmount, err := s.pricingSvc.BaseAmount(ctx, device.BranchID, device.Type, req.PlayerCount)
	if err != nil {
		s.compensateReserve(ctx, req.DeviceID)

		return res, err // nolint:wrapcheck
	}

	session := req.ToModel(device.BranchID, sessionAmount, user)

	if err = s.repo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create session")
		s.compensateReserve(ctx, req.DeviceID)

		return res, fmt.Errorf("failed to create session: %w", err)
	}

	if err = s.deviceSvc.MarkActive(ctx, req.DeviceID); err != nil {
		log.Error().Err(err).Str("device_id", req.DeviceID).Msg("failed to activate device, rolling back session")

		if delErr := s.repo.Delete(ctx, shared.FilterByID(session.ID, model.FieldID, model.TableName)); delErr != nil {
			log.Error().Err(delErr).Str("session_id", session.ID).Msg("failed to roll back session")
		}

		s.compensateReserve(ctx, req.DeviceID)

		return res, err // nolint:wrapcheck
	}

	s.invalidateListCaches(ctx)

	res.FromModel(session)

	return res, nil
}

// Extend adds paid hours to a live session as one guarded arithmetic
// update. Extended is reentrant, so repeat extensions stay legal.
func (s *serviceImpl) Extend(ctx context.Context, req dto.ExtendSessionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Extend")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	session, err := s.loadSession(ctx, id)
	if err != nil {
		return err
	}

	exprs := []string{
		model.FieldSessionAmount + " = " + model.FieldSessionAmount + " + :extra_amount",
		model.FieldTotalAmount + " = " + model.FieldTotalAmount + " + :extra_amount",
		model.FieldDurationHours + " = " + model.FieldDurationHours + " + :extra_hours",
		model.FieldStatus + " = :next_status",
		constant.FieldModifiedAt + " = :modified_at",
		constant.FieldModifiedBy + " = :modified_by",
	}

	exprArgs := map[string]any{
		"extra_amount": req.ExtraAmount,
		"extra_hours":  req.ExtraHours,
		"next_status":  model.StatusExtended,
		"modified_at":  timezone.Now(),
		"modified_by":  user,
	}

	affected, err := s.repo.UpdateExpr(ctx, exprs, exprArgs, s.liveGuard(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to extend session")

		return fmt.Errorf("failed to extend session: %w", err)
	}

	if affected == 0 {
		return failure.Validation(failure.KindInvalidState, "session is already closed") // nolint:wrapcheck
	}

	// Device follows the session; a miss here means a concurrent shift got
	// in between, and the swap path re-marks the new device itself.
	if err := s.deviceSvc.MarkExtended(ctx, session.DeviceID); err != nil {
		log.Warn().Err(err).Str("device_id", session.DeviceID).Msg("failed to mark device extended")
	}

	s.invalidateSessionCaches(ctx, id)

	return nil
}

// Shift moves a live session to another open device. The target reservation
// comes first, so a failure there leaves no visible mutation; a failed
// session swap compensates by releasing the target before surfacing.
func (s *serviceImpl) Shift(ctx context.Context, req dto.ShiftSessionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Shift")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	session, err := s.loadSession(ctx, id)
	if err != nil {
		return err
	}

	if session.Status == model.StatusClosed {
		return failure.Validation(failure.KindInvalidState, "session is already closed") // nolint:wrapcheck
	}

	fromDeviceID := session.DeviceID
	if fromDeviceID == req.ToDeviceID {
		return failure.BadRequestFromString("session is already on that device") // nolint:wrapcheck
	}

	target, err := s.deviceSvc.Get(ctx, req.ToDeviceID)
	if err != nil {
		return err // nolint:wrapcheck
	}

	if target.BranchID != session.BranchID {
		return failure.BadRequestFromString("target device belongs to another branch") // nolint:wrapcheck
	}

	if session.PlayerCount > target.MaxPlayers {
		return failure.BadRequestFromString( // nolint:wrapcheck
			fmt.Sprintf("target device seats at most %d players", target.MaxPlayers))
	}

	if err = s.deviceSvc.Reserve(ctx, req.ToDeviceID); err != nil {
		return err // nolint:wrapcheck
	}

	swapFilter := s.liveGuard(id)
	swapFilter.Filters = append(swapFilter.Filters, gDto.Filter{
		Field:    model.FieldDeviceID,
		Operator: gDto.FilterOperatorEq,
		Value:    fromDeviceID,
		Table:    model.TableName,
		ArgName:  "from_device_id",
	})

	updatedFields := map[string]any{
		model.FieldDeviceID:      req.ToDeviceID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	affected, err := s.repo.UpdateGuarded(ctx, updatedFields, swapFilter)
	if err != nil || affected == 0 {
		s.compensateReserve(ctx, req.ToDeviceID)

		if err != nil {
			log.Error().Err(err).Msg("failed to move session")

			return fmt.Errorf("failed to move session: %w", err)
		}

		return failure.Conflict(failure.KindConflict, "session changed during shift") // nolint:wrapcheck
	}

	if err := s.deviceSvc.MarkActive(ctx, req.ToDeviceID); err != nil {
		log.Warn().Err(err).Str("device_id", req.ToDeviceID).Msg("failed to activate target device")
	}

	if session.Status == model.StatusExtended {
		if err := s.deviceSvc.MarkExtended(ctx, req.ToDeviceID); err != nil {
			log.Warn().Err(err).Str("device_id", req.ToDeviceID).Msg("failed to mark target device extended")
		}
	}

	if err := s.deviceSvc.Release(ctx, fromDeviceID); err != nil {
		log.Error().Err(err).Str("device_id", fromDeviceID).Msg("defect: failed to release source device after shift")
	}

	s.invalidateSessionCaches(ctx, id)

	return nil
}

// Close settles and finalizes a session. Ordering: settle (pure) → adjust
// customer points (guarded) → close the session (guarded on status and the
// observed session amount, compensates the points on a miss) → cash log →
// device release → settlement event. A second close always misses the
// status guard and mutates nothing further; an extension landing after the
// settlement read misses the amount guard and asks the caller to retry.
func (s *serviceImpl) Close(ctx context.Context, req dto.CloseSessionRequest, id string) (res dto.SettlementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Close")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	session, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	if session.Status == model.StatusClosed {
		return res, failure.Validation(failure.KindInvalidState, "session is already closed") // nolint:wrapcheck
	}

	customer, err := s.customerRepo.Get(ctx,
		shared.FilterByID(session.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	result, err := settlement.Compute(settlement.Input{
		SessionAmount:   session.SessionAmount,
		SnacksTotal:     req.SnacksTotal,
		PointsRedeemed:  req.PointsRedeemed,
		PointsBalance:   customer.GGPointsBalance,
		PointsPerRupee:  s.cfg.Loyalty.PointsPerRupee,
		EarnRatePercent: s.cfg.Loyalty.EarnRatePercent,
		PaymentMode:     req.PaymentMode,
		Split: settlement.Split{
			Cash:       req.Split.Cash,
			UPI:        req.Split.UPI,
			Membership: req.Split.Membership,
		},
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	// Resolve the shift drawer before any mutation so a missing drawer
	// cannot strand a half-settled session.
	var drawer drawerDto.DrawerResponse
	if result.Split.Cash != 0 {
		drawer, err = s.drawerSvc.FindOpen(ctx, session.BranchID, user)
		if err != nil {
			return res, err // nolint:wrapcheck
		}
	}

	if result.NetPointsDelta != 0 {
		affected, err := s.customerRepo.AdjustPoints(ctx, session.CustomerID, result.NetPointsDelta, user)
		if err != nil {
			log.Error().Err(err).Msg("failed to adjust customer points")

			return res, fmt.Errorf("failed to adjust customer points: %w", err)
		}

		if affected == 0 {
			return res, failure.Conflict(failure.KindConflict, // nolint:wrapcheck
				"customer point balance changed, retry settlement")
		}
	}

	sessionOut := timezone.Now()

	updatedFields := map[string]any{
		model.FieldStatus:           model.StatusClosed,
		model.FieldSnacksTotal:      req.SnacksTotal,
		model.FieldDiscountAmount:   result.DiscountAmount,
		model.FieldTotalAmount:      result.TotalAmount,
		model.FieldPaymentMode:      req.PaymentMode,
		model.FieldPayCash:          result.Split.Cash,
		model.FieldPayUPI:           result.Split.UPI,
		model.FieldPayMembership:    result.Split.Membership,
		model.FieldGGPointsEarned:   result.PointsEarned,
		model.FieldGGPointsRedeemed: req.PointsRedeemed,
		model.FieldSessionOut:       sessionOut,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	// The settlement was computed from the session as read above, so the
	// close must only land on that exact billing state. Guarding on the
	// observed session_amount makes a concurrent extension miss the update
	// instead of having its money silently settled away.
	closeGuard := s.liveGuard(id)
	closeGuard.Filters = append(closeGuard.Filters, gDto.Filter{
		Field:    model.FieldSessionAmount,
		Operator: gDto.FilterOperatorEq,
		Value:    session.SessionAmount,
		Table:    model.TableName,
		ArgName:  "observed_session_amount",
	})

	affected, err := s.repo.UpdateGuarded(ctx, updatedFields, closeGuard)
	if err != nil || affected == 0 {
		if result.NetPointsDelta != 0 {
			if _, revErr := s.customerRepo.AdjustPoints(ctx, session.CustomerID, -result.NetPointsDelta, user); revErr != nil {
				log.Error().Err(revErr).Str("customer_id", session.CustomerID).Msg("failed to reverse point adjustment")
			}
		}

		if err != nil {
			log.Error().Err(err).Msg("failed to close session")

			return res, fmt.Errorf("failed to close session: %w", err)
		}

		return res, failure.Conflict(failure.KindConflict, "session changed during settlement, retry") // nolint:wrapcheck
	}

	// The settlement is committed from here on. Drawer and device cleanup
	// failures are logged for operator reconciliation, never unwound.
	if result.Split.Cash != 0 {
		cashReq := drawerDto.RecordCashRequest{
			Category: drawerModel.CategorySettlement,
			Amount:   result.Split.Cash,
		}

		if err := s.drawerSvc.Record(ctx, drawer.ID, cashReq); err != nil {
			log.Error().Err(err).Str("drawer_id", drawer.ID).Msg("failed to record settlement cash")
		}
	}

	if err := s.deviceSvc.Release(ctx, session.DeviceID); err != nil {
		log.Error().Err(err).Str("device_id", session.DeviceID).Msg("failed to release device after close")
	}

	s.publishSettlement(ctx, session, req, result, user, sessionOut)
	s.invalidateSessionCaches(ctx, id)

	res = dto.SettlementResponse{
		SessionID:      id,
		SessionAmount:  session.SessionAmount,
		SnacksTotal:    req.SnacksTotal,
		DiscountAmount: result.DiscountAmount,
		TotalAmount:    result.TotalAmount,
		PaymentMode:    req.PaymentMode,
		Split: dto.PaymentSplitResponse{
			Cash:       result.Split.Cash,
			UPI:        result.Split.UPI,
			Membership: result.Split.Membership,
		},
		GGPointsEarned:   result.PointsEarned,
		GGPointsRedeemed: req.PointsRedeemed,
		SessionOut:       timezone.Format(sessionOut, constant.DateFormat),
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSessionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSession, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sessions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")

		return res, fmt.Errorf("failed to count sessions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sessions")

		return res, fmt.Errorf("failed to get sessions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sessions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSession, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for session count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")

		return res, fmt.Errorf("failed to count sessions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save session count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	session, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) loadSession(ctx context.Context, id string) (model.Session, error) {
	session, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return session, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ID == constant.Empty {
		return session, failure.NotFound("session not found") // nolint:wrapcheck
	}

	return session, nil
}

// liveGuard is the precondition shared by every session mutation: the row
// must still be live when the update lands.
func (s *serviceImpl) liveGuard(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
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
				Value:    []string{model.StatusActive, model.StatusExtended},
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) liveSessionFilter(deviceID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDeviceID,
				Operator: gDto.FilterOperatorEq,
				Value:    deviceID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusActive, model.StatusExtended},
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) compensateReserve(ctx context.Context, deviceID string) {
	if err := s.deviceSvc.Release(ctx, deviceID); err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to release reserved device")
	}
}

func (s *serviceImpl) publishSettlement(ctx context.Context, session model.Session, req dto.CloseSessionRequest, result settlement.Result, user string, closedAt time.Time) {
	event := dto.SettlementEvent{
		SessionID:        session.ID,
		BranchID:         session.BranchID,
		CustomerID:       session.CustomerID,
		DeviceID:         session.DeviceID,
		SessionAmount:    session.SessionAmount,
		SnacksTotal:      req.SnacksTotal,
		DiscountAmount:   result.DiscountAmount,
		TotalAmount:      result.TotalAmount,
		PaymentMode:      req.PaymentMode,
		Split:            result.Split,
		GGPointsEarned:   result.PointsEarned,
		GGPointsRedeemed: req.PointsRedeemed,
		ClosedBy:         user,
		ClosedAt:         closedAt,
	}

	message := kafka.Message{Key: session.ID, Value: event}

	if err := s.kafkaClient.SendMessages(context.WithoutCancel(ctx), s.cfg.Kafka.Topic.Settlement, message); err != nil {
		log.Error().Err(err).Str("session_id", session.ID).Msg("failed to publish settlement event")
	}
}

func (s *serviceImpl) invalidateSessionCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSession, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete session from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSession)
		shared.InvalidateCaches(c, s.cache, cacheCountSession)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSession)
		shared.InvalidateCaches(c, s.cache, cacheCountSession)
	}()
}
