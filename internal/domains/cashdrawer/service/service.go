package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"arcade/config"
	"arcade/infras/otel"
	"arcade/internal/domains/cashdrawer/model"
	"arcade/internal/domains/cashdrawer/model/dto"
	"arcade/internal/domains/cashdrawer/repository"
	"arcade/shared"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type CashDrawer interface {
	Open(ctx context.Context, req dto.OpenDrawerRequest) error
	Get(ctx context.Context, id string) (dto.DrawerResponse, error)
	FindOpen(ctx context.Context, branchID, userID string) (dto.DrawerResponse, error)
	Record(ctx context.Context, drawerID string, req dto.RecordCashRequest) error
	Logs(ctx context.Context, drawerID string, params gDto.QueryParams) (dto.GetCashLogsResponse, error)
}

type serviceImpl struct {
	drawerRepo repository.Drawer
	logRepo    repository.CashLog
	cfg        *config.Config
	otel       otel.Otel
}

func New(drawerRepo repository.Drawer, logRepo repository.CashLog, cfg *config.Config, otel otel.Otel) CashDrawer {
	return &serviceImpl{
		drawerRepo: drawerRepo,
		logRepo:    logRepo,
		cfg:        cfg,
		otel:       otel,
	}
}

// Open starts the shift drawer for the acting staff member. One drawer per
// user, branch and business day.
func (s *serviceImpl) Open(ctx context.Context, req dto.OpenDrawerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Open")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	businessDate := timezone.Now().Format(constant.BusinessDateFormat)

	exist, err := s.drawerRepo.Exist(ctx, s.shiftFilter(req.BranchID, userID, businessDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cash drawer exists")

		return fmt.Errorf("failed to check if cash drawer exists: %w", err)
	}

	if exist {
		return failure.Conflict(failure.KindAlreadyOpen, // nolint:wrapcheck
			"cash drawer already open for this shift")
	}

	if err = s.drawerRepo.Insert(ctx, req.ToModel(userID)); err != nil {
		log.Error().Err(err).Msg("failed to open cash drawer")

		return fmt.Errorf("failed to open cash drawer: %w", err)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DrawerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	drawer, err := s.drawerRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.DrawerTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cash drawer")

		return res, fmt.Errorf("failed to get cash drawer: %w", err)
	}

	if drawer.ID == constant.Empty {
		return res, failure.NotFound("cash drawer not found") // nolint:wrapcheck
	}

	res.FromModel(drawer)

	return res, nil
}

// FindOpen resolves the drawer of the given staff member's current shift.
// Session settlement uses it to route the cash component.
func (s *serviceImpl) FindOpen(ctx context.Context, branchID, userID string) (res dto.DrawerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindOpen")
	defer scope.End()
	defer scope.TraceIfError(err)

	businessDate := timezone.Now().Format(constant.BusinessDateFormat)

	drawer, err := s.drawerRepo.Get(ctx, s.shiftFilter(branchID, userID, businessDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to find open cash drawer")

		return res, fmt.Errorf("failed to find open cash drawer: %w", err)
	}

	if drawer.ID == constant.Empty {
		return res, failure.NotFound("no open cash drawer for this shift") // nolint:wrapcheck
	}

	res.FromModel(drawer)

	return res, nil
}

// Record appends a cash movement and moves the running balance in one
// guarded step. The balance precondition rides in the update itself, so a
// concurrent withdrawal cannot slip the drawer below zero.
func (s *serviceImpl) Record(ctx context.Context, drawerID string, req dto.RecordCashRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	drawer, err := s.drawerRepo.Get(ctx, shared.FilterByID(drawerID, model.FieldID, model.DrawerTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cash drawer")

		return fmt.Errorf("failed to get cash drawer: %w", err)
	}

	if drawer.ID == constant.Empty {
		return failure.NotFound("cash drawer not found") // nolint:wrapcheck
	}

	affected, err := s.adjustBalance(ctx, drawerID, req.Amount, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to update cash drawer balance")

		return fmt.Errorf("failed to update cash drawer balance: %w", err)
	}

	if affected == 0 {
		return failure.Conflict(failure.KindInsufficientDrawerBalance, // nolint:wrapcheck
			"withdrawal exceeds cash in drawer")
	}

	entry := model.CashLog{
		ID:       uuid.NewString(),
		DrawerID: drawerID,
		BranchID: drawer.BranchID,
		Category: req.Category,
		Amount:   req.Amount,
		LoggedAt: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if err = s.logRepo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("drawer_id", drawerID).Msg("failed to append cash log, reversing balance")

		if _, revErr := s.adjustBalance(ctx, drawerID, -req.Amount, userID); revErr != nil {
			log.Error().Err(revErr).Str("drawer_id", drawerID).Msg("failed to reverse drawer balance")
		}

		return fmt.Errorf("failed to append cash log: %w", err)
	}

	return nil
}

func (s *serviceImpl) Logs(ctx context.Context, drawerID string, params gDto.QueryParams) (res dto.GetCashLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logs")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDrawerID,
				Operator: gDto.FilterOperatorEq,
				Value:    drawerID,
				Table:    model.LogTableName,
			},
		},
	}

	total, err := s.logRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cash logs")

		return res, fmt.Errorf("failed to count cash logs: %w", err)
	}

	models, err := s.logRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cash logs")

		return res, fmt.Errorf("failed to get cash logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) adjustBalance(ctx context.Context, drawerID string, amount int64, userID string) (int64, error) {
	exprs := []string{
		fmt.Sprintf("%s = %s + :amount", model.FieldCashInDrawer, model.FieldCashInDrawer),
		constant.FieldModifiedAt + " = :modified_at",
		constant.FieldModifiedBy + " = :modified_by",
	}

	exprArgs := map[string]any{
		"amount":      amount,
		"modified_at": timezone.Now(),
		"modified_by": userID,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    drawerID,
				Table:    model.DrawerTableName,
			},
			gDto.Filter{
				Operator: gDto.FilterPlainQuery,
				Value:    model.FieldCashInDrawer + " + :amount >= 0",
			},
		},
	}

	return s.drawerRepo.UpdateExpr(ctx, exprs, exprArgs, filter) // nolint:wrapcheck
}

func (s *serviceImpl) shiftFilter(branchID, userID, businessDate string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBranchID,
				Operator: gDto.FilterOperatorEq,
				Value:    branchID,
				Table:    model.DrawerTableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.DrawerTableName,
			},
			gDto.Filter{
				Field:    model.FieldBusinessDate,
				Operator: gDto.FilterOperatorEq,
				Value:    businessDate,
				Table:    model.DrawerTableName,
			},
		},
	}
}
