package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arcade/config"
	"arcade/infras/otel/mocks"
	drawerMocks "arcade/internal/domains/cashdrawer/mocks"
	"arcade/internal/domains/cashdrawer/model"
	"arcade/internal/domains/cashdrawer/model/dto"
	"arcade/internal/domains/cashdrawer/service"
	"arcade/shared/constant"
	"arcade/shared/failure"
)

func newDrawerService(ctrl *gomock.Controller) (service.CashDrawer, *drawerMocks.MockDrawer, *drawerMocks.MockCashLog) {
	mockDrawerRepo := drawerMocks.NewMockDrawer(ctrl)
	mockLogRepo := drawerMocks.NewMockCashLog(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockDrawerRepo, mockLogRepo, cfg, mocks.NewOtel())

	return svc, mockDrawerRepo, mockLogRepo
}

func drawerCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestCashDrawerService_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockDrawerRepo, _ := newDrawerService(ctrl)

	t.Run("first open of the shift succeeds", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockDrawerRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Open(drawerCtx(), dto.OpenDrawerRequest{BranchID: "branch-1", OpeningAmount: 2000})
		assert.NoError(t, err)
	})

	t.Run("second open of the same shift conflicts", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Open(drawerCtx(), dto.OpenDrawerRequest{BranchID: "branch-1", OpeningAmount: 2000})
		assert.True(t, failure.IsKind(err, failure.KindAlreadyOpen))
	})
}

func TestCashDrawerService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockDrawerRepo, mockLogRepo := newDrawerService(ctrl)

	drawer := model.CashDrawer{
		ID:           "drawer-1",
		BranchID:     "branch-1",
		UserID:       "test-user-id",
		CashInDrawer: 2000,
	}

	t.Run("deposit moves the balance and appends a log", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(drawer, nil)
		mockDrawerRepo.EXPECT().
			UpdateExpr(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		mockLogRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Record(drawerCtx(), "drawer-1", dto.RecordCashRequest{Category: model.CategoryDeposit, Amount: 500})
		assert.NoError(t, err)
	})

	t.Run("overdraft misses the balance guard", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(drawer, nil)
		mockDrawerRepo.EXPECT().
			UpdateExpr(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := svc.Record(drawerCtx(), "drawer-1", dto.RecordCashRequest{Category: model.CategoryWithdrawal, Amount: -5000})
		assert.True(t, failure.IsKind(err, failure.KindInsufficientDrawerBalance))
	})

	t.Run("failed log append reverses the balance", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(drawer, nil)
		mockDrawerRepo.EXPECT().
			UpdateExpr(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		mockLogRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		mockDrawerRepo.EXPECT().
			UpdateExpr(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		err := svc.Record(drawerCtx(), "drawer-1", dto.RecordCashRequest{Category: model.CategoryDeposit, Amount: 500})
		assert.Error(t, err)
	})

	t.Run("unknown drawer is not found", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.CashDrawer{}, nil)

		err := svc.Record(drawerCtx(), "missing", dto.RecordCashRequest{Category: model.CategoryDeposit, Amount: 500})
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestCashDrawerService_FindOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockDrawerRepo, _ := newDrawerService(ctrl)

	t.Run("resolves the shift drawer", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.CashDrawer{ID: "drawer-1", BranchID: "branch-1", UserID: "test-user-id"}, nil)

		res, err := svc.FindOpen(drawerCtx(), "branch-1", "test-user-id")
		assert.NoError(t, err)
		assert.Equal(t, "drawer-1", res.ID)
	})

	t.Run("missing drawer blocks cash settlement", func(t *testing.T) {
		mockDrawerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.CashDrawer{}, nil)

		_, err := svc.FindOpen(drawerCtx(), "branch-1", "test-user-id")
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}
