package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arcade/config"
	kafkaMocks "arcade/infras/kafka/mocks"
	"arcade/infras/otel/mocks"
	drawerDto "arcade/internal/domains/cashdrawer/model/dto"
	drawerServiceMocks "arcade/internal/domains/cashdrawer/service/mocks"
	customerModel "arcade/internal/domains/customer/model"
	customerMocks "arcade/internal/domains/customer/mocks"
	deviceDto "arcade/internal/domains/device/model/dto"
	deviceServiceMocks "arcade/internal/domains/device/service/mocks"
	pricingServiceMocks "arcade/internal/domains/pricing/service/mocks"
	sessionMocks "arcade/internal/domains/session/mocks"
	"arcade/internal/domains/session/model"
	"arcade/internal/domains/session/model/dto"
	"arcade/internal/domains/session/service"
	cacheMocks "arcade/shared/cache/mocks"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/timezone"
)

type sessionMockSet struct {
	repo      *sessionMocks.MockSession
	deviceSvc *deviceServiceMocks.MockDevice
	pricing   *pricingServiceMocks.MockPricing
	customer  *customerMocks.MockCustomer
	drawerSvc *drawerServiceMocks.MockCashDrawer
	kafka     *kafkaMocks.MockClient
	cache     *cacheMocks.MockRedisCache
}

func newSessionService(ctrl *gomock.Controller) (service.Session, sessionMockSet) {
	m := sessionMockSet{
		repo:      sessionMocks.NewMockSession(ctrl),
		deviceSvc: deviceServiceMocks.NewMockDevice(ctrl),
		pricing:   pricingServiceMocks.NewMockPricing(ctrl),
		customer:  customerMocks.NewMockCustomer(ctrl),
		drawerSvc: drawerServiceMocks.NewMockCashDrawer(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Loyalty.PointsPerRupee = 1
	cfg.Loyalty.EarnRatePercent = 5
	cfg.Kafka.Topic.Settlement = "arcade.settlements"

	svc := service.New(m.repo, m.deviceSvc, m.pricing, m.customer, m.drawerSvc, m.kafka, cfg, m.cache, mocks.NewOtel())

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, m
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func activeSession() model.Session {
	return model.Session{
		ID:            "session-1",
		DeviceID:      "device-a",
		CustomerID:    "customer-1",
		BranchID:      "branch-1",
		PlayerCount:   2,
		DurationHours: 1,
		SessionAmount: 300,
		TotalAmount:   300,
		Status:        model.StatusActive,
		SessionIn:     timezone.Now(),
	}
}

func TestSessionService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSessionService(ctrl)

	device := deviceDto.DeviceResponse{
		ID:         "device-a",
		BranchID:   "branch-1",
		Name:       "PS5 Bay 1",
		Type:       "console",
		MaxPlayers: 4,
		Status:     "open",
	}

	tests := []struct {
		name      string
		req       dto.StartSessionRequest
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful start",
			req: dto.StartSessionRequest{
				DeviceID:      "device-a",
				CustomerID:    "customer-1",
				PlayerCount:   2,
				DurationHours: 1,
			},
			setupMock: func() {
				m.deviceSvc.EXPECT().Get(gomock.Any(), "device-a").Return(device, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.deviceSvc.EXPECT().Reserve(gomock.Any(), "device-a").Return(nil)
				m.pricing.EXPECT().BaseAmount(gomock.Any(), "branch-1", "console", 2).Return(int64(300), nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				m.deviceSvc.EXPECT().MarkActive(gomock.Any(), "device-a").Return(nil)
			},
		},
		{
			name: "device not open for rental",
			req: dto.StartSessionRequest{
				DeviceID:      "device-a",
				CustomerID:    "customer-1",
				PlayerCount:   2,
				DurationHours: 1,
			},
			setupMock: func() {
				m.deviceSvc.EXPECT().Get(gomock.Any(), "device-a").Return(device, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.deviceSvc.EXPECT().Reserve(gomock.Any(), "device-a").
					Return(failure.Conflict(failure.KindDeviceUnavailable, "device is not open for rental"))
			},
			wantErr:  true,
			wantKind: failure.KindDeviceUnavailable,
		},
		{
			name: "player count exceeds device capacity",
			req: dto.StartSessionRequest{
				DeviceID:      "device-a",
				CustomerID:    "customer-1",
				PlayerCount:   6,
				DurationHours: 1,
			},
			setupMock: func() {
				m.deviceSvc.EXPECT().Get(gomock.Any(), "device-a").Return(device, nil)
			},
			wantErr: true,
		},
		{
			name: "missing price tier rolls back the reservation",
			req: dto.StartSessionRequest{
				DeviceID:      "device-a",
				CustomerID:    "customer-1",
				PlayerCount:   2,
				DurationHours: 1,
			},
			setupMock: func() {
				m.deviceSvc.EXPECT().Get(gomock.Any(), "device-a").Return(device, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.deviceSvc.EXPECT().Reserve(gomock.Any(), "device-a").Return(nil)
				m.pricing.EXPECT().BaseAmount(gomock.Any(), "branch-1", "console", 2).
					Return(int64(0), failure.Validation(failure.KindPricingConfigMissing, "no price tier for console dual"))
				m.deviceSvc.EXPECT().Release(gomock.Any(), "device-a").Return(nil)
			},
			wantErr:  true,
			wantKind: failure.KindPricingConfigMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Start(testCtx(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(300), res.SessionAmount)
				assert.Equal(t, int64(300), res.TotalAmount)
				assert.Equal(t, model.StatusActive, res.Status)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestSessionService_Extend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSessionService(ctrl)

	t.Run("successful extension", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.repo.EXPECT().UpdateExpr(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.deviceSvc.EXPECT().MarkExtended(gomock.Any(), "device-a").Return(nil)

		err := svc.Extend(testCtx(), dto.ExtendSessionRequest{ExtraHours: 1, ExtraAmount: 150}, "session-1")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("closed session cannot be extended", func(t *testing.T) {
		closed := activeSession()
		closed.Status = model.StatusClosed

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)
		m.repo.EXPECT().UpdateExpr(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := svc.Extend(testCtx(), dto.ExtendSessionRequest{ExtraHours: 1, ExtraAmount: 150}, "session-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("unknown session", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Session{}, nil)

		err := svc.Extend(testCtx(), dto.ExtendSessionRequest{ExtraHours: 1, ExtraAmount: 150}, "missing")
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestSessionService_Shift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSessionService(ctrl)

	target := deviceDto.DeviceResponse{
		ID:         "device-b",
		BranchID:   "branch-1",
		Type:       "console",
		MaxPlayers: 4,
		Status:     "open",
	}

	t.Run("target unavailable leaves the session in place", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.deviceSvc.EXPECT().Get(gomock.Any(), "device-b").Return(target, nil)
		m.deviceSvc.EXPECT().Reserve(gomock.Any(), "device-b").
			Return(failure.Conflict(failure.KindDeviceUnavailable, "device is not open for rental"))

		err := svc.Shift(testCtx(), dto.ShiftSessionRequest{ToDeviceID: "device-b"}, "session-1")
		assert.True(t, failure.IsKind(err, failure.KindDeviceUnavailable))
	})

	t.Run("successful shift releases the source last", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.deviceSvc.EXPECT().Get(gomock.Any(), "device-b").Return(target, nil)
		m.deviceSvc.EXPECT().Reserve(gomock.Any(), "device-b").Return(nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.deviceSvc.EXPECT().MarkActive(gomock.Any(), "device-b").Return(nil)
		m.deviceSvc.EXPECT().Release(gomock.Any(), "device-a").Return(nil)

		err := svc.Shift(testCtx(), dto.ShiftSessionRequest{ToDeviceID: "device-b"}, "session-1")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("extended session re-marks the target", func(t *testing.T) {
		extended := activeSession()
		extended.Status = model.StatusExtended

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(extended, nil)
		m.deviceSvc.EXPECT().Get(gomock.Any(), "device-b").Return(target, nil)
		m.deviceSvc.EXPECT().Reserve(gomock.Any(), "device-b").Return(nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.deviceSvc.EXPECT().MarkActive(gomock.Any(), "device-b").Return(nil)
		m.deviceSvc.EXPECT().MarkExtended(gomock.Any(), "device-b").Return(nil)
		m.deviceSvc.EXPECT().Release(gomock.Any(), "device-a").Return(nil)

		err := svc.Shift(testCtx(), dto.ShiftSessionRequest{ToDeviceID: "device-b"}, "session-1")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("closed session cannot move", func(t *testing.T) {
		closed := activeSession()
		closed.Status = model.StatusClosed

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)

		err := svc.Shift(testCtx(), dto.ShiftSessionRequest{ToDeviceID: "device-b"}, "session-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("same device is rejected", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)

		err := svc.Shift(testCtx(), dto.ShiftSessionRequest{ToDeviceID: "device-a"}, "session-1")
		assert.Error(t, err)
	})
}

func TestSessionService_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSessionService(ctrl)

	customer := customerModel.Customer{
		ID:              "customer-1",
		FullName:        "Test Customer",
		GGPointsBalance: 1000,
	}

	drawer := drawerDto.DrawerResponse{ID: "drawer-1", BranchID: "branch-1"}

	t.Run("full redemption at the cap", func(t *testing.T) {
		// 300 rupee session, cap 150, ratio 1: 150 points wipe half the bill.
		// Earn runs on the settled 150 at 5 percent.
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
		m.drawerSvc.EXPECT().FindOpen(gomock.Any(), "branch-1", "test-user-id").Return(drawer, nil)
		m.customer.EXPECT().AdjustPoints(gomock.Any(), "customer-1", int64(-143), "test-user-id").Return(int64(1), nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.drawerSvc.EXPECT().Record(gomock.Any(), "drawer-1", gomock.Any()).Return(nil)
		m.deviceSvc.EXPECT().Release(gomock.Any(), "device-a").Return(nil)
		m.kafka.EXPECT().SendMessages(gomock.Any(), "arcade.settlements", gomock.Any()).Return(nil)

		res, err := svc.Close(testCtx(), dto.CloseSessionRequest{
			PointsRedeemed: 150,
			PaymentMode:    "cash",
		}, "session-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(150), res.DiscountAmount)
		assert.Equal(t, int64(150), res.TotalAmount)
		assert.Equal(t, int64(150), res.Split.Cash)
		assert.Equal(t, int64(7), res.GGPointsEarned)
		assert.Equal(t, int64(150), res.GGPointsRedeemed)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("second close changes nothing", func(t *testing.T) {
		closed := activeSession()
		closed.Status = model.StatusClosed

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)

		_, err := svc.Close(testCtx(), dto.CloseSessionRequest{PaymentMode: "cash"}, "session-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("redemption above the cap is rejected before any mutation", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)

		_, err := svc.Close(testCtx(), dto.CloseSessionRequest{
			PointsRedeemed: 151,
			PaymentMode:    "cash",
		}, "session-1")

		assert.True(t, failure.IsKind(err, failure.KindRedemptionExceeded))
	})

	t.Run("split mismatch is rejected", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)

		_, err := svc.Close(testCtx(), dto.CloseSessionRequest{
			PaymentMode: "part_paid",
			Split:       dto.PaymentSplitRequest{Cash: 100, UPI: 100},
		}, "session-1")

		assert.True(t, failure.IsKind(err, failure.KindPaymentSplitMismatch))
	})

	t.Run("stale point balance surfaces a conflict", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
		m.drawerSvc.EXPECT().FindOpen(gomock.Any(), "branch-1", "test-user-id").Return(drawer, nil)
		m.customer.EXPECT().AdjustPoints(gomock.Any(), "customer-1", int64(-143), "test-user-id").Return(int64(0), nil)

		_, err := svc.Close(testCtx(), dto.CloseSessionRequest{
			PointsRedeemed: 150,
			PaymentMode:    "cash",
		}, "session-1")

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("guard miss reverses the point adjustment", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
		m.drawerSvc.EXPECT().FindOpen(gomock.Any(), "branch-1", "test-user-id").Return(drawer, nil)
		m.customer.EXPECT().AdjustPoints(gomock.Any(), "customer-1", int64(-143), "test-user-id").Return(int64(1), nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.customer.EXPECT().AdjustPoints(gomock.Any(), "customer-1", int64(143), "test-user-id").Return(int64(1), nil)

		_, err := svc.Close(testCtx(), dto.CloseSessionRequest{
			PointsRedeemed: 150,
			PaymentMode:    "cash",
		}, "session-1")

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("extension landing mid-settlement misses the amount guard", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
		m.drawerSvc.EXPECT().FindOpen(gomock.Any(), "branch-1", "test-user-id").Return(drawer, nil)
		m.customer.EXPECT().AdjustPoints(gomock.Any(), "customer-1", int64(-143), "test-user-id").Return(int64(1), nil)
		m.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ map[string]any, filter gDto.FilterGroup) (int64, error) {
				pinned := false
				for _, f := range filter.Filters {
					if flt, ok := f.(gDto.Filter); ok && flt.Field == model.FieldSessionAmount {
						pinned = assert.Equal(t, int64(300), flt.Value)
					}
				}
				assert.True(t, pinned, "close guard must pin the session amount read at settlement")

				// A concurrent extension moved the row to 450, so the
				// guarded update matches nothing.
				return 0, nil
			})
		m.customer.EXPECT().AdjustPoints(gomock.Any(), "customer-1", int64(143), "test-user-id").Return(int64(1), nil)

		_, err := svc.Close(testCtx(), dto.CloseSessionRequest{
			PointsRedeemed: 150,
			PaymentMode:    "cash",
		}, "session-1")

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("upi settlement skips the drawer", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSession(), nil)
		m.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
		m.customer.EXPECT().AdjustPoints(gomock.Any(), "customer-1", int64(15), "test-user-id").Return(int64(1), nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.deviceSvc.EXPECT().Release(gomock.Any(), "device-a").Return(nil)
		m.kafka.EXPECT().SendMessages(gomock.Any(), "arcade.settlements", gomock.Any()).Return(nil)

		res, err := svc.Close(testCtx(), dto.CloseSessionRequest{
			PaymentMode: "upi",
		}, "session-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(300), res.TotalAmount)
		assert.Equal(t, int64(300), res.Split.UPI)
		assert.Equal(t, int64(0), res.Split.Cash)
		assert.Equal(t, int64(15), res.GGPointsEarned)

		time.Sleep(10 * time.Millisecond)
	})
}
