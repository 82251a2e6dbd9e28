package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arcade/config"
	"arcade/infras/otel/mocks"
	deviceMocks "arcade/internal/domains/device/mocks"
	"arcade/internal/domains/device/model"
	"arcade/internal/domains/device/service"
	cacheMocks "arcade/shared/cache/mocks"
	"arcade/shared/constant"
	"arcade/shared/failure"
)

func newDeviceService(ctrl *gomock.Controller) (service.Device, *deviceMocks.MockDevice, *cacheMocks.MockRedisCache) {
	mockRepo := deviceMocks.NewMockDevice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockCache
}

func deviceCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestDeviceService_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newDeviceService(ctrl)

	t.Run("open device is reserved", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		err := svc.Reserve(deviceCtx(), "device-a")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("guard miss on a known device is a conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Reserve(deviceCtx(), "device-a")
		assert.True(t, failure.IsKind(err, failure.KindDeviceUnavailable))
	})

	t.Run("guard miss on an unknown device is not found", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Reserve(deviceCtx(), "missing")
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestDeviceService_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newDeviceService(ctrl)

	t.Run("in-use device goes back to open", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		err := svc.Release(deviceCtx(), "device-a")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("idle device cannot be released", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Release(deviceCtx(), "device-a")
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}

func TestDeviceService_MarkActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newDeviceService(ctrl)

	t.Run("booked device activates", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		err := svc.MarkActive(deviceCtx(), "device-a")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("open device has no pending reservation", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.MarkActive(deviceCtx(), "device-a")
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}

func TestDeviceService_FindAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newDeviceService(ctrl)

	t.Run("returns open devices of the requested type", func(t *testing.T) {
		devices := []model.Device{
			{ID: "device-a", BranchID: "branch-1", Name: "PS5 Bay 1", Type: "console", MaxPlayers: 4, Status: model.StatusOpen},
			{ID: "device-b", BranchID: "branch-1", Name: "PS5 Bay 2", Type: "console", MaxPlayers: 4, Status: model.StatusOpen},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(devices, nil)

		res, err := svc.FindAvailable(deviceCtx(), "branch-1", "console")
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "device-a", res[0].ID)
	})
}
