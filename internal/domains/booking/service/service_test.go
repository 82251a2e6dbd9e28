package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arcade/config"
	"arcade/infras/otel/mocks"
	bookingMocks "arcade/internal/domains/booking/mocks"
	"arcade/internal/domains/booking/model"
	"arcade/internal/domains/booking/model/dto"
	"arcade/internal/domains/booking/service"
	customerMocks "arcade/internal/domains/customer/mocks"
	cacheMocks "arcade/shared/cache/mocks"
	"arcade/shared/constant"
	"arcade/shared/daterange"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/timezone"
)

func newBookingService(ctrl *gomock.Controller) (service.AdvanceBooking, *bookingMocks.MockAdvanceBooking, *customerMocks.MockCustomer, *cacheMocks.MockRedisCache) {
	mockRepo := bookingMocks.NewMockAdvanceBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCustomerRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockCustomerRepo, mockCache
}

func bookingCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCustomerRepo, _ := newBookingService(ctrl)

	t.Run("successful creation", func(t *testing.T) {
		mockCustomerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(bookingCtx(), dto.CreateBookingRequest{
			CustomerID:   "customer-1",
			BranchID:     "branch-1",
			VisitingTime: timezone.Now().Add(24 * time.Hour),
			PlayerCount:  2,
			Note:         "birthday group",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusActive, res.Status)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("past visiting time is rejected", func(t *testing.T) {
		_, err := svc.Create(bookingCtx(), dto.CreateBookingRequest{
			CustomerID:   "customer-1",
			BranchID:     "branch-1",
			VisitingTime: timezone.Now().Add(-time.Hour),
			PlayerCount:  2,
		})

		assert.Error(t, err)
	})

	t.Run("unknown customer is rejected", func(t *testing.T) {
		mockCustomerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(bookingCtx(), dto.CreateBookingRequest{
			CustomerID:   "missing",
			BranchID:     "branch-1",
			VisitingTime: timezone.Now().Add(24 * time.Hour),
			PlayerCount:  2,
		})

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newBookingService(ctrl)

	t.Run("lists bookings inside the window", func(t *testing.T) {
		window := daterange.Today(timezone.Now())

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.AdvanceBooking{
				{
					ID:           "booking-1",
					CustomerID:   "customer-1",
					BranchID:     "branch-1",
					VisitingTime: window.Start.Add(10 * time.Hour),
					PlayerCount:  2,
					Status:       model.StatusActive,
				},
			}, nil)

		res, err := svc.GetAll(bookingCtx(), gDto.QueryParams{Page: 1, Limit: 10}, "branch-1", window)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("empty branch lists across all branches", func(t *testing.T) {
		window := daterange.Today(timezone.Now())

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.AdvanceBooking, error) {
				for _, f := range filter.Filters {
					if flt, ok := f.(gDto.Filter); ok {
						assert.NotEqual(t, model.FieldBranchID, flt.Field)
					}
				}

				return []model.AdvanceBooking{
					{
						ID:           "booking-1",
						CustomerID:   "customer-1",
						BranchID:     "branch-1",
						VisitingTime: window.Start.Add(10 * time.Hour),
						PlayerCount:  2,
						Status:       model.StatusActive,
					},
					{
						ID:           "booking-2",
						CustomerID:   "customer-2",
						BranchID:     "branch-2",
						VisitingTime: window.Start.Add(12 * time.Hour),
						PlayerCount:  4,
						Status:       model.StatusActive,
					},
				}, nil
			})

		res, err := svc.GetAll(bookingCtx(), gDto.QueryParams{Page: 1, Limit: 10}, constant.Empty, window)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Bookings, 2)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestBookingService_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newBookingService(ctrl)

	t.Run("active booking closes once", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		err := svc.Close(bookingCtx(), "booking-1")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("second close reports already closed", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Close(bookingCtx(), "booking-1")
		assert.True(t, failure.IsKind(err, failure.KindAlreadyClosed))
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Close(bookingCtx(), "missing")
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}
