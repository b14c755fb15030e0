package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pms/config"
	"pms/infras/otel/mocks"
	bookingMocks "pms/internal/domains/booking/mocks"
	roomMocks "pms/internal/domains/room/mocks"
	"pms/internal/domains/stats/service"
	cacheMocks "pms/shared/cache/mocks"
)

func TestStatsService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBookingRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
	})

	t.Run("successful aggregation", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		// new bookings, cancellations, check-ins, check-outs, occupied rooms
		counts := []int{3, 1, 2, 1, 6}
		for _, count := range counts {
			mockBookingRepo.EXPECT().
				Count(gomock.Any(), gomock.Any()).
				Return(count, nil)
		}

		mockRoomRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(8, nil)

		result, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, result.NewBookings)
		assert.Equal(t, 1, result.Cancellations)
		assert.Equal(t, 2, result.CheckIns)
		assert.Equal(t, 1, result.CheckOuts)
		assert.Equal(t, 6, result.OccupiedRooms)
		assert.Equal(t, 8, result.TotalRooms)
		assert.InDelta(t, 75.0, result.OccupancyRate, 0.001)
	})

	t.Run("no rooms leaves occupancy at zero", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil).
			Times(5)

		mockRoomRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		result, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, result.OccupancyRate)
	})

	t.Run("booking count error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.Dashboard(context.Background())

		assert.Error(t, err)
	})
}
