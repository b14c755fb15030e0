package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pms/config"
	"pms/infras/otel/mocks"
	bookingMocks "pms/internal/domains/booking/mocks"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	"pms/internal/domains/booking/service"
	extraMocks "pms/internal/domains/extra/mocks"
	extraModel "pms/internal/domains/extra/model"
	guestMocks "pms/internal/domains/guest/mocks"
	roomMocks "pms/internal/domains/room/mocks"
	roomModel "pms/internal/domains/room/model"
	cacheMocks "pms/shared/cache/mocks"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	gModel "pms/shared/model"
	"pms/shared/timezone"
)

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	extraLine *bookingMocks.MockBookingExtra
	payment   *bookingMocks.MockPayment
	timeline  *bookingMocks.MockTimeline
	roomRepo  *roomMocks.MockRoom
	guestRepo *guestMocks.MockGuest
	extraRepo *extraMocks.MockExtra
	cache     *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		extraLine: bookingMocks.NewMockBookingExtra(ctrl),
		payment:   bookingMocks.NewMockPayment(ctrl),
		timeline:  bookingMocks.NewMockTimeline(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		extraRepo: extraMocks.NewMockExtra(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		set.repo,
		set.extraLine,
		set.payment,
		set.timeline,
		set.roomRepo,
		set.guestRepo,
		set.extraRepo,
		cfg,
		set.cache,
		mocks.NewOtel(),
		nil,
	)

	return svc, set
}

func gDtoParams() gDto.QueryParams {
	return gDto.QueryParams{Limit: 10, Page: 1}
}

func gDtoFilter() gDto.FilterGroup {
	return gDto.FilterGroup{}
}

func allowAsyncCacheOps(set bookingMockSet) {
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func testRoom(id string, price float64) roomModel.Room {
	return roomModel.Room{
		ID:           id,
		Name:         "Deluxe " + id,
		Type:         "deluxe",
		NightlyPrice: price,
		MaxAdults:    2,
		MaxChildren:  1,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func testBooking(id, status string) model.Booking {
	return model.Booking{
		ID:         id,
		RoomID:     "room-1",
		GuestID:    "guest-1",
		CheckIn:    time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
		Adults:     2,
		Status:     status,
		TotalPrice: 500,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestBookingService_SearchAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		req       dto.AvailabilityRequest
		setupMock func()
		wantErr   bool
		wantRooms int
	}{
		{
			name: "room with overlapping booking is excluded",
			req: dto.AvailabilityRequest{
				CheckIn:  "2026-01-20",
				CheckOut: "2026-01-22",
				Adults:   2,
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]roomModel.Room{testRoom("room-1", 100), testRoom("room-2", 80)}, nil)

				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{testBooking("booking-1", model.StatusConfirmed)}, nil)
			},
			wantErr:   false,
			wantRooms: 1,
		},
		{
			name: "invalid date format",
			req: dto.AvailabilityRequest{
				CheckIn:  "20-01-2026",
				CheckOut: "2026-01-22",
				Adults:   2,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check-out not after check-in",
			req: dto.AvailabilityRequest{
				CheckIn:  "2026-01-22",
				CheckOut: "2026-01-22",
				Adults:   2,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "room catalog error",
			req: dto.AvailabilityRequest{
				CheckIn:  "2026-01-20",
				CheckOut: "2026-01-22",
				Adults:   2,
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.SearchAvailability(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.Rooms, tt.wantRooms)
				assert.Equal(t, 2, result.Nights)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	baseReq := func() dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			RoomID:   "room-1",
			GuestID:  "guest-1",
			CheckIn:  "2026-01-20",
			CheckOut: "2026-01-25",
			Adults:   2,
		}
	}

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "room not found",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room not bookable",
			req:  baseReq,
			setupMock: func() {
				room := testRoom("room-1", 100)
				room.Active = false

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "capacity exceeded",
			req: func() dto.CreateBookingRequest {
				req := baseReq()
				req.Adults = 3

				return req
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", 100), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "guest not found",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", 100), nil)

				set.guestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown extra",
			req: func() dto.CreateBookingRequest {
				req := baseReq()
				req.Extras = []dto.SelectedExtraRequest{{ExtraID: "extra-missing", Quantity: 1}}

				return req
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", 100), nil)

				set.guestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.extraRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]extraModel.Extra{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "client total mismatch",
			req: func() dto.CreateBookingRequest {
				req := baseReq()
				claimed := 450.0
				req.TotalPrice = &claimed

				return req
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", 100), nil)

				set.guestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Create(ctx, tt.req())

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)
	allowAsyncCacheOps(set)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "booking-1",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, full detail from db",
			id:   "booking-1",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusConfirmed), nil)

				set.extraLine.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.BookingExtra{{ID: "line-1", BookingID: "booking-1", ExtraID: "extra-1", Quantity: 2, UnitPrice: 15, BillingMode: extraModel.BillingModePerNight}}, nil)

				set.payment.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{}, nil)

				set.timeline.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.TimelineItem{{ID: "item-1", BookingID: "booking-1", Type: model.TimelineTypeStatusChange}}, nil)
			},
			wantErr: false,
			wantID:  "booking-1",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
					assert.Equal(t, 5, result.Nights)
					assert.Len(t, result.Extras, 1)
					assert.Len(t, result.Timeline, 1)
				}
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)
	allowAsyncCacheOps(set)

	tests := []struct {
		name      string
		req       dto.UpdateStatusRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending to confirmed",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusPending), nil)

				set.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				set.timeline.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "status changed by a concurrent request",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusPending), nil)

				set.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "checked-out booking is terminal",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusCheckedOut), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "pending cannot be checked in",
			req:  dto.UpdateStatusRequest{Status: model.StatusCheckedIn},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusPending), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "booking not found",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_AddPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)
	allowAsyncCacheOps(set)

	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful payment",
			req:  dto.CreatePaymentRequest{Method: model.PaymentMethodCard, Amount: 500},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusConfirmed), nil)

				set.payment.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.payment.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.timeline.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "payment already recorded",
			req:  dto.CreatePaymentRequest{Method: model.PaymentMethodCash, Amount: 500},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusConfirmed), nil)

				set.payment.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "amount must equal booking total",
			req:  dto.CreatePaymentRequest{Method: model.PaymentMethodCard, Amount: 350},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusConfirmed), nil)

				set.payment.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.AddPayment(ctx, tt.req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)
	allowAsyncCacheOps(set)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusConfirmed), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateNotes(ctx, dto.UpdateNotesRequest{Notes: "late arrival"}, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_AddTimelineItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)
	allowAsyncCacheOps(set)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful note",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusConfirmed), nil)

				set.timeline.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "insert error",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("booking-1", model.StatusConfirmed), nil)

				set.timeline.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.AddTimelineItem(ctx, dto.CreateTimelineItemRequest{Type: model.TimelineTypeNote, Description: "guest called"}, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)
	allowAsyncCacheOps(set)

	t.Run("cache miss, successful get all", func(t *testing.T) {
		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		set.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{testBooking("booking-1", model.StatusPending)}, nil)

		result, err := svc.GetAll(context.Background(), gDtoParams(), gDtoFilter())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalData)
		assert.Len(t, result.Bookings, 1)
	})

	t.Run("count error", func(t *testing.T) {
		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		set.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), gDtoParams(), gDtoFilter())

		assert.Error(t, err)
	})
}
