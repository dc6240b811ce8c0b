package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wander/config"
	"wander/infras/otel/mocks"
	"wander/internal/domains/booking/model"
	"wander/internal/domains/booking/model/dto"
	"wander/internal/domains/booking/service"
	"wander/shared/failure"

	kafkaMocks "wander/infras/kafka/mocks"
	bookingMocks "wander/internal/domains/booking/mocks"
	expMocks "wander/internal/domains/experience/mocks"
	expModel "wander/internal/domains/experience/model"
	slotModel "wander/internal/domains/slot/model"
	slotSvcMocks "wander/internal/domains/slot/service/mocks"
	userMocks "wander/internal/domains/user/mocks"
	cacheMocks "wander/shared/cache/mocks"
	gDto "wander/shared/dto"
)

var errCacheMiss = errors.New("cache miss")

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockExpRepo := expMocks.NewMockExperience(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSlotSvc := slotSvcMocks.NewMockSlot(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockExpRepo, mockUserRepo, mockSlotSvc, mockKafka, cfg, mockCache, mockOtel)

	experience := expModel.Experience{
		ID:       "exp-1",
		Title:    "Sunrise Hike",
		Location: "Mount Batur",
		Price:    50,
	}

	baseReq := dto.CreateBookingRequest{
		UserID:         "user-1",
		ExperienceID:   "exp-1",
		BookingDate:    "2026-09-01",
		TimeSlot:       "07:00 am",
		NumberOfPeople: 4,
		TotalPrice:     200,
	}

	t.Run("duplicate guard and stored row share the calendar-day key", func(t *testing.T) {
		req := baseReq
		req.BookingDate = "2026-09-01T10:30:00+07:00"

		var guardDate, storedDate string

		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				for _, raw := range filter.Filters {
					if f, ok := raw.(gDto.Filter); ok && f.Field == model.FieldBookingDate {
						guardDate, _ = f.Value.(string)
					}
				}

				return false, nil
			})
		mockSlotSvc.EXPECT().
			Reserve(gomock.Any(), "exp-1", gomock.Any(), "07:00 am", 4).
			Return(slotModel.Slot{ID: "slot-1", MaxCapacity: 10, BookedCount: 4}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				storedDate = booking.BookingDate

				return nil
			})

		_, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-01", guardDate)
		assert.Equal(t, guardDate, storedDate)
	})

	t.Run("invalid time slot is rejected before any storage access", func(t *testing.T) {
		req := baseReq
		req.TimeSlot = "08:00 pm"

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("successful booking with promo code", func(t *testing.T) {
		req := baseReq
		req.PromoCode = "SAVE10"

		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockSlotSvc.EXPECT().
			Reserve(gomock.Any(), "exp-1", "2026-09-01", "07:00 am", 4).
			Return(slotModel.Slot{ID: "slot-1", MaxCapacity: 10, BookedCount: 4}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Equal(t, "2026-09-01", res.BookingDate)
		assert.Equal(t, float64(20), res.Discount)
		assert.Equal(t, float64(180), res.TotalPrice)
		assert.Equal(t, "Sunrise Hike", res.ExperienceTitle)
	})

	t.Run("unknown experience", func(t *testing.T) {
		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(expModel.Experience{}, nil)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("invalid booking date", func(t *testing.T) {
		req := baseReq
		req.BookingDate = "not-a-date"

		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("duplicate active booking", func(t *testing.T) {
		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("invalid promo code", func(t *testing.T) {
		req := baseReq
		req.PromoCode = "NOPE"

		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("capacity exhausted surfaces available seats", func(t *testing.T) {
		req := baseReq
		req.NumberOfPeople = 3

		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockSlotSvc.EXPECT().
			Reserve(gomock.Any(), "exp-1", "2026-09-01", "07:00 am", 3).
			Return(slotModel.Slot{}, &slotModel.CapacityError{Available: 2, Requested: 3})

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)

		var capErr *slotModel.CapacityError
		assert.ErrorAs(t, err, &capErr)
		assert.Equal(t, 2, capErr.Available)
		assert.Equal(t, 3, capErr.Requested)
	})

	t.Run("insert error", func(t *testing.T) {
		mockExpRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(experience, nil)
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockSlotSvc.EXPECT().
			Reserve(gomock.Any(), "exp-1", "2026-09-01", "07:00 am", 4).
			Return(slotModel.Slot{ID: "slot-1"}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockExpRepo := expMocks.NewMockExperience(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSlotSvc := slotSvcMocks.NewMockSlot(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockExpRepo, mockUserRepo, mockSlotSvc, mockKafka, cfg, mockCache, mockOtel)

	t.Run("successful get all with joined fields", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{
					ID:              "booking-1",
					UserID:          "user-1",
					ExperienceID:    "exp-1",
					TimeSlot:        "07:00 am",
					NumberOfPeople:  2,
					Status:          model.StatusConfirmed,
					UserFullName:    "Ayu Lestari",
					ExperienceTitle: "Sunrise Hike",
				},
			}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "Ayu Lestari", res.Bookings[0].UserFullName)
		assert.Equal(t, "Sunrise Hike", res.Bookings[0].ExperienceTitle)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockExpRepo := expMocks.NewMockExperience(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSlotSvc := slotSvcMocks.NewMockSlot(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockExpRepo, mockUserRepo, mockSlotSvc, mockKafka, cfg, mockCache, mockOtel)

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", Status: model.StatusConfirmed}, nil)

		res, err := svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})
}
