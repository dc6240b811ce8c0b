package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"wander/config"
	"wander/infras/kafka"
	"wander/infras/otel"
	"wander/internal/domains/booking/model"
	"wander/internal/domains/booking/model/dto"
	"wander/internal/domains/booking/repository"
	"wander/internal/domains/promo"
	"wander/shared"
	"wander/shared/cache"
	"wander/shared/constant"
	"wander/shared/failure"

	expModel "wander/internal/domains/experience/model"
	expRepo "wander/internal/domains/experience/repository"
	slotModel "wander/internal/domains/slot/model"
	slotService "wander/internal/domains/slot/service"
	userModel "wander/internal/domains/user/model"
	userRepo "wander/internal/domains/user/repository"
	gDto "wander/shared/dto"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	expRepo  expRepo.Experience
	userRepo userRepo.User
	slotSvc  slotService.Slot
	kafka    kafka.Client
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	expRepo expRepo.Experience,
	userRepo userRepo.User,
	slotSvc slotService.Slot,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		expRepo:  expRepo,
		userRepo: userRepo,
		slotSvc:  slotSvc,
		kafka:    kafkaClient,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create runs the whole booking flow: look up the experience, guard
// against a duplicate active booking for the same user and slot, apply
// the promo code, reserve seats in the slot ledger and store the
// booking as confirmed. The seat reservation is the step that prevents
// overbooking under concurrency, so it runs before the insert. A
// *model.CapacityError from the ledger propagates unwrapped so callers
// can report what is still available.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Reject an unknown time slot before touching storage.
	if !slotModel.IsAllowedTimeSlot(req.TimeSlot) {
		return res, failure.BadRequestFromString("invalid time slot") // nolint:wrapcheck
	}

	experience, err := s.expRepo.Get(ctx, shared.FilterByID(req.ExperienceID, expModel.FieldID, expModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get experience")

		return res, fmt.Errorf("failed to get experience: %w", err)
	}

	if experience.ID == constant.Empty {
		return res, failure.NotFound("experience not found") // nolint:wrapcheck
	}

	userExists, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	dateStr, err := req.ParseBookingDate()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking date: %v", err)) // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, s.duplicateFilter(req, dateStr))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for duplicate booking")

		return res, fmt.Errorf("failed to check for duplicate booking: %w", err)
	}

	if duplicate {
		return res, failure.Conflict("you already have a booking for this experience at this time") // nolint:wrapcheck
	}

	subtotal := experience.Price * float64(req.NumberOfPeople)

	discount, err := promo.Apply(req.PromoCode, subtotal)
	if err != nil {
		return res, err
	}

	if _, err = s.slotSvc.Reserve(ctx, req.ExperienceID, dateStr, req.TimeSlot, req.NumberOfPeople); err != nil {
		return res, err
	}

	booking := req.ToModel(dateStr, discount, subtotal-discount)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishConfirmed(c, booking)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)
	res.ExperienceTitle = experience.Title
	res.ExperienceLocation = experience.Location

	return res, nil
}

func (s *serviceImpl) duplicateFilter(req dto.CreateBookingRequest, dateStr string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.UserID,
			},
			gDto.Filter{
				Field:    model.FieldExperienceID,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.ExperienceID,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    dateStr,
			},
			gDto.Filter{
				Field:    model.FieldTimeSlot,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.TimeSlot,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses(),
			},
		},
	}
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking) {
	topic := s.cfg.Kafka.Topics.BookingConfirmed

	message := kafka.Message{
		Key:   booking.ID,
		Value: dto.NewBookingConfirmedEvent(booking),
	}

	if err := s.kafka.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to publish booking confirmed event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return total, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}
