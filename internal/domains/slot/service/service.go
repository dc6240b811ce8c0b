package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"wander/config"
	"wander/infras/otel"
	"wander/internal/domains/slot/model"
	"wander/internal/domains/slot/model/dto"
	"wander/internal/domains/slot/repository"
	"wander/shared"
	"wander/shared/constant"
	"wander/shared/failure"

	expModel "wander/internal/domains/experience/model"
	expRepo "wander/internal/domains/experience/repository"
	gDto "wander/shared/dto"
)

type Slot interface {
	Reserve(ctx context.Context, experienceID, slotDate, timeSlot string, quantity int) (model.Slot, error)
	Availability(ctx context.Context, experienceID, date string) ([]dto.SlotView, error)
	Check(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
}

type serviceImpl struct {
	repo    repository.Slot
	expRepo expRepo.Experience
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Slot, expRepo expRepo.Experience, cfg *config.Config, otel otel.Otel) Slot {
	return &serviceImpl{
		repo:    repo,
		expRepo: expRepo,
		cfg:     cfg,
		otel:    otel,
	}
}

func slotKeyFilter(experienceID, slotDate, timeSlot string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldExperienceID,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    experienceID,
			},
			gDto.Filter{
				Field:    model.FieldSlotDate,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    slotDate,
			},
			gDto.Filter{
				Field:    model.FieldTimeSlot,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    timeSlot,
			},
		},
	}
}

// Reserve takes quantity seats from the slot, creating the slot row
// lazily on first touch. The capacity check runs inside the database,
// so concurrent reservations never push booked_count past max_capacity.
// When capacity runs out the returned error is a *model.CapacityError
// carrying what is still available.
func (s *serviceImpl) Reserve(ctx context.Context, experienceID, slotDate, timeSlot string, quantity int) (res model.Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if quantity < 1 {
		return res, failure.BadRequestFromString("quantity must be at least 1") // nolint:wrapcheck
	}

	def, ok := model.TimeSlotDefinitionFor(timeSlot)
	if !ok {
		return res, failure.BadRequestFromString("invalid time slot") // nolint:wrapcheck
	}

	if err = s.repo.EnsureExists(ctx, dto.NewSlot(experienceID, slotDate, timeSlot, def.Capacity)); err != nil {
		log.Error().Err(err).Msg("failed to ensure slot exists")

		return res, fmt.Errorf("failed to ensure slot exists: %w", err)
	}

	res, err = s.repo.ReserveCapacity(ctx, experienceID, slotDate, timeSlot, quantity)
	if errors.Is(err, repository.ErrSlotFull) {
		slot, getErr := s.repo.Get(ctx, slotKeyFilter(experienceID, slotDate, timeSlot))
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to read slot after reservation failure")

			return res, fmt.Errorf("failed to read slot after reservation failure: %w", getErr)
		}

		return res, &model.CapacityError{
			Available: slot.SlotsLeft(),
			Requested: quantity,
		}
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to reserve slot capacity")

		return res, fmt.Errorf("failed to reserve slot capacity: %w", err)
	}

	return res, nil
}

// Availability lists every allowed time slot of the day with live
// counts. Slots that were never booked have no row yet and fall back to
// their default capacity. The counts are read straight from the
// database so a reservation is visible immediately.
func (s *serviceImpl) Availability(ctx context.Context, experienceID, date string) (res []dto.SlotView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	expExists, err := s.expRepo.Exist(ctx, shared.FilterByID(experienceID, expModel.FieldID, expModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if experience exists")

		return res, fmt.Errorf("failed to check if experience exists: %w", err)
	}

	if !expExists {
		return res, failure.NotFound("experience not found") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldExperienceID,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    experienceID,
			},
			gDto.Filter{
				Field:    model.FieldSlotDate,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
			},
		},
	}

	slots, err := s.repo.GetAll(ctx, gDto.QueryParams{Limit: len(model.AllowedTimeSlots())}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	byTimeSlot := make(map[string]model.Slot, len(slots))
	for _, slot := range slots {
		byTimeSlot[slot.TimeSlot] = slot
	}

	res = make([]dto.SlotView, len(model.AllowedTimeSlots()))
	for i, def := range model.AllowedTimeSlots() {
		if slot, ok := byTimeSlot[def.Time]; ok {
			res[i].FromModel(def, slot)

			continue
		}

		res[i].FromDefinition(def)
	}

	return res, nil
}

// Check answers whether quantity seats fit into the slot without
// reserving anything. A missing row means nobody booked yet and the
// full default capacity is free.
func (s *serviceImpl) Check(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Quantity < 1 {
		return res, failure.BadRequestFromString("quantity must be at least 1") // nolint:wrapcheck
	}

	def, ok := model.TimeSlotDefinitionFor(req.TimeSlot)
	if !ok {
		return res, failure.BadRequestFromString("invalid time slot") // nolint:wrapcheck
	}

	slot, err := s.repo.Get(ctx, slotKeyFilter(req.ExperienceID, req.Date, req.TimeSlot))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return res, fmt.Errorf("failed to get slot: %w", err)
	}

	slotsLeft := def.Capacity
	if slot.ID != constant.Empty {
		slotsLeft = slot.SlotsLeft()
	}

	return dto.CheckAvailabilityResponse{
		Available: slotsLeft >= req.Quantity,
		SlotsLeft: slotsLeft,
		Requested: req.Quantity,
	}, nil
}
