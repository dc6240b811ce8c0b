package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wander/infras/otel"
	"wander/infras/postgres"
	"wander/internal/domains/slot/model"
	"wander/shared/constant"
	"wander/shared/logger"

	gDto "wander/shared/dto"
	gRepo "wander/shared/repository"
)

// ErrSlotFull signals that the guarded increment matched no row, i.e.
// the slot does not have enough remaining capacity.
var ErrSlotFull = errors.New("slot capacity exceeded")

type Slot interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Slot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	EnsureExists(ctx context.Context, slot model.Slot) error
	ReserveCapacity(ctx context.Context, experienceID, slotDate, timeSlot string, quantity int) (model.Slot, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Slot]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Slot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// EnsureExists inserts the slot row if it is not there yet. A concurrent
// insert of the same (experience, date, time slot) key is swallowed by
// ON CONFLICT DO NOTHING, so both callers proceed against one row.
func (repo *repositoryImpl) EnsureExists(ctx context.Context, slot model.Slot) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.EnsureExists", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := `INSERT INTO time_slots
		(id, experience_id, slot_date, time_slot, max_capacity, booked_count, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :experience_id, :slot_date, :time_slot, :max_capacity, :booked_count, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (experience_id, slot_date, time_slot) DO NOTHING`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.NamedExecContext(ctx, query, slot)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to ensure slot exists (%s): %w", model.EntityName, err)
	}

	return nil
}

// ReserveCapacity atomically increments booked_count by quantity, but
// only when the result stays within max_capacity. The capacity check and
// the increment are one statement, so concurrent reservations serialize
// on the row and the count can never exceed max_capacity. A zero-row
// result is reported as ErrSlotFull.
func (repo *repositoryImpl) ReserveCapacity(ctx context.Context, experienceID, slotDate, timeSlot string, quantity int) (slot model.Slot, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ReserveCapacity", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := `UPDATE time_slots
		SET booked_count = booked_count + :quantity, modified_at = now()
		WHERE experience_id = :experience_id
		  AND slot_date = :slot_date
		  AND time_slot = :time_slot
		  AND booked_count + :quantity <= max_capacity
		RETURNING id, experience_id, slot_date, time_slot, max_capacity, booked_count`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"experience_id": experienceID,
		"slot_date":     slotDate,
		"time_slot":     timeSlot,
		"quantity":      quantity,
	}

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return slot, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &slot, args)
	if errors.Is(err, sql.ErrNoRows) {
		return slot, ErrSlotFull
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return slot, fmt.Errorf("failed to reserve slot capacity (%s): %w", model.EntityName, err)
	}

	return slot, nil
}
