package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"wander/infras/otel/mocks"
	"wander/infras/postgres"
	"wander/internal/domains/slot/model"
	"wander/internal/domains/slot/model/dto"
	"wander/internal/domains/slot/repository"
)

// reservePattern pins the reservation statement to a single guarded
// UPDATE: the capacity predicate and the increment must be in the same
// statement, with the increment bound to the same quantity as the
// predicate.
const reservePattern = `(?s)UPDATE time_slots.*SET booked_count = booked_count \+ \$1.*WHERE experience_id = \$2.*AND slot_date = \$3.*AND time_slot = \$4.*AND booked_count \+ \$5 <= max_capacity.*RETURNING`

func setupRepository(t *testing.T) (sqlmock.Sqlmock, repository.Slot) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, repository.New(conn, mocks.NewOtel())
}

func TestSlotRepository_ReserveCapacity(t *testing.T) {
	t.Run("increments within capacity and returns the updated row", func(t *testing.T) {
		mock, repo := setupRepository(t)

		rows := sqlmock.NewRows([]string{"id", "experience_id", "slot_date", "time_slot", "max_capacity", "booked_count"}).
			AddRow("slot-1", "exp-1", "2026-09-01", "07:00 am", 10, 10)

		mock.ExpectPrepare(reservePattern).
			ExpectQuery().
			WithArgs(2, "exp-1", "2026-09-01", "07:00 am", 2).
			WillReturnRows(rows)

		slot, err := repo.ReserveCapacity(context.Background(), "exp-1", "2026-09-01", "07:00 am", 2)

		assert.NoError(t, err)
		assert.Equal(t, 10, slot.BookedCount)
		assert.Equal(t, 0, slot.SlotsLeft())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero matched rows maps to ErrSlotFull", func(t *testing.T) {
		mock, repo := setupRepository(t)

		mock.ExpectPrepare(reservePattern).
			ExpectQuery().
			WithArgs(3, "exp-1", "2026-09-01", "07:00 am", 3).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.ReserveCapacity(context.Background(), "exp-1", "2026-09-01", "07:00 am", 3)

		assert.ErrorIs(t, err, repository.ErrSlotFull)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSlotRepository_EnsureExists(t *testing.T) {
	t.Run("conflicting insert is swallowed", func(t *testing.T) {
		mock, repo := setupRepository(t)

		mock.ExpectExec(`(?s)INSERT INTO time_slots.*ON CONFLICT \(experience_id, slot_date, time_slot\) DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		slot := dto.NewSlot("exp-1", "2026-09-01", "07:00 am", model.DefaultSlotCapacity)

		assert.NoError(t, repo.EnsureExists(context.Background(), slot))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
