package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wander/internal/domains/slot/model"
)

func TestSlotsLeft(t *testing.T) {
	tests := []struct {
		name string
		slot model.Slot
		want int
	}{
		{
			name: "empty slot",
			slot: model.Slot{MaxCapacity: 10, BookedCount: 0},
			want: 10,
		},
		{
			name: "partially booked",
			slot: model.Slot{MaxCapacity: 10, BookedCount: 8},
			want: 2,
		},
		{
			name: "full slot",
			slot: model.Slot{MaxCapacity: 10, BookedCount: 10},
			want: 0,
		},
		{
			name: "overbooked never goes negative",
			slot: model.Slot{MaxCapacity: 10, BookedCount: 12},
			want: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.slot.SlotsLeft())
		})
	}
}

func TestAllowedTimeSlots(t *testing.T) {
	defs := model.AllowedTimeSlots()

	assert.Len(t, defs, 4)
	assert.Equal(t, "07:00 am", defs[0].Time)
	assert.Equal(t, "09:00 am", defs[1].Time)
	assert.Equal(t, "11:00 am", defs[2].Time)
	assert.Equal(t, "01:00 pm", defs[3].Time)

	for _, def := range defs {
		assert.Equal(t, def.Time, def.Label)
		assert.Equal(t, model.DefaultSlotCapacity, def.Capacity)
	}
}

func TestIsAllowedTimeSlot(t *testing.T) {
	assert.True(t, model.IsAllowedTimeSlot("07:00 am"))
	assert.True(t, model.IsAllowedTimeSlot("01:00 pm"))
	assert.False(t, model.IsAllowedTimeSlot("03:00 pm"))
	assert.False(t, model.IsAllowedTimeSlot(""))
}

func TestCapacityError(t *testing.T) {
	err := &model.CapacityError{Available: 2, Requested: 3}

	assert.EqualError(t, err, "not enough slots available: 2 available, 3 requested")
}
