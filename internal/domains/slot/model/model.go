package model

import (
	"fmt"

	"wander/shared/model"
)

const (
	TableName  = "time_slots"
	EntityName = "slot"

	FieldID           = "id"
	FieldExperienceID = "experience_id"
	FieldSlotDate     = "slot_date"
	FieldTimeSlot     = "time_slot"
	FieldMaxCapacity  = "max_capacity"
	FieldBookedCount  = "booked_count"
)

// DefaultSlotCapacity is used when a slot is created lazily and no
// definition overrides the capacity.
const DefaultSlotCapacity = 10

type Slot struct {
	ID           string `db:"id"`
	ExperienceID string `db:"experience_id"`
	SlotDate     string `db:"slot_date"`
	TimeSlot     string `db:"time_slot"`
	MaxCapacity  int    `db:"max_capacity"`
	BookedCount  int    `db:"booked_count"`
	model.Metadata
}

// SlotsLeft returns the remaining capacity, floored at zero.
func (s Slot) SlotsLeft() int {
	left := s.MaxCapacity - s.BookedCount
	if left < 0 {
		return 0
	}

	return left
}

// TimeSlotDefinition describes one bookable time slot of the day.
type TimeSlotDefinition struct {
	Time     string
	Label    string
	Capacity int
}

// AllowedTimeSlots returns the fixed daily schedule every experience
// is bookable in, in display order.
func AllowedTimeSlots() []TimeSlotDefinition {
	return []TimeSlotDefinition{
		{Time: "07:00 am", Label: "07:00 am", Capacity: DefaultSlotCapacity},
		{Time: "09:00 am", Label: "09:00 am", Capacity: DefaultSlotCapacity},
		{Time: "11:00 am", Label: "11:00 am", Capacity: DefaultSlotCapacity},
		{Time: "01:00 pm", Label: "01:00 pm", Capacity: DefaultSlotCapacity},
	}
}

func IsAllowedTimeSlot(timeSlot string) bool {
	for _, def := range AllowedTimeSlots() {
		if def.Time == timeSlot {
			return true
		}
	}

	return false
}

func TimeSlotDefinitionFor(timeSlot string) (TimeSlotDefinition, bool) {
	for _, def := range AllowedTimeSlots() {
		if def.Time == timeSlot {
			return def, true
		}
	}

	return TimeSlotDefinition{}, false
}

// CapacityError is returned when a reservation asks for more seats
// than the slot has left.
type CapacityError struct {
	Available int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("not enough slots available: %d available, %d requested", e.Available, e.Requested)
}
