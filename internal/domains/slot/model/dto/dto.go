package dto

import (
	"wander/internal/domains/slot/model"
	"wander/shared/timezone"

	"github.com/google/uuid"

	gModel "wander/shared/model"
)

// NewSlot builds a fresh slot row for the lazy create path.
func NewSlot(experienceID, slotDate, timeSlot string, maxCapacity int) model.Slot {
	return model.Slot{
		ID:           uuid.NewString(),
		ExperienceID: experienceID,
		SlotDate:     slotDate,
		TimeSlot:     timeSlot,
		MaxCapacity:  maxCapacity,
		BookedCount:  0,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type CheckAvailabilityRequest struct {
	ExperienceID string `json:"experienceId" validate:"required"`
	Date         string `json:"date"         validate:"required"`
	TimeSlot     string `json:"timeSlot"     validate:"required"`
	Quantity     int    `json:"quantity"     validate:"required,min=1"`
}

type CheckAvailabilityResponse struct {
	Available bool `json:"available"`
	SlotsLeft int  `json:"slotsLeft"`
	Requested int  `json:"requested"`
}

type SlotView struct {
	Time        string `json:"time"`
	Label       string `json:"label"`
	MaxCapacity int    `json:"maxCapacity"`
	BookedCount int    `json:"bookedCount"`
	SlotsLeft   int    `json:"slotsLeft"`
	Available   bool   `json:"available"`
}

// FromDefinition renders the default view for a slot nobody booked yet.
func (v *SlotView) FromDefinition(def model.TimeSlotDefinition) {
	v.Time = def.Time
	v.Label = def.Label
	v.MaxCapacity = def.Capacity
	v.BookedCount = 0
	v.SlotsLeft = def.Capacity
	v.Available = true
}

// FromModel renders the view for a slot that has a persisted row.
func (v *SlotView) FromModel(def model.TimeSlotDefinition, slot model.Slot) {
	v.Time = def.Time
	v.Label = def.Label
	v.MaxCapacity = slot.MaxCapacity
	v.BookedCount = slot.BookedCount
	v.SlotsLeft = slot.SlotsLeft()
	v.Available = slot.SlotsLeft() > 0
}
