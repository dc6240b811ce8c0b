package model

import (
	"wander/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldExperienceID   = "experience_id"
	FieldBookingDate    = "booking_date"
	FieldTimeSlot       = "time_slot"
	FieldNumberOfPeople = "number_of_people"
	FieldPromoCode      = "promo_code"
	FieldDiscount       = "discount"
	FieldTotalPrice     = "total_price"
	FieldStatus         = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses are the statuses that hold a seat. Only these count
// toward the duplicate-booking guard.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}

type Booking struct {
	ID             string  `db:"id"`
	UserID         string  `db:"user_id"`
	ExperienceID   string  `db:"experience_id"`
	BookingDate    string  `db:"booking_date"`
	TimeSlot       string  `db:"time_slot"`
	NumberOfPeople int     `db:"number_of_people"`
	PromoCode      string  `db:"promo_code"`
	Discount       float64 `db:"discount"`
	TotalPrice     float64 `db:"total_price"`
	Status         string  `db:"status"`

	UserFullName       string `db:"user_full_name"       table:"users"       column:"full_name"`
	UserEmail          string `db:"user_email"           table:"users"       column:"email"`
	ExperienceTitle    string `db:"experience_title"     table:"experiences" column:"title"`
	ExperienceLocation string `db:"experience_location"  table:"experiences" column:"location"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN users ON bookings.user_id = users.id LEFT JOIN experiences ON bookings.experience_id = experiences.id"
}
