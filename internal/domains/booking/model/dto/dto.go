package dto

import (
	"time"

	"github.com/google/uuid"

	"wander/internal/domains/booking/model"
	"wander/shared"
	"wander/shared/constant"
	"wander/shared/timezone"

	gDto "wander/shared/dto"
	gModel "wander/shared/model"
)

type CreateBookingRequest struct {
	UserID         string `json:"userId"         validate:"required"`
	ExperienceID   string `json:"experienceId"   validate:"required"`
	BookingDate    string `json:"bookingDate"    validate:"required"`
	TimeSlot       string `json:"timeSlot"       validate:"required"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"required,min=1"`
	// TotalPrice is required on the wire but the server recomputes the
	// final price from the experience and promo code.
	TotalPrice float64 `json:"totalPrice" validate:"required,gt=0"`
	PromoCode  string  `json:"promoCode"  validate:"omitempty,max=20"`
}

// ParseBookingDate accepts a calendar date or a full timestamp and
// normalizes either to the calendar day the booking lands on, as a
// YYYY-MM-DD string. Timestamps are read in the app timezone so the
// day boundary matches the slot ledger's.
func (c *CreateBookingRequest) ParseBookingDate() (string, error) {
	if date, err := time.ParseInLocation(constant.CalendarDateFormat, c.BookingDate, timezone.GetLocation()); err == nil {
		return date.Format(constant.CalendarDateFormat), nil
	}

	parsed, err := time.Parse(constant.DateFormat, c.BookingDate)
	if err != nil {
		return constant.Empty, err
	}

	return parsed.In(timezone.GetLocation()).Format(constant.CalendarDateFormat), nil
}

func (c *CreateBookingRequest) ToModel(bookingDate string, discount, totalPrice float64) model.Booking {
	return model.Booking{
		ID:             uuid.NewString(),
		UserID:         c.UserID,
		ExperienceID:   c.ExperienceID,
		BookingDate:    bookingDate,
		TimeSlot:       c.TimeSlot,
		NumberOfPeople: c.NumberOfPeople,
		PromoCode:      c.PromoCode,
		Discount:       discount,
		TotalPrice:     totalPrice,
		Status:         model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.UserID,
			ModifiedBy: c.UserID,
		},
	}
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"userId"`
	ExperienceID       string  `json:"experienceId"`
	BookingDate        string  `json:"bookingDate"`
	TimeSlot           string  `json:"timeSlot"`
	NumberOfPeople     int     `json:"numberOfPeople"`
	PromoCode          string  `json:"promoCode,omitempty"`
	Discount           float64 `json:"discount"`
	TotalPrice         float64 `json:"totalPrice"`
	Status             string  `json:"status"`
	UserFullName       string  `json:"userFullName,omitempty"`
	UserEmail          string  `json:"userEmail,omitempty"`
	ExperienceTitle    string  `json:"experienceTitle,omitempty"`
	ExperienceLocation string  `json:"experienceLocation,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.ExperienceID = model.ExperienceID
	r.BookingDate = model.BookingDate
	r.TimeSlot = model.TimeSlot
	r.NumberOfPeople = model.NumberOfPeople
	r.PromoCode = model.PromoCode
	r.Discount = model.Discount
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.UserFullName = model.UserFullName
	r.UserEmail = model.UserEmail
	r.ExperienceTitle = model.ExperienceTitle
	r.ExperienceLocation = model.ExperienceLocation
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingConfirmedEvent is the message published after a booking is
// stored.
type BookingConfirmedEvent struct {
	BookingID      string  `json:"bookingId"`
	UserID         string  `json:"userId"`
	ExperienceID   string  `json:"experienceId"`
	BookingDate    string  `json:"bookingDate"`
	TimeSlot       string  `json:"timeSlot"`
	NumberOfPeople int     `json:"numberOfPeople"`
	TotalPrice     float64 `json:"totalPrice"`
}

func NewBookingConfirmedEvent(booking model.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		ExperienceID:   booking.ExperienceID,
		BookingDate:    booking.BookingDate,
		TimeSlot:       booking.TimeSlot,
		NumberOfPeople: booking.NumberOfPeople,
		TotalPrice:     booking.TotalPrice,
	}
}
