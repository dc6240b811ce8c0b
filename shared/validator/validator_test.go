package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wander/shared/failure"
	"wander/shared/validator"
)

type createBookingPayload struct {
	UserID         string  `json:"userId"         validate:"required"`
	ExperienceID   string  `json:"experienceId"   validate:"required"`
	BookingDate    string  `json:"bookingDate"    validate:"required"`
	TimeSlot       string  `json:"timeSlot"       validate:"required"`
	NumberOfPeople int     `json:"numberOfPeople" validate:"required,min=1"`
	TotalPrice     float64 `json:"totalPrice"     validate:"required,min=0"`
}

func TestValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		body := `{"userId":"u1","experienceId":"e1","bookingDate":"2025-10-22","timeSlot":"07:00 am","numberOfPeople":2,"totalPrice":1998}`

		payload := createBookingPayload{}
		err := validator.Validate(strings.NewReader(body), &payload)

		assert.NoError(t, err)
		assert.Equal(t, 2, payload.NumberOfPeople)
	})

	t.Run("missing required field", func(t *testing.T) {
		body := `{"userId":"u1","bookingDate":"2025-10-22","timeSlot":"07:00 am","numberOfPeople":2,"totalPrice":1998}`

		payload := createBookingPayload{}
		err := validator.Validate(strings.NewReader(body), &payload)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("zero people rejected", func(t *testing.T) {
		body := `{"userId":"u1","experienceId":"e1","bookingDate":"2025-10-22","timeSlot":"07:00 am","numberOfPeople":0,"totalPrice":1998}`

		payload := createBookingPayload{}
		err := validator.Validate(strings.NewReader(body), &payload)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		payload := createBookingPayload{}
		err := validator.Validate(strings.NewReader(`{"userId":`), &payload)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("someone@example.com", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}

func TestValidateStruct_Mimetypes(t *testing.T) {
	type imagePayload struct {
		Image string `validate:"omitempty,mimetypes=image/png image/jpeg"`
	}

	valid := imagePayload{Image: "data:image/png;base64,iVBORw0KGgo="}
	assert.NoError(t, validator.ValidateStruct(&valid))

	invalid := imagePayload{Image: "data:application/pdf;base64,JVBERi0="}
	assert.Error(t, validator.ValidateStruct(&invalid))
}
