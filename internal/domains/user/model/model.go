package model

import (
	"wander/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldPromoCode = "promo_code"
)

type User struct {
	ID        string `db:"id"`
	FullName  string `db:"full_name"`
	Email     string `db:"email"`
	PromoCode string `db:"promo_code"`
	model.Metadata
}
