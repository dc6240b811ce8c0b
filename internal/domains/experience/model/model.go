package model

import (
	"wander/shared/model"
)

const (
	TableName  = "experiences"
	EntityName = "experience"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldCategory    = "category"
)

const (
	CategoryAdventure   = "adventure"
	CategoryNature      = "nature"
	CategoryCultural    = "cultural"
	CategoryWaterSports = "water-sports"
)

type Experience struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Location    string  `db:"location"`
	Price       float64 `db:"price"`
	Description string  `db:"description"`
	ImageURL    string  `db:"image_url"`
	Category    string  `db:"category"`
	model.Metadata
}
