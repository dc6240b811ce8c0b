package dto

import (
	"github.com/google/uuid"

	"wander/internal/domains/experience/model"
	"wander/shared"
	"wander/shared/timezone"

	gDto "wander/shared/dto"
	gModel "wander/shared/model"
)

type CreateExperienceRequest struct {
	Title       string  `json:"title"       validate:"required,max=150"`
	Location    string  `json:"location"    validate:"required,max=150"`
	Price       float64 `json:"price"       validate:"required,min=0"`
	Description string  `json:"description" validate:"omitempty"`
	Image       string  `json:"image"       validate:"omitempty"`
	Category    string  `json:"category"    validate:"required,oneof=adventure nature cultural water-sports"`
}

func (c *CreateExperienceRequest) ToModel(user, imageURL string) model.Experience {
	return model.Experience{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Location:    c.Location,
		Price:       c.Price,
		Description: c.Description,
		ImageURL:    imageURL,
		Category:    c.Category,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateExperienceRequest struct {
	Title       string  `db:"title"       json:"title"       validate:"omitempty,max=150"`
	Location    string  `db:"location"    json:"location"    validate:"omitempty,max=150"`
	Price       float64 `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Description string  `db:"description" json:"description" validate:"omitempty"`
	Category    string  `db:"category"    json:"category"    validate:"omitempty,oneof=adventure nature cultural water-sports"`
}

type ExperienceResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	gDto.Metadata
}

func (r *ExperienceResponse) FromModel(model model.Experience) {
	r.ID = model.ID
	r.Title = model.Title
	r.Location = model.Location
	r.Price = model.Price
	r.Description = model.Description
	r.Image = model.ImageURL
	r.Category = model.Category
	r.Metadata.FromModel(model.Metadata)
}

type GetExperiencesResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetExperiencesResponse) FromModels(models []model.Experience, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Experiences = make([]ExperienceResponse, len(models))
	for i, mod := range models {
		r.Experiences[i].FromModel(mod)
	}
}
