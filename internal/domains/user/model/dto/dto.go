package dto

import (
	"github.com/google/uuid"

	"wander/internal/domains/user/model"
	"wander/shared"
	"wander/shared/timezone"

	gDto "wander/shared/dto"
	gModel "wander/shared/model"
)

type RegisterUserRequest struct {
	FullName  string `json:"fullName"  validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email,max=100"`
	PromoCode string `json:"promoCode" validate:"omitempty,max=20"`
}

func (r *RegisterUserRequest) ToModel() model.User {
	return model.User{
		ID:        uuid.NewString(),
		FullName:  r.FullName,
		Email:     r.Email,
		PromoCode: r.PromoCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UserResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	PromoCode string `json:"promoCode,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.PromoCode = model.PromoCode
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
