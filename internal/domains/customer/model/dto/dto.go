package dto

import (
	"github.com/google/uuid"

	"arcade/internal/domains/customer/model"
	"arcade/shared"
	gDto "arcade/shared/dto"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type CreateCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Contact  string `json:"contact"   validate:"required,max=20"`
	Email    string `json:"email"     validate:"omitempty,email,max=100"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:              uuid.NewString(),
		FullName:        c.FullName,
		Contact:         c.Contact,
		Email:           c.Email,
		GGPointsBalance: 0,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Contact  string `db:"contact"   json:"contact"   validate:"omitempty,max=20"`
	Email    string `db:"email"     json:"email"     validate:"omitempty,email,max=100"`
	Active   *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type CustomerResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	Contact         string `json:"contact"`
	Email           string `json:"email"`
	GGPointsBalance int64  `json:"gg_points_balance"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Contact = model.Contact
	r.Email = model.Email
	r.GGPointsBalance = model.GGPointsBalance
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
