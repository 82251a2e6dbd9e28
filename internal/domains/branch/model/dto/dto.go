package dto

import (
	"github.com/google/uuid"

	"arcade/internal/domains/branch/model"
	"arcade/shared"
	gDto "arcade/shared/dto"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type CreateBranchRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	City    string `json:"city"    validate:"required,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Phone   string `json:"phone"   validate:"omitempty,max=20"`
}

func (c *CreateBranchRequest) ToModel(user string) model.Branch {
	return model.Branch{
		ID:      uuid.NewString(),
		Name:    c.Name,
		City:    c.City,
		Address: c.Address,
		Phone:   c.Phone,
		Active:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBranchRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	City    string `db:"city"    json:"city"    validate:"omitempty,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
	Phone   string `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Active  *bool  `db:"active"  json:"active"  validate:"omitempty"`
}

type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
	gDto.Metadata
}

func (r *BranchResponse) FromModel(model model.Branch) {
	r.ID = model.ID
	r.Name = model.Name
	r.City = model.City
	r.Address = model.Address
	r.Phone = model.Phone
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetBranchesResponse struct {
	Branches  []BranchResponse `json:"branches"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetBranchesResponse) FromModels(models []model.Branch, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Branches = make([]BranchResponse, len(models))
	for i, mod := range models {
		r.Branches[i].FromModel(mod)
	}
}
