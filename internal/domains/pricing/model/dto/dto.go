package dto

import (
	"github.com/google/uuid"

	"arcade/internal/domains/pricing/model"
	gDto "arcade/shared/dto"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type UpsertPriceTierRequest struct {
	BranchID       string `json:"branch_id"        validate:"required"`
	DeviceType     string `json:"device_type"      validate:"required,oneof=console simulator vr"`
	Tier           string `json:"tier"             validate:"required,oneof=single dual group"`
	PricePerPlayer int64  `json:"price_per_player" validate:"required,min=1"`
}

func (c *UpsertPriceTierRequest) ToModel(user string) model.PriceTier {
	return model.PriceTier{
		ID:             uuid.NewString(),
		BranchID:       c.BranchID,
		DeviceType:     c.DeviceType,
		Tier:           c.Tier,
		PricePerPlayer: c.PricePerPlayer,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PriceTierResponse struct {
	ID             string `json:"id"`
	BranchID       string `json:"branch_id"`
	DeviceType     string `json:"device_type"`
	Tier           string `json:"tier"`
	PricePerPlayer int64  `json:"price_per_player"`
	gDto.Metadata
}

func (r *PriceTierResponse) FromModel(model model.PriceTier) {
	r.ID = model.ID
	r.BranchID = model.BranchID
	r.DeviceType = model.DeviceType
	r.Tier = model.Tier
	r.PricePerPlayer = model.PricePerPlayer
	r.Metadata.FromModel(model.Metadata)
}

type GetPriceTiersResponse struct {
	PriceTiers []PriceTierResponse `json:"price_tiers"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetPriceTiersResponse) FromModels(models []model.PriceTier) {
	r.TotalData = len(models)

	r.PriceTiers = make([]PriceTierResponse, len(models))
	for i, mod := range models {
		r.PriceTiers[i].FromModel(mod)
	}
}
