package dto

import (
	"github.com/google/uuid"

	"arcade/internal/domains/device/model"
	"arcade/shared"
	gDto "arcade/shared/dto"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type CreateDeviceRequest struct {
	BranchID   string `json:"branch_id"   validate:"required"`
	Name       string `json:"name"        validate:"required,max=100"`
	Type       string `json:"type"        validate:"required,oneof=console simulator vr"`
	MaxPlayers int    `json:"max_players" validate:"required,min=1,max=8"`
}

func (c *CreateDeviceRequest) ToModel(user string) model.Device {
	return model.Device{
		ID:         uuid.NewString(),
		BranchID:   c.BranchID,
		Name:       c.Name,
		Type:       c.Type,
		MaxPlayers: c.MaxPlayers,
		Status:     model.StatusOpen,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateDeviceRequest covers maintenance edits. Status here only toggles a
// device in or out of service; in-session transitions go through the guarded
// service calls.
type UpdateDeviceRequest struct {
	Name       string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	MaxPlayers int    `db:"max_players" json:"max_players" validate:"omitempty,min=1,max=8"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=open unavailable"`
}

type DeviceResponse struct {
	ID         string `json:"id"`
	BranchID   string `json:"branch_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	MaxPlayers int    `json:"max_players"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *DeviceResponse) FromModel(model model.Device) {
	r.ID = model.ID
	r.BranchID = model.BranchID
	r.Name = model.Name
	r.Type = model.Type
	r.MaxPlayers = model.MaxPlayers
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetDevicesResponse struct {
	Devices   []DeviceResponse `json:"devices"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetDevicesResponse) FromModels(models []model.Device, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Devices = make([]DeviceResponse, len(models))
	for i, mod := range models {
		r.Devices[i].FromModel(mod)
	}
}
