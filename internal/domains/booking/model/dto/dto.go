package dto

import (
	"time"

	"github.com/google/uuid"

	"arcade/internal/domains/booking/model"
	"arcade/shared"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type CreateBookingRequest struct {
	CustomerID   string    `json:"customer_id"   validate:"required"`
	BranchID     string    `json:"branch_id"     validate:"required"`
	VisitingTime time.Time `json:"visiting_time" validate:"required"`
	PlayerCount  int       `json:"player_count"  validate:"required,min=1,max=8"`
	Note         string    `json:"note"          validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string) model.AdvanceBooking {
	return model.AdvanceBooking{
		ID:           uuid.NewString(),
		CustomerID:   c.CustomerID,
		BranchID:     c.BranchID,
		VisitingTime: timezone.ToAppTime(c.VisitingTime),
		PlayerCount:  c.PlayerCount,
		Note:         c.Note,
		Status:       model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	BranchID     string `json:"branch_id"`
	VisitingTime string `json:"visiting_time"`
	PlayerCount  int    `json:"player_count"`
	Note         string `json:"note,omitempty"`
	Status       string `json:"status"`
	ClosedBy     string `json:"closed_by,omitempty"`
	ClosedAt     string `json:"closed_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.AdvanceBooking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.BranchID = model.BranchID
	r.VisitingTime = timezone.Format(model.VisitingTime, constant.DateFormat)
	r.PlayerCount = model.PlayerCount
	r.Note = model.Note
	r.Status = model.Status

	if model.ClosedBy != nil {
		r.ClosedBy = *model.ClosedBy
	}

	if model.ClosedAt != nil {
		r.ClosedAt = timezone.Format(*model.ClosedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.AdvanceBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
