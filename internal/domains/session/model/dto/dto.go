package dto

import (
	"time"

	"github.com/google/uuid"

	"arcade/internal/domains/session/model"
	"arcade/internal/domains/settlement"
	"arcade/shared"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type StartSessionRequest struct {
	DeviceID      string  `json:"device_id"      validate:"required"`
	CustomerID    string  `json:"customer_id"    validate:"required"`
	GameID        string  `json:"game_id"        validate:"omitempty,max=100"`
	PlayerCount   int     `json:"player_count"   validate:"required,min=1,max=8"`
	DurationHours float64 `json:"duration_hours" validate:"required,gt=0"`
}

func (c *StartSessionRequest) ToModel(branchID string, sessionAmount int64, user string) model.Session {
	return model.Session{
		ID:            uuid.NewString(),
		DeviceID:      c.DeviceID,
		CustomerID:    c.CustomerID,
		BranchID:      branchID,
		GameID:        c.GameID,
		PlayerCount:   c.PlayerCount,
		DurationHours: c.DurationHours,
		SessionAmount: sessionAmount,
		TotalAmount:   sessionAmount,
		Status:        model.StatusActive,
		SessionIn:     timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ExtendSessionRequest struct {
	ExtraHours  float64 `json:"extra_hours"  validate:"required,gt=0"`
	ExtraAmount int64   `json:"extra_amount" validate:"required,min=1"`
}

type ShiftSessionRequest struct {
	ToDeviceID string `json:"to_device_id" validate:"required"`
}

type PaymentSplitRequest struct {
	Cash       int64 `json:"cash"       validate:"min=0"`
	UPI        int64 `json:"upi"        validate:"min=0"`
	Membership int64 `json:"membership" validate:"min=0"`
}

type CloseSessionRequest struct {
	SnacksTotal    int64               `json:"snacks_total"    validate:"min=0"`
	PointsRedeemed int64               `json:"points_redeemed" validate:"min=0"`
	PaymentMode    string              `json:"payment_mode"    validate:"required,oneof=cash upi part_paid"`
	Split          PaymentSplitRequest `json:"split"`
}

type PaymentSplitResponse struct {
	Cash       int64 `json:"cash"`
	UPI        int64 `json:"upi"`
	Membership int64 `json:"membership"`
}

type SessionResponse struct {
	ID               string                `json:"id"`
	DeviceID         string                `json:"device_id"`
	CustomerID       string                `json:"customer_id"`
	BranchID         string                `json:"branch_id"`
	GameID           string                `json:"game_id"`
	PlayerCount      int                   `json:"player_count"`
	DurationHours    float64               `json:"duration_hours"`
	SessionAmount    int64                 `json:"session_amount"`
	SnacksTotal      int64                 `json:"snacks_total"`
	DiscountAmount   int64                 `json:"discount_amount"`
	TotalAmount      int64                 `json:"total_amount"`
	PaymentMode      string                `json:"payment_mode,omitempty"`
	Split            *PaymentSplitResponse `json:"split,omitempty"`
	GGPointsEarned   int64                 `json:"gg_points_earned"`
	GGPointsRedeemed int64                 `json:"gg_points_redeemed"`
	Status           string                `json:"status"`
	SessionIn        string                `json:"session_in"`
	SessionOut       string                `json:"session_out,omitempty"`
	gDto.Metadata
}

func (r *SessionResponse) FromModel(model model.Session) {
	r.ID = model.ID
	r.DeviceID = model.DeviceID
	r.CustomerID = model.CustomerID
	r.BranchID = model.BranchID
	r.GameID = model.GameID
	r.PlayerCount = model.PlayerCount
	r.DurationHours = model.DurationHours
	r.SessionAmount = model.SessionAmount
	r.SnacksTotal = model.SnacksTotal
	r.DiscountAmount = model.DiscountAmount
	r.TotalAmount = model.TotalAmount
	r.GGPointsEarned = model.GGPointsEarned
	r.GGPointsRedeemed = model.GGPointsRedeemed
	r.Status = model.Status
	r.SessionIn = timezone.Format(model.SessionIn, constant.DateFormat)

	if model.PaymentMode != nil {
		r.PaymentMode = *model.PaymentMode
	}

	if model.PayCash != nil || model.PayUPI != nil || model.PayMembership != nil {
		split := PaymentSplitResponse{}

		if model.PayCash != nil {
			split.Cash = *model.PayCash
		}

		if model.PayUPI != nil {
			split.UPI = *model.PayUPI
		}

		if model.PayMembership != nil {
			split.Membership = *model.PayMembership
		}

		r.Split = &split
	}

	if model.SessionOut != nil {
		r.SessionOut = timezone.Format(*model.SessionOut, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetSessionsResponse struct {
	Sessions  []SessionResponse `json:"sessions"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSessionsResponse) FromModels(models []model.Session, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Sessions = make([]SessionResponse, len(models))
	for i, mod := range models {
		r.Sessions[i].FromModel(mod)
	}
}

type SettlementResponse struct {
	SessionID        string               `json:"session_id"`
	SessionAmount    int64                `json:"session_amount"`
	SnacksTotal      int64                `json:"snacks_total"`
	DiscountAmount   int64                `json:"discount_amount"`
	TotalAmount      int64                `json:"total_amount"`
	PaymentMode      string               `json:"payment_mode"`
	Split            PaymentSplitResponse `json:"split"`
	GGPointsEarned   int64                `json:"gg_points_earned"`
	GGPointsRedeemed int64                `json:"gg_points_redeemed"`
	SessionOut       string               `json:"session_out"`
}

// SettlementEvent is the payload published to the settlement topic when a
// session closes.
type SettlementEvent struct {
	SessionID        string           `json:"session_id"`
	BranchID         string           `json:"branch_id"`
	CustomerID       string           `json:"customer_id"`
	DeviceID         string           `json:"device_id"`
	SessionAmount    int64            `json:"session_amount"`
	SnacksTotal      int64            `json:"snacks_total"`
	DiscountAmount   int64            `json:"discount_amount"`
	TotalAmount      int64            `json:"total_amount"`
	PaymentMode      string           `json:"payment_mode"`
	Split            settlement.Split `json:"split"`
	GGPointsEarned   int64            `json:"gg_points_earned"`
	GGPointsRedeemed int64            `json:"gg_points_redeemed"`
	ClosedBy         string           `json:"closed_by"`
	ClosedAt         time.Time        `json:"closed_at"`
}
