package dto

import (
	"github.com/google/uuid"

	"arcade/internal/domains/cashdrawer/model"
	"arcade/shared"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	gModel "arcade/shared/model"
	"arcade/shared/timezone"
)

type OpenDrawerRequest struct {
	BranchID      string `json:"branch_id"      validate:"required"`
	OpeningAmount int64  `json:"opening_amount" validate:"min=0"`
}

func (c *OpenDrawerRequest) ToModel(userID string) model.CashDrawer {
	return model.CashDrawer{
		ID:            uuid.NewString(),
		BranchID:      c.BranchID,
		UserID:        userID,
		BusinessDate:  timezone.Now().Format(constant.BusinessDateFormat),
		OpeningAmount: c.OpeningAmount,
		CashInDrawer:  c.OpeningAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type RecordCashRequest struct {
	Category string `json:"category" validate:"required,oneof=session_settlement deposit withdrawal expense"`
	Amount   int64  `json:"amount"   validate:"required"`
}

type DrawerResponse struct {
	ID            string `json:"id"`
	BranchID      string `json:"branch_id"`
	UserID        string `json:"user_id"`
	BusinessDate  string `json:"business_date"`
	OpeningAmount int64  `json:"opening_amount"`
	CashInDrawer  int64  `json:"cash_in_drawer"`
	gDto.Metadata
}

func (r *DrawerResponse) FromModel(model model.CashDrawer) {
	r.ID = model.ID
	r.BranchID = model.BranchID
	r.UserID = model.UserID
	r.BusinessDate = model.BusinessDate
	r.OpeningAmount = model.OpeningAmount
	r.CashInDrawer = model.CashInDrawer
	r.Metadata.FromModel(model.Metadata)
}

type CashLogResponse struct {
	ID       string `json:"id"`
	DrawerID string `json:"drawer_id"`
	BranchID string `json:"branch_id"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	LoggedAt string `json:"logged_at"`
	gDto.Metadata
}

func (r *CashLogResponse) FromModel(model model.CashLog) {
	r.ID = model.ID
	r.DrawerID = model.DrawerID
	r.BranchID = model.BranchID
	r.Category = model.Category
	r.Amount = model.Amount
	r.LoggedAt = timezone.Format(model.LoggedAt, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetCashLogsResponse struct {
	Logs      []CashLogResponse `json:"logs"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCashLogsResponse) FromModels(models []model.CashLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]CashLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
