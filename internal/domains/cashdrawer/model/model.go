package model

import (
	"time"

	"arcade/shared/model"
)

const (
	DrawerTableName  = "cash_drawers"
	DrawerEntityName = "cash_drawer"

	FieldID            = "id"
	FieldBranchID      = "branch_id"
	FieldUserID        = "user_id"
	FieldBusinessDate  = "business_date"
	FieldOpeningAmount = "opening_amount"
	FieldCashInDrawer  = "cash_in_drawer"
)

const (
	LogTableName  = "cash_logs"
	LogEntityName = "cash_log"

	FieldDrawerID = "drawer_id"
	FieldCategory = "category"
	FieldAmount   = "amount"
	FieldLoggedAt = "logged_at"
)

const (
	CategorySettlement = "session_settlement"
	CategoryDeposit    = "deposit"
	CategoryWithdrawal = "withdrawal"
	CategoryExpense    = "expense"
)

// CashDrawer is one staff member's cash float for one branch business day.
// CashInDrawer only moves through the guarded adjustment, so a withdrawal
// can never take it below zero.
type CashDrawer struct {
	ID            string `db:"id"`
	BranchID      string `db:"branch_id"`
	UserID        string `db:"user_id"`
	BusinessDate  string `db:"business_date"`
	OpeningAmount int64  `db:"opening_amount"`
	CashInDrawer  int64  `db:"cash_in_drawer"`
	model.Metadata
}

// CashLog is an append-only movement record. Negative amounts are
// withdrawals.
type CashLog struct {
	ID       string    `db:"id"`
	DrawerID string    `db:"drawer_id"`
	BranchID string    `db:"branch_id"`
	Category string    `db:"category"`
	Amount   int64     `db:"amount"`
	LoggedAt time.Time `db:"logged_at"`
	model.Metadata
}
