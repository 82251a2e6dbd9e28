package model

import (
	"time"

	"arcade/shared/model"
)

const (
	TableName  = "sessions"
	EntityName = "session"

	FieldID               = "id"
	FieldDeviceID         = "device_id"
	FieldCustomerID       = "customer_id"
	FieldBranchID         = "branch_id"
	FieldGameID           = "game_id"
	FieldPlayerCount      = "player_count"
	FieldDurationHours    = "duration_hours"
	FieldSessionAmount    = "session_amount"
	FieldSnacksTotal      = "snacks_total"
	FieldDiscountAmount   = "discount_amount"
	FieldTotalAmount      = "total_amount"
	FieldPaymentMode      = "payment_mode"
	FieldPayCash          = "pay_cash"
	FieldPayUPI           = "pay_upi"
	FieldPayMembership    = "pay_membership"
	FieldGGPointsEarned   = "gg_points_earned"
	FieldGGPointsRedeemed = "gg_points_redeemed"
	FieldStatus           = "status"
	FieldSessionIn        = "session_in"
	FieldSessionOut       = "session_out"
)

// A session is Active from start, Extended after any extension, and Closed
// exactly once at settlement. Closed sessions are immutable.
const (
	StatusActive   = "active"
	StatusExtended = "extended"
	StatusClosed   = "closed"
)

// Session is one customer's rental occupation of a device. All amounts are
// integer rupees. The payment columns stay null until close settles them.
type Session struct {
	ID               string     `db:"id"`
	DeviceID         string     `db:"device_id"`
	CustomerID       string     `db:"customer_id"`
	BranchID         string     `db:"branch_id"`
	GameID           string     `db:"game_id"`
	PlayerCount      int        `db:"player_count"`
	DurationHours    float64    `db:"duration_hours"`
	SessionAmount    int64      `db:"session_amount"`
	SnacksTotal      int64      `db:"snacks_total"`
	DiscountAmount   int64      `db:"discount_amount"`
	TotalAmount      int64      `db:"total_amount"`
	PaymentMode      *string    `db:"payment_mode"`
	PayCash          *int64     `db:"pay_cash"`
	PayUPI           *int64     `db:"pay_upi"`
	PayMembership    *int64     `db:"pay_membership"`
	GGPointsEarned   int64      `db:"gg_points_earned"`
	GGPointsRedeemed int64      `db:"gg_points_redeemed"`
	Status           string     `db:"status"`
	SessionIn        time.Time  `db:"session_in"`
	SessionOut       *time.Time `db:"session_out"`
	model.Metadata
}
