package model

import (
	"time"

	"arcade/shared/model"
)

const (
	TableName  = "advance_bookings"
	EntityName = "advance booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldBranchID     = "branch_id"
	FieldVisitingTime = "visiting_time"
	FieldPlayerCount  = "player_count"
	FieldNote         = "note"
	FieldStatus       = "status"
	FieldClosedBy     = "closed_by"
	FieldClosedAt     = "closed_at"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// AdvanceBooking is a customer's note-ahead for a future visit. It carries
// no device hold; staff close it manually once the visit happens or lapses.
type AdvanceBooking struct {
	ID           string     `db:"id"`
	CustomerID   string     `db:"customer_id"`
	BranchID     string     `db:"branch_id"`
	VisitingTime time.Time  `db:"visiting_time"`
	PlayerCount  int        `db:"player_count"`
	Note         string     `db:"note"`
	Status       string     `db:"status"`
	ClosedBy     *string    `db:"closed_by"`
	ClosedAt     *time.Time `db:"closed_at"`
	model.Metadata
}
