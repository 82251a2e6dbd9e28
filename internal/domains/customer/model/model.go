package model

import "arcade/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID              = "id"
	FieldFullName        = "full_name"
	FieldContact         = "contact"
	FieldEmail           = "email"
	FieldGGPointsBalance = "gg_points_balance"
	FieldActive          = "active"
)

// Customer carries the GG loyalty point balance. The balance is only ever
// net-adjusted through the guarded repository update so it can never go
// negative, no matter how settlements interleave.
type Customer struct {
	ID              string `db:"id"`
	FullName        string `db:"full_name"`
	Contact         string `db:"contact"`
	Email           string `db:"email"`
	GGPointsBalance int64  `db:"gg_points_balance"`
	Active          bool   `db:"active"`
	model.Metadata
}
