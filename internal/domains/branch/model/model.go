package model

import "arcade/shared/model"

const (
	TableName  = "branches"
	EntityName = "branch"

	FieldID      = "id"
	FieldName    = "name"
	FieldCity    = "city"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldActive  = "active"
)

type Branch struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Address string `db:"address"`
	Phone   string `db:"phone"`
	Active  bool   `db:"active"`
	model.Metadata
}
