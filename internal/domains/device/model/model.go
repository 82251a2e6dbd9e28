package model

import "arcade/shared/model"

const (
	TableName  = "devices"
	EntityName = "device"

	FieldID         = "id"
	FieldBranchID   = "branch_id"
	FieldName       = "name"
	FieldType       = "type"
	FieldMaxPlayers = "max_players"
	FieldStatus     = "status"
)

const (
	TypeConsole   = "console"
	TypeSimulator = "simulator"
	TypeVR        = "vr"
)

// Device status transitions are one-step and always guarded on the observed
// status, so at most one live session can ever hold a device:
//
//	open -> booked -> active -> extended -> open
//
// extended re-entering extended is allowed (repeat extensions), and any
// in-use status releases back to open. unavailable is a maintenance flag set
// by staff, never by the session flow.
const (
	StatusOpen        = "open"
	StatusBooked      = "booked"
	StatusActive      = "active"
	StatusExtended    = "extended"
	StatusUnavailable = "unavailable"
)

type Device struct {
	ID         string `db:"id"`
	BranchID   string `db:"branch_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	MaxPlayers int    `db:"max_players"`
	Status     string `db:"status"`
	model.Metadata
}
