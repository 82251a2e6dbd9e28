package model

import "arcade/shared/model"

const (
	TableName  = "price_tiers"
	EntityName = "price_tier"

	FieldID             = "id"
	FieldBranchID       = "branch_id"
	FieldDeviceType     = "device_type"
	FieldTier           = "tier"
	FieldPricePerPlayer = "price_per_player"
)

const (
	TierSingle = "single"
	TierDual   = "dual"
	TierGroup  = "group"
)

// PriceTier is one row of a branch price table: the per-player rupee rate
// for a device type at a given party-size tier.
type PriceTier struct {
	ID             string `db:"id"`
	BranchID       string `db:"branch_id"`
	DeviceType     string `db:"device_type"`
	Tier           string `db:"tier"`
	PricePerPlayer int64  `db:"price_per_player"`
	model.Metadata
}
