// Package engine computes rental base amounts from a branch price table.
// Pricing is pure configuration: a missing device type or tier is a hard
// pricing_config_missing failure, never a silent zero rate.
package engine

import (
	"fmt"

	"arcade/internal/domains/pricing/model"
	"arcade/shared/failure"
)

// TierFor maps a party size onto a price tier: 1 player is single, 2 is
// dual, anything larger is group.
func TierFor(playerCount int) (string, error) {
	switch {
	case playerCount == 1:
		return model.TierSingle, nil
	case playerCount == 2:
		return model.TierDual, nil
	case playerCount > 2:
		return model.TierGroup, nil
	default:
		return "", failure.BadRequestFromString("player count must be at least 1") // nolint:wrapcheck
	}
}

// BaseAmount resolves the per-player rate for the device type and party size
// from the given price table and returns rate multiplied by player count.
func BaseAmount(table []model.PriceTier, deviceType string, playerCount int) (int64, error) {
	tier, err := TierFor(playerCount)
	if err != nil {
		return 0, err
	}

	for _, row := range table {
		if row.DeviceType == deviceType && row.Tier == tier {
			return row.PricePerPlayer * int64(playerCount), nil
		}
	}

	return 0, failure.Validation(failure.KindPricingConfigMissing, // nolint:wrapcheck
		fmt.Sprintf("no price configured for device type %q tier %q", deviceType, tier))
}
