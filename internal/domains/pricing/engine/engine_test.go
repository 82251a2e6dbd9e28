package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arcade/internal/domains/pricing/engine"
	"arcade/internal/domains/pricing/model"
	"arcade/shared/failure"
)

func priceTable() []model.PriceTier {
	return []model.PriceTier{
		{BranchID: "branch-1", DeviceType: "console", Tier: model.TierSingle, PricePerPlayer: 120},
		{BranchID: "branch-1", DeviceType: "console", Tier: model.TierDual, PricePerPlayer: 100},
		{BranchID: "branch-1", DeviceType: "console", Tier: model.TierGroup, PricePerPlayer: 80},
		{BranchID: "branch-1", DeviceType: "vr", Tier: model.TierSingle, PricePerPlayer: 250},
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name        string
		playerCount int
		want        string
		wantErr     bool
	}{
		{name: "single player", playerCount: 1, want: model.TierSingle},
		{name: "two players", playerCount: 2, want: model.TierDual},
		{name: "three players", playerCount: 3, want: model.TierGroup},
		{name: "large party", playerCount: 8, want: model.TierGroup},
		{name: "zero players", playerCount: 0, wantErr: true},
		{name: "negative players", playerCount: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := engine.TierFor(tt.playerCount)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, tier)
		})
	}
}

func TestBaseAmount(t *testing.T) {
	tests := []struct {
		name        string
		deviceType  string
		playerCount int
		want        int64
		wantKind    failure.Kind
	}{
		{
			name:        "console single",
			deviceType:  "console",
			playerCount: 1,
			want:        120,
		},
		{
			name:        "console dual multiplies per player",
			deviceType:  "console",
			playerCount: 2,
			want:        200,
		},
		{
			name:        "console group of four",
			deviceType:  "console",
			playerCount: 4,
			want:        320,
		},
		{
			name:        "vr single",
			deviceType:  "vr",
			playerCount: 1,
			want:        250,
		},
		{
			name:        "missing tier is a config failure",
			deviceType:  "vr",
			playerCount: 3,
			wantKind:    failure.KindPricingConfigMissing,
		},
		{
			name:        "unknown device type is a config failure",
			deviceType:  "simulator",
			playerCount: 1,
			wantKind:    failure.KindPricingConfigMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := engine.BaseAmount(priceTable(), tt.deviceType, tt.playerCount)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, amount)
		})
	}
}

func TestBaseAmount_InvalidPlayerCount(t *testing.T) {
	_, err := engine.BaseAmount(priceTable(), "console", 0)

	assert.Error(t, err)
	assert.Equal(t, failure.KindValidation, failure.KindOf(err))
}
