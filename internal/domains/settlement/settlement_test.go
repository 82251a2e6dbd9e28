package settlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arcade/internal/domains/settlement"
	"arcade/shared/failure"
)

func TestRedemptionCap(t *testing.T) {
	assert.Equal(t, int64(150), settlement.RedemptionCap(300))
	assert.Equal(t, int64(0), settlement.RedemptionCap(0))
	assert.Equal(t, int64(75), settlement.RedemptionCap(151))
}

func TestMaxRedeemablePoints(t *testing.T) {
	tests := []struct {
		name           string
		balance        int64
		sessionAmount  int64
		pointsPerRupee float64
		want           int64
	}{
		{
			name:           "cap binds before balance",
			balance:        1000,
			sessionAmount:  300,
			pointsPerRupee: 1,
			want:           150,
		},
		{
			name:           "balance binds before cap",
			balance:        40,
			sessionAmount:  300,
			pointsPerRupee: 1,
			want:           40,
		},
		{
			name:           "ten points per rupee scales the cap",
			balance:        5000,
			sessionAmount:  300,
			pointsPerRupee: 10,
			want:           1500,
		},
		{
			name:           "zero balance",
			balance:        0,
			sessionAmount:  300,
			pointsPerRupee: 1,
			want:           0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := settlement.MaxRedeemablePoints(tt.balance, tt.sessionAmount, tt.pointsPerRupee)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		in       settlement.Input
		want     settlement.Result
		wantKind failure.Kind
	}{
		{
			name: "full redemption at the cap",
			in: settlement.Input{
				SessionAmount:   300,
				PointsRedeemed:  150,
				PointsBalance:   1000,
				PointsPerRupee:  1,
				EarnRatePercent: 0,
				PaymentMode:     settlement.PaymentModeCash,
			},
			want: settlement.Result{
				DiscountAmount: 150,
				TotalAmount:    150,
				NetPointsDelta: -150,
				Split:          settlement.Split{Cash: 150},
			},
		},
		{
			name: "one point over the cap",
			in: settlement.Input{
				SessionAmount:  300,
				PointsRedeemed: 151,
				PointsBalance:  1000,
				PointsPerRupee: 1,
				PaymentMode:    settlement.PaymentModeCash,
			},
			wantKind: failure.KindRedemptionExceeded,
		},
		{
			name: "balance bounds the redemption",
			in: settlement.Input{
				SessionAmount:  300,
				PointsRedeemed: 100,
				PointsBalance:  60,
				PointsPerRupee: 1,
				PaymentMode:    settlement.PaymentModeCash,
			},
			wantKind: failure.KindRedemptionExceeded,
		},
		{
			name: "negative points",
			in: settlement.Input{
				SessionAmount:  300,
				PointsRedeemed: -1,
				PointsBalance:  1000,
				PointsPerRupee: 1,
				PaymentMode:    settlement.PaymentModeCash,
			},
			wantKind: failure.KindRedemptionExceeded,
		},
		{
			name: "earn rate credits points on the settled total",
			in: settlement.Input{
				SessionAmount:   300,
				SnacksTotal:     100,
				PointsRedeemed:  0,
				PointsBalance:   0,
				PointsPerRupee:  1,
				EarnRatePercent: 5,
				PaymentMode:     settlement.PaymentModeUPI,
			},
			want: settlement.Result{
				TotalAmount:    400,
				PointsEarned:   20,
				NetPointsDelta: 20,
				Split:          settlement.Split{UPI: 400},
			},
		},
		{
			name: "part paid split must balance exactly",
			in: settlement.Input{
				SessionAmount:  300,
				SnacksTotal:    50,
				PointsRedeemed: 100,
				PointsBalance:  1000,
				PointsPerRupee: 1,
				PaymentMode:    settlement.PaymentModePartPaid,
				Split:          settlement.Split{Cash: 100, UPI: 100, Membership: 50},
			},
			want: settlement.Result{
				DiscountAmount: 100,
				TotalAmount:    250,
				NetPointsDelta: -100,
				Split:          settlement.Split{Cash: 100, UPI: 100, Membership: 50},
			},
		},
		{
			name: "part paid split off by one rupee",
			in: settlement.Input{
				SessionAmount:  300,
				PointsRedeemed: 0,
				PointsPerRupee: 1,
				PaymentMode:    settlement.PaymentModePartPaid,
				Split:          settlement.Split{Cash: 100, UPI: 100, Membership: 99},
			},
			wantKind: failure.KindPaymentSplitMismatch,
		},
		{
			name: "negative split component",
			in: settlement.Input{
				SessionAmount:  100,
				PointsPerRupee: 1,
				PaymentMode:    settlement.PaymentModePartPaid,
				Split:          settlement.Split{Cash: 150, UPI: -50},
			},
			wantKind: failure.KindPaymentSplitMismatch,
		},
		{
			name: "ten points per rupee floors the discount",
			in: settlement.Input{
				SessionAmount:   300,
				PointsRedeemed:  125,
				PointsBalance:   1000,
				PointsPerRupee:  10,
				EarnRatePercent: 5,
				PaymentMode:     settlement.PaymentModeCash,
			},
			want: settlement.Result{
				DiscountAmount: 12,
				TotalAmount:    288,
				PointsEarned:   14,
				NetPointsDelta: -111,
				Split:          settlement.Split{Cash: 288},
			},
		},
		{
			name: "missing loyalty ratio is a config failure",
			in: settlement.Input{
				SessionAmount:  300,
				PointsRedeemed: 10,
				PointsBalance:  100,
				PointsPerRupee: 0,
				PaymentMode:    settlement.PaymentModeCash,
			},
			wantKind: failure.KindPricingConfigMissing,
		},
		{
			name: "unknown payment mode",
			in: settlement.Input{
				SessionAmount:  100,
				PointsPerRupee: 1,
				PaymentMode:    "cheque",
			},
			wantKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := settlement.Compute(tt.in)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind),
					"expected kind %s, got %s", tt.wantKind, failure.KindOf(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

// Whatever the discount, the settled total never goes below zero.
func TestCompute_TotalNeverNegative(t *testing.T) {
	res, err := settlement.Compute(settlement.Input{
		SessionAmount:  10,
		SnacksTotal:    0,
		PointsRedeemed: 5,
		PointsBalance:  5,
		PointsPerRupee: 1,
		PaymentMode:    settlement.PaymentModeCash,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), res.DiscountAmount)
	assert.Equal(t, int64(5), res.TotalAmount)
	assert.GreaterOrEqual(t, res.TotalAmount, int64(0))
}
