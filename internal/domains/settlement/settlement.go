// Package settlement finalizes a rental bill: bounded GG point redemption,
// the resulting discount, the earned-point credit, and payment split
// validation. It is pure arithmetic over the inputs; balance updates and
// cash logging stay with the session service.
package settlement

import (
	"fmt"

	"arcade/shared/failure"
)

const (
	PaymentModeCash     = "cash"
	PaymentModeUPI      = "upi"
	PaymentModePartPaid = "part_paid"
)

// Split is the rupee amount settled per instrument. Membership is the
// portion charged to the customer's membership account when part-paid.
type Split struct {
	Cash       int64 `json:"cash"`
	UPI        int64 `json:"upi"`
	Membership int64 `json:"membership"`
}

func (s Split) Sum() int64 {
	return s.Cash + s.UPI + s.Membership
}

type Input struct {
	SessionAmount   int64
	SnacksTotal     int64
	PointsRedeemed  int64
	PointsBalance   int64
	PointsPerRupee  float64
	EarnRatePercent int64
	PaymentMode     string
	Split           Split
}

type Result struct {
	DiscountAmount int64
	TotalAmount    int64
	PointsEarned   int64
	// NetPointsDelta is earned minus redeemed, applied to the customer
	// balance as one adjustment.
	NetPointsDelta int64
	Split          Split
}

// RedemptionCap is the rupee ceiling a redemption discount may reach:
// exactly half of the session amount, never derived from the total.
func RedemptionCap(sessionAmount int64) int64 {
	return sessionAmount / 2
}

// MaxRedeemablePoints bounds a redemption by both the customer balance and
// the point equivalent of the redemption cap.
func MaxRedeemablePoints(balance, sessionAmount int64, pointsPerRupee float64) int64 {
	capPoints := int64(float64(RedemptionCap(sessionAmount)) * pointsPerRupee)

	return min(balance, capPoints)
}

// Compute validates the redemption and payment split and produces the final
// amounts. Any failure leaves the caller free to retry with corrected
// inputs; nothing here mutates state.
func Compute(in Input) (Result, error) {
	var res Result

	if in.PointsRedeemed < 0 {
		return res, failure.Validation(failure.KindRedemptionExceeded, // nolint:wrapcheck
			"redeemed points cannot be negative")
	}

	if in.PointsRedeemed > 0 {
		if in.PointsPerRupee <= 0 {
			return res, failure.Validation(failure.KindPricingConfigMissing, // nolint:wrapcheck
				"loyalty point ratio is not configured")
		}

		maxPoints := MaxRedeemablePoints(in.PointsBalance, in.SessionAmount, in.PointsPerRupee)
		if in.PointsRedeemed > maxPoints {
			return res, failure.Validation(failure.KindRedemptionExceeded, // nolint:wrapcheck
				fmt.Sprintf("requested %d points, max redeemable is %d", in.PointsRedeemed, maxPoints))
		}

		res.DiscountAmount = int64(float64(in.PointsRedeemed) / in.PointsPerRupee)
	}

	res.TotalAmount = in.SessionAmount + in.SnacksTotal - res.DiscountAmount
	if res.TotalAmount < 0 {
		res.TotalAmount = 0
	}

	switch in.PaymentMode {
	case PaymentModeCash:
		res.Split = Split{Cash: res.TotalAmount}
	case PaymentModeUPI:
		res.Split = Split{UPI: res.TotalAmount}
	case PaymentModePartPaid:
		if in.Split.Cash < 0 || in.Split.UPI < 0 || in.Split.Membership < 0 {
			return Result{}, failure.Validation(failure.KindPaymentSplitMismatch, // nolint:wrapcheck
				"split components cannot be negative")
		}

		if in.Split.Sum() != res.TotalAmount {
			return Result{}, failure.Validation(failure.KindPaymentSplitMismatch, // nolint:wrapcheck
				fmt.Sprintf("split totals %d, settled amount is %d", in.Split.Sum(), res.TotalAmount))
		}

		res.Split = in.Split
	default:
		return Result{}, failure.BadRequestFromString( // nolint:wrapcheck
			fmt.Sprintf("unknown payment mode %q", in.PaymentMode))
	}

	res.PointsEarned = res.TotalAmount * in.EarnRatePercent / 100
	res.NetPointsDelta = res.PointsEarned - in.PointsRedeemed

	return res, nil
}
