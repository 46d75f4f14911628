package engine

import (
	"github.com/itpenciles/deal-engine/pkg/mathutil"
)

// WholesaleInputs holds the inputs for a wholesale (assignment) deal.
type WholesaleInputs struct {
	AfterRepairValue  float64 `json:"afterRepairValue"`
	MAOPercent        float64 `json:"maoPercent"`
	EstimatedRehab    float64 `json:"estimatedRehab"`
	ClosingCost       float64 `json:"closingCost"`
	WholesaleFeeGoal  float64 `json:"wholesaleFeeGoal"`
	SellerAskingPrice float64 `json:"sellerAskingPrice"`
}

// WholesaleCalculations reports the maximum allowable offer and whether the
// deal leaves room for an assignment fee.
type WholesaleCalculations struct {
	MaximumAllowableOffer float64 `json:"maximumAllowableOffer"`
	PotentialFee          float64 `json:"potentialFee"`
	IsEligible            bool    `json:"isEligible"`
}

// ComputeWholesale calculates the MAO and assignment-fee eligibility. A deal
// with zero spread is not eligible; the comparison is strict.
func ComputeWholesale(in WholesaleInputs) WholesaleCalculations {
	var c WholesaleCalculations

	c.MaximumAllowableOffer = mathutil.ApplyPercentage(in.AfterRepairValue, in.MAOPercent) -
		in.EstimatedRehab - in.ClosingCost - in.WholesaleFeeGoal
	c.PotentialFee = c.MaximumAllowableOffer - in.SellerAskingPrice
	c.IsEligible = c.PotentialFee > 0

	return c
}
