package engine

import (
	"github.com/itpenciles/deal-engine/pkg/amortization"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"github.com/itpenciles/deal-engine/pkg/mathutil"
)

// PurchaseClosingCosts itemizes acquisition-phase closing costs. Missing
// line items default to 0.
type PurchaseClosingCosts struct {
	Points           float64 `json:"points"`
	PrepaidInsurance float64 `json:"prepaidInsurance"`
	PrepaidTaxes     float64 `json:"prepaidTaxes"`
	TitleEscrow      float64 `json:"titleEscrow"`
	Attorney         float64 `json:"attorney"`
	Inspection       float64 `json:"inspection"`
	Recording        float64 `json:"recording"`
	Appraisal        float64 `json:"appraisal"`
	Broker           float64 `json:"broker"`
	Other            float64 `json:"other"`
}

// Total sums all purchase closing line items.
func (p PurchaseClosingCosts) Total() float64 {
	return p.Points + p.PrepaidInsurance + p.PrepaidTaxes + p.TitleEscrow +
		p.Attorney + p.Inspection + p.Recording + p.Appraisal + p.Broker + p.Other
}

// RehabExteriorCosts itemizes exterior rehab line items.
type RehabExteriorCosts struct {
	Roof        float64 `json:"roof"`
	Siding      float64 `json:"siding"`
	Windows     float64 `json:"windows"`
	Landscaping float64 `json:"landscaping"`
	Driveway    float64 `json:"driveway"`
	Other       float64 `json:"other"`
}

// Total sums all exterior rehab line items.
func (r RehabExteriorCosts) Total() float64 {
	return r.Roof + r.Siding + r.Windows + r.Landscaping + r.Driveway + r.Other
}

// RehabInteriorCosts itemizes interior rehab line items.
type RehabInteriorCosts struct {
	Kitchen    float64 `json:"kitchen"`
	Bathrooms  float64 `json:"bathrooms"`
	Flooring   float64 `json:"flooring"`
	Paint      float64 `json:"paint"`
	Electrical float64 `json:"electrical"`
	Plumbing   float64 `json:"plumbing"`
	HVAC       float64 `json:"hvac"`
	Other      float64 `json:"other"`
}

// Total sums all interior rehab line items.
func (r RehabInteriorCosts) Total() float64 {
	return r.Kitchen + r.Bathrooms + r.Flooring + r.Paint + r.Electrical +
		r.Plumbing + r.HVAC + r.Other
}

// RehabGeneralCosts itemizes general project line items.
type RehabGeneralCosts struct {
	Permits     float64 `json:"permits"`
	Dumpsters   float64 `json:"dumpsters"`
	Cleanup     float64 `json:"cleanup"`
	Contingency float64 `json:"contingency"`
	Other       float64 `json:"other"`
}

// Total sums all general rehab line items.
func (r RehabGeneralCosts) Total() float64 {
	return r.Permits + r.Dumpsters + r.Cleanup + r.Contingency + r.Other
}

// RehabCosts groups the three rehab cost categories.
type RehabCosts struct {
	Exterior RehabExteriorCosts `json:"exterior"`
	Interior RehabInteriorCosts `json:"interior"`
	General  RehabGeneralCosts  `json:"general"`
}

// Total sums all rehab categories.
func (r RehabCosts) Total() float64 {
	return r.Exterior.Total() + r.Interior.Total() + r.General.Total()
}

// BrrrrInputs holds the inputs for a buy-rehab-rent-refinance-repeat deal.
type BrrrrInputs struct {
	PurchasePrice float64              `json:"purchasePrice"`
	PurchaseCosts PurchaseClosingCosts `json:"purchaseCosts"`
	Rehab         RehabCosts           `json:"rehab"`

	// Holding phase
	MonthlyHoldingCost float64 `json:"monthlyHoldingCost"`
	RehabMonths        int     `json:"rehabMonths"`

	// Initial financing; ignored when AllCash is true
	AllCash                  bool    `json:"allCash"`
	InitialLoanAmount        float64 `json:"initialLoanAmount"`
	InitialLoanRate          float64 `json:"initialLoanRate"`
	InitialLoanPointsPercent float64 `json:"initialLoanPointsPercent"`
	OtherLenderCharges       float64 `json:"otherLenderCharges"`

	// Refinance
	AfterRepairValue      float64 `json:"afterRepairValue"`
	RefinanceLTV          float64 `json:"refinanceLTV"`
	RefinanceRate         float64 `json:"refinanceRate"`
	RefinanceTermYears    int     `json:"refinanceTermYears"`
	RefinanceClosingCosts float64 `json:"refinanceClosingCosts"`

	// Post-refinance operations
	PostRefiMonthlyRent float64 `json:"postRefiMonthlyRent"`
	PostRefiOtherIncome float64 `json:"postRefiOtherIncome"`
	VacancyRate         float64 `json:"vacancyRate"`
	MaintenanceRate     float64 `json:"maintenanceRate"`
	ManagementRate      float64 `json:"managementRate"`
	CapexRate           float64 `json:"capexRate"`
	MonthlyTaxes        float64 `json:"monthlyTaxes"`
	MonthlyInsurance    float64 `json:"monthlyInsurance"`
	MonthlyUtilities    float64 `json:"monthlyUtilities"`
	MonthlyHOA          float64 `json:"monthlyHOA"`
	MonthlyMisc         float64 `json:"monthlyMisc"`
}

// BrrrrCalculations reports the phase totals, refinance outcome, and
// post-refinance operating metrics of a BRRRR project.
type BrrrrCalculations struct {
	TotalPurchaseClosingCosts float64 `json:"totalPurchaseClosingCosts"`
	TotalRehabCost            float64 `json:"totalRehabCost"`
	TotalHoldingCosts         float64 `json:"totalHoldingCosts"`
	TotalFinancingCosts       float64 `json:"totalFinancingCosts"`
	TotalProjectCost          float64 `json:"totalProjectCost"`

	RefinanceLoanAmount  float64 `json:"refinanceLoanAmount"`
	NetRefinanceProceeds float64 `json:"netRefinanceProceeds"`
	// CashLeftInDeal at or below 0 means the refinance recovered all
	// invested capital.
	CashLeftInDeal          float64 `json:"cashLeftInDeal"`
	RefinanceMonthlyPayment float64 `json:"refinanceMonthlyPayment"`

	GrossMonthlyIncome        float64 `json:"grossMonthlyIncome"`
	MonthlyOperatingExpenses  float64 `json:"monthlyOperatingExpenses"`
	MonthlyNetOperatingIncome float64 `json:"monthlyNetOperatingIncome"`
	MonthlyCashFlowPostRefi   float64 `json:"monthlyCashFlowPostRefi"`
	AnnualCashFlowPostRefi    float64 `json:"annualCashFlowPostRefi"`

	ReturnOnInvestment float64 `json:"returnOnInvestment"`
	IsInfiniteReturn   bool    `json:"isInfiniteReturn"`
}

// ComputeBrrrr runs the BRRRR phases in order: acquisition, rehab, holding,
// initial financing, total project cost, refinance, cash left, post-refi
// operations, ROI.
func ComputeBrrrr(in BrrrrInputs) BrrrrCalculations {
	var c BrrrrCalculations

	c.TotalPurchaseClosingCosts = in.PurchaseCosts.Total()
	c.TotalRehabCost = in.Rehab.Total()
	c.TotalHoldingCosts = in.MonthlyHoldingCost * float64(in.RehabMonths)

	if !in.AllCash {
		carryCost := amortization.InterestOnlyPayment(in.InitialLoanAmount, in.InitialLoanRate) * float64(in.RehabMonths)
		points := mathutil.ApplyPercentage(in.InitialLoanAmount, in.InitialLoanPointsPercent)
		c.TotalFinancingCosts = carryCost + points + in.OtherLenderCharges
	}

	c.TotalProjectCost = in.PurchasePrice + c.TotalRehabCost + c.TotalPurchaseClosingCosts +
		c.TotalHoldingCosts + c.TotalFinancingCosts

	c.RefinanceLoanAmount = mathutil.ApplyPercentage(in.AfterRepairValue, in.RefinanceLTV)
	c.NetRefinanceProceeds = c.RefinanceLoanAmount - in.RefinanceClosingCosts
	c.CashLeftInDeal = c.TotalProjectCost - c.NetRefinanceProceeds

	refinanceTerm := in.RefinanceTermYears
	if refinanceTerm <= 0 {
		refinanceTerm = constants.DefaultRefinanceTermYears
	}
	c.RefinanceMonthlyPayment = amortization.MonthlyPayment(c.RefinanceLoanAmount, in.RefinanceRate, refinanceTerm)

	c.GrossMonthlyIncome = in.PostRefiMonthlyRent + in.PostRefiOtherIncome
	vacancyLoss := mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.VacancyRate)
	variableExpenses := mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.MaintenanceRate) +
		mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.ManagementRate) +
		mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.CapexRate)
	fixedExpenses := in.MonthlyTaxes + in.MonthlyInsurance + in.MonthlyUtilities +
		in.MonthlyHOA + in.MonthlyMisc

	c.MonthlyOperatingExpenses = vacancyLoss + variableExpenses + fixedExpenses
	c.MonthlyNetOperatingIncome = c.GrossMonthlyIncome - c.MonthlyOperatingExpenses
	c.MonthlyCashFlowPostRefi = c.MonthlyNetOperatingIncome - c.RefinanceMonthlyPayment
	c.AnnualCashFlowPostRefi = c.MonthlyCashFlowPostRefi * constants.MonthsPerYear

	if c.CashLeftInDeal <= 0 {
		// All invested capital recovered at refinance; ROI has no finite
		// denominator and is reported through the flag instead.
		c.IsInfiniteReturn = true
	} else {
		c.ReturnOnInvestment = c.AnnualCashFlowPostRefi / c.CashLeftInDeal * constants.PercentageMultiplier
	}

	return c
}
