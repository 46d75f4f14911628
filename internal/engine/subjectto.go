package engine

import (
	"github.com/itpenciles/deal-engine/pkg/amortization"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"github.com/itpenciles/deal-engine/pkg/mathutil"
)

// SubjectToInputs holds the inputs for a subject-to (existing loan
// assumption) deal, including optional seller-second and private-money
// notes and the planned exit.
type SubjectToInputs struct {
	ExistingLoanBalance float64 `json:"existingLoanBalance"`
	ExistingMonthlyPITI float64 `json:"existingMonthlyPITI"`

	// Entry cash components
	ReinstatementAmount float64 `json:"reinstatementAmount"`
	SellerCashNeeded    float64 `json:"sellerCashNeeded"`
	ClosingCosts        float64 `json:"closingCosts"`
	LiensAndJudgments   float64 `json:"liensAndJudgments"`
	PastDueHOA          float64 `json:"pastDueHOA"`
	PastDueTaxes        float64 `json:"pastDueTaxes"`
	EscrowShortage      float64 `json:"escrowShortage"`
	WholesaleFee        float64 `json:"wholesaleFee"`
	TrustSetupFees      float64 `json:"trustSetupFees"`

	// Seller-second note, amortized when rate and term are set
	SellerSecondAmount    float64 `json:"sellerSecondAmount"`
	SellerSecondRate      float64 `json:"sellerSecondRate"`
	SellerSecondTermYears int     `json:"sellerSecondTermYears"`

	// Private money, interest-only
	PrivateMoneyAmount float64 `json:"privateMoneyAmount"`
	PrivateMoneyRate   float64 `json:"privateMoneyRate"`

	// Operating income and expenses
	MarketRent         float64 `json:"marketRent"`
	OtherMonthlyIncome float64 `json:"otherMonthlyIncome"`
	VacancyRate        float64 `json:"vacancyRate"`
	MaintenanceRate    float64 `json:"maintenanceRate"`
	ManagementRate     float64 `json:"managementRate"`
	CapexRate          float64 `json:"capexRate"`
	MonthlyUtilities   float64 `json:"monthlyUtilities"`
	MonthlyHOA         float64 `json:"monthlyHOA"`
	MonthlyMisc        float64 `json:"monthlyMisc"`

	// Exit plan: "Flip" resells; anything else holds as a rental
	ExitPlanType           string  `json:"exitPlanType"`
	ProjectedSalePrice     float64 `json:"projectedSalePrice"`
	ResaleCostPercent      float64 `json:"resaleCostPercent"`
	AgentCommissionPercent float64 `json:"agentCommissionPercent"`
}

// SubjectToCalculations reports entry cash, monthly spread, and the
// exit-dependent profit projection for a subject-to deal.
type SubjectToCalculations struct {
	TotalEntryCash     float64 `json:"totalEntryCash"`
	MonthlyDebtService float64 `json:"monthlyDebtService"`

	GrossMonthlyIncome        float64 `json:"grossMonthlyIncome"`
	MonthlyOperatingExpenses  float64 `json:"monthlyOperatingExpenses"`
	MonthlyNetOperatingIncome float64 `json:"monthlyNetOperatingIncome"`

	MonthlyCashFlow  float64 `json:"monthlyCashFlow"`
	AnnualCashFlow   float64 `json:"annualCashFlow"`
	CashOnCashReturn float64 `json:"cashOnCashReturn"`

	ProjectedProfit    float64 `json:"projectedProfit"`
	ReturnOnInvestment float64 `json:"returnOnInvestment"`
}

// ComputeSubjectTo calculates entry cash, monthly spread, and exit metrics
// for a loan-assumption deal.
func ComputeSubjectTo(in SubjectToInputs) SubjectToCalculations {
	var c SubjectToCalculations

	c.TotalEntryCash = in.ReinstatementAmount + in.SellerCashNeeded + in.ClosingCosts +
		in.LiensAndJudgments + in.PastDueHOA + in.PastDueTaxes + in.EscrowShortage +
		in.WholesaleFee + in.TrustSetupFees

	sellerSecondPayment := amortization.MonthlyPayment(in.SellerSecondAmount, in.SellerSecondRate, in.SellerSecondTermYears)
	privateMoneyPayment := amortization.InterestOnlyPayment(in.PrivateMoneyAmount, in.PrivateMoneyRate)
	c.MonthlyDebtService = in.ExistingMonthlyPITI + sellerSecondPayment + privateMoneyPayment

	// Expense rates here apply to gross monthly income, unlike the rental
	// calculator's gross-rent base. The two strategies use different bases.
	c.GrossMonthlyIncome = in.MarketRent + in.OtherMonthlyIncome
	vacancyLoss := mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.VacancyRate)
	variableExpenses := mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.MaintenanceRate) +
		mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.ManagementRate) +
		mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.CapexRate)
	fixedExpenses := in.MonthlyUtilities + in.MonthlyHOA + in.MonthlyMisc

	c.MonthlyOperatingExpenses = vacancyLoss + variableExpenses + fixedExpenses
	c.MonthlyNetOperatingIncome = c.GrossMonthlyIncome - c.MonthlyOperatingExpenses

	c.MonthlyCashFlow = c.MonthlyNetOperatingIncome - c.MonthlyDebtService
	c.AnnualCashFlow = c.MonthlyCashFlow * constants.MonthsPerYear
	c.CashOnCashReturn = mathutil.SafePercentOf(c.AnnualCashFlow, c.TotalEntryCash)

	if in.ExitPlanType == constants.ExitPlanFlip {
		saleCosts := mathutil.ApplyPercentage(in.ProjectedSalePrice, in.ResaleCostPercent) +
			mathutil.ApplyPercentage(in.ProjectedSalePrice, in.AgentCommissionPercent)
		loanPayoffs := in.ExistingLoanBalance + in.SellerSecondAmount + in.PrivateMoneyAmount
		c.ProjectedProfit = in.ProjectedSalePrice - saleCosts - loanPayoffs - c.TotalEntryCash
		c.ReturnOnInvestment = mathutil.SafePercentOf(c.ProjectedProfit, c.TotalEntryCash)
	} else {
		c.ProjectedProfit = c.AnnualCashFlow
		c.ReturnOnInvestment = c.CashOnCashReturn
	}

	return c
}
