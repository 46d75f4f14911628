// Package engine implements the deal valuation calculators. Every calculator
// is a pure function from an input record to an output record; invocations
// are independent and the same input always produces the same output.
package engine

// Financials holds the acquisition and operating inputs for a buy-and-hold
// rental deal. All rate fields are percentages in [0,100]; MonthlyRents has
// one entry per unit.
type Financials struct {
	PurchasePrice      float64   `json:"purchasePrice"`
	RehabCost          float64   `json:"rehabCost"`
	DownPaymentPercent float64   `json:"downPaymentPercent"`
	MonthlyRents       []float64 `json:"monthlyRents"`

	// Variable expense rates, applied to gross annual rent
	VacancyRate     float64 `json:"vacancyRate"`
	MaintenanceRate float64 `json:"maintenanceRate"`
	ManagementRate  float64 `json:"managementRate"`
	CapexRate       float64 `json:"capexRate"`

	// Fixed monthly operating costs
	MonthlyTaxes     float64 `json:"monthlyTaxes"`
	MonthlyInsurance float64 `json:"monthlyInsurance"`
	MonthlyUtilities float64 `json:"monthlyUtilities"`
	MonthlyHOA       float64 `json:"monthlyHOA"`
	MonthlyMisc      float64 `json:"monthlyMisc"`

	// Loan terms
	LoanInterestRate float64 `json:"loanInterestRate"`
	LoanTermYears    int     `json:"loanTermYears"`

	// Closing costs
	OriginationFeePercent float64 `json:"originationFeePercent"`
	AppraisalFee          float64 `json:"appraisalFee"`
	InspectionFee         float64 `json:"inspectionFee"`
	TitleFees             float64 `json:"titleFees"`
	OtherClosingFees      float64 `json:"otherClosingFees"`

	// Itemized seller credits, each reducing cash to close
	SellerCreditRents           float64 `json:"sellerCreditRents"`
	SellerCreditSecurityDeposit float64 `json:"sellerCreditSecurityDeposit"`
	SellerCreditMisc            float64 `json:"sellerCreditMisc"`
}

// GrossMonthlyRent sums the per-unit rents.
func (f Financials) GrossMonthlyRent() float64 {
	total := 0.0
	for _, rent := range f.MonthlyRents {
		total += rent
	}
	return total
}

// CalculatedMetrics is the output of the rental metrics calculator, derived
// solely from a Financials record.
type CalculatedMetrics struct {
	DownPayment        float64 `json:"downPayment"`
	LoanAmount         float64 `json:"loanAmount"`
	TotalClosingCosts  float64 `json:"totalClosingCosts"`
	TotalSellerCredits float64 `json:"totalSellerCredits"`
	// TotalCashToClose may be negative when seller credits exceed the cash
	// required; that is a reportable condition, not an error.
	TotalCashToClose float64 `json:"totalCashToClose"`

	GrossAnnualRent        float64 `json:"grossAnnualRent"`
	EffectiveGrossIncome   float64 `json:"effectiveGrossIncome"`
	TotalOperatingExpenses float64 `json:"totalOperatingExpenses"`
	NetOperatingIncome     float64 `json:"netOperatingIncome"`

	MonthlyDebtService float64 `json:"monthlyDebtService"`
	AnnualDebtService  float64 `json:"annualDebtService"`

	CapRate          float64 `json:"capRate"`
	AllInCapRate     float64 `json:"allInCapRate"`
	CashOnCashReturn float64 `json:"cashOnCashReturn"`

	// DSCR is meaningless on an all-cash deal; DSCRApplicable reports
	// whether there is any debt service to cover.
	DSCR           float64 `json:"dscr"`
	DSCRApplicable bool    `json:"dscrApplicable"`

	MonthlyCashFlow       float64 `json:"monthlyCashFlow"`
	MonthlyCashFlowNoDebt float64 `json:"monthlyCashFlowNoDebt"`
	AnnualCashFlow        float64 `json:"annualCashFlow"`
	AnnualCashFlowNoDebt  float64 `json:"annualCashFlowNoDebt"`
}

// ProjectionAssumptions holds the forward-looking growth rates for the
// 30-year projection.
type ProjectionAssumptions struct {
	AnnualAppreciationRate  float64 `json:"annualAppreciationRate"`
	AnnualRentGrowthRate    float64 `json:"annualRentGrowthRate"`
	AnnualExpenseGrowthRate float64 `json:"annualExpenseGrowthRate"`
}

// ProjectionYear is one row of the 30-year projection. All monetary fields
// are rounded to whole currency units at emission.
type ProjectionYear struct {
	Year               int     `json:"year"`
	PropertyValue      float64 `json:"propertyValue"`
	LoanBalance        float64 `json:"loanBalance"`
	Equity             float64 `json:"equity"`
	GrossIncome        float64 `json:"grossIncome"`
	OperatingExpenses  float64 `json:"operatingExpenses"`
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	DebtService        float64 `json:"debtService"`
	CashFlow           float64 `json:"cashFlow"`

	CumulativeCashFlow         float64 `json:"cumulativeCashFlow"`
	CumulativeAppreciation     float64 `json:"cumulativeAppreciation"`
	CumulativePrincipalPaydown float64 `json:"cumulativePrincipalPaydown"`
	TotalReturn                float64 `json:"totalReturn"`
}
