package engine

import (
	"github.com/itpenciles/deal-engine/pkg/amortization"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"github.com/itpenciles/deal-engine/pkg/mathutil"
)

// SellerFinancingInputs holds the inputs for a seller-carried note deal.
// PaymentType selects between an amortized and an interest-only note.
type SellerFinancingInputs struct {
	PurchasePrice float64 `json:"purchasePrice"`
	DownPayment   float64 `json:"downPayment"`
	InterestRate  float64 `json:"interestRate"`
	TermYears     int     `json:"termYears"`
	PaymentType   string  `json:"paymentType"`

	// Operating income and expenses for the full-accounting variant
	MarketRent         float64 `json:"marketRent"`
	OtherMonthlyIncome float64 `json:"otherMonthlyIncome"`
	VacancyRate        float64 `json:"vacancyRate"`
	MaintenanceRate    float64 `json:"maintenanceRate"`
	ManagementRate     float64 `json:"managementRate"`
	CapexRate          float64 `json:"capexRate"`
	MonthlyTaxes       float64 `json:"monthlyTaxes"`
	MonthlyInsurance   float64 `json:"monthlyInsurance"`
	MonthlyUtilities   float64 `json:"monthlyUtilities"`
	MonthlyHOA         float64 `json:"monthlyHOA"`
	MonthlyMisc        float64 `json:"monthlyMisc"`
}

// SellerFinancingCalculations reports the note payment, the spread against
// market rent, and the fully-netted operating cash flow.
type SellerFinancingCalculations struct {
	LoanAmount     float64 `json:"loanAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`

	MonthlySpread       float64 `json:"monthlySpread"`
	ReturnOnDownPayment float64 `json:"returnOnDownPayment"`

	GrossMonthlyIncome        float64 `json:"grossMonthlyIncome"`
	MonthlyOperatingExpenses  float64 `json:"monthlyOperatingExpenses"`
	MonthlyNetOperatingIncome float64 `json:"monthlyNetOperatingIncome"`

	MonthlyCashFlow  float64 `json:"monthlyCashFlow"`
	AnnualCashFlow   float64 `json:"annualCashFlow"`
	CashOnCashReturn float64 `json:"cashOnCashReturn"`
}

// ComputeSellerFinancing calculates payment, spread, and operating metrics
// for a seller-financed purchase.
func ComputeSellerFinancing(in SellerFinancingInputs) SellerFinancingCalculations {
	var c SellerFinancingCalculations

	c.LoanAmount = in.PurchasePrice - in.DownPayment

	if in.PaymentType == constants.PaymentTypeInterestOnly {
		c.MonthlyPayment = amortization.InterestOnlyPayment(c.LoanAmount, in.InterestRate)
	} else {
		c.MonthlyPayment = amortization.MonthlyPayment(c.LoanAmount, in.InterestRate, in.TermYears)
	}

	c.MonthlySpread = in.MarketRent - c.MonthlyPayment
	c.ReturnOnDownPayment = mathutil.SafePercentOf(c.MonthlySpread*constants.MonthsPerYear, in.DownPayment)

	// Full accounting: net the operating expense model before comparing to
	// the seller payment. Same gross-income expense base as subject-to.
	c.GrossMonthlyIncome = in.MarketRent + in.OtherMonthlyIncome
	vacancyLoss := mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.VacancyRate)
	variableExpenses := mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.MaintenanceRate) +
		mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.ManagementRate) +
		mathutil.ApplyPercentage(c.GrossMonthlyIncome, in.CapexRate)
	fixedExpenses := in.MonthlyTaxes + in.MonthlyInsurance + in.MonthlyUtilities +
		in.MonthlyHOA + in.MonthlyMisc

	c.MonthlyOperatingExpenses = vacancyLoss + variableExpenses + fixedExpenses
	c.MonthlyNetOperatingIncome = c.GrossMonthlyIncome - c.MonthlyOperatingExpenses

	c.MonthlyCashFlow = c.MonthlyNetOperatingIncome - c.MonthlyPayment
	c.AnnualCashFlow = c.MonthlyCashFlow * constants.MonthsPerYear
	c.CashOnCashReturn = mathutil.SafePercentOf(c.AnnualCashFlow, in.DownPayment)

	return c
}
