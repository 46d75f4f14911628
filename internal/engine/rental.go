package engine

import (
	"github.com/itpenciles/deal-engine/pkg/amortization"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"github.com/itpenciles/deal-engine/pkg/mathutil"
)

// ComputeRentalMetrics derives the full buy-and-hold metric set from a
// Financials record. Degenerate inputs (zero rent, zero price, all-cash)
// degrade to 0 or a not-applicable flag; this function never fails.
func ComputeRentalMetrics(f Financials) CalculatedMetrics {
	var m CalculatedMetrics

	m.DownPayment = mathutil.ApplyPercentage(f.PurchasePrice, f.DownPaymentPercent)
	m.LoanAmount = f.PurchasePrice - m.DownPayment

	originationFee := mathutil.ApplyPercentage(m.LoanAmount, f.OriginationFeePercent)
	m.TotalClosingCosts = originationFee + f.AppraisalFee + f.InspectionFee + f.TitleFees + f.OtherClosingFees

	m.TotalSellerCredits = f.SellerCreditRents + f.SellerCreditSecurityDeposit + f.SellerCreditMisc
	m.TotalCashToClose = m.DownPayment + f.RehabCost + m.TotalClosingCosts - m.TotalSellerCredits

	m.GrossAnnualRent = f.GrossMonthlyRent() * constants.MonthsPerYear
	vacancyLoss := mathutil.ApplyPercentage(m.GrossAnnualRent, f.VacancyRate)
	m.EffectiveGrossIncome = m.GrossAnnualRent - vacancyLoss

	// Maintenance, management, and capex are percentages of gross annual
	// rent, not effective income. Underwriting policy, not an oversight.
	variableExpenses := mathutil.ApplyPercentage(m.GrossAnnualRent, f.MaintenanceRate) +
		mathutil.ApplyPercentage(m.GrossAnnualRent, f.ManagementRate) +
		mathutil.ApplyPercentage(m.GrossAnnualRent, f.CapexRate)

	fixedExpenses := (f.MonthlyTaxes + f.MonthlyInsurance + f.MonthlyUtilities +
		f.MonthlyHOA + f.MonthlyMisc) * constants.MonthsPerYear

	m.TotalOperatingExpenses = variableExpenses + fixedExpenses
	m.NetOperatingIncome = m.EffectiveGrossIncome - m.TotalOperatingExpenses

	m.MonthlyDebtService = amortization.MonthlyPayment(m.LoanAmount, f.LoanInterestRate, f.LoanTermYears)
	m.AnnualDebtService = m.MonthlyDebtService * constants.MonthsPerYear

	m.CapRate = mathutil.SafePercentOf(m.NetOperatingIncome, f.PurchasePrice)
	m.AllInCapRate = mathutil.SafePercentOf(m.NetOperatingIncome, f.PurchasePrice+f.RehabCost)

	m.AnnualCashFlow = m.NetOperatingIncome - m.AnnualDebtService
	m.AnnualCashFlowNoDebt = m.NetOperatingIncome
	m.MonthlyCashFlow = m.AnnualCashFlow / constants.MonthsPerYear
	m.MonthlyCashFlowNoDebt = m.AnnualCashFlowNoDebt / constants.MonthsPerYear

	// Cash-on-cash is 0 when credits wipe out the cash to close; a negative
	// denominator would distort the ratio beyond usefulness.
	m.CashOnCashReturn = mathutil.SafePercentOf(m.AnnualCashFlow, m.TotalCashToClose)

	if m.AnnualDebtService > 0 {
		m.DSCR = m.NetOperatingIncome / m.AnnualDebtService
		m.DSCRApplicable = true
	}

	return m
}
