package engine

import (
	"github.com/itpenciles/deal-engine/pkg/amortization"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"github.com/itpenciles/deal-engine/pkg/mathutil"
)

// ProjectThirtyYears simulates property value, loan amortization, and
// operating cash flow over a fixed 30-year horizon. The full sequence is
// computed eagerly and returned ordered by year ascending.
//
// Appreciation compounds every year including year 1. Income and expense
// growth skip year 1 (which uses the base figures) and compound from year 2
// onward. Debt service is fixed from the original loan terms for the entire
// horizon. Intermediate state stays unrounded; each emitted row is rounded
// to whole currency units.
func ProjectThirtyYears(f Financials, a ProjectionAssumptions) []ProjectionYear {
	base := ComputeRentalMetrics(f)

	initialValue := f.PurchasePrice
	initialLoan := base.LoanAmount
	annualDebtService := base.AnnualDebtService

	value := initialValue
	income := base.GrossAnnualRent
	// Operating expenses here include vacancy loss so that income −
	// expenses matches the rental calculator's NOI.
	expenses := base.GrossAnnualRent - base.NetOperatingIncome

	appreciationFactor := 1 + a.AnnualAppreciationRate/constants.PercentageMultiplier
	rentGrowthFactor := 1 + a.AnnualRentGrowthRate/constants.PercentageMultiplier
	expenseGrowthFactor := 1 + a.AnnualExpenseGrowthRate/constants.PercentageMultiplier

	years := make([]ProjectionYear, 0, constants.ProjectionYears)
	cumulativeCashFlow := 0.0

	for y := 1; y <= constants.ProjectionYears; y++ {
		value *= appreciationFactor
		if y > 1 {
			income *= rentGrowthFactor
			expenses *= expenseGrowthFactor
		}

		balance := amortization.RemainingBalance(initialLoan, f.LoanInterestRate, f.LoanTermYears, y*constants.MonthsPerYear)

		noi := income - expenses
		cashFlow := noi - annualDebtService
		cumulativeCashFlow += cashFlow

		roundedValue := mathutil.RoundWhole(value)
		roundedBalance := mathutil.RoundWhole(balance)
		roundedCumCashFlow := mathutil.RoundWhole(cumulativeCashFlow)
		roundedCumAppreciation := mathutil.RoundWhole(value - initialValue)
		roundedCumPaydown := mathutil.RoundWhole(initialLoan - balance)

		years = append(years, ProjectionYear{
			Year:               y,
			PropertyValue:      roundedValue,
			LoanBalance:        roundedBalance,
			Equity:             roundedValue - roundedBalance,
			GrossIncome:        mathutil.RoundWhole(income),
			OperatingExpenses:  mathutil.RoundWhole(expenses),
			NetOperatingIncome: mathutil.RoundWhole(noi),
			DebtService:        mathutil.RoundWhole(annualDebtService),
			CashFlow:           mathutil.RoundWhole(cashFlow),

			CumulativeCashFlow:         roundedCumCashFlow,
			CumulativeAppreciation:     roundedCumAppreciation,
			CumulativePrincipalPaydown: roundedCumPaydown,
			TotalReturn:                roundedCumCashFlow + roundedCumAppreciation + roundedCumPaydown,
		})
	}

	return years
}
