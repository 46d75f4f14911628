// Package amortization provides the fixed-rate loan math shared by every
// strategy calculator and the projection engine.
package amortization

import (
	"math"

	"github.com/itpenciles/deal-engine/pkg/constants"
)

// MonthlyPayment calculates the constant monthly payment for a fixed-rate
// loan using the standard annuity formula. A non-positive principal or term
// yields 0; a non-positive rate degrades to a straight-line payment.
func MonthlyPayment(principal, annualInterestRate float64, termYears int) float64 {
	termMonths := termYears * constants.MonthsPerYear
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualInterestRate <= 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// RemainingBalance calculates the principal still owed after paymentsMade
// monthly payments using the closed-form amortization-balance formula.
// The result clamps to 0 at loan maturity so machine error near the final
// payment never surfaces as a negative balance.
func RemainingBalance(principal, annualInterestRate float64, termYears, paymentsMade int) float64 {
	termMonths := termYears * constants.MonthsPerYear
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if paymentsMade <= 0 {
		return principal
	}
	if paymentsMade >= termMonths {
		return 0
	}
	if annualInterestRate <= 0 {
		return principal * float64(termMonths-paymentsMade) / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	powerN := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	powerK := math.Pow(1.00+periodicInterestRate, float64(paymentsMade))
	balance := principal * (powerN - powerK) / (powerN - 1.00)
	if balance < 0 {
		return 0
	}
	return balance
}

// InterestOnlyPayment calculates the monthly payment on an interest-only
// note (private money, interest-only seller carry, rehab-phase carry).
func InterestOnlyPayment(principal, annualInterestRate float64) float64 {
	if principal <= 0 || annualInterestRate <= 0 {
		return 0
	}
	return principal * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
