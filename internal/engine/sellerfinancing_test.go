package engine

import (
	"math"
	"testing"

	"github.com/itpenciles/deal-engine/pkg/constants"
)

func TestComputeSellerFinancingInterestOnly(t *testing.T) {
	in := SellerFinancingInputs{
		PurchasePrice: 200000,
		DownPayment:   40000,
		InterestRate:  6,
		PaymentType:   constants.PaymentTypeInterestOnly,
		MarketRent:    1500,
	}

	c := ComputeSellerFinancing(in)

	if c.LoanAmount != 160000 {
		t.Errorf("LoanAmount = %.2f, expected 160000", c.LoanAmount)
	}
	// 160000 * 6% / 12, exactly
	if c.MonthlyPayment != 800 {
		t.Errorf("MonthlyPayment = %.2f, expected exactly 800", c.MonthlyPayment)
	}
	if c.MonthlySpread != 700 {
		t.Errorf("MonthlySpread = %.2f, expected 700", c.MonthlySpread)
	}
	if math.Abs(c.ReturnOnDownPayment-21) > 1e-9 {
		t.Errorf("ReturnOnDownPayment = %.2f, expected 21", c.ReturnOnDownPayment)
	}
}

func TestComputeSellerFinancingAmortized(t *testing.T) {
	in := SellerFinancingInputs{
		PurchasePrice: 200000,
		DownPayment:   40000,
		InterestRate:  6,
		TermYears:     30,
		PaymentType:   constants.PaymentTypeAmortization,
		MarketRent:    1500,
	}

	c := ComputeSellerFinancing(in)

	if math.Abs(c.MonthlyPayment-959.28) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, expected ~959.28", c.MonthlyPayment)
	}
	if math.Abs(c.MonthlySpread-(1500-c.MonthlyPayment)) > 1e-9 {
		t.Errorf("MonthlySpread = %.2f, expected market rent minus payment", c.MonthlySpread)
	}
}

func TestComputeSellerFinancingFullAccounting(t *testing.T) {
	in := SellerFinancingInputs{
		PurchasePrice:    200000,
		DownPayment:      40000,
		InterestRate:     6,
		PaymentType:      constants.PaymentTypeInterestOnly,
		MarketRent:       1500,
		VacancyRate:      5,
		MaintenanceRate:  5,
		MonthlyTaxes:     150,
		MonthlyInsurance: 75,
	}

	c := ComputeSellerFinancing(in)

	// 10% of gross income plus 225 fixed
	if math.Abs(c.MonthlyOperatingExpenses-375) > 0.01 {
		t.Errorf("MonthlyOperatingExpenses = %.2f, expected 375", c.MonthlyOperatingExpenses)
	}
	if math.Abs(c.MonthlyNetOperatingIncome-1125) > 0.01 {
		t.Errorf("MonthlyNetOperatingIncome = %.2f, expected 1125", c.MonthlyNetOperatingIncome)
	}
	if math.Abs(c.MonthlyCashFlow-325) > 0.01 {
		t.Errorf("MonthlyCashFlow = %.2f, expected 325", c.MonthlyCashFlow)
	}
	if math.Abs(c.CashOnCashReturn-9.75) > 0.01 {
		t.Errorf("CashOnCashReturn = %.2f, expected 9.75", c.CashOnCashReturn)
	}
}

func TestComputeSellerFinancingZeroDownPayment(t *testing.T) {
	in := SellerFinancingInputs{
		PurchasePrice: 150000,
		DownPayment:   0,
		InterestRate:  7,
		PaymentType:   constants.PaymentTypeInterestOnly,
		MarketRent:    1400,
	}

	c := ComputeSellerFinancing(in)

	if c.ReturnOnDownPayment != 0 {
		t.Errorf("ReturnOnDownPayment = %.2f, expected 0 with no down payment", c.ReturnOnDownPayment)
	}
	if c.CashOnCashReturn != 0 {
		t.Errorf("CashOnCashReturn = %.2f, expected 0 with no down payment", c.CashOnCashReturn)
	}
}
