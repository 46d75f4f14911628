package engine

import (
	"math"
	"testing"
)

func baselineFinancials() Financials {
	return Financials{
		PurchasePrice:               100000,
		DownPaymentPercent:          20,
		MonthlyRents:                []float64{1000},
		VacancyRate:                 5,
		MaintenanceRate:             5,
		ManagementRate:              10,
		CapexRate:                   5,
		MonthlyTaxes:                100,
		MonthlyInsurance:            50,
		LoanInterestRate:            5,
		LoanTermYears:               30,
		SellerCreditRents:           1000,
		SellerCreditSecurityDeposit: 500,
		SellerCreditMisc:            200,
	}
}

func TestComputeRentalMetricsBaseline(t *testing.T) {
	m := ComputeRentalMetrics(baselineFinancials())

	if m.DownPayment != 20000 {
		t.Errorf("DownPayment = %.2f, expected 20000", m.DownPayment)
	}
	if m.LoanAmount != 80000 {
		t.Errorf("LoanAmount = %.2f, expected 80000", m.LoanAmount)
	}
	if m.TotalClosingCosts != 0 {
		t.Errorf("TotalClosingCosts = %.2f, expected 0", m.TotalClosingCosts)
	}
	if m.TotalSellerCredits != 1700 {
		t.Errorf("TotalSellerCredits = %.2f, expected 1700", m.TotalSellerCredits)
	}
	if m.TotalCashToClose != 18300 {
		t.Errorf("TotalCashToClose = %.2f, expected 18300", m.TotalCashToClose)
	}
	if m.GrossAnnualRent != 12000 {
		t.Errorf("GrossAnnualRent = %.2f, expected 12000", m.GrossAnnualRent)
	}
	if m.EffectiveGrossIncome != 11400 {
		t.Errorf("EffectiveGrossIncome = %.2f, expected 11400", m.EffectiveGrossIncome)
	}
	// 20% variable off gross rent plus $150/month fixed
	if m.TotalOperatingExpenses != 4200 {
		t.Errorf("TotalOperatingExpenses = %.2f, expected 4200", m.TotalOperatingExpenses)
	}
	if m.NetOperatingIncome != 7200 {
		t.Errorf("NetOperatingIncome = %.2f, expected 7200", m.NetOperatingIncome)
	}
	if math.Abs(m.MonthlyDebtService-429.46) > 0.01 {
		t.Errorf("MonthlyDebtService = %.2f, expected 429.46", m.MonthlyDebtService)
	}
	if math.Abs(m.CapRate-7.2) > 1e-9 {
		t.Errorf("CapRate = %.4f, expected 7.2", m.CapRate)
	}
	if math.Abs(m.AllInCapRate-7.2) > 1e-9 {
		t.Errorf("AllInCapRate = %.4f, expected 7.2", m.AllInCapRate)
	}
	if !m.DSCRApplicable {
		t.Error("expected DSCR to be applicable on a financed deal")
	}
	if math.Abs(m.DSCR-7200/m.AnnualDebtService) > 1e-9 {
		t.Errorf("DSCR = %.4f, expected %.4f", m.DSCR, 7200/m.AnnualDebtService)
	}
	expectedCoC := (7200 - m.AnnualDebtService) / 18300 * 100
	if math.Abs(m.CashOnCashReturn-expectedCoC) > 1e-9 {
		t.Errorf("CashOnCashReturn = %.4f, expected %.4f", m.CashOnCashReturn, expectedCoC)
	}
}

// Variable operating costs are based on gross rent rather than effective
// income; changing the vacancy rate must not change them.
func TestComputeRentalMetricsVariableExpenseBase(t *testing.T) {
	low := baselineFinancials()
	low.VacancyRate = 0
	high := baselineFinancials()
	high.VacancyRate = 50

	lowMetrics := ComputeRentalMetrics(low)
	highMetrics := ComputeRentalMetrics(high)

	if lowMetrics.TotalOperatingExpenses != highMetrics.TotalOperatingExpenses {
		t.Errorf("operating expenses moved with vacancy: %.2f vs %.2f",
			lowMetrics.TotalOperatingExpenses, highMetrics.TotalOperatingExpenses)
	}
}

func TestComputeRentalMetricsVacancyMonotonicity(t *testing.T) {
	previousNOI := math.Inf(1)
	previousCashFlow := math.Inf(1)
	for _, vacancy := range []float64{0, 5, 10, 25, 50} {
		f := baselineFinancials()
		f.VacancyRate = vacancy
		m := ComputeRentalMetrics(f)
		if m.NetOperatingIncome >= previousNOI {
			t.Errorf("NOI did not strictly decrease at vacancy %.0f%%", vacancy)
		}
		if m.AnnualCashFlow >= previousCashFlow {
			t.Errorf("cash flow did not strictly decrease at vacancy %.0f%%", vacancy)
		}
		previousNOI = m.NetOperatingIncome
		previousCashFlow = m.AnnualCashFlow
	}
}

func TestComputeRentalMetricsDownPaymentMonotonicity(t *testing.T) {
	previousLoan := math.Inf(1)
	previousPayment := math.Inf(1)
	for _, downPercent := range []float64{0, 20, 50, 80, 100} {
		f := baselineFinancials()
		f.DownPaymentPercent = downPercent
		m := ComputeRentalMetrics(f)
		if m.LoanAmount >= previousLoan {
			t.Errorf("loan amount did not strictly decrease at %.0f%% down", downPercent)
		}
		if m.MonthlyDebtService >= previousPayment {
			t.Errorf("debt service did not strictly decrease at %.0f%% down", downPercent)
		}
		previousLoan = m.LoanAmount
		previousPayment = m.MonthlyDebtService
	}

	f := baselineFinancials()
	f.DownPaymentPercent = 100
	m := ComputeRentalMetrics(f)
	if m.MonthlyDebtService != 0 {
		t.Errorf("MonthlyDebtService at 100%% down = %.2f, expected 0", m.MonthlyDebtService)
	}
	if m.DSCRApplicable {
		t.Error("expected DSCR to be not applicable on an all-cash deal")
	}
}

func TestComputeRentalMetricsDegenerateInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Financials)
		check  func(*testing.T, CalculatedMetrics)
	}{
		{
			name:   "Zero purchase price",
			mutate: func(f *Financials) { f.PurchasePrice = 0 },
			check: func(t *testing.T, m CalculatedMetrics) {
				if m.CapRate != 0 {
					t.Errorf("CapRate = %.2f, expected 0", m.CapRate)
				}
			},
		},
		{
			name:   "Zero rent",
			mutate: func(f *Financials) { f.MonthlyRents = []float64{0} },
			check: func(t *testing.T, m CalculatedMetrics) {
				if m.GrossAnnualRent != 0 {
					t.Errorf("GrossAnnualRent = %.2f, expected 0", m.GrossAnnualRent)
				}
				if m.NetOperatingIncome != -1800 {
					t.Errorf("NetOperatingIncome = %.2f, expected -1800 (fixed costs only)", m.NetOperatingIncome)
				}
			},
		},
		{
			name: "Credits exceed cash to close",
			mutate: func(f *Financials) {
				f.SellerCreditMisc = 50000
			},
			check: func(t *testing.T, m CalculatedMetrics) {
				if m.TotalCashToClose >= 0 {
					t.Errorf("TotalCashToClose = %.2f, expected negative", m.TotalCashToClose)
				}
				if m.CashOnCashReturn != 0 {
					t.Errorf("CashOnCashReturn = %.2f, expected 0 for non-positive cash to close", m.CashOnCashReturn)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := baselineFinancials()
			tt.mutate(&f)
			tt.check(t, ComputeRentalMetrics(f))
		})
	}
}

func TestComputeRentalMetricsOriginationFee(t *testing.T) {
	f := baselineFinancials()
	f.OriginationFeePercent = 1
	f.AppraisalFee = 500
	f.TitleFees = 1200

	m := ComputeRentalMetrics(f)

	// 1% of the 80000 loan plus fixed fees
	if m.TotalClosingCosts != 2500 {
		t.Errorf("TotalClosingCosts = %.2f, expected 2500", m.TotalClosingCosts)
	}
	if m.TotalCashToClose != 20000+2500-1700 {
		t.Errorf("TotalCashToClose = %.2f, expected 20800", m.TotalCashToClose)
	}
}
