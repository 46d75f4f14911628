package amortization

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRate    float64
		termYears     int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Standard 30-year mortgage",
			principal:     240000,
			annualRate:    6.0,
			termYears:     30,
			expectedRange: []float64{1430, 1450}, // Around $1439
		},
		{
			name:          "15-year loan",
			principal:     100000,
			annualRate:    5.0,
			termYears:     15,
			expectedRange: []float64{785, 795}, // Around $791
		},
		{
			name:          "Zero interest loan",
			principal:     12000,
			annualRate:    0.0,
			termYears:     5,
			expectedRange: []float64{200, 200}, // Exactly $200
		},
		{
			name:          "Zero principal",
			principal:     0,
			annualRate:    5.0,
			termYears:     30,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Zero term",
			principal:     50000,
			annualRate:    5.0,
			termYears:     0,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "High interest loan",
			principal:     10000,
			annualRate:    18.0,
			termYears:     3,
			expectedRange: []float64{360, 380}, // Around $372
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.principal, tt.annualRate, tt.termYears)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		annualRate   float64
		termYears    int
		paymentsMade int
		expected     float64
		tolerance    float64
	}{
		{
			name:         "No payments made",
			principal:    200000,
			annualRate:   5.0,
			termYears:    30,
			paymentsMade: 0,
			expected:     200000,
			tolerance:    0.01,
		},
		{
			name:         "Loan maturity is exactly zero",
			principal:    200000,
			annualRate:   5.0,
			termYears:    30,
			paymentsMade: 360,
			expected:     0,
			tolerance:    0,
		},
		{
			name:         "Beyond maturity clamps to zero",
			principal:    200000,
			annualRate:   5.0,
			termYears:    30,
			paymentsMade: 400,
			expected:     0,
			tolerance:    0,
		},
		{
			name:         "Zero interest midway",
			principal:    120000,
			annualRate:   0,
			termYears:    10,
			paymentsMade: 60,
			expected:     60000,
			tolerance:    0.01,
		},
		{
			name:         "Halfway through a 30-year note still majority owed",
			principal:    100000,
			annualRate:   6.0,
			termYears:    30,
			paymentsMade: 180,
			expected:     71048.84,
			tolerance:    1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RemainingBalance(tt.principal, tt.annualRate, tt.termYears, tt.paymentsMade)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("RemainingBalance() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

// The principal portions recovered from successive remaining-balance calls
// must sum back to the original principal, and the balance must never
// increase between payments.
func TestAmortizationRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		termYears  int
	}{
		{"30-year at 5 percent", 80000, 5.0, 30},
		{"15-year at 7.25 percent", 250000, 7.25, 15},
		{"5-year at 12 percent", 15000, 12.0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			termMonths := tt.termYears * 12
			previous := RemainingBalance(tt.principal, tt.annualRate, tt.termYears, 0)
			totalPrincipal := 0.0
			for k := 1; k <= termMonths; k++ {
				current := RemainingBalance(tt.principal, tt.annualRate, tt.termYears, k)
				if current > previous {
					t.Fatalf("balance increased at payment %d: %.4f > %.4f", k, current, previous)
				}
				if current < 0 {
					t.Fatalf("negative balance at payment %d: %.4f", k, current)
				}
				totalPrincipal += previous - current
				previous = current
			}
			if previous != 0 {
				t.Errorf("final balance = %.6f, expected exactly 0", previous)
			}
			if math.Abs(totalPrincipal-tt.principal) > 0.01 {
				t.Errorf("principal portions sum to %.4f, expected %.4f", totalPrincipal, tt.principal)
			}
		})
	}
}

func TestInterestOnlyPayment(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		expected   float64
	}{
		{"Seller-financing scenario", 160000, 6.0, 800.0},
		{"Private money note", 50000, 10.0, 416.67},
		{"Zero rate", 50000, 0, 0},
		{"Zero principal", 0, 8.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InterestOnlyPayment(tt.principal, tt.annualRate)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("InterestOnlyPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}
