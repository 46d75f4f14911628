// Package validation provides boundary validation for calculator inputs.
// Malformed input is rejected here before it reaches the calculators; the
// calculators themselves never fail on business-domain edge cases.
package validation

import (
	"fmt"

	"github.com/itpenciles/deal-engine/internal/engine"
	"github.com/itpenciles/deal-engine/pkg/constants"
)

type rateField struct {
	name  string
	value float64
}

type amountField struct {
	name  string
	value float64
}

func checkRates(fields []rateField) error {
	for _, f := range fields {
		if f.value < 0 || f.value > 100 {
			return fmt.Errorf("%s must be a percentage between 0 and 100, got %.2f", f.name, f.value)
		}
	}
	return nil
}

func checkAmounts(fields []amountField) error {
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %.2f", f.name, f.value)
		}
	}
	return nil
}

// ValidateFinancials checks a rental Financials record.
func ValidateFinancials(f engine.Financials) error {
	if len(f.MonthlyRents) == 0 {
		return fmt.Errorf("monthlyRents must contain at least one unit")
	}
	for i, rent := range f.MonthlyRents {
		if rent < 0 {
			return fmt.Errorf("monthlyRents[%d] must not be negative, got %.2f", i, rent)
		}
	}
	if f.LoanTermYears < 0 {
		return fmt.Errorf("loanTermYears must not be negative, got %d", f.LoanTermYears)
	}

	if err := checkRates([]rateField{
		{"downPaymentPercent", f.DownPaymentPercent},
		{"vacancyRate", f.VacancyRate},
		{"maintenanceRate", f.MaintenanceRate},
		{"managementRate", f.ManagementRate},
		{"capexRate", f.CapexRate},
		{"loanInterestRate", f.LoanInterestRate},
		{"originationFeePercent", f.OriginationFeePercent},
	}); err != nil {
		return err
	}

	return checkAmounts([]amountField{
		{"purchasePrice", f.PurchasePrice},
		{"rehabCost", f.RehabCost},
		{"monthlyTaxes", f.MonthlyTaxes},
		{"monthlyInsurance", f.MonthlyInsurance},
		{"monthlyUtilities", f.MonthlyUtilities},
		{"monthlyHOA", f.MonthlyHOA},
		{"monthlyMisc", f.MonthlyMisc},
		{"appraisalFee", f.AppraisalFee},
		{"inspectionFee", f.InspectionFee},
		{"titleFees", f.TitleFees},
		{"otherClosingFees", f.OtherClosingFees},
		{"sellerCreditRents", f.SellerCreditRents},
		{"sellerCreditSecurityDeposit", f.SellerCreditSecurityDeposit},
		{"sellerCreditMisc", f.SellerCreditMisc},
	})
}

// ValidateWholesaleInputs checks a wholesale input record.
func ValidateWholesaleInputs(in engine.WholesaleInputs) error {
	if err := checkRates([]rateField{
		{"maoPercent", in.MAOPercent},
	}); err != nil {
		return err
	}
	return checkAmounts([]amountField{
		{"afterRepairValue", in.AfterRepairValue},
		{"estimatedRehab", in.EstimatedRehab},
		{"closingCost", in.ClosingCost},
		{"wholesaleFeeGoal", in.WholesaleFeeGoal},
		{"sellerAskingPrice", in.SellerAskingPrice},
	})
}

// ValidateSubjectToInputs checks a subject-to input record.
func ValidateSubjectToInputs(in engine.SubjectToInputs) error {
	if in.ExitPlanType != "" &&
		in.ExitPlanType != constants.ExitPlanFlip &&
		in.ExitPlanType != constants.ExitPlanRental {
		return fmt.Errorf("exitPlanType must be %q or %q, got %q",
			constants.ExitPlanFlip, constants.ExitPlanRental, in.ExitPlanType)
	}
	if in.SellerSecondTermYears < 0 {
		return fmt.Errorf("sellerSecondTermYears must not be negative, got %d", in.SellerSecondTermYears)
	}

	if err := checkRates([]rateField{
		{"sellerSecondRate", in.SellerSecondRate},
		{"privateMoneyRate", in.PrivateMoneyRate},
		{"vacancyRate", in.VacancyRate},
		{"maintenanceRate", in.MaintenanceRate},
		{"managementRate", in.ManagementRate},
		{"capexRate", in.CapexRate},
		{"resaleCostPercent", in.ResaleCostPercent},
		{"agentCommissionPercent", in.AgentCommissionPercent},
	}); err != nil {
		return err
	}

	return checkAmounts([]amountField{
		{"existingLoanBalance", in.ExistingLoanBalance},
		{"existingMonthlyPITI", in.ExistingMonthlyPITI},
		{"reinstatementAmount", in.ReinstatementAmount},
		{"sellerCashNeeded", in.SellerCashNeeded},
		{"closingCosts", in.ClosingCosts},
		{"liensAndJudgments", in.LiensAndJudgments},
		{"pastDueHOA", in.PastDueHOA},
		{"pastDueTaxes", in.PastDueTaxes},
		{"escrowShortage", in.EscrowShortage},
		{"wholesaleFee", in.WholesaleFee},
		{"trustSetupFees", in.TrustSetupFees},
		{"sellerSecondAmount", in.SellerSecondAmount},
		{"privateMoneyAmount", in.PrivateMoneyAmount},
		{"marketRent", in.MarketRent},
		{"otherMonthlyIncome", in.OtherMonthlyIncome},
		{"projectedSalePrice", in.ProjectedSalePrice},
	})
}

// ValidateSellerFinancingInputs checks a seller-financing input record.
func ValidateSellerFinancingInputs(in engine.SellerFinancingInputs) error {
	if in.PaymentType != "" &&
		in.PaymentType != constants.PaymentTypeAmortization &&
		in.PaymentType != constants.PaymentTypeInterestOnly {
		return fmt.Errorf("paymentType must be %q or %q, got %q",
			constants.PaymentTypeAmortization, constants.PaymentTypeInterestOnly, in.PaymentType)
	}
	if in.TermYears < 0 {
		return fmt.Errorf("termYears must not be negative, got %d", in.TermYears)
	}
	if in.DownPayment > in.PurchasePrice {
		return fmt.Errorf("downPayment %.2f exceeds purchasePrice %.2f", in.DownPayment, in.PurchasePrice)
	}

	if err := checkRates([]rateField{
		{"interestRate", in.InterestRate},
		{"vacancyRate", in.VacancyRate},
		{"maintenanceRate", in.MaintenanceRate},
		{"managementRate", in.ManagementRate},
		{"capexRate", in.CapexRate},
	}); err != nil {
		return err
	}

	return checkAmounts([]amountField{
		{"purchasePrice", in.PurchasePrice},
		{"downPayment", in.DownPayment},
		{"marketRent", in.MarketRent},
		{"otherMonthlyIncome", in.OtherMonthlyIncome},
		{"monthlyTaxes", in.MonthlyTaxes},
		{"monthlyInsurance", in.MonthlyInsurance},
		{"monthlyUtilities", in.MonthlyUtilities},
		{"monthlyHOA", in.MonthlyHOA},
		{"monthlyMisc", in.MonthlyMisc},
	})
}

// ValidateBrrrrInputs checks a BRRRR input record.
func ValidateBrrrrInputs(in engine.BrrrrInputs) error {
	if in.RehabMonths < 0 {
		return fmt.Errorf("rehabMonths must not be negative, got %d", in.RehabMonths)
	}
	if in.RefinanceTermYears < 0 {
		return fmt.Errorf("refinanceTermYears must not be negative, got %d", in.RefinanceTermYears)
	}

	if err := checkRates([]rateField{
		{"initialLoanRate", in.InitialLoanRate},
		{"initialLoanPointsPercent", in.InitialLoanPointsPercent},
		{"refinanceLTV", in.RefinanceLTV},
		{"refinanceRate", in.RefinanceRate},
		{"vacancyRate", in.VacancyRate},
		{"maintenanceRate", in.MaintenanceRate},
		{"managementRate", in.ManagementRate},
		{"capexRate", in.CapexRate},
	}); err != nil {
		return err
	}

	return checkAmounts([]amountField{
		{"purchasePrice", in.PurchasePrice},
		{"monthlyHoldingCost", in.MonthlyHoldingCost},
		{"initialLoanAmount", in.InitialLoanAmount},
		{"otherLenderCharges", in.OtherLenderCharges},
		{"afterRepairValue", in.AfterRepairValue},
		{"refinanceClosingCosts", in.RefinanceClosingCosts},
		{"postRefiMonthlyRent", in.PostRefiMonthlyRent},
		{"postRefiOtherIncome", in.PostRefiOtherIncome},
		{"monthlyTaxes", in.MonthlyTaxes},
		{"monthlyInsurance", in.MonthlyInsurance},
		{"monthlyUtilities", in.MonthlyUtilities},
		{"monthlyHOA", in.MonthlyHOA},
		{"monthlyMisc", in.MonthlyMisc},
	})
}

// ValidateAssumptions checks projection assumption rates.
func ValidateAssumptions(a engine.ProjectionAssumptions) error {
	return checkRates([]rateField{
		{"annualAppreciationRate", a.AnnualAppreciationRate},
		{"annualRentGrowthRate", a.AnnualRentGrowthRate},
		{"annualExpenseGrowthRate", a.AnnualExpenseGrowthRate},
	})
}
