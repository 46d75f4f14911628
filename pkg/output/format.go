// Package output provides utilities for formatting and displaying deal
// evaluation results.
package output

import (
	"fmt"
	"io"

	"github.com/itpenciles/deal-engine/internal/engine"
	"github.com/itpenciles/deal-engine/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report aggregates the outputs of every calculator that ran for a deal.
// Nil sections were not configured and are skipped.
type Report struct {
	DealName        string
	Rental          *engine.CalculatedMetrics
	Wholesale       *engine.WholesaleCalculations
	SubjectTo       *engine.SubjectToCalculations
	SellerFinancing *engine.SellerFinancingCalculations
	Brrrr           *engine.BrrrrCalculations
	Projection      []engine.ProjectionYear
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, r Report) {
	p := message.NewPrinter(language.English)

	if r.DealName != "" {
		fmt.Fprintf(w, "--- Results for deal %s ---\n", r.DealName)
	}

	if r.Rental != nil {
		m := r.Rental
		fmt.Fprintf(w, "\nRental metrics\n")
		fmt.Fprintf(w, "  Down payment        | %s\n", format.Currency(m.DownPayment))
		fmt.Fprintf(w, "  Loan amount         | %s\n", format.Currency(m.LoanAmount))
		fmt.Fprintf(w, "  Closing costs       | %s\n", format.Currency(m.TotalClosingCosts))
		fmt.Fprintf(w, "  Cash to close       | %s\n", format.Currency(m.TotalCashToClose))
		fmt.Fprintf(w, "  NOI (annual)        | %s\n", format.Currency(m.NetOperatingIncome))
		fmt.Fprintf(w, "  Debt service (mo)   | %s\n", format.Currency(m.MonthlyDebtService))
		fmt.Fprintf(w, "  Cap rate            | %s\n", format.Percent(m.CapRate))
		fmt.Fprintf(w, "  All-in cap rate     | %s\n", format.Percent(m.AllInCapRate))
		fmt.Fprintf(w, "  Cash-on-cash        | %s\n", format.Percent(m.CashOnCashReturn))
		if m.DSCRApplicable {
			fmt.Fprintf(w, "  DSCR                | %.2f\n", m.DSCR)
		} else {
			fmt.Fprintf(w, "  DSCR                | n/a\n")
		}
		fmt.Fprintf(w, "  Cash flow (mo)      | %s\n", format.Currency(m.MonthlyCashFlow))
	}

	if r.Wholesale != nil {
		c := r.Wholesale
		fmt.Fprintf(w, "\nWholesale\n")
		fmt.Fprintf(w, "  MAO                 | %s\n", format.Currency(c.MaximumAllowableOffer))
		fmt.Fprintf(w, "  Potential fee       | %s\n", format.Currency(c.PotentialFee))
		fmt.Fprintf(w, "  Eligible            | %v\n", c.IsEligible)
	}

	if r.SubjectTo != nil {
		c := r.SubjectTo
		fmt.Fprintf(w, "\nSubject-to\n")
		fmt.Fprintf(w, "  Entry cash          | %s\n", format.Currency(c.TotalEntryCash))
		fmt.Fprintf(w, "  Debt service (mo)   | %s\n", format.Currency(c.MonthlyDebtService))
		fmt.Fprintf(w, "  Cash flow (mo)      | %s\n", format.Currency(c.MonthlyCashFlow))
		fmt.Fprintf(w, "  Projected profit    | %s\n", format.Currency(c.ProjectedProfit))
		fmt.Fprintf(w, "  ROI                 | %s\n", format.Percent(c.ReturnOnInvestment))
	}

	if r.SellerFinancing != nil {
		c := r.SellerFinancing
		fmt.Fprintf(w, "\nSeller financing\n")
		fmt.Fprintf(w, "  Loan amount         | %s\n", format.Currency(c.LoanAmount))
		fmt.Fprintf(w, "  Monthly payment     | %s\n", format.Currency(c.MonthlyPayment))
		fmt.Fprintf(w, "  Spread vs rent      | %s\n", format.Currency(c.MonthlySpread))
		fmt.Fprintf(w, "  Return on down      | %s\n", format.Percent(c.ReturnOnDownPayment))
		fmt.Fprintf(w, "  Cash flow (mo)      | %s\n", format.Currency(c.MonthlyCashFlow))
	}

	if r.Brrrr != nil {
		c := r.Brrrr
		fmt.Fprintf(w, "\nBRRRR\n")
		fmt.Fprintf(w, "  Total project cost  | %s\n", format.Currency(c.TotalProjectCost))
		fmt.Fprintf(w, "  Refinance loan      | %s\n", format.Currency(c.RefinanceLoanAmount))
		fmt.Fprintf(w, "  Cash left in deal   | %s\n", format.Currency(c.CashLeftInDeal))
		fmt.Fprintf(w, "  Cash flow (mo)      | %s\n", format.Currency(c.MonthlyCashFlowPostRefi))
		if c.IsInfiniteReturn {
			fmt.Fprintf(w, "  ROI                 | infinite (all capital recovered)\n")
		} else {
			fmt.Fprintf(w, "  ROI                 | %s\n", format.Percent(c.ReturnOnInvestment))
		}
	}

	if len(r.Projection) > 0 {
		fmt.Fprintf(w, "\n30-year projection\n")
		fmt.Fprintf(w, "Year | Value         | Balance       | Equity        | Cash Flow     | Total Return\n")
		fmt.Fprintf(w, "____ | _____________ | _____________ | _____________ | _____________ | ____________\n")
		for _, row := range r.Projection {
			_, _ = p.Fprintf(w, "%4d | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f\n",
				row.Year, row.PropertyValue, row.LoanBalance, row.Equity, row.CashFlow, row.TotalReturn)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, r Report) {
	fmt.Fprintf(w, "\"section\",\"metric\",\"value\"\n")

	if r.Rental != nil {
		m := r.Rental
		writeCsvMetric(w, "rental", "downPayment", m.DownPayment)
		writeCsvMetric(w, "rental", "loanAmount", m.LoanAmount)
		writeCsvMetric(w, "rental", "totalClosingCosts", m.TotalClosingCosts)
		writeCsvMetric(w, "rental", "totalCashToClose", m.TotalCashToClose)
		writeCsvMetric(w, "rental", "netOperatingIncome", m.NetOperatingIncome)
		writeCsvMetric(w, "rental", "monthlyDebtService", m.MonthlyDebtService)
		writeCsvMetric(w, "rental", "capRate", m.CapRate)
		writeCsvMetric(w, "rental", "allInCapRate", m.AllInCapRate)
		writeCsvMetric(w, "rental", "cashOnCashReturn", m.CashOnCashReturn)
		writeCsvMetric(w, "rental", "monthlyCashFlow", m.MonthlyCashFlow)
	}
	if r.Wholesale != nil {
		writeCsvMetric(w, "wholesale", "maximumAllowableOffer", r.Wholesale.MaximumAllowableOffer)
		writeCsvMetric(w, "wholesale", "potentialFee", r.Wholesale.PotentialFee)
		fmt.Fprintf(w, "\"wholesale\",\"isEligible\",\"%v\"\n", r.Wholesale.IsEligible)
	}
	if r.SubjectTo != nil {
		writeCsvMetric(w, "subjectTo", "totalEntryCash", r.SubjectTo.TotalEntryCash)
		writeCsvMetric(w, "subjectTo", "monthlyCashFlow", r.SubjectTo.MonthlyCashFlow)
		writeCsvMetric(w, "subjectTo", "projectedProfit", r.SubjectTo.ProjectedProfit)
		writeCsvMetric(w, "subjectTo", "returnOnInvestment", r.SubjectTo.ReturnOnInvestment)
	}
	if r.SellerFinancing != nil {
		writeCsvMetric(w, "sellerFinancing", "loanAmount", r.SellerFinancing.LoanAmount)
		writeCsvMetric(w, "sellerFinancing", "monthlyPayment", r.SellerFinancing.MonthlyPayment)
		writeCsvMetric(w, "sellerFinancing", "monthlySpread", r.SellerFinancing.MonthlySpread)
		writeCsvMetric(w, "sellerFinancing", "returnOnDownPayment", r.SellerFinancing.ReturnOnDownPayment)
	}
	if r.Brrrr != nil {
		writeCsvMetric(w, "brrrr", "totalProjectCost", r.Brrrr.TotalProjectCost)
		writeCsvMetric(w, "brrrr", "cashLeftInDeal", r.Brrrr.CashLeftInDeal)
		writeCsvMetric(w, "brrrr", "monthlyCashFlowPostRefi", r.Brrrr.MonthlyCashFlowPostRefi)
		fmt.Fprintf(w, "\"brrrr\",\"isInfiniteReturn\",\"%v\"\n", r.Brrrr.IsInfiniteReturn)
		if !r.Brrrr.IsInfiniteReturn {
			writeCsvMetric(w, "brrrr", "returnOnInvestment", r.Brrrr.ReturnOnInvestment)
		}
	}

	if len(r.Projection) > 0 {
		fmt.Fprintf(w, "\"year\",\"propertyValue\",\"loanBalance\",\"equity\",\"grossIncome\",\"operatingExpenses\",\"noi\",\"debtService\",\"cashFlow\",\"cumulativeCashFlow\",\"cumulativeAppreciation\",\"cumulativePrincipalPaydown\",\"totalReturn\"\n")
		for _, row := range r.Projection {
			fmt.Fprintf(w, "\"%d\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\",\"%.0f\"\n",
				row.Year, row.PropertyValue, row.LoanBalance, row.Equity, row.GrossIncome,
				row.OperatingExpenses, row.NetOperatingIncome, row.DebtService, row.CashFlow,
				row.CumulativeCashFlow, row.CumulativeAppreciation, row.CumulativePrincipalPaydown, row.TotalReturn)
		}
	}
}

func writeCsvMetric(w io.Writer, section, metric string, value float64) {
	fmt.Fprintf(w, "\"%s\",\"%s\",\"%.2f\"\n", section, metric, value)
}
