// Package constants provides shared constants for the deal-engine application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Projection constants
const (
	// ProjectionYears is the fixed horizon of the forward projection
	ProjectionYears = 30

	// DefaultRefinanceTermYears is the amortization term assumed for a
	// BRRRR refinance loan when none is configured
	DefaultRefinanceTermYears = 30
)

// Seller financing payment types
const (
	// PaymentTypeAmortization amortizes the seller-carried note over its term
	PaymentTypeAmortization = "Amortization"

	// PaymentTypeInterestOnly pays interest only on the seller-carried note
	PaymentTypeInterestOnly = "Interest Only"
)

// Subject-to exit plans
const (
	// ExitPlanFlip resells the property after acquisition
	ExitPlanFlip = "Flip"

	// ExitPlanRental holds the property as a rental
	ExitPlanRental = "Rental"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default deal configuration file name
	DefaultConfigFile = "deal.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultCacheTTLSeconds is the default expiry for cached calculation
	// results when a Redis cache is configured
	DefaultCacheTTLSeconds = 3600
)
