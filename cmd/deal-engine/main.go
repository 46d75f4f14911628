package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/itpenciles/deal-engine/internal/config"
	"github.com/itpenciles/deal-engine/internal/engine"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"github.com/itpenciles/deal-engine/pkg/output"
	"github.com/itpenciles/deal-engine/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to deal configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid deal configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	report := buildReport(logger, conf)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, report)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, report)
	}
}

// buildReport runs every calculator the deal configures.
func buildReport(logger *zap.Logger, conf *config.Configuration) output.Report {
	d := conf.Deal
	report := output.Report{DealName: d.Name}

	if d.Financials != nil {
		metrics := engine.ComputeRentalMetrics(*d.Financials)
		report.Rental = &metrics
		logger.Debug("computed rental metrics",
			zap.String("op", "main.buildReport"),
			zap.Float64("totalCashToClose", metrics.TotalCashToClose),
		)
	}
	if d.Wholesale != nil {
		calc := engine.ComputeWholesale(*d.Wholesale)
		report.Wholesale = &calc
	}
	if d.SubjectTo != nil {
		calc := engine.ComputeSubjectTo(*d.SubjectTo)
		report.SubjectTo = &calc
	}
	if d.SellerFinancing != nil {
		calc := engine.ComputeSellerFinancing(*d.SellerFinancing)
		report.SellerFinancing = &calc
	}
	if d.Brrrr != nil {
		calc := engine.ComputeBrrrr(*d.Brrrr)
		report.Brrrr = &calc
	}
	if d.Projection != nil && d.Financials != nil {
		report.Projection = engine.ProjectThirtyYears(*d.Financials, *d.Projection)
	}

	return report
}
