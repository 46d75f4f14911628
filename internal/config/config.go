// Package config defines the data structures related to deal configuration
// and includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/itpenciles/deal-engine/internal/engine"
	"github.com/itpenciles/deal-engine/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for a deal-engine run.
type Configuration struct {
	Deal    Deal
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Deal holds the property description and the strategy input blocks to
// evaluate. Absent blocks are skipped; a nil pointer means the strategy was
// not configured.
type Deal struct {
	Name            string
	Financials      *engine.Financials
	Wholesale       *engine.WholesaleInputs
	SubjectTo       *engine.SubjectToInputs
	SellerFinancing *engine.SellerFinancingInputs
	Brrrr           *engine.BrrrrInputs
	Projection      *engine.ProjectionAssumptions
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate checks every configured input block at the boundary before any
// calculator runs.
func (conf *Configuration) Validate() error {
	d := conf.Deal

	if d.Financials == nil && d.Wholesale == nil && d.SubjectTo == nil &&
		d.SellerFinancing == nil && d.Brrrr == nil {
		return fmt.Errorf("deal configures no strategy inputs")
	}

	if d.Financials != nil {
		if err := validation.ValidateFinancials(*d.Financials); err != nil {
			return fmt.Errorf("financials: %w", err)
		}
	}
	if d.Wholesale != nil {
		if err := validation.ValidateWholesaleInputs(*d.Wholesale); err != nil {
			return fmt.Errorf("wholesale: %w", err)
		}
	}
	if d.SubjectTo != nil {
		if err := validation.ValidateSubjectToInputs(*d.SubjectTo); err != nil {
			return fmt.Errorf("subjectTo: %w", err)
		}
	}
	if d.SellerFinancing != nil {
		if err := validation.ValidateSellerFinancingInputs(*d.SellerFinancing); err != nil {
			return fmt.Errorf("sellerFinancing: %w", err)
		}
	}
	if d.Brrrr != nil {
		if err := validation.ValidateBrrrrInputs(*d.Brrrr); err != nil {
			return fmt.Errorf("brrrr: %w", err)
		}
	}
	if d.Projection != nil {
		if d.Financials == nil {
			return fmt.Errorf("projection requires a financials block")
		}
		if err := validation.ValidateAssumptions(*d.Projection); err != nil {
			return fmt.Errorf("projection: %w", err)
		}
	}

	return nil
}
