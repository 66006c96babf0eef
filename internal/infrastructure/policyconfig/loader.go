// Package policyconfig loads the administrative configuration (policy
// thresholds, chain templates, penalty terms, scan schedule) from a YAML
// file and serves it to the engine through a hot-reloading provider.
package policyconfig

import (
	"fmt"
	"os"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/policy"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration shape.
type File struct {
	Policy    policy.Config           `yaml:"policy"`
	Templates policy.TemplateRules    `yaml:"templates"`
	Penalties []entities.PenaltyTerms `yaml:"penalties"`
	Scan      ScanConfig              `yaml:"scan"`
}

// ScanConfig drives the periodic breach scan.
type ScanConfig struct {
	// Schedule is a standard 5-field cron expression; empty disables the
	// timer (the scan stays available on demand).
	Schedule    string `yaml:"schedule"`
	AutoDispute bool   `yaml:"auto_dispute"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() File {
	return File{
		Policy:    policy.DefaultConfig(),
		Templates: policy.DefaultTemplateRules(),
		Scan: ScanConfig{
			Schedule:    "0 * * * *",
			AutoDispute: true,
		},
	}
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read policy config %q: %w", path, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("failed to parse policy config %q: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return File{}, fmt.Errorf("policy config %q invalid: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the whole file; a reload never swaps in a config that
// fails here.
func Validate(cfg File) error {
	if err := cfg.Policy.Validate(); err != nil {
		return err
	}
	if err := cfg.Templates.Validate(); err != nil {
		return err
	}
	for i, t := range cfg.Penalties {
		if t.CounterpartyID == "" {
			return fmt.Errorf("penalty terms %d: counterparty_id is required", i)
		}
		if t.Currency == "" {
			return fmt.Errorf("penalty terms %d (%s): currency is required", i, t.CounterpartyID)
		}
		if t.Percent < 0 || t.Cap < 0 {
			return fmt.Errorf("penalty terms %d (%s): percent/cap must be >= 0", i, t.CounterpartyID)
		}
	}
	return nil
}
