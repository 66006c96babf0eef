// Package policy implements the pure decision core: flag evaluation against
// the administrative policy configuration and deterministic approval chain
// construction from the surviving flags.
package policy

import (
	"fmt"

	"corporatepay/internal/domain/entities"
)

// Config is the process-wide policy configuration. It is mutated only by an
// administrator (via the config file) and read by every evaluation, so the
// struct is treated as immutable once handed to Evaluate.
type Config struct {
	// Working-hours window, inclusive start / exclusive end, local hours.
	WorkdayStartHour int `yaml:"workday_start_hour"`
	WorkdayEndHour   int `yaml:"workday_end_hour"`

	// Peak-tariff window for charging/fulfillment actions.
	PeakStartHour int `yaml:"peak_start_hour"`
	PeakEndHour   int `yaml:"peak_end_hour"`

	// Monetary/quantity thresholds. MaxAmount is in minor units of Currency.
	MaxAmount   int64  `yaml:"max_amount"`
	Currency    string `yaml:"currency"`
	MaxQuantity int    `yaml:"max_quantity"`

	RestrictedCategories []string `yaml:"restricted_categories"`
	PrivilegedSubjects   []string `yaml:"privileged_subjects"`

	RequirePurpose    bool `yaml:"require_purpose"`
	RequireCostCenter bool `yaml:"require_cost_center"`
}

// StepTemplate fixes a role and its SLA budget for one chain position.
type StepTemplate struct {
	Role     string `yaml:"role"`
	SLAHours int    `yaml:"sla_hours"`
}

// TemplateRules selects the chain shape. The base steps are always included;
// the high-risk step is appended iff the flag set intersects HighRiskFlags.
// Making the high-risk set explicit configuration keeps the escalation rule
// out of the code.
type TemplateRules struct {
	Base          []StepTemplate  `yaml:"base"`
	HighRisk      StepTemplate    `yaml:"high_risk"`
	HighRiskFlags []entities.Flag `yaml:"high_risk_flags"`
}

// DefaultConfig returns the policy defaults applied when the config file
// omits a section.
func DefaultConfig() Config {
	return Config{
		WorkdayStartHour:     8,
		WorkdayEndHour:       18,
		PeakStartHour:        17,
		PeakEndHour:          21,
		MaxAmount:            500_000,
		Currency:             "UGX",
		MaxQuantity:          10,
		RestrictedCategories: []string{"alcohol", "fuel-external"},
		RequirePurpose:       true,
		RequireCostCenter:    true,
	}
}

// DefaultTemplateRules returns the stock two-step chain with CFO escalation.
func DefaultTemplateRules() TemplateRules {
	return TemplateRules{
		Base: []StepTemplate{
			{Role: "team-lead", SLAHours: 8},
			{Role: "finance-manager", SLAHours: 12},
		},
		HighRisk: StepTemplate{Role: "cfo", SLAHours: 24},
		HighRiskFlags: []entities.Flag{
			entities.FlagRestrictedCategory,
			entities.FlagPrivilegedSubject,
			entities.FlagAboveQuantityLimit,
		},
	}
}

// Validate rejects configurations that would make evaluation nonsensical.
func (c Config) Validate() error {
	if c.WorkdayStartHour < 0 || c.WorkdayStartHour > 23 || c.WorkdayEndHour < 0 || c.WorkdayEndHour > 24 {
		return fmt.Errorf("workday window out of range: [%d, %d)", c.WorkdayStartHour, c.WorkdayEndHour)
	}
	if c.WorkdayStartHour >= c.WorkdayEndHour {
		return fmt.Errorf("workday window empty: [%d, %d)", c.WorkdayStartHour, c.WorkdayEndHour)
	}
	if c.MaxAmount < 0 {
		return fmt.Errorf("max_amount must be >= 0, got %d", c.MaxAmount)
	}
	if c.MaxQuantity < 0 {
		return fmt.Errorf("max_quantity must be >= 0, got %d", c.MaxQuantity)
	}
	if c.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	return nil
}

// Validate checks the template rules can actually build a chain.
func (r TemplateRules) Validate() error {
	if len(r.Base) == 0 {
		return fmt.Errorf("template rules need at least one base step")
	}
	for i, s := range r.Base {
		if s.Role == "" || s.SLAHours <= 0 {
			return fmt.Errorf("base step %d invalid: role=%q sla_hours=%d", i, s.Role, s.SLAHours)
		}
	}
	if len(r.HighRiskFlags) > 0 && (r.HighRisk.Role == "" || r.HighRisk.SLAHours <= 0) {
		return fmt.Errorf("high_risk step invalid: role=%q sla_hours=%d", r.HighRisk.Role, r.HighRisk.SLAHours)
	}
	return nil
}
