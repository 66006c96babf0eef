package response

import (
	"corporatepay/internal/domain/policy"
)

type StepTemplateResponse struct {
	Role     string `json:"role"`
	SLAHours int    `json:"sla_hours"`
}

type TemplateRulesResponse struct {
	Base          []StepTemplateResponse `json:"base"`
	HighRisk      StepTemplateResponse   `json:"high_risk"`
	HighRiskFlags []string               `json:"high_risk_flags"`
}

// PolicyResponse is the read-only view of the active policy configuration.
type PolicyResponse struct {
	WorkdayStartHour     int                   `json:"workday_start_hour"`
	WorkdayEndHour       int                   `json:"workday_end_hour"`
	PeakStartHour        int                   `json:"peak_start_hour"`
	PeakEndHour          int                   `json:"peak_end_hour"`
	MaxAmount            int64                 `json:"max_amount"`
	Currency             string                `json:"currency"`
	MaxQuantity          int                   `json:"max_quantity"`
	RestrictedCategories []string              `json:"restricted_categories"`
	PrivilegedSubjects   []string              `json:"privileged_subjects"`
	RequirePurpose       bool                  `json:"require_purpose"`
	RequireCostCenter    bool                  `json:"require_cost_center"`
	Templates            TemplateRulesResponse `json:"templates"`
}

func FromPolicy(cfg policy.Config, rules policy.TemplateRules) PolicyResponse {
	base := make([]StepTemplateResponse, 0, len(rules.Base))
	for _, s := range rules.Base {
		base = append(base, StepTemplateResponse{Role: s.Role, SLAHours: s.SLAHours})
	}
	flags := make([]string, 0, len(rules.HighRiskFlags))
	for _, f := range rules.HighRiskFlags {
		flags = append(flags, string(f))
	}
	return PolicyResponse{
		WorkdayStartHour:     cfg.WorkdayStartHour,
		WorkdayEndHour:       cfg.WorkdayEndHour,
		PeakStartHour:        cfg.PeakStartHour,
		PeakEndHour:          cfg.PeakEndHour,
		MaxAmount:            cfg.MaxAmount,
		Currency:             cfg.Currency,
		MaxQuantity:          cfg.MaxQuantity,
		RestrictedCategories: cfg.RestrictedCategories,
		PrivilegedSubjects:   cfg.PrivilegedSubjects,
		RequirePurpose:       cfg.RequirePurpose,
		RequireCostCenter:    cfg.RequireCostCenter,
		Templates: TemplateRulesResponse{
			Base:          base,
			HighRisk:      StepTemplateResponse{Role: rules.HighRisk.Role, SLAHours: rules.HighRisk.SLAHours},
			HighRiskFlags: flags,
		},
	}
}
