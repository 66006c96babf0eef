package policy

import (
	"errors"
	"time"

	"corporatepay/internal/domain/entities"
)

// ErrNoFlags is returned when chain construction is attempted with an empty
// flag set. The caller must only build a chain when approval is required;
// silently producing a zero-step chain would hide the caller bug.
var ErrNoFlags = errors.New("cannot build an approval chain from an empty flag set")

// BuildChain constructs the ordered approval steps for the given flags.
//
// Selection is deterministic: the base template is always included, and the
// high-risk step is appended iff any flag is in rules.HighRiskFlags. Each
// step's SLA budget is fixed per role by the template, never derived from the
// request. The returned chain has no ID/RequestID yet; the caller assigns
// identity and persists it.
func BuildChain(flags []entities.Flag, rules TemplateRules, now time.Time) (entities.ApprovalChain, error) {
	if len(flags) == 0 {
		return entities.ApprovalChain{}, ErrNoFlags
	}
	if err := rules.Validate(); err != nil {
		return entities.ApprovalChain{}, err
	}

	templates := make([]StepTemplate, 0, len(rules.Base)+1)
	templates = append(templates, rules.Base...)
	if intersects(flags, rules.HighRiskFlags) {
		templates = append(templates, rules.HighRisk)
	}

	steps := make([]entities.ApprovalStep, 0, len(templates))
	for _, t := range templates {
		steps = append(steps, entities.ApprovalStep{
			Role:        t.Role,
			Status:      entities.StepStatusPending,
			SLAHours:    t.SLAHours,
			RequestedAt: now,
		})
	}

	return entities.ApprovalChain{
		Status:    entities.ChainStatusPending,
		Steps:     steps,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func intersects(flags, highRisk []entities.Flag) bool {
	for _, f := range flags {
		for _, h := range highRisk {
			if f == h {
				return true
			}
		}
	}
	return false
}
