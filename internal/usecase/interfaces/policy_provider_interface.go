package interfaces

import (
	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/policy"
)

// IPolicyProvider hands out the current administrative configuration. The
// file-backed implementation hot-reloads, so callers must re-read on every
// evaluation instead of caching the snapshot.
type IPolicyProvider interface {
	Policy() policy.Config
	Templates() policy.TemplateRules
	PenaltyTerms(counterpartyID string) (entities.PenaltyTerms, bool)
	AutoDisputeEnabled() bool
}
