package entities

// PenaltyTerms is the counterparty-specific percentage-and-cap rule used to
// price an SLA breach.
//
// Percent applies to the order total; Cap is an absolute ceiling in minor
// units of Currency. A breach in any other currency carries no penalty.
type PenaltyTerms struct {
	CounterpartyID string  `json:"counterparty_id" yaml:"counterparty_id"`
	Percent        float64 `json:"percent" yaml:"percent"`
	Cap            int64   `json:"cap" yaml:"cap"`
	Currency       string  `json:"currency" yaml:"currency"`
}
