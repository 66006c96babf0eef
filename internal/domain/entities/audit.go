package entities

import "time"

// AuditRecord is one immutable entry in the state-transition log: who acted,
// on what, when, and the before/after status. A record is written before any
// downstream notification is attempted, so a delivery failure never loses the
// decision.
//
// Storage model (DynamoDB):
//   - PK: id
//   - entity_id carries the request/chain/dispute the record belongs to.
type AuditRecord struct {
	ID           string    `json:"id"`
	EntityID     string    `json:"entity_id"`
	ChainID      string    `json:"chain_id,omitempty"`
	Action       string    `json:"action"`
	Actor        string    `json:"actor"`
	StatusBefore string    `json:"status_before,omitempty"`
	StatusAfter  string    `json:"status_after,omitempty"`
	Note         string    `json:"note,omitempty"`
	At           time.Time `json:"at"`
}
