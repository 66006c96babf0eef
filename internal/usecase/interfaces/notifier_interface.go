package interfaces

import "context"

// Notification is the engine-side view of an outbound message. Delivery
// channels (email/SMS/chat) are entirely the dispatcher's concern.
type Notification struct {
	Kind     string // chain-approved | chain-rejected | dispute-opened | step-assigned
	EntityID string
	ChainID  string
	Subject  string
	Detail   string
}

// INotifier dispatches notifications on terminal chain transitions and on
// dispute creation. A failed dispatch must not roll back the state change
// that produced it; callers log and continue.
type INotifier interface {
	Notify(ctx context.Context, n Notification) error
}
