// Package notification implements the outbound notification dispatcher.
package notification

import (
	"context"

	"corporatepay/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// LogNotifier emits notifications as structured log events. It stands in
// for a real channel integration; swapping in email or chat delivery only
// requires another INotifier implementation.
type LogNotifier struct {
	log zerolog.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, msg interfaces.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.log.Info().
		Str("kind", msg.Kind).
		Str("entity_id", msg.EntityID).
		Str("chain_id", msg.ChainID).
		Str("subject", msg.Subject).
		Str("detail", msg.Detail).
		Msg("notification dispatched")
	return nil
}
