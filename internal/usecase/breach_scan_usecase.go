package usecase

import (
	"context"
	"fmt"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/sla"
	"corporatepay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ScanResult summarizes one breach scan pass.
type ScanResult struct {
	EntitiesScanned   int `json:"entities_scanned"`
	Breached          int `json:"breached"`
	ExceptionsCreated int `json:"exceptions_created"`
	DisputesCreated   int `json:"disputes_created"`
}

// IBreachScanUseCase runs the SLA breach scan, either on the cron schedule or
// on operator demand. Idempotency is the central contract: scanning an
// unchanged entity set twice creates records only on the first pass.
type IBreachScanUseCase interface {
	Scan(ctx context.Context) (ScanResult, error)
}

type BreachScanUseCase struct {
	requests interfaces.IRequestRepository
	breaches interfaces.IFulfillmentExceptionRepository
	disputes interfaces.IDisputeRepository
	audit    interfaces.IAuditRepository
	notifier interfaces.INotifier
	provider interfaces.IPolicyProvider
	log      zerolog.Logger
	now      func() time.Time
}

var _ IBreachScanUseCase = (*BreachScanUseCase)(nil)

func NewBreachScanUseCase(
	requests interfaces.IRequestRepository,
	breaches interfaces.IFulfillmentExceptionRepository,
	disputes interfaces.IDisputeRepository,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotifier,
	provider interfaces.IPolicyProvider,
	log zerolog.Logger,
) *BreachScanUseCase {
	return &BreachScanUseCase{
		requests: requests,
		breaches: breaches,
		disputes: disputes,
		audit:    audit,
		notifier: notifier,
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

// Scan walks every due-dated request, recomputes breach status and records
// newly discovered breaches. Record creation is an idempotent conditional
// insert keyed by (entity, reason); no chain locks are held while scanning.
func (u *BreachScanUseCase) Scan(ctx context.Context) (ScanResult, error) {
	now := u.now().UTC()
	autoDispute := u.provider.AutoDisputeEnabled()

	reqs, err := u.requests.ListDue(ctx)
	if err != nil {
		return ScanResult{}, err
	}

	var res ScanResult
	for _, r := range reqs {
		if r.DueAt == nil {
			continue
		}
		res.EntitiesScanned++

		breach := sla.Evaluate(*r.DueAt, r.CompletedAt, now, r.Status.IsNonFulfilling())
		if !breach.Breached {
			continue
		}
		res.Breached++

		detail := describeBreach(breach)
		created, err := u.breaches.CreateIfAbsent(ctx, entities.FulfillmentException{
			ID:          entities.BreachExceptionID(r.ID, entities.DisputeReasonSLABreach),
			EntityID:    r.ID,
			Reason:      entities.DisputeReasonSLABreach,
			Detail:      detail,
			OverdueDays: breach.OverdueDays,
			LateDays:    breach.LateDays,
			AutoCreated: true,
			CreatedAt:   now,
		})
		if err != nil {
			u.log.Error().Err(err).Str("entity_id", r.ID).Msg("breach record insert failed")
			continue
		}
		if created {
			res.ExceptionsCreated++
		}

		if !autoDispute {
			continue
		}
		openedDispute, err := u.disputes.CreateIfAbsent(ctx, entities.Dispute{
			ID:            entities.AutoDisputeID(r.ID, entities.DisputeReasonSLABreach),
			EntityID:      r.ID,
			Status:        entities.DisputeStatusOpen,
			Reason:        entities.DisputeReasonSLABreach,
			Detail:        detail,
			AutoTriggered: true,
			Currency:      r.Currency,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			u.log.Error().Err(err).Str("entity_id", r.ID).Msg("auto dispute insert failed")
			continue
		}
		if !openedDispute {
			continue
		}
		res.DisputesCreated++

		if err := u.audit.Append(ctx, entities.AuditRecord{
			ID:          uuid.NewString(),
			EntityID:    r.ID,
			Action:      "dispute-auto-opened",
			Actor:       "breach-scan",
			StatusAfter: string(entities.DisputeStatusOpen),
			Note:        detail,
			At:          now,
		}); err != nil {
			u.log.Error().Err(err).Str("entity_id", r.ID).Msg("audit append failed")
		}
		if err := u.notifier.Notify(ctx, interfaces.Notification{
			Kind:     "dispute-opened",
			EntityID: r.ID,
			Subject:  "SLA breach dispute opened",
			Detail:   detail,
		}); err != nil {
			u.log.Warn().Err(err).Str("entity_id", r.ID).Msg("dispute notification failed")
		}
	}

	u.log.Info().
		Int("entities_scanned", res.EntitiesScanned).
		Int("breached", res.Breached).
		Int("exceptions_created", res.ExceptionsCreated).
		Int("disputes_created", res.DisputesCreated).
		Msg("breach scan completed")
	return res, nil
}

func describeBreach(r sla.Result) string {
	if r.LateDays > 0 {
		return fmt.Sprintf("completed %d day(s) past due", r.LateDays)
	}
	return fmt.Sprintf("overdue by %d day(s)", r.OverdueDays)
}
