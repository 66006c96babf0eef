package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/sla"
	"corporatepay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidDisputeID      = errors.New("invalid dispute id")
	ErrInvalidDisputeEntity  = errors.New("invalid dispute entity id")
	ErrInvalidDisputeReason  = errors.New("invalid dispute reason")
	ErrDisputeNotFound       = errors.New("dispute not found")
	ErrPenaltySettlementOpen = errors.New("penalty settlement failed")
)

// OpenDisputeCommand opens a manual dispute against a fulfillment entity.
type OpenDisputeCommand struct {
	EntityID string
	Reason   string
	Detail   string
	Actor    string
}

// IDisputeUseCase manages dispute records. Resolution can settle the capped
// breach penalty against the counterparty through the payment gateway.
type IDisputeUseCase interface {
	Open(ctx context.Context, cmd OpenDisputeCommand) (entities.Dispute, error)
	Get(ctx context.Context, id string) (entities.Dispute, error)
	ListByEntity(ctx context.Context, entityID string) ([]entities.Dispute, error)
	Resolve(ctx context.Context, id, actor string, settlePenalty bool) (entities.Dispute, error)
}

type DisputeUseCase struct {
	disputes interfaces.IDisputeRepository
	requests interfaces.IRequestRepository
	audit    interfaces.IAuditRepository
	gateway  interfaces.IPaymentGateway
	provider interfaces.IPolicyProvider
	log      zerolog.Logger
	now      func() time.Time
}

var _ IDisputeUseCase = (*DisputeUseCase)(nil)

func NewDisputeUseCase(
	disputes interfaces.IDisputeRepository,
	requests interfaces.IRequestRepository,
	audit interfaces.IAuditRepository,
	gateway interfaces.IPaymentGateway,
	provider interfaces.IPolicyProvider,
	log zerolog.Logger,
) *DisputeUseCase {
	return &DisputeUseCase{
		disputes: disputes,
		requests: requests,
		audit:    audit,
		gateway:  gateway,
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

func (u *DisputeUseCase) Open(ctx context.Context, cmd OpenDisputeCommand) (entities.Dispute, error) {
	cmd.EntityID = strings.TrimSpace(cmd.EntityID)
	cmd.Reason = strings.TrimSpace(cmd.Reason)
	if cmd.EntityID == "" {
		return entities.Dispute{}, ErrInvalidDisputeEntity
	}
	if cmd.Reason == "" {
		return entities.Dispute{}, ErrInvalidDisputeReason
	}

	now := u.now().UTC()
	d := entities.Dispute{
		ID:        uuid.NewString(),
		EntityID:  cmd.EntityID,
		Status:    entities.DisputeStatusOpen,
		Reason:    cmd.Reason,
		Detail:    cmd.Detail,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.disputes.Create(ctx, d)
	if err != nil {
		return entities.Dispute{}, err
	}

	u.appendAudit(ctx, entities.AuditRecord{
		ID:          uuid.NewString(),
		EntityID:    cmd.EntityID,
		Action:      "dispute-opened",
		Actor:       cmd.Actor,
		StatusAfter: string(created.Status),
		Note:        cmd.Reason,
		At:          now,
	})
	return created, nil
}

func (u *DisputeUseCase) Get(ctx context.Context, id string) (entities.Dispute, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Dispute{}, ErrInvalidDisputeID
	}
	d, err := u.disputes.GetByID(ctx, id)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.ID == "" {
		return entities.Dispute{}, ErrDisputeNotFound
	}
	return d, nil
}

func (u *DisputeUseCase) ListByEntity(ctx context.Context, entityID string) ([]entities.Dispute, error) {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return nil, ErrInvalidDisputeEntity
	}
	return u.disputes.ListByEntityID(ctx, entityID)
}

// Resolve closes a dispute. When settlePenalty is set, the penalty is priced
// from the underlying request's total and the counterparty's terms, charged
// through the gateway, and recorded on the dispute. Resolving an already
// resolved dispute returns it unchanged.
func (u *DisputeUseCase) Resolve(ctx context.Context, id, actor string, settlePenalty bool) (entities.Dispute, error) {
	d, err := u.Get(ctx, id)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.Status == entities.DisputeStatusResolved {
		return d, nil
	}

	now := u.now().UTC()
	var penalty int64
	var currency string

	if settlePenalty {
		req, err := u.requests.GetByID(ctx, d.EntityID)
		if err != nil {
			return entities.Dispute{}, err
		}
		if req.ID == "" {
			return entities.Dispute{}, ErrRequestNotFound
		}
		terms, ok := u.provider.PenaltyTerms(req.CounterpartyID)
		if !ok {
			u.log.Warn().Str("counterparty_id", req.CounterpartyID).
				Msg("no penalty terms configured, resolving without penalty")
		} else {
			penalty = sla.CalculatePenalty(req.Amount, req.Currency, terms)
			currency = terms.Currency
			if penalty == 0 && req.Currency != terms.Currency {
				u.log.Warn().Str("request_currency", req.Currency).Str("terms_currency", terms.Currency).
					Str("dispute_id", d.ID).Msg("unsupported currency, penalty waived")
			}
		}

		if penalty > 0 && u.gateway != nil {
			payload, _ := json.Marshal(map[string]any{
				"transaction_amount": float64(penalty) / 100,
				"description":        "SLA breach penalty for " + d.EntityID,
				"external_reference": d.ID,
			})
			providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
			if err != nil {
				return entities.Dispute{}, errors.Join(ErrPenaltySettlementOpen, err)
			}
			u.log.Info().Str("dispute_id", d.ID).Str("provider_payment_id", providerID).
				Str("provider_status", providerStatus).Int64("penalty", penalty).
				Msg("penalty settled")
		}
	}

	resolved, err := u.disputes.Resolve(ctx, d.ID, actor, penalty, currency, now)
	if err != nil {
		return entities.Dispute{}, err
	}
	if resolved.ID == "" {
		return entities.Dispute{}, ErrDisputeNotFound
	}

	u.appendAudit(ctx, entities.AuditRecord{
		ID:           uuid.NewString(),
		EntityID:     d.EntityID,
		Action:       "dispute-resolved",
		Actor:        actor,
		StatusBefore: string(d.Status),
		StatusAfter:  string(resolved.Status),
		At:           now,
	})
	return resolved, nil
}

func (u *DisputeUseCase) appendAudit(ctx context.Context, rec entities.AuditRecord) {
	if err := u.audit.Append(ctx, rec); err != nil {
		u.log.Error().Err(err).Str("entity_id", rec.EntityID).Str("action", rec.Action).
			Msg("audit append failed")
	}
}
