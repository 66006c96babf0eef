package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/policy"
	"corporatepay/internal/domain/sla"
	"corporatepay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidRequester = errors.New("invalid requester id")
	ErrInvalidRequestID = errors.New("invalid request id")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrRequestNotFound  = errors.New("request not found")
	ErrRequestTerminal  = errors.New("request already in a terminal status")
)

// ValidationError reports missing required fields. The request is never
// persisted when validation fails; the caller gets the field list back for
// user-facing correction.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Fields, ", "))
}

// SubmitRequestCommand carries everything the evaluator needs. OccurredAt
// defaults to submission time; DueAt is optional and only set once the
// request enters fulfillment.
type SubmitRequestCommand struct {
	RequesterID    string
	SubjectID      string
	Scope          entities.Scope
	Amount         int64
	Currency       string
	Quantity       int
	Category       string
	CounterpartyID string
	Purpose        string
	CostCenter     string
	OccurredAt     *time.Time
	DueAt          *time.Time
}

// SubmitResult is the outcome of a submission: the persisted request plus the
// chain when approval was required (nil when the request auto-confirmed).
type SubmitResult struct {
	Request entities.ApprovalRequest
	Chain   *entities.ApprovalChain
}

// RequestWithSLA enriches a request with its live breach status. SLA is nil
// until the request carries a due date.
type RequestWithSLA struct {
	Request entities.ApprovalRequest
	SLA     *sla.Result
}

// IRequestUseCase exposes the request lifecycle around the approval engine:
// submit (evaluate, suppress, build chain), read with SLA status, terminal
// cancel, and fulfillment completion.
type IRequestUseCase interface {
	Submit(ctx context.Context, cmd SubmitRequestCommand) (SubmitResult, error)
	Get(ctx context.Context, id string) (RequestWithSLA, error)
	Cancel(ctx context.Context, id, actor string) (entities.ApprovalRequest, error)
	Complete(ctx context.Context, id string) (entities.ApprovalRequest, error)
}

type RequestUseCase struct {
	requests   interfaces.IRequestRepository
	chains     interfaces.IChainRepository
	exceptions interfaces.IExceptionRepository
	audit      interfaces.IAuditRepository
	provider   interfaces.IPolicyProvider
	log        zerolog.Logger
	now        func() time.Time
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(
	requests interfaces.IRequestRepository,
	chains interfaces.IChainRepository,
	exceptions interfaces.IExceptionRepository,
	audit interfaces.IAuditRepository,
	provider interfaces.IPolicyProvider,
	log zerolog.Logger,
) *RequestUseCase {
	return &RequestUseCase{
		requests:   requests,
		chains:     chains,
		exceptions: exceptions,
		audit:      audit,
		provider:   provider,
		log:        log,
		now:        time.Now,
	}
}

// Submit validates, evaluates policy, strips exempted flags and either
// auto-confirms the request or attaches a freshly built approval chain.
func (u *RequestUseCase) Submit(ctx context.Context, cmd SubmitRequestCommand) (SubmitResult, error) {
	cmd.RequesterID = strings.TrimSpace(cmd.RequesterID)
	if cmd.RequesterID == "" {
		return SubmitResult{}, ErrInvalidRequester
	}
	if cmd.Amount < 0 {
		return SubmitResult{}, ErrInvalidAmount
	}
	if strings.TrimSpace(cmd.Currency) == "" {
		return SubmitResult{}, ErrInvalidCurrency
	}
	scope := cmd.Scope
	if scope == "" {
		scope = entities.ScopeRequest
	}

	now := u.now().UTC()
	occurred := now
	if cmd.OccurredAt != nil {
		occurred = cmd.OccurredAt.UTC()
	}

	cfg := u.provider.Policy()
	res := policy.Evaluate(policy.Attributes{
		SubjectID:      cmd.SubjectID,
		Amount:         cmd.Amount,
		Currency:       cmd.Currency,
		Quantity:       cmd.Quantity,
		Category:       cmd.Category,
		CounterpartyID: cmd.CounterpartyID,
		Purpose:        cmd.Purpose,
		CostCenter:     cmd.CostCenter,
		OccurredAt:     occurred,
	}, cfg, now)
	if len(res.RequiredFieldErrors) > 0 {
		return SubmitResult{}, &ValidationError{Fields: res.RequiredFieldErrors}
	}

	// Strip flags covered by an Approved, currently-valid exemption. A
	// registry lookup failure leaves the flag in place: approval gets
	// required rather than silently waived.
	flags := policy.Suppress(res.Flags, func(f entities.Flag) bool {
		ex, err := u.exceptions.FindCovering(ctx, cmd.SubjectID, f, now)
		if err != nil {
			u.log.Warn().Err(err).Str("subject_id", cmd.SubjectID).Str("flag", string(f)).
				Msg("exemption lookup failed, keeping flag")
			return false
		}
		return ex.ID != ""
	})

	req := entities.ApprovalRequest{
		ID:             uuid.NewString(),
		RequesterID:    cmd.RequesterID,
		SubjectID:      cmd.SubjectID,
		Scope:          scope,
		Amount:         cmd.Amount,
		Currency:       strings.ToUpper(strings.TrimSpace(cmd.Currency)),
		Quantity:       cmd.Quantity,
		Category:       cmd.Category,
		CounterpartyID: cmd.CounterpartyID,
		Purpose:        cmd.Purpose,
		CostCenter:     cmd.CostCenter,
		OccurredAt:     occurred,
		Flags:          flags,
		DueAt:          cmd.DueAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var chain *entities.ApprovalChain
	if len(flags) == 0 {
		req.Status = entities.RequestStatusConfirmed
	} else {
		built, err := policy.BuildChain(flags, u.provider.Templates(), now)
		if err != nil {
			return SubmitResult{}, err
		}
		built.ID = uuid.NewString()
		built.RequestID = req.ID
		built.Scope = scope

		created, err := u.chains.Create(ctx, built)
		if err != nil {
			return SubmitResult{}, err
		}
		chain = &created
		req.Status = entities.RequestStatusPendingApproval
		req.ChainID = created.ID
	}

	persisted, err := u.requests.Create(ctx, req)
	if err != nil {
		return SubmitResult{}, err
	}

	u.appendAudit(ctx, entities.AuditRecord{
		ID:          uuid.NewString(),
		EntityID:    persisted.ID,
		ChainID:     persisted.ChainID,
		Action:      "submitted",
		Actor:       cmd.RequesterID,
		StatusAfter: string(persisted.Status),
		At:          now,
	})

	return SubmitResult{Request: persisted, Chain: chain}, nil
}

func (u *RequestUseCase) Get(ctx context.Context, id string) (RequestWithSLA, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RequestWithSLA{}, ErrInvalidRequestID
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return RequestWithSLA{}, err
	}
	if req.ID == "" {
		return RequestWithSLA{}, ErrRequestNotFound
	}

	out := RequestWithSLA{Request: req}
	if req.DueAt != nil {
		res := sla.Evaluate(*req.DueAt, req.CompletedAt, u.now().UTC(), req.Status.IsNonFulfilling())
		out.SLA = &res
	}
	return out, nil
}

// Cancel is the user-driven terminal transition. The terminal guard rejects
// further transitions on requests the workflow already finished.
func (u *RequestUseCase) Cancel(ctx context.Context, id, actor string) (entities.ApprovalRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ApprovalRequest{}, ErrInvalidRequestID
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if req.ID == "" {
		return entities.ApprovalRequest{}, ErrRequestNotFound
	}
	if req.Status.IsTerminal() && req.Status != entities.RequestStatusConfirmed {
		return entities.ApprovalRequest{}, ErrRequestTerminal
	}

	updated, err := u.requests.UpdateStatus(ctx, id, entities.RequestStatusCancelled)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if updated.ID == "" {
		return entities.ApprovalRequest{}, ErrRequestNotFound
	}

	u.appendAudit(ctx, entities.AuditRecord{
		ID:           uuid.NewString(),
		EntityID:     id,
		Action:       "cancelled",
		Actor:        actor,
		StatusBefore: string(req.Status),
		StatusAfter:  string(updated.Status),
		At:           u.now().UTC(),
	})
	return updated, nil
}

// Complete records fulfillment. Breach status freezes on the recorded
// completion timestamp from here on.
func (u *RequestUseCase) Complete(ctx context.Context, id string) (entities.ApprovalRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ApprovalRequest{}, ErrInvalidRequestID
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if req.ID == "" {
		return entities.ApprovalRequest{}, ErrRequestNotFound
	}
	if req.Status.IsNonFulfilling() {
		return entities.ApprovalRequest{}, ErrRequestTerminal
	}

	updated, err := u.requests.SetCompleted(ctx, id, u.now().UTC())
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if updated.ID == "" {
		return entities.ApprovalRequest{}, ErrRequestNotFound
	}
	return updated, nil
}

func (u *RequestUseCase) appendAudit(ctx context.Context, rec entities.AuditRecord) {
	if err := u.audit.Append(ctx, rec); err != nil {
		u.log.Error().Err(err).Str("entity_id", rec.EntityID).Str("action", rec.Action).
			Msg("audit append failed")
	}
}
