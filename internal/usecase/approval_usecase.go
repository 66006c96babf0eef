package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidChainID = errors.New("invalid chain id")
	// ErrChainNotFound signals a caller bug (operating on a chain that was
	// never built) and is surfaced loudly rather than swallowed.
	ErrChainNotFound = errors.New("approval chain not found")
)

// IApprovalUseCase drives approval chains to their terminal state.
//
// Both operations are idempotent at the boundary: once a chain is terminal,
// further calls return the terminal status without mutating any step, so UI
// double-clicks and retried requests are harmless.
type IApprovalUseCase interface {
	Advance(ctx context.Context, chainID, actor, note string) (entities.ChainStatus, error)
	Reject(ctx context.Context, chainID, actor, note string) (entities.ChainStatus, error)
	GetChain(ctx context.Context, chainID string) (entities.ApprovalChain, error)
}

// chainLocks serializes decisions per chain. Two simultaneous approvals on
// the same chain must not both advance a step or double-fire the terminal
// side effect; different chains proceed in parallel.
type chainLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newChainLocks() *chainLocks {
	return &chainLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *chainLocks) lock(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}

type ApprovalUseCase struct {
	chains     interfaces.IChainRepository
	requests   interfaces.IRequestRepository
	exceptions interfaces.IExceptionRepository
	audit      interfaces.IAuditRepository
	notifier   interfaces.INotifier
	log        zerolog.Logger
	locks      *chainLocks
	now        func() time.Time
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(
	chains interfaces.IChainRepository,
	requests interfaces.IRequestRepository,
	exceptions interfaces.IExceptionRepository,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotifier,
	log zerolog.Logger,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		chains:     chains,
		requests:   requests,
		exceptions: exceptions,
		audit:      audit,
		notifier:   notifier,
		log:        log,
		locks:      newChainLocks(),
		now:        time.Now,
	}
}

// Advance approves the first Pending step. Approving the last step makes the
// chain Approved and fires the scope side effect exactly once.
func (u *ApprovalUseCase) Advance(ctx context.Context, chainID, actor, note string) (entities.ChainStatus, error) {
	return u.decide(ctx, chainID, actor, note, entities.StepStatusApproved)
}

// Reject rejects the first Pending step and the whole chain with it. The
// remaining steps are never evaluated again.
func (u *ApprovalUseCase) Reject(ctx context.Context, chainID, actor, note string) (entities.ChainStatus, error) {
	return u.decide(ctx, chainID, actor, note, entities.StepStatusRejected)
}

func (u *ApprovalUseCase) GetChain(ctx context.Context, chainID string) (entities.ApprovalChain, error) {
	chainID = strings.TrimSpace(chainID)
	if chainID == "" {
		return entities.ApprovalChain{}, ErrInvalidChainID
	}
	c, err := u.chains.GetByID(ctx, chainID)
	if err != nil {
		return entities.ApprovalChain{}, err
	}
	if c.ID == "" {
		return entities.ApprovalChain{}, ErrChainNotFound
	}
	return c, nil
}

func (u *ApprovalUseCase) decide(ctx context.Context, chainID, actor, note string, decision entities.StepStatus) (entities.ChainStatus, error) {
	chainID = strings.TrimSpace(chainID)
	if chainID == "" {
		return "", ErrInvalidChainID
	}

	unlock := u.locks.lock(chainID)
	defer unlock()

	chain, err := u.chains.GetByID(ctx, chainID)
	if err != nil {
		return "", err
	}
	if chain.ID == "" {
		return "", ErrChainNotFound
	}
	if chain.Status.IsTerminal() {
		// Idempotent terminal check: report the outcome, touch nothing.
		return chain.Status, nil
	}

	idx := chain.NextPendingIndex()
	if idx < 0 {
		return chain.Status, nil
	}

	now := u.now().UTC()
	step := &chain.Steps[idx]
	step.Status = decision
	step.DecidedAt = &now
	step.DecidedBy = actor
	step.Note = note

	before := chain.Status
	chain.Status = chain.DeriveStatus()
	chain.UpdatedAt = now

	saved, err := u.chains.Save(ctx, chain)
	if err != nil {
		return "", err
	}
	if saved.ID == "" {
		// Conditional save lost against a concurrent terminal transition in
		// another process; report whatever that transition produced.
		current, err := u.chains.GetByID(ctx, chainID)
		if err != nil {
			return "", err
		}
		return current.Status, nil
	}

	action := "step-approved"
	if decision == entities.StepStatusRejected {
		action = "step-rejected"
	}
	u.appendAudit(ctx, entities.AuditRecord{
		ID:           uuid.NewString(),
		EntityID:     chain.RequestID,
		ChainID:      chain.ID,
		Action:       action,
		Actor:        actor,
		StatusBefore: string(before),
		StatusAfter:  string(chain.Status),
		Note:         note,
		At:           now,
	})

	if chain.Status.IsTerminal() {
		u.fireTerminal(ctx, saved, actor, now)
	}
	return chain.Status, nil
}

// fireTerminal applies the scope side effect and dispatches the notification.
// It runs under the chain lock, after the terminal Save, so it executes at
// most once per chain; downstream failures are logged but never roll back the
// chain's own transition.
func (u *ApprovalUseCase) fireTerminal(ctx context.Context, chain entities.ApprovalChain, actor string, now time.Time) {
	approved := chain.Status == entities.ChainStatusApproved

	reqStatus := entities.RequestStatusRejected
	if approved {
		reqStatus = entities.RequestStatusConfirmed
	}

	if chain.Scope == entities.ScopeException {
		exStatus := entities.ExceptionStatusRejected
		if approved {
			exStatus = entities.ExceptionStatusApproved
		}
		ex, err := u.exceptions.GetByRequestID(ctx, chain.RequestID)
		if err != nil || ex.ID == "" {
			u.log.Error().Err(err).Str("chain_id", chain.ID).Str("request_id", chain.RequestID).
				Msg("exception side effect: exemption record not found")
		} else if _, err := u.exceptions.UpdateStatus(ctx, ex.ID, exStatus); err != nil {
			u.log.Error().Err(err).Str("exception_id", ex.ID).Msg("exception side effect failed")
		}
	}

	updated, err := u.requests.UpdateStatus(ctx, chain.RequestID, reqStatus)
	if err != nil {
		u.log.Error().Err(err).Str("request_id", chain.RequestID).Msg("request side effect failed")
	} else if updated.ID == "" {
		u.log.Error().Str("request_id", chain.RequestID).Msg("request side effect: request not found")
	}

	u.appendAudit(ctx, entities.AuditRecord{
		ID:          uuid.NewString(),
		EntityID:    chain.RequestID,
		ChainID:     chain.ID,
		Action:      "chain-" + string(chain.Status),
		Actor:       actor,
		StatusAfter: string(reqStatus),
		At:          now,
	})

	kind := "chain-rejected"
	if approved {
		kind = "chain-approved"
	}
	if err := u.notifier.Notify(ctx, interfaces.Notification{
		Kind:     kind,
		EntityID: chain.RequestID,
		ChainID:  chain.ID,
		Subject:  "approval chain " + string(chain.Status),
	}); err != nil {
		u.log.Warn().Err(err).Str("chain_id", chain.ID).Msg("terminal notification failed")
	}
}

func (u *ApprovalUseCase) appendAudit(ctx context.Context, rec entities.AuditRecord) {
	if err := u.audit.Append(ctx, rec); err != nil {
		u.log.Error().Err(err).Str("entity_id", rec.EntityID).Str("action", rec.Action).
			Msg("audit append failed")
	}
}
