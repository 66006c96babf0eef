package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/policy"
	"corporatepay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidSubjectID  = errors.New("invalid subject id")
	ErrInvalidFlag       = errors.New("invalid flag")
	ErrInvalidValidity   = errors.New("invalid validity interval")
	ErrExceptionNotFound = errors.New("exception not found")
)

// RequestExemptionCommand asks for a time-bound exemption of one flag for one
// subject, e.g. "allow DC-fast for vehicle X until date Y".
type RequestExemptionCommand struct {
	RequesterID string
	SubjectID   string
	Flag        entities.Flag
	ValidFrom   time.Time
	ValidTo     time.Time
	Reason      string
}

// ExemptionResult bundles the pending exemption with the approval request and
// chain that must be driven before it takes effect.
type ExemptionResult struct {
	Exception entities.Exception
	Request   entities.ApprovalRequest
	Chain     entities.ApprovalChain
}

// IExceptionUseCase is the exception registry plus the exemption request
// flow. Exemptions ride the same approval workflow as ordinary requests
// (scope "exception"), which is what lets chain building and SLA logic be
// shared instead of duplicated.
type IExceptionUseCase interface {
	RequestExemption(ctx context.Context, cmd RequestExemptionCommand) (ExemptionResult, error)
	IsExempt(ctx context.Context, subjectID string, flag entities.Flag, at time.Time) (bool, error)
	Get(ctx context.Context, id string) (entities.Exception, error)
}

type ExceptionUseCase struct {
	exceptions interfaces.IExceptionRepository
	requests   interfaces.IRequestRepository
	chains     interfaces.IChainRepository
	audit      interfaces.IAuditRepository
	provider   interfaces.IPolicyProvider
	log        zerolog.Logger
	now        func() time.Time
}

var _ IExceptionUseCase = (*ExceptionUseCase)(nil)

func NewExceptionUseCase(
	exceptions interfaces.IExceptionRepository,
	requests interfaces.IRequestRepository,
	chains interfaces.IChainRepository,
	audit interfaces.IAuditRepository,
	provider interfaces.IPolicyProvider,
	log zerolog.Logger,
) *ExceptionUseCase {
	return &ExceptionUseCase{
		exceptions: exceptions,
		requests:   requests,
		chains:     chains,
		audit:      audit,
		provider:   provider,
		log:        log,
		now:        time.Now,
	}
}

// RequestExemption creates the pending exemption together with its backing
// approval request and chain. The chain is built from the single flag being
// exempted, so exempting a high-risk flag escalates to the high-risk template
// exactly like the request that would have triggered it. Exemption requests
// never spawn sub-exemptions: flag evaluation is bypassed entirely here.
func (u *ExceptionUseCase) RequestExemption(ctx context.Context, cmd RequestExemptionCommand) (ExemptionResult, error) {
	cmd.RequesterID = strings.TrimSpace(cmd.RequesterID)
	cmd.SubjectID = strings.TrimSpace(cmd.SubjectID)
	if cmd.RequesterID == "" {
		return ExemptionResult{}, ErrInvalidRequester
	}
	if cmd.SubjectID == "" {
		return ExemptionResult{}, ErrInvalidSubjectID
	}
	if strings.TrimSpace(string(cmd.Flag)) == "" {
		return ExemptionResult{}, ErrInvalidFlag
	}
	if cmd.ValidFrom.IsZero() || cmd.ValidTo.IsZero() || cmd.ValidTo.Before(cmd.ValidFrom) {
		return ExemptionResult{}, ErrInvalidValidity
	}

	now := u.now().UTC()

	chain, err := policy.BuildChain([]entities.Flag{cmd.Flag}, u.provider.Templates(), now)
	if err != nil {
		return ExemptionResult{}, err
	}

	req := entities.ApprovalRequest{
		ID:          uuid.NewString(),
		RequesterID: cmd.RequesterID,
		SubjectID:   cmd.SubjectID,
		Scope:       entities.ScopeException,
		Currency:    u.provider.Policy().Currency,
		Purpose:     cmd.Reason,
		OccurredAt:  now,
		Status:      entities.RequestStatusPendingApproval,
		Flags:       []entities.Flag{cmd.Flag},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	chain.ID = uuid.NewString()
	chain.RequestID = req.ID
	chain.Scope = entities.ScopeException
	req.ChainID = chain.ID

	createdChain, err := u.chains.Create(ctx, chain)
	if err != nil {
		return ExemptionResult{}, err
	}
	createdReq, err := u.requests.Create(ctx, req)
	if err != nil {
		return ExemptionResult{}, err
	}

	ex := entities.Exception{
		ID:        uuid.NewString(),
		RequestID: createdReq.ID,
		SubjectID: cmd.SubjectID,
		Flag:      cmd.Flag,
		ValidFrom: cmd.ValidFrom.UTC(),
		ValidTo:   cmd.ValidTo.UTC(),
		Status:    entities.ExceptionStatusPending,
		Reason:    cmd.Reason,
		CreatedAt: now,
		UpdatedAt: now,
	}
	createdEx, err := u.exceptions.Create(ctx, ex)
	if err != nil {
		return ExemptionResult{}, err
	}

	if err := u.audit.Append(ctx, entities.AuditRecord{
		ID:          uuid.NewString(),
		EntityID:    createdReq.ID,
		ChainID:     createdChain.ID,
		Action:      "exemption-requested",
		Actor:       cmd.RequesterID,
		StatusAfter: string(createdEx.Status),
		Note:        string(cmd.Flag) + " for " + cmd.SubjectID,
		At:          now,
	}); err != nil {
		u.log.Error().Err(err).Str("exception_id", createdEx.ID).Msg("audit append failed")
	}

	return ExemptionResult{Exception: createdEx, Request: createdReq, Chain: createdChain}, nil
}

// IsExempt answers the registry question: does an Approved exemption cover
// (subject, flag) at the given instant.
func (u *ExceptionUseCase) IsExempt(ctx context.Context, subjectID string, flag entities.Flag, at time.Time) (bool, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return false, ErrInvalidSubjectID
	}
	if strings.TrimSpace(string(flag)) == "" {
		return false, ErrInvalidFlag
	}
	ex, err := u.exceptions.FindCovering(ctx, subjectID, flag, at)
	if err != nil {
		return false, err
	}
	return ex.ID != "", nil
}

func (u *ExceptionUseCase) Get(ctx context.Context, id string) (entities.Exception, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Exception{}, ErrExceptionNotFound
	}
	ex, err := u.exceptions.GetByID(ctx, id)
	if err != nil {
		return entities.Exception{}, err
	}
	if ex.ID == "" {
		return entities.Exception{}, ErrExceptionNotFound
	}
	return ex, nil
}
