package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/policy"
	"corporatepay/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newRequestFixture(t *testing.T) (*gomock.Controller, *mocks.MockIRequestRepository, *mocks.MockIChainRepository, *mocks.MockIExceptionRepository, *mocks.MockIAuditRepository, *mocks.MockIPolicyProvider, *RequestUseCase) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockIRequestRepository(ctrl)
	chains := mocks.NewMockIChainRepository(ctrl)
	exceptions := mocks.NewMockIExceptionRepository(ctrl)
	audit := mocks.NewMockIAuditRepository(ctrl)
	provider := mocks.NewMockIPolicyProvider(ctrl)
	uc := NewRequestUseCase(requests, chains, exceptions, audit, provider, zerolog.Nop())
	return ctrl, requests, chains, exceptions, audit, provider, uc
}

func submitCmd(amount int64, occurredHour int) SubmitRequestCommand {
	occurred := time.Date(2026, 3, 2, occurredHour, 30, 0, 0, time.UTC)
	return SubmitRequestCommand{
		RequesterID: "emp-1",
		SubjectID:   "veh-12",
		Amount:      amount,
		Currency:    "UGX",
		Purpose:     "client visit",
		CostCenter:  "cc-ops",
		OccurredAt:  &occurred,
	}
}

func TestRequestUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid requester", func(t *testing.T) {
		ctrl, _, _, _, _, _, uc := newRequestFixture(t)
		defer ctrl.Finish()

		cmd := submitCmd(1000, 10)
		cmd.RequesterID = "  "
		if _, err := uc.Submit(ctx, cmd); err != ErrInvalidRequester {
			t.Fatalf("expected ErrInvalidRequester, got %v", err)
		}
	})

	t.Run("missing required fields are rejected without persisting", func(t *testing.T) {
		ctrl, _, _, _, _, provider, uc := newRequestFixture(t)
		defer ctrl.Finish()

		provider.EXPECT().Policy().Return(policy.DefaultConfig())

		cmd := submitCmd(1000, 10)
		cmd.Purpose = ""
		_, err := uc.Submit(ctx, cmd)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Fields) != 1 || vErr.Fields[0] != "purpose required" {
			t.Fatalf("unexpected fields: %v", vErr.Fields)
		}
		// No repository expectations were registered: any Create would fail
		// the controller.
	})

	t.Run("clean request auto-confirms without a chain", func(t *testing.T) {
		ctrl, requests, _, _, audit, provider, uc := newRequestFixture(t)
		defer ctrl.Finish()

		provider.EXPECT().Policy().Return(policy.DefaultConfig())
		requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
				if r.Status != entities.RequestStatusConfirmed {
					t.Fatalf("expected confirmed, got %s", r.Status)
				}
				if r.ChainID != "" {
					t.Fatalf("expected no chain, got %s", r.ChainID)
				}
				return r, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := uc.Submit(ctx, submitCmd(40_000, 10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Chain != nil {
			t.Fatalf("expected nil chain")
		}
	})

	t.Run("flagged request gets a pending chain", func(t *testing.T) {
		ctrl, requests, chains, exceptions, audit, provider, uc := newRequestFixture(t)
		defer ctrl.Finish()

		provider.EXPECT().Policy().Return(policy.DefaultConfig())
		provider.EXPECT().Templates().Return(policy.DefaultTemplateRules())
		// 19:30 over-limit charge triggers after-hours, peak-tariff and
		// above-limit; none is exempted.
		exceptions.EXPECT().FindCovering(gomock.Any(), "veh-12", gomock.Any(), gomock.Any()).
			Return(entities.Exception{}, nil).Times(3)
		chains.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ApprovalChain) (entities.ApprovalChain, error) {
				if len(c.Steps) != 2 {
					t.Fatalf("expected 2 base steps, got %d", len(c.Steps))
				}
				return c, nil
			})
		requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
				if r.Status != entities.RequestStatusPendingApproval {
					t.Fatalf("expected pending_approval, got %s", r.Status)
				}
				if r.ChainID == "" {
					t.Fatalf("expected chain id set")
				}
				if len(r.Flags) != 3 {
					t.Fatalf("expected 3 flags, got %v", r.Flags)
				}
				return r, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := uc.Submit(ctx, submitCmd(750_000, 19))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Chain == nil {
			t.Fatalf("expected a chain")
		}
	})

	t.Run("approved exemption suppresses its flag", func(t *testing.T) {
		ctrl, requests, _, exceptions, audit, provider, uc := newRequestFixture(t)
		defer ctrl.Finish()

		provider.EXPECT().Policy().Return(policy.DefaultConfig())
		// 22:30 is after-hours only; the subject holds an approved waiver, so
		// the request sails through without a chain.
		exceptions.EXPECT().FindCovering(gomock.Any(), "veh-12", entities.FlagAfterHours, gomock.Any()).
			Return(entities.Exception{ID: "exc-1", Status: entities.ExceptionStatusApproved}, nil)
		requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
				if r.Status != entities.RequestStatusConfirmed {
					t.Fatalf("expected confirmed, got %s", r.Status)
				}
				if len(r.Flags) != 0 {
					t.Fatalf("expected no flags, got %v", r.Flags)
				}
				return r, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Submit(ctx, submitCmd(40_000, 22)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exemption lookup failure keeps the flag", func(t *testing.T) {
		ctrl, requests, chains, exceptions, audit, provider, uc := newRequestFixture(t)
		defer ctrl.Finish()

		provider.EXPECT().Policy().Return(policy.DefaultConfig())
		provider.EXPECT().Templates().Return(policy.DefaultTemplateRules())
		exceptions.EXPECT().FindCovering(gomock.Any(), "veh-12", entities.FlagAfterHours, gomock.Any()).
			Return(entities.Exception{}, errors.New("dynamo down"))
		chains.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ApprovalChain) (entities.ApprovalChain, error) { return c, nil })
		requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
				if r.Status != entities.RequestStatusPendingApproval {
					t.Fatalf("expected pending_approval, got %s", r.Status)
				}
				return r, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Submit(ctx, submitCmd(40_000, 22)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRequestUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		ctrl, requests, _, _, _, _, uc := newRequestFixture(t)
		defer ctrl.Finish()

		requests.EXPECT().GetByID(gomock.Any(), "req-x").Return(entities.ApprovalRequest{}, nil)

		if _, err := uc.Get(ctx, "req-x"); err != ErrRequestNotFound {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("due date yields sla status", func(t *testing.T) {
		ctrl, requests, _, _, _, _, uc := newRequestFixture(t)
		defer ctrl.Finish()

		due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return due.Add(30 * time.Hour) }
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ApprovalRequest{
			ID:     "req-1",
			Status: entities.RequestStatusConfirmed,
			DueAt:  &due,
		}, nil)

		got, err := uc.Get(ctx, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SLA == nil || !got.SLA.Breached || got.SLA.OverdueDays != 2 {
			t.Fatalf("unexpected sla: %+v", got.SLA)
		}
	})
}

func TestRequestUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("terminal guard", func(t *testing.T) {
		ctrl, requests, _, _, _, _, uc := newRequestFixture(t)
		defer ctrl.Finish()

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ApprovalRequest{
			ID:     "req-1",
			Status: entities.RequestStatusRejected,
		}, nil)

		if _, err := uc.Cancel(ctx, "req-1", "emp-1"); err != ErrRequestTerminal {
			t.Fatalf("expected ErrRequestTerminal, got %v", err)
		}
	})

	t.Run("pending request cancels", func(t *testing.T) {
		ctrl, requests, _, _, audit, _, uc := newRequestFixture(t)
		defer ctrl.Finish()

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ApprovalRequest{
			ID:     "req-1",
			Status: entities.RequestStatusPendingApproval,
		}, nil)
		requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusCancelled).
			Return(entities.ApprovalRequest{ID: "req-1", Status: entities.RequestStatusCancelled}, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := uc.Cancel(ctx, "req-1", "emp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusCancelled {
			t.Fatalf("expected cancelled, got %s", updated.Status)
		}
	})
}

func TestRequestUseCase_Complete(t *testing.T) {
	ctx := context.Background()
	ctrl, requests, _, _, _, _, uc := newRequestFixture(t)
	defer ctrl.Finish()

	completed := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return completed }

	requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ApprovalRequest{
		ID:     "req-1",
		Status: entities.RequestStatusConfirmed,
	}, nil)
	requests.EXPECT().SetCompleted(gomock.Any(), "req-1", completed).
		Return(entities.ApprovalRequest{ID: "req-1", CompletedAt: &completed}, nil)

	got, err := uc.Complete(ctx, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completed) {
		t.Fatalf("unexpected completion: %+v", got.CompletedAt)
	}
}
