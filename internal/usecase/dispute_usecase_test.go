package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newDisputeFixture(t *testing.T) (*gomock.Controller, *mocks.MockIDisputeRepository, *mocks.MockIRequestRepository, *mocks.MockIAuditRepository, *mocks.MockIPaymentGateway, *mocks.MockIPolicyProvider, *DisputeUseCase) {
	ctrl := gomock.NewController(t)
	disputes := mocks.NewMockIDisputeRepository(ctrl)
	requests := mocks.NewMockIRequestRepository(ctrl)
	audit := mocks.NewMockIAuditRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	provider := mocks.NewMockIPolicyProvider(ctrl)
	uc := NewDisputeUseCase(disputes, requests, audit, gateway, provider, zerolog.Nop())
	return ctrl, disputes, requests, audit, gateway, provider, uc
}

func TestDisputeUseCase_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("blank entity", func(t *testing.T) {
		ctrl, _, _, _, _, _, uc := newDisputeFixture(t)
		defer ctrl.Finish()

		cmd := OpenDisputeCommand{EntityID: " ", Reason: "damage", Actor: "ops-1"}
		if _, err := uc.Open(ctx, cmd); err != ErrInvalidDisputeEntity {
			t.Fatalf("expected ErrInvalidDisputeEntity, got %v", err)
		}
	})

	t.Run("blank reason", func(t *testing.T) {
		ctrl, _, _, _, _, _, uc := newDisputeFixture(t)
		defer ctrl.Finish()

		cmd := OpenDisputeCommand{EntityID: "req-1", Reason: "  ", Actor: "ops-1"}
		if _, err := uc.Open(ctx, cmd); err != ErrInvalidDisputeReason {
			t.Fatalf("expected ErrInvalidDisputeReason, got %v", err)
		}
	})

	t.Run("opens and audits", func(t *testing.T) {
		ctrl, disputes, _, audit, _, _, uc := newDisputeFixture(t)
		defer ctrl.Finish()

		disputes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Dispute) (entities.Dispute, error) {
				if d.Status != entities.DisputeStatusOpen || d.AutoTriggered {
					t.Fatalf("unexpected dispute: %+v", d)
				}
				return d, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		d, err := uc.Open(ctx, OpenDisputeCommand{EntityID: "req-1", Reason: "damage", Actor: "ops-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.EntityID != "req-1" {
			t.Fatalf("unexpected entity %q", d.EntityID)
		}
	})
}

func TestDisputeUseCase_Resolve(t *testing.T) {
	ctx := context.Background()
	resolvedAt := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	t.Run("already resolved returns unchanged", func(t *testing.T) {
		ctrl, disputes, _, _, _, _, uc := newDisputeFixture(t)
		defer ctrl.Finish()

		disputes.EXPECT().GetByID(gomock.Any(), "dsp-1").Return(entities.Dispute{
			ID:     "dsp-1",
			Status: entities.DisputeStatusResolved,
		}, nil)

		d, err := uc.Resolve(ctx, "dsp-1", "ops-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != entities.DisputeStatusResolved {
			t.Fatalf("unexpected status %s", d.Status)
		}
	})

	t.Run("settles the capped penalty through the gateway", func(t *testing.T) {
		ctrl, disputes, requests, audit, gateway, provider, uc := newDisputeFixture(t)
		defer ctrl.Finish()
		uc.now = func() time.Time { return resolvedAt }

		disputes.EXPECT().GetByID(gomock.Any(), "dsp-1").Return(entities.Dispute{
			ID:       "dsp-1",
			EntityID: "req-1",
			Status:   entities.DisputeStatusOpen,
		}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ApprovalRequest{
			ID:             "req-1",
			Amount:         2_000_000,
			Currency:       "UGX",
			CounterpartyID: "cp-1",
		}, nil)
		provider.EXPECT().PenaltyTerms("cp-1").Return(entities.PenaltyTerms{
			CounterpartyID: "cp-1",
			Percent:        10,
			Cap:            150_000,
			Currency:       "UGX",
		}, true)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload []byte) (string, string, []byte, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("bad payload: %v", err)
				}
				if body["transaction_amount"].(float64) != 1500 {
					t.Fatalf("unexpected amount %v", body["transaction_amount"])
				}
				if body["external_reference"].(string) != "dsp-1" {
					t.Fatalf("unexpected reference %v", body["external_reference"])
				}
				return "12345", "approved", nil, nil
			})
		disputes.EXPECT().Resolve(gomock.Any(), "dsp-1", "ops-1", int64(150_000), "UGX", resolvedAt).
			Return(entities.Dispute{
				ID:            "dsp-1",
				EntityID:      "req-1",
				Status:        entities.DisputeStatusResolved,
				PenaltyAmount: 150_000,
			}, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		d, err := uc.Resolve(ctx, "dsp-1", "ops-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.PenaltyAmount != 150_000 {
			t.Fatalf("unexpected penalty %d", d.PenaltyAmount)
		}
	})

	t.Run("gateway failure keeps the dispute open", func(t *testing.T) {
		ctrl, disputes, requests, _, gateway, provider, uc := newDisputeFixture(t)
		defer ctrl.Finish()

		disputes.EXPECT().GetByID(gomock.Any(), "dsp-1").Return(entities.Dispute{
			ID:       "dsp-1",
			EntityID: "req-1",
			Status:   entities.DisputeStatusOpen,
		}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ApprovalRequest{
			ID:             "req-1",
			Amount:         500_000,
			Currency:       "UGX",
			CounterpartyID: "cp-1",
		}, nil)
		provider.EXPECT().PenaltyTerms("cp-1").Return(entities.PenaltyTerms{
			CounterpartyID: "cp-1",
			Percent:        10,
			Cap:            150_000,
			Currency:       "UGX",
		}, true)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New("provider timeout"))

		_, err := uc.Resolve(ctx, "dsp-1", "ops-1", true)
		if !errors.Is(err, ErrPenaltySettlementOpen) {
			t.Fatalf("expected ErrPenaltySettlementOpen, got %v", err)
		}
	})

	t.Run("no terms configured resolves without a penalty", func(t *testing.T) {
		ctrl, disputes, requests, audit, _, provider, uc := newDisputeFixture(t)
		defer ctrl.Finish()
		uc.now = func() time.Time { return resolvedAt }

		disputes.EXPECT().GetByID(gomock.Any(), "dsp-1").Return(entities.Dispute{
			ID:       "dsp-1",
			EntityID: "req-1",
			Status:   entities.DisputeStatusOpen,
		}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ApprovalRequest{
			ID:             "req-1",
			Amount:         500_000,
			Currency:       "UGX",
			CounterpartyID: "cp-unknown",
		}, nil)
		provider.EXPECT().PenaltyTerms("cp-unknown").Return(entities.PenaltyTerms{}, false)
		disputes.EXPECT().Resolve(gomock.Any(), "dsp-1", "ops-1", int64(0), "", resolvedAt).
			Return(entities.Dispute{ID: "dsp-1", Status: entities.DisputeStatusResolved}, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Resolve(ctx, "dsp-1", "ops-1", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("without settlement no request lookup happens", func(t *testing.T) {
		ctrl, disputes, _, audit, _, _, uc := newDisputeFixture(t)
		defer ctrl.Finish()
		uc.now = func() time.Time { return resolvedAt }

		disputes.EXPECT().GetByID(gomock.Any(), "dsp-1").Return(entities.Dispute{
			ID:       "dsp-1",
			EntityID: "req-1",
			Status:   entities.DisputeStatusOpen,
		}, nil)
		disputes.EXPECT().Resolve(gomock.Any(), "dsp-1", "ops-1", int64(0), "", resolvedAt).
			Return(entities.Dispute{ID: "dsp-1", Status: entities.DisputeStatusResolved}, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Resolve(ctx, "dsp-1", "ops-1", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDisputeUseCase_ListByEntity(t *testing.T) {
	ctx := context.Background()
	ctrl, disputes, _, _, _, _, uc := newDisputeFixture(t)
	defer ctrl.Finish()

	disputes.EXPECT().ListByEntityID(gomock.Any(), "req-1").Return([]entities.Dispute{
		{ID: "dsp-1", EntityID: "req-1"},
		{ID: "dsp-2", EntityID: "req-1"},
	}, nil)

	got, err := uc.ListByEntity(ctx, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 disputes, got %d", len(got))
	}
}
