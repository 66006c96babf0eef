package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"corporatepay/internal/adapter/http/handlers/mocks"
	"corporatepay/internal/domain/entities"
	"corporatepay/internal/infrastructure/metrics"
	"corporatepay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func newApprovalHandler(t *testing.T) (*gomock.Controller, *mocks.MockIApprovalUseCase, *ApprovalHandler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIApprovalUseCase(ctrl)
	h := NewApprovalHandler(uc, metrics.New(prometheus.NewRegistry()))
	return ctrl, uc, h
}

func TestApprovalHandler_ApproveStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl, _, h := newApprovalHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/chains/:chain_id/approve", h.ApproveStep)

		req := httptest.NewRequest(http.MethodPatch, "/v1/chains/chn-1/approve", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("chain not found", func(t *testing.T) {
		ctrl, uc, h := newApprovalHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/chains/:chain_id/approve", h.ApproveStep)

		uc.EXPECT().Advance(gomock.Any(), "chn-x", "lead-1", "").
			Return(entities.ChainStatus(""), usecase.ErrChainNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/chains/chn-x/approve", bytes.NewBufferString(`{"actor":"lead-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("intermediate approval stays pending", func(t *testing.T) {
		ctrl, uc, h := newApprovalHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/chains/:chain_id/approve", h.ApproveStep)

		uc.EXPECT().Advance(gomock.Any(), "chn-1", "lead-1", "looks fine").
			Return(entities.ChainStatusPending, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/chains/chn-1/approve", bytes.NewBufferString(`{"actor":"lead-1","note":"looks fine"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["status"] != string(entities.ChainStatusPending) {
			t.Fatalf("unexpected status %v", resp["status"])
		}
	})

	t.Run("final approval returns approved", func(t *testing.T) {
		ctrl, uc, h := newApprovalHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/chains/:chain_id/approve", h.ApproveStep)

		uc.EXPECT().Advance(gomock.Any(), "chn-1", "fin-1", "").
			Return(entities.ChainStatusApproved, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/chains/chn-1/approve", bytes.NewBufferString(`{"actor":"fin-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["status"] != string(entities.ChainStatusApproved) {
			t.Fatalf("unexpected status %v", resp["status"])
		}
	})
}

func TestApprovalHandler_RejectStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl, uc, h := newApprovalHandler(t)
	defer ctrl.Finish()

	r := gin.New()
	r.PATCH("/v1/chains/:chain_id/reject", h.RejectStep)

	uc.EXPECT().Reject(gomock.Any(), "chn-1", "lead-1", "over budget").
		Return(entities.ChainStatusRejected, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/chains/chn-1/reject", bytes.NewBufferString(`{"actor":"lead-1","note":"over budget"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp["status"] != string(entities.ChainStatusRejected) {
		t.Fatalf("unexpected status %v", resp["status"])
	}
}

func TestApprovalHandler_GetChain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl, uc, h := newApprovalHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/chains/:chain_id", h.GetChain)

		uc.EXPECT().GetChain(gomock.Any(), "chn-x").
			Return(entities.ApprovalChain{}, usecase.ErrChainNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/chains/chn-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns steps", func(t *testing.T) {
		ctrl, uc, h := newApprovalHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/chains/:chain_id", h.GetChain)

		uc.EXPECT().GetChain(gomock.Any(), "chn-1").Return(entities.ApprovalChain{
			ID:        "chn-1",
			RequestID: "req-1",
			Status:    entities.ChainStatusPending,
			Steps: []entities.ApprovalStep{
				{Role: "team-lead", Status: entities.StepStatusApproved},
				{Role: "finance-manager", Status: entities.StepStatusPending},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/chains/chn-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		steps, ok := resp["steps"].([]any)
		if !ok || len(steps) != 2 {
			t.Fatalf("expected 2 steps, got %v", resp["steps"])
		}
	})
}
