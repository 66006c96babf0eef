package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func newDisputeHandler(t *testing.T) (*gomock.Controller, *mocks.MockIDisputeUseCase, *DisputeHandler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDisputeUseCase(ctrl)
	h := NewDisputeHandler(uc, metrics.New(prometheus.NewRegistry()))
	return ctrl, uc, h
}

func TestDisputeHandler_OpenDispute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing entity id", func(t *testing.T) {
		ctrl, _, h := newDisputeHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/disputes", h.OpenDispute)

		req := httptest.NewRequest(http.MethodPost, "/v1/disputes", bytes.NewBufferString(`{"reason":"damage"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("opens", func(t *testing.T) {
		ctrl, uc, h := newDisputeHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/disputes", h.OpenDispute)

		uc.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.Dispute{
			ID:       "dsp-1",
			EntityID: "req-1",
			Status:   entities.DisputeStatusOpen,
			Reason:   "damage",
		}, nil)

		body := `{"entity_id":"req-1","reason":"damage","actor":"ops-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/disputes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestDisputeHandler_ResolveDispute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("settles penalty", func(t *testing.T) {
		ctrl, uc, h := newDisputeHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/disputes/:dispute_id/resolve", h.ResolveDispute)

		uc.EXPECT().Resolve(gomock.Any(), "dsp-1", "ops-1", true).Return(entities.Dispute{
			ID:            "dsp-1",
			Status:        entities.DisputeStatusResolved,
			PenaltyAmount: 150_000,
			Currency:      "UGX",
		}, nil)

		body := `{"actor":"ops-1","settle_penalty":true}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/disputes/dsp-1/resolve", bytes.NewBufferString(body))
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
		if resp["penalty_amount"].(float64) != 150_000 {
			t.Fatalf("unexpected penalty %v", resp["penalty_amount"])
		}
	})

	t.Run("settlement failure maps to bad gateway", func(t *testing.T) {
		ctrl, uc, h := newDisputeHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/disputes/:dispute_id/resolve", h.ResolveDispute)

		uc.EXPECT().Resolve(gomock.Any(), "dsp-1", "ops-1", true).
			Return(entities.Dispute{}, errors.Join(usecase.ErrPenaltySettlementOpen, errors.New("provider timeout")))

		body := `{"actor":"ops-1","settle_penalty":true}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/disputes/dsp-1/resolve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestDisputeHandler_ListDisputesByEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl, uc, h := newDisputeHandler(t)
	defer ctrl.Finish()

	r := gin.New()
	r.GET("/v1/disputes", h.ListDisputesByEntity)

	uc.EXPECT().ListByEntity(gomock.Any(), "req-1").Return([]entities.Dispute{
		{ID: "dsp-1", EntityID: "req-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/disputes?entity_id=req-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestScanHandler_TriggerScan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBreachScanUseCase(ctrl)
	h := NewScanHandler(uc, metrics.New(prometheus.NewRegistry()))

	r := gin.New()
	r.POST("/v1/scan", h.TriggerScan)

	uc.EXPECT().Scan(gomock.Any()).Return(usecase.ScanResult{
		EntitiesScanned:   5,
		Breached:          2,
		ExceptionsCreated: 1,
		DisputesCreated:   1,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/scan", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp["disputes_created"].(float64) != 1 {
		t.Fatalf("unexpected result %v", resp)
	}
}
