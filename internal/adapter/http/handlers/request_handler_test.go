package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"corporatepay/internal/adapter/http/handlers/mocks"
	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/sla"
	"corporatepay/internal/infrastructure/metrics"
	"corporatepay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func newRequestHandler(t *testing.T) (*gomock.Controller, *mocks.MockIRequestUseCase, *RequestHandler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRequestUseCase(ctrl)
	h := NewRequestHandler(uc, metrics.New(prometheus.NewRegistry()))
	return ctrl, uc, h
}

func TestRequestHandler_SubmitRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl, _, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing requester", func(t *testing.T) {
		ctrl, _, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"amount":1000,"currency":"UGX"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing policy fields", func(t *testing.T) {
		ctrl, uc, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.SubmitResult{}, &usecase.ValidationError{Fields: []string{"purpose required"}})

		body := `{"requester_id":"emp-1","subject_id":"veh-12","amount":1000,"currency":"UGX"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("auto-confirmed request", func(t *testing.T) {
		ctrl, uc, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{
			Request: entities.ApprovalRequest{
				ID:          "req-1",
				RequesterID: "emp-1",
				Status:      entities.RequestStatusConfirmed,
				Currency:    "UGX",
				Amount:      1000,
			},
		}, nil)

		body := `{"requester_id":"emp-1","subject_id":"veh-12","amount":1000,"currency":"UGX","purpose":"client visit","cost_center":"cc-ops"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["chain"] != nil {
			t.Fatalf("expected no chain, got %v", resp["chain"])
		}
	})

	t.Run("flagged request returns the chain", func(t *testing.T) {
		ctrl, uc, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		chain := entities.ApprovalChain{
			ID:        "chn-1",
			RequestID: "req-1",
			Status:    entities.ChainStatusPending,
			Steps: []entities.ApprovalStep{
				{Role: "team-lead", Status: entities.StepStatusPending},
			},
		}
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{
			Request: entities.ApprovalRequest{
				ID:      "req-1",
				Status:  entities.RequestStatusPendingApproval,
				ChainID: "chn-1",
				Flags:   []entities.Flag{entities.FlagAboveLimit},
			},
			Chain: &chain,
		}, nil)

		body := `{"requester_id":"emp-1","subject_id":"veh-12","amount":750000,"currency":"UGX","purpose":"client visit","cost_center":"cc-ops"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["chain"] == nil {
			t.Fatalf("expected a chain in the response")
		}
	})
}

func TestRequestHandler_GetRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl, uc, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		uc.EXPECT().Get(gomock.Any(), "req-x").
			Return(usecase.RequestWithSLA{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("with sla status", func(t *testing.T) {
		ctrl, uc, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Get(gomock.Any(), "req-1").Return(usecase.RequestWithSLA{
			Request: entities.ApprovalRequest{
				ID:     "req-1",
				Status: entities.RequestStatusConfirmed,
				DueAt:  &due,
			},
			SLA: &sla.Result{Breached: true, OverdueDays: 2},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		slaBody, ok := resp["sla"].(map[string]any)
		if !ok {
			t.Fatalf("expected sla object, got %v", resp["sla"])
		}
		if slaBody["breached"] != true {
			t.Fatalf("expected breached, got %v", slaBody)
		}
	})
}

func TestRequestHandler_CancelRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("terminal request conflicts", func(t *testing.T) {
		ctrl, uc, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/cancel", h.CancelRequest)

		uc.EXPECT().Cancel(gomock.Any(), "req-1", "emp-1").
			Return(entities.ApprovalRequest{}, usecase.ErrRequestTerminal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/cancel", bytes.NewBufferString(`{"actor":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancels", func(t *testing.T) {
		ctrl, uc, h := newRequestHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/cancel", h.CancelRequest)

		uc.EXPECT().Cancel(gomock.Any(), "req-1", "emp-1").
			Return(entities.ApprovalRequest{ID: "req-1", Status: entities.RequestStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/cancel", bytes.NewBufferString(`{"actor":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
