package handlers

import (
	"context"
	"errors"
	"net/http"

	request "corporatepay/internal/adapter/http/dto/request"
	response "corporatepay/internal/adapter/http/dto/response"
	"corporatepay/internal/domain/entities"
	"corporatepay/internal/infrastructure/metrics"
	"corporatepay/internal/usecase"
	"corporatepay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDecisionPayload = pkg.NewDomainErrorSimple("INVALID_DECISION_INPUT", "Invalid decision payload", http.StatusBadRequest)

// ApprovalHandler handles HTTP requests for approval chain decisions.

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
	metrics *metrics.Metrics
}

func NewApprovalHandler(uc usecase.IApprovalUseCase, m *metrics.Metrics) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc, metrics: m}
}

// ApproveStep approves the first pending step of a chain.
func (h *ApprovalHandler) ApproveStep(c *gin.Context) {
	h.decide(c, "approve", h.usecase.Advance)
}

// RejectStep rejects the first pending step, short-circuiting the chain.
func (h *ApprovalHandler) RejectStep(c *gin.Context) {
	h.decide(c, "reject", h.usecase.Reject)
}

// GetChain returns the chain with all step statuses.
func (h *ApprovalHandler) GetChain(c *gin.Context) {
	chain, err := h.usecase.GetChain(c.Request.Context(), c.Param("chain_id"))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChain(chain))
}

func (h *ApprovalHandler) decide(
	c *gin.Context,
	verdict string,
	decider func(ctx context.Context, chainID, actor, note string) (entities.ChainStatus, error),
) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	chainID := c.Param("chain_id")
	status, err := decider(c.Request.Context(), chainID, payload.Actor, payload.Note)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.metrics != nil {
		h.metrics.Decisions.WithLabelValues(verdict).Inc()
		if status.IsTerminal() {
			h.metrics.ChainsFinished.WithLabelValues(string(status)).Inc()
		}
	}

	c.JSON(http.StatusOK, response.DecisionResponse{ChainID: chainID, Status: string(status)})
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChainID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChainNotFound):
		return pkg.NewDomainErrorSimple("CHAIN_NOT_FOUND", "Approval chain not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
