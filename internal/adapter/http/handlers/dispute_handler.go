package handlers

import (
	"errors"
	"net/http"

	request "corporatepay/internal/adapter/http/dto/request"
	response "corporatepay/internal/adapter/http/dto/response"
	"corporatepay/internal/infrastructure/metrics"
	"corporatepay/internal/usecase"
	"corporatepay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDisputePayload = pkg.NewDomainErrorSimple("INVALID_DISPUTE_INPUT", "Invalid dispute payload", http.StatusBadRequest)

// DisputeHandler handles HTTP requests for dispute management.

type DisputeHandler struct {
	usecase usecase.IDisputeUseCase
	metrics *metrics.Metrics
}

func NewDisputeHandler(uc usecase.IDisputeUseCase, m *metrics.Metrics) *DisputeHandler {
	return &DisputeHandler{usecase: uc, metrics: m}
}

// OpenDispute opens a manual dispute against an entity.
func (h *DisputeHandler) OpenDispute(c *gin.Context) {
	var payload request.OpenDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDisputePayload.HTTPStatus, errInvalidDisputePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Open(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDisputeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.metrics != nil {
		h.metrics.DisputesOpened.WithLabelValues("manual").Inc()
	}
	c.JSON(http.StatusCreated, response.FromDispute(created))
}

// GetDispute returns one dispute.
func (h *DisputeHandler) GetDispute(c *gin.Context) {
	d, err := h.usecase.Get(c.Request.Context(), c.Param("dispute_id"))
	if err != nil {
		appErr := mapDisputeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDispute(d))
}

// ListDisputesByEntity returns every dispute held against an entity.
func (h *DisputeHandler) ListDisputesByEntity(c *gin.Context) {
	ds, err := h.usecase.ListByEntity(c.Request.Context(), c.Query("entity_id"))
	if err != nil {
		appErr := mapDisputeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDisputes(ds))
}

// ResolveDispute closes a dispute, optionally charging the capped penalty.
func (h *DisputeHandler) ResolveDispute(c *gin.Context) {
	var payload request.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDisputePayload.HTTPStatus, errInvalidDisputePayload.ToHTTPError())
		return
	}

	resolved, err := h.usecase.Resolve(c.Request.Context(), c.Param("dispute_id"), payload.Actor, payload.SettlePenalty)
	if err != nil {
		appErr := mapDisputeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.metrics != nil && resolved.PenaltyAmount > 0 {
		h.metrics.PenaltiesCharged.Inc()
	}
	c.JSON(http.StatusOK, response.FromDispute(resolved))
}

func mapDisputeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDisputeID),
		errors.Is(err, usecase.ErrInvalidDisputeEntity),
		errors.Is(err, usecase.ErrInvalidDisputeReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDisputeNotFound):
		return pkg.NewDomainErrorSimple("DISPUTE_NOT_FOUND", "Dispute not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPenaltySettlementOpen):
		return pkg.NewDomainErrorSimple("PENALTY_SETTLEMENT_FAILED", "Penalty settlement failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
