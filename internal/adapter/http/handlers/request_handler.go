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

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)

// RequestHandler handles HTTP requests for the approval request lifecycle.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
	metrics *metrics.Metrics
}

func NewRequestHandler(uc usecase.IRequestUseCase, m *metrics.Metrics) *RequestHandler {
	return &RequestHandler{usecase: uc, metrics: m}
}

// SubmitRequest evaluates policy and either auto-confirms the request or
// returns it together with its freshly built approval chain.
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand())
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			appErr := pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", vErr.Error(), http.StatusUnprocessableEntity)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome := "auto_confirmed"
	if result.Chain != nil {
		outcome = "pending_approval"
	}
	if h.metrics != nil {
		h.metrics.RequestsSubmitted.WithLabelValues(outcome).Inc()
	}

	c.JSON(http.StatusCreated, response.FromSubmitResult(result))
}

// GetRequest returns a request with its live SLA status.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	result, err := h.usecase.Get(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequestWithSLA(result))
}

// CancelRequest applies the user-driven terminal transition.
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Cancel(c.Request.Context(), c.Param("request_id"), payload.Actor)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

// CompleteRequest records fulfillment, freezing breach status on the
// completion timestamp.
func (h *RequestHandler) CompleteRequest(c *gin.Context) {
	updated, err := h.usecase.Complete(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequester),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestTerminal):
		return pkg.NewDomainErrorSimple("REQUEST_TERMINAL", "Request is already in a terminal status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
