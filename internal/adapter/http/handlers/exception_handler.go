package handlers

import (
	"errors"
	"net/http"
	"time"

	request "corporatepay/internal/adapter/http/dto/request"
	response "corporatepay/internal/adapter/http/dto/response"
	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase"
	"corporatepay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExemptionPayload = pkg.NewDomainErrorSimple("INVALID_EXEMPTION_INPUT", "Invalid exemption payload", http.StatusBadRequest)

// ExceptionHandler handles HTTP requests for the exemption registry.

type ExceptionHandler struct {
	usecase usecase.IExceptionUseCase
}

func NewExceptionHandler(uc usecase.IExceptionUseCase) *ExceptionHandler {
	return &ExceptionHandler{usecase: uc}
}

// RequestExemption files a pending exemption gated by its own approval chain.
func (h *ExceptionHandler) RequestExemption(c *gin.Context) {
	var payload request.ExemptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExemptionPayload.HTTPStatus, errInvalidExemptionPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.RequestExemption(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapExceptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromExemptionResult(result))
}

// GetException returns one exemption record.
func (h *ExceptionHandler) GetException(c *gin.Context) {
	ex, err := h.usecase.Get(c.Request.Context(), c.Param("exception_id"))
	if err != nil {
		appErr := mapExceptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromException(ex))
}

// QueryExempt answers whether (subject, flag) is covered by an approved
// exemption, at the "at" query instant or now.
func (h *ExceptionHandler) QueryExempt(c *gin.Context) {
	subjectID := c.Query("subject_id")
	flag := c.Query("flag")

	at := time.Now().UTC()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid 'at' timestamp, expected RFC3339", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		at = parsed.UTC()
	}

	exempt, err := h.usecase.IsExempt(c.Request.Context(), subjectID, entities.Flag(flag), at)
	if err != nil {
		appErr := mapExceptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ExemptQueryResponse{
		SubjectID: subjectID,
		Flag:      flag,
		At:        at,
		Exempt:    exempt,
	})
}

func mapExceptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequester),
		errors.Is(err, usecase.ErrInvalidSubjectID),
		errors.Is(err, usecase.ErrInvalidFlag),
		errors.Is(err, usecase.ErrInvalidValidity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExceptionNotFound):
		return pkg.NewDomainErrorSimple("EXCEPTION_NOT_FOUND", "Exception not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
