package handlers

import (
	"net/http"

	response "corporatepay/internal/adapter/http/dto/response"
	"corporatepay/internal/infrastructure/metrics"
	"corporatepay/internal/usecase"
	"corporatepay/pkg"

	"github.com/gin-gonic/gin"
)

// ScanHandler exposes the breach scan for operator-triggered runs; the same
// use case also runs on the cron schedule.

type ScanHandler struct {
	usecase usecase.IBreachScanUseCase
	metrics *metrics.Metrics
}

func NewScanHandler(uc usecase.IBreachScanUseCase, m *metrics.Metrics) *ScanHandler {
	return &ScanHandler{usecase: uc, metrics: m}
}

// TriggerScan runs one breach scan pass and reports what it created. Safe to
// call repeatedly.
func (h *ScanHandler) TriggerScan(c *gin.Context) {
	result, err := h.usecase.Scan(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("SCAN_FAILED", "Breach scan failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.metrics != nil {
		h.metrics.BreachScans.Inc()
		h.metrics.BreachesDetected.Add(float64(result.Breached))
		if result.DisputesCreated > 0 {
			h.metrics.DisputesOpened.WithLabelValues("auto").Add(float64(result.DisputesCreated))
		}
	}
	c.JSON(http.StatusOK, response.FromScanResult(result))
}
