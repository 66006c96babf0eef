package handlers

import (
	"net/http"

	response "corporatepay/internal/adapter/http/dto/response"
	"corporatepay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// PolicyHandler exposes the active policy configuration read-only; changes go
// through the config file and hot-reload.

type PolicyHandler struct {
	provider interfaces.IPolicyProvider
}

func NewPolicyHandler(provider interfaces.IPolicyProvider) *PolicyHandler {
	return &PolicyHandler{provider: provider}
}

// GetPolicy returns the thresholds, windows and chain templates currently in
// force.
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPolicy(h.provider.Policy(), h.provider.Templates()))
}
