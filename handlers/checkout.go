package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"divinespark/services/checkout"
)

// CheckoutHandler re-serves the provider's widget script to pages. The
// script is fetched from the CDN at most once and cached for the process
// lifetime.
type CheckoutHandler struct {
	Gateway *checkout.HostedGateway
}

func NewCheckoutHandler(gateway *checkout.HostedGateway) *CheckoutHandler {
	return &CheckoutHandler{Gateway: gateway}
}

// ScriptHandler serves the cached widget script, fetching it on first use.
func (h *CheckoutHandler) ScriptHandler(c *gin.Context) {
	if h.Gateway.Script() == nil {
		if err := h.Gateway.EnsureLoaded(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load payment window. Please try again."})
			return
		}
	}
	c.Data(http.StatusOK, "application/javascript", h.Gateway.Script())
}
