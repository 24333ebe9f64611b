package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"divinespark/middleware"
	"divinespark/services/admin"
	"divinespark/services/auth"
)

// AdminHandler serves the dashboard views: overview numbers, per-session
// registrants and payment history.
type AdminHandler struct {
	Admin admin.AdminService
	Auth  auth.AuthService
}

func NewAdminHandler(adminSvc admin.AdminService, authSvc auth.AuthService) *AdminHandler {
	return &AdminHandler{Admin: adminSvc, Auth: authSvc}
}

// OverviewHandler returns the dashboard headline numbers.
func (h *AdminHandler) OverviewHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	overview, err := h.Admin.Overview(c.Request.Context(), viewer.Token)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// RegistrantsHandler lists one session's attendees.
func (h *AdminHandler) RegistrantsHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	registrants, err := h.Admin.Registrants(c.Request.Context(), viewer.Token, c.Param("sessionID"))
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrants": registrants})
}

// PaymentsHandler lists the payment history.
func (h *AdminHandler) PaymentsHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	payments, err := h.Admin.Payments(c.Request.Context(), viewer.Token)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// PaymentHandler returns one payment record.
func (h *AdminHandler) PaymentHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	payment, err := h.Admin.Payment(c.Request.Context(), viewer.Token, c.Param("paymentID"))
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
