package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"divinespark/middleware"
	"divinespark/models"
	"divinespark/services/auth"
	"divinespark/services/donation"
)

// DonationHandler drives the donation flow. Donations do not require a
// signed-in viewer; a present session token is forwarded anyway.
type DonationHandler struct {
	Donations donation.DonationService
	Auth      auth.AuthService
	Logger    *zap.Logger
}

func NewDonationHandler(donations donation.DonationService, authSvc auth.AuthService, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{Donations: donations, Auth: authSvc, Logger: logger}
}

func (h *DonationHandler) token(c *gin.Context) string {
	if viewer := middleware.GetViewerSession(c); viewer != nil {
		return viewer.Token
	}
	return ""
}

// StartDonationHandler validates the donor form, creates the order and
// returns the widget options.
func (h *DonationHandler) StartDonationHandler(c *gin.Context) {
	var input models.DonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields (First name, Last name, Email, Amount)."})
		return
	}

	response, err := h.Donations.Start(c.Request.Context(), h.token(c), input)
	if err != nil {
		var validationErr *donation.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// VerifyDonationHandler submits the provider's signed identifiers. A
// verification failure means money moved but the donation is unconfirmed,
// so the response points the donor to support.
func (h *DonationHandler) VerifyDonationHandler(c *gin.Context) {
	var verification models.DonationVerification
	if err := c.ShouldBindJSON(&verification); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Donations.Verify(c.Request.Context(), h.token(c), verification); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": donation.MsgVerifyFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": donation.MsgThankYou, "level": "success"})
}

// DismissDonationHandler records a closed-without-paying widget.
// Informational only.
func (h *DonationHandler) DismissDonationHandler(c *gin.Context) {
	h.Logger.Info("donation checkout dismissed", zap.String("ip", c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"message": donation.MsgDonationStopped, "level": "info"})
}
