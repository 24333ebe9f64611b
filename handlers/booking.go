package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"divinespark/middleware"
	"divinespark/models"
	"divinespark/services/auth"
	"divinespark/services/booking"
)

// BookingHandler drives the booking confirmation flow for signed-in viewers.
type BookingHandler struct {
	Booking booking.BookingService
	Auth    auth.AuthService
}

func NewBookingHandler(bookingSvc booking.BookingService, authSvc auth.AuthService) *BookingHandler {
	return &BookingHandler{Booking: bookingSvc, Auth: authSvc}
}

// PrepareBookingHandler returns the yes/no confirmation dialog contents for
// a session, from a fresh availability fetch.
func (h *BookingHandler) PrepareBookingHandler(c *gin.Context) {
	prompt, err := h.Booking.Prepare(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// ConfirmBookingHandler starts a booking attempt. A confirm while another
// attempt for the same session is in flight is rejected without issuing any
// backend call.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)

	var contact models.ContactInfo
	// The body is optional; profile data fills the gaps.
	_ = c.ShouldBindJSON(&contact)

	response, err := h.Booking.Confirm(c.Request.Context(), booking.Viewer{
		ID:      viewer.ID,
		Token:   viewer.Token,
		Contact: contact,
	}, c.Param("sessionID"))
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) && bookingErr.Code == "attemptInProgress" {
			c.JSON(http.StatusConflict, gin.H{"error": bookingErr.Message})
			return
		}
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CheckoutSuccessHandler is the widget's success callback: the provider
// issued a payment identifier for this attempt.
func (h *BookingHandler) CheckoutSuccessHandler(c *gin.Context) {
	var body struct {
		PaymentID string `json:"paymentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !h.Booking.CompletePayment(c.Param("attemptID"), body.PaymentID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No payment pending for this attempt"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Payment received, confirming booking"})
}

// CheckoutDismissHandler is the widget's dismiss callback: closed without
// paying. Informational, not an error.
func (h *BookingHandler) CheckoutDismissHandler(c *gin.Context) {
	if !h.Booking.DismissPayment(c.Param("attemptID")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No payment pending for this attempt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": booking.MsgPaymentCancelled, "level": "info"})
}

// BookingResultHandler returns the attempt's terminal result once; the
// attempt is discarded with it. 204 means still in flight.
func (h *BookingHandler) BookingResultHandler(c *gin.Context) {
	result := h.Booking.Result(c.Param("attemptID"))
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, result)
}
