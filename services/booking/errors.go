package booking

import "fmt"

// BookingError is a coded service error surfaced to the viewer verbatim.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Viewer-facing notification texts. Cancellations are informational, the
// rest are errors; the confirmation-failure wording explicitly points the
// viewer to support since the provider already took the payment.
const (
	MsgFreeBooked        = "Successfully booked"
	MsgPaidBooked        = "Payment successful! Session booked."
	MsgInvalidOrder      = "Invalid payment order details received."
	MsgConfirmFailed     = "Payment succeeded but booking confirmation failed. Please contact support."
	MsgPaymentCancelled  = "Payment cancelled."
	MsgWidgetLoadFailed  = "Failed to load payment window. Please try again."
	MsgBookingFailed     = "Failed to book session. Please try again."
	MsgSessionNotOpen    = "This session is not open for registration."
	MsgAttemptInProgress = "A booking for this session is already in progress."
)

func NewOrderError() error {
	return &BookingError{Code: "orderError", Message: MsgInvalidOrder}
}

func NewAttemptInProgressError() error {
	return &BookingError{Code: "attemptInProgress", Message: MsgAttemptInProgress}
}

func NewNotOpenError() error {
	return &BookingError{Code: "notOpen", Message: MsgSessionNotOpen}
}
