package booking

import (
	"context"

	"divinespark/models"
	"divinespark/services/checkout"
)

// ConfirmPrompt is the yes/no dialog shown before an attempt starts: session
// title and price, nothing else.
type ConfirmPrompt struct {
	SessionID string  `json:"sessionId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	IsFree    bool    `json:"isFree"`
	CanBook   bool    `json:"canBook"`
	Message   string  `json:"message"`
}

// ConfirmResponse is returned when a confirm is accepted. For free sessions
// the attempt is already terminal and Result is set; for paid sessions the
// attempt is awaiting external payment and Checkout carries the widget
// options for the browser.
type ConfirmResponse struct {
	AttemptID string                  `json:"attemptId"`
	State     models.AttemptState     `json:"state"`
	Checkout  *checkout.WidgetOptions `json:"checkout,omitempty"`
	Result    *models.BookingResult   `json:"result,omitempty"`
}

// Viewer identifies the confirming viewer to the orchestrator.
type Viewer struct {
	ID      string
	Token   string
	Contact models.ContactInfo
}

// BookingService drives a booking confirmation to a terminal state: the free
// path books directly, the paid path sequences order creation, the external
// widget and the backend confirmation.
type BookingService interface {
	Prepare(ctx context.Context, sessionID string) (*ConfirmPrompt, error)
	Confirm(ctx context.Context, viewer Viewer, sessionID string) (*ConfirmResponse, error)
	CompletePayment(attemptID, paymentID string) bool
	DismissPayment(attemptID string) bool
	Result(attemptID string) *models.BookingResult
}
