package models

import "time"

// AttemptState tracks a booking attempt through its lifecycle.
type AttemptState string

const (
	AttemptIdle            AttemptState = "IDLE"
	AttemptConfirmPending  AttemptState = "CONFIRM_PENDING"
	AttemptSubmitting      AttemptState = "SUBMITTING"
	AttemptAwaitingPayment AttemptState = "AWAITING_EXTERNAL_PAYMENT"
	AttemptCompleted       AttemptState = "COMPLETED"
	AttemptFailed          AttemptState = "FAILED"
	AttemptCancelled       AttemptState = "CANCELLED"
)

// Terminal reports whether no further transitions are possible.
func (s AttemptState) Terminal() bool {
	return s == AttemptCompleted || s == AttemptFailed || s == AttemptCancelled
}

// BookingAttempt is the ephemeral record of one viewer's in-progress booking
// confirmation. It lives in memory only; a page reload mid-flow loses it and
// the viewer restarts from idle.
type BookingAttempt struct {
	ID        string       `json:"id"`
	ViewerID  string       `json:"viewerId"`
	SessionID string       `json:"sessionId"`
	State     AttemptState `json:"state"`
	Contact   ContactInfo  `json:"contact"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ContactInfo is prefilled into the checkout widget from the stored profile
// when available.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// PaymentOrder is the backend's response to a paid-booking initiation.
// Amount is in minor currency units (paise); the backend contract guarantees
// the unit, no heuristic conversion happens here.
type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// Valid reports whether the order carries everything the checkout widget
// needs. Incomplete orders fail the attempt before the widget is opened.
func (o PaymentOrder) Valid() bool {
	return o.OrderID != "" && o.Key != "" && o.Amount > 0
}

// BookingResult is the terminal outcome surfaced to the viewer as a
// notification.
type BookingResult struct {
	AttemptID string       `json:"attemptId"`
	SessionID string       `json:"sessionId"`
	State     AttemptState `json:"state"`
	// Level is "success", "error" or "info"; cancelled attempts are
	// informational, never errors.
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Registrant is one attendee of a session, as listed on the admin dashboard.
type Registrant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	SessionID    string    `json:"sessionId"`
	RegisteredAt time.Time `json:"registeredAt"`
	Paid         bool      `json:"paid"`
}
