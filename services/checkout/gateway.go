package checkout

import (
	"context"

	"divinespark/models"
)

// Outcome tags the single result of one checkout widget invocation.
type Outcome int

const (
	// OutcomeSuccess: the widget collected payment and produced a
	// provider-generated payment identifier.
	OutcomeSuccess Outcome = iota
	// OutcomeDismissed: the viewer closed the widget without paying.
	OutcomeDismissed
	// OutcomeLoadFailure: the widget script could not be fetched.
	OutcomeLoadFailure
)

// Result is the awaited terminal result of a widget invocation.
type Result struct {
	Outcome   Outcome
	PaymentID string
	Err       error
}

// Order carries everything the hosted widget needs to open. Amount is in
// minor currency units (paise).
type Order struct {
	OrderID     string
	Amount      int64
	Currency    string
	Key         string
	Name        string
	Description string
	Prefill     models.ContactInfo
}

// WidgetOptions is the instantiation payload handed to the browser, shaped
// to the provider's checkout.js contract.
type WidgetOptions struct {
	Key         string             `json:"key"`
	Amount      int64              `json:"amount"`
	Currency    string             `json:"currency"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	OrderID     string             `json:"order_id"`
	Prefill     models.ContactInfo `json:"prefill"`
	Theme       WidgetTheme        `json:"theme"`
}

type WidgetTheme struct {
	Color string `json:"color"`
}

// CallbackResolver settles pending widget invocations from the browser's
// success/dismiss callbacks.
type CallbackResolver interface {
	ResolveSuccess(attemptID, paymentID string) bool
	ResolveDismiss(attemptID string) bool
}

// Gateway abstracts the hosted checkout widget as one awaitable operation:
// ensure the script is available, open the widget, block until exactly one
// of the three outcomes arrives.
type Gateway interface {
	// EnsureLoaded fetches the widget script if it has not been fetched
	// yet. Idempotent: once loaded it returns immediately.
	EnsureLoaded(ctx context.Context) error
	// Open blocks until the invocation identified by attemptID settles.
	Open(ctx context.Context, attemptID string, order Order) Result
	// Options builds the browser-side instantiation payload.
	Options(order Order) WidgetOptions
}
