package models

// DonationInput is the donor-entered form, validated before any network call.
// Amount is in whole rupees as typed by the donor; the backend converts to
// minor units when creating the order.
type DonationInput struct {
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone"`
	Amount    float64  `json:"amount" binding:"required,gt=0"`
	Towards   []string `json:"towards"`
}

// DonationOrder is the backend's pending-donation order, checkout-ready.
// Amount is in minor currency units.
type DonationOrder struct {
	DonationID string `json:"donationId"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Key        string `json:"key"`
}

// DonationVerification carries the provider's signed payment identifiers
// back to the backend for signature verification.
type DonationVerification struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}
