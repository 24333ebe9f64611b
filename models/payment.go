package models

import "time"

// PaymentRecord is one entry of the payment history shown on the admin
// dashboard. Amount is in minor currency units.
type PaymentRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId,omitempty"`
	PayerName string    `json:"payerName"`
	Email     string    `json:"email"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the signed-in user's backend profile, used to prefill checkout
// contact fields.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}
