package donation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"divinespark/models"
	"divinespark/services/checkout"
	"divinespark/upstream"
)

// Viewer-facing notification texts for the donation flow.
const (
	MsgThankYou        = "Thank you for your donation!"
	MsgVerifyFailed    = "Donation verification failed. Please contact support."
	MsgDonationStopped = "Donation payment cancelled."
)

// ValidationError reports donor-form problems found before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StartResponse carries the checkout widget options for a pending donation.
type StartResponse struct {
	DonationID string                 `json:"donationId"`
	Checkout   checkout.WidgetOptions `json:"checkout"`
}

// DonationService drives the donation flow: validate the form, create a
// pending order, hand the widget options to the browser, verify the signed
// payment afterwards.
type DonationService interface {
	Start(ctx context.Context, token string, input models.DonationInput) (*StartResponse, error)
	Verify(ctx context.Context, token string, verification models.DonationVerification) error
}

// DefaultDonationService implements DonationService.
type DefaultDonationService struct {
	Backend *upstream.Client
	Widget  checkout.Gateway
	Logger  *zap.Logger
}

// Start validates the input, creates the order and builds the widget
// payload. Validation failures block before any backend call.
func (s *DefaultDonationService) Start(ctx context.Context, token string, input models.DonationInput) (*StartResponse, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	order, err := s.Backend.CreateDonationOrder(ctx, token, input)
	if err != nil {
		return nil, err
	}
	if order.OrderID == "" || order.Key == "" || order.Amount <= 0 {
		return nil, &ValidationError{Message: "Invalid order details from server."}
	}

	if err := s.Widget.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.FirstName + " " + input.LastName)
	options := s.Widget.Options(checkout.Order{
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Key:         order.Key,
		Name:        "DivineSpark",
		Description: "Donation",
		Prefill:     models.ContactInfo{Name: name, Email: input.Email, Phone: input.Phone},
	})

	s.Logger.Info("donation order created",
		zap.String("donationID", order.DonationID),
		zap.Int64("amount", order.Amount))
	return &StartResponse{DonationID: order.DonationID, Checkout: options}, nil
}

// Verify submits the provider's signed identifiers for backend signature
// verification. A failure here means the provider took the money but the
// donation is unconfirmed, so the caller surfaces the contact-support text.
func (s *DefaultDonationService) Verify(ctx context.Context, token string, verification models.DonationVerification) error {
	if err := s.Backend.VerifyDonationPayment(ctx, token, verification); err != nil {
		s.Logger.Error("donation verification failed",
			zap.String("orderID", verification.OrderID),
			zap.String("paymentID", verification.PaymentID),
			zap.Error(err))
		return err
	}
	return nil
}

func validate(input models.DonationInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" || strings.TrimSpace(input.Email) == "" {
		return &ValidationError{Message: "Please fill all required fields (First name, Last name, Email, Amount)."}
	}
	if input.Amount <= 0 {
		return &ValidationError{Message: "Please enter a valid amount greater than 0."}
	}
	return nil
}
