package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"divinespark/models"
	"divinespark/services/checkout"
	"divinespark/services/session"
	"divinespark/upstream"
)

const (
	businessName   = "DivineSpark"
	confirmTimeout = 10 * time.Second
)

// DefaultBookingService implements BookingService. Steps within one attempt
// are strictly sequential: the order exists before the widget opens, the
// widget succeeds before the confirmation call goes out. Failures are never
// retried automatically and availability is never updated optimistically; a
// later fetch is the only source of truth.
type DefaultBookingService struct {
	Backend  *upstream.Client
	Sessions session.SessionService
	Widget   checkout.Gateway
	// Callbacks is the resolver side of the same widget gateway.
	Callbacks checkout.CallbackResolver
	Attempts  *AttemptRegistry
	Logger    *zap.Logger
}

// Prepare builds the confirmation dialog for a session from a fresh fetch.
func (s *DefaultBookingService) Prepare(ctx context.Context, sessionID string) (*ConfirmPrompt, error) {
	resolved, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess := resolved.Session
	message := fmt.Sprintf("Book %q for INR %.2f?", sess.Title, sess.Price)
	if resolved.Availability.IsFree {
		message = fmt.Sprintf("Book %q for free?", sess.Title)
	}
	return &ConfirmPrompt{
		SessionID: sess.ID,
		Title:     sess.Title,
		Price:     sess.Price,
		IsFree:    resolved.Availability.IsFree,
		CanBook:   resolved.Availability.OpenForRegistration,
		Message:   message,
	}, nil
}

// Confirm starts a booking attempt and drives it as far as it can go
// synchronously. A duplicate confirm while an attempt is in flight returns
// an error and issues no backend call.
func (s *DefaultBookingService) Confirm(ctx context.Context, viewer Viewer, sessionID string) (*ConfirmResponse, error) {
	attempt, err := s.Attempts.Begin(viewer.ID, sessionID, s.prefill(ctx, viewer))
	if err != nil {
		return nil, err
	}
	s.Attempts.Transition(attempt.ID, models.AttemptConfirmPending)

	// Re-check availability from a fresh fetch before submitting anything.
	resolved, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return s.fail(attempt.ID, MsgBookingFailed), nil
	}
	if !resolved.Availability.OpenForRegistration {
		return s.fail(attempt.ID, MsgSessionNotOpen), nil
	}

	s.Attempts.Transition(attempt.ID, models.AttemptSubmitting)

	if resolved.Availability.IsFree {
		return s.bookFree(ctx, attempt.ID, viewer.Token, sessionID), nil
	}
	return s.startPaid(ctx, attempt, viewer.Token, resolved.Session), nil
}

// bookFree settles the free path in one backend call.
func (s *DefaultBookingService) bookFree(ctx context.Context, attemptID, token, sessionID string) *ConfirmResponse {
	if err := s.Backend.BookFree(ctx, token, sessionID); err != nil {
		s.Logger.Warn("free booking failed", zap.String("sessionID", sessionID), zap.Error(err))
		return s.fail(attemptID, MsgBookingFailed)
	}
	result := s.Attempts.Finish(attemptID, models.AttemptCompleted, "success", MsgFreeBooked)
	return &ConfirmResponse{AttemptID: attemptID, State: models.AttemptCompleted, Result: result}
}

// startPaid creates the payment order, validates it, makes sure the widget
// script is available and hands the attempt over to the asynchronous
// payment wait. The widget is never opened on an incomplete order.
func (s *DefaultBookingService) startPaid(ctx context.Context, attempt *models.BookingAttempt, token string, sess models.Session) *ConfirmResponse {
	order, err := s.Backend.InitiatePaidBooking(ctx, token, sess.ID)
	if err != nil {
		s.Logger.Warn("payment order creation failed", zap.String("sessionID", sess.ID), zap.Error(err))
		return s.fail(attempt.ID, MsgBookingFailed)
	}
	if !order.Valid() {
		s.Logger.Warn("incomplete payment order", zap.String("sessionID", sess.ID), zap.String("orderID", order.OrderID))
		return s.fail(attempt.ID, MsgInvalidOrder)
	}

	if err := s.Widget.EnsureLoaded(ctx); err != nil {
		s.Logger.Warn("checkout script load failed", zap.Error(err))
		return s.fail(attempt.ID, MsgWidgetLoadFailed)
	}

	s.Attempts.Transition(attempt.ID, models.AttemptAwaitingPayment)

	widgetOrder := checkout.Order{
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Key:         order.Key,
		Name:        businessName,
		Description: sess.Title,
		Prefill:     attempt.Contact,
	}
	go s.awaitPayment(attempt.ID, token, sess.ID, widgetOrder)

	options := s.Widget.Options(widgetOrder)
	return &ConfirmResponse{
		AttemptID: attempt.ID,
		State:     models.AttemptAwaitingPayment,
		Checkout:  &options,
	}
}

// awaitPayment blocks on the widget's single tagged outcome and finalizes
// the attempt. The request context is gone by now; the wait runs on its own
// clock inside the gateway.
func (s *DefaultBookingService) awaitPayment(attemptID, token, sessionID string, order checkout.Order) {
	result := s.Widget.Open(context.Background(), attemptID, order)

	switch result.Outcome {
	case checkout.OutcomeSuccess:
		ctx, cancel := context.WithTimeout(context.Background(), confirmTimeout)
		defer cancel()
		if err := s.Backend.ConfirmPaidBooking(ctx, token, result.PaymentID, sessionID); err != nil {
			s.Logger.Error("paid booking confirmation failed",
				zap.String("sessionID", sessionID),
				zap.String("paymentID", result.PaymentID),
				zap.Error(err))
			s.Attempts.Finish(attemptID, models.AttemptFailed, "error", MsgConfirmFailed)
			return
		}
		s.Attempts.Finish(attemptID, models.AttemptCompleted, "success", MsgPaidBooked)
	case checkout.OutcomeDismissed:
		s.Attempts.Finish(attemptID, models.AttemptCancelled, "info", MsgPaymentCancelled)
	case checkout.OutcomeLoadFailure:
		s.Attempts.Finish(attemptID, models.AttemptFailed, "error", MsgWidgetLoadFailed)
	}
}

// CompletePayment is the browser's success callback: the widget produced a
// provider payment identifier for this attempt.
func (s *DefaultBookingService) CompletePayment(attemptID, paymentID string) bool {
	attempt := s.Attempts.Get(attemptID)
	if attempt == nil || attempt.State != models.AttemptAwaitingPayment {
		return false
	}
	return s.Callbacks.ResolveSuccess(attemptID, paymentID)
}

// DismissPayment is the browser's dismiss callback: the widget was closed
// without paying.
func (s *DefaultBookingService) DismissPayment(attemptID string) bool {
	attempt := s.Attempts.Get(attemptID)
	if attempt == nil || attempt.State != models.AttemptAwaitingPayment {
		return false
	}
	return s.Callbacks.ResolveDismiss(attemptID)
}

// Result returns the attempt's terminal result once, discarding the attempt.
func (s *DefaultBookingService) Result(attemptID string) *models.BookingResult {
	return s.Attempts.TakeResult(attemptID)
}

// fail settles an attempt as failed and wraps the result for the caller.
func (s *DefaultBookingService) fail(attemptID, message string) *ConfirmResponse {
	result := s.Attempts.Finish(attemptID, models.AttemptFailed, "error", message)
	return &ConfirmResponse{AttemptID: attemptID, State: models.AttemptFailed, Result: result}
}

// prefill fills checkout contact fields from the stored profile when the
// confirm request did not carry them.
func (s *DefaultBookingService) prefill(ctx context.Context, viewer Viewer) models.ContactInfo {
	contact := viewer.Contact
	if contact.Name != "" || contact.Email != "" || viewer.Token == "" {
		return contact
	}
	profile, err := s.Backend.CurrentUser(ctx, viewer.Token)
	if err != nil {
		return contact
	}
	return models.ContactInfo{Name: profile.Name, Email: profile.Email, Phone: profile.Phone}
}
