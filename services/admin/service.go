package admin

import (
	"context"

	"go.uber.org/zap"

	"divinespark/models"
	"divinespark/services/session"
	"divinespark/upstream"
)

// Overview aggregates the dashboard headline numbers from the admin session
// list and the payment history.
type Overview struct {
	TotalSessions      int `json:"totalSessions"`
	UpcomingSessions   int `json:"upcomingSessions"`
	ActiveSessions     int `json:"activeSessions"`
	TotalRegistrations int `json:"totalRegistrations"`
	// TotalCollected is in minor currency units, summed over captured
	// payments only.
	TotalCollected int64 `json:"totalCollected"`
	PaymentCount   int   `json:"paymentCount"`
}

// AdminService assembles the dashboard views on top of the admin-scoped
// backend endpoints.
type AdminService interface {
	Overview(ctx context.Context, token string) (*Overview, error)
	Registrants(ctx context.Context, token, sessionID string) ([]models.Registrant, error)
	Payments(ctx context.Context, token string) ([]models.PaymentRecord, error)
	Payment(ctx context.Context, token, id string) (models.PaymentRecord, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Backend  *upstream.Client
	Sessions session.SessionService
	Logger   *zap.Logger
}

// Overview fetches both admin datasets fresh and derives the counters.
func (s *DefaultAdminService) Overview(ctx context.Context, token string) (*Overview, error) {
	sessions, err := s.Sessions.ListAdmin(ctx, token)
	if err != nil {
		return nil, err
	}

	overview := &Overview{TotalSessions: len(sessions)}
	for _, resolved := range sessions {
		if resolved.Availability.IsUpcoming {
			overview.UpcomingSessions++
		}
		if resolved.Session.Active {
			overview.ActiveSessions++
		}
		overview.TotalRegistrations += resolved.Session.CurrentAttendees
	}

	payments, err := s.Backend.PaymentHistory(ctx, token)
	if err != nil {
		// The session counters are still worth showing when the payment
		// service is down.
		s.Logger.Warn("payment history unavailable for overview", zap.Error(err))
		return overview, nil
	}
	overview.PaymentCount = len(payments)
	for _, payment := range payments {
		if payment.Status == "captured" || payment.Status == "paid" {
			overview.TotalCollected += payment.Amount
		}
	}
	return overview, nil
}

// Registrants lists one session's attendees.
func (s *DefaultAdminService) Registrants(ctx context.Context, token, sessionID string) ([]models.Registrant, error) {
	return s.Backend.GetSessionAttendees(ctx, token, sessionID)
}

// Payments lists the payment history.
func (s *DefaultAdminService) Payments(ctx context.Context, token string) ([]models.PaymentRecord, error) {
	return s.Backend.PaymentHistory(ctx, token)
}

// Payment fetches one payment record for the dashboard detail view.
func (s *DefaultAdminService) Payment(ctx context.Context, token, id string) (models.PaymentRecord, error) {
	return s.Backend.GetPayment(ctx, token, id)
}
