package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"divinespark/models"
	"divinespark/upstream"
	"divinespark/utils"
)

// Event describes a change to a viewer's auth state. Subscribers react to
// these instead of reading stored credentials ad hoc.
type Event struct {
	Type      string // "login", "logout" or "expired"
	SessionID string
	Email     string
}

// AuthService is the process-wide session context: explicit login/logout
// operations, token lookup by opaque session id, and a subscription
// mechanism for components that must react to auth changes.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.ViewerSession, error)
	LoginWithOTP(ctx context.Context, verification models.OTPVerification) (*models.ViewerSession, error)
	Register(ctx context.Context, input models.RegistrationInput) (*models.ViewerSession, error)
	RequestOTP(ctx context.Context, email string) error
	Logout(ctx context.Context, sessionID string) error
	// Session resolves a viewer session by its opaque cookie id.
	Session(ctx context.Context, sessionID string) (*models.ViewerSession, error)
	// Expire clears a session after the backend rejected its token.
	Expire(ctx context.Context, sessionID string)
	Subscribe(listener func(Event))
}

// DefaultAuthService implements AuthService over the backend auth endpoints
// and a SessionStore.
type DefaultAuthService struct {
	Backend *upstream.Client
	Store   SessionStore
	Logger  *zap.Logger

	mu        sync.Mutex
	listeners []func(Event)
}

// Login exchanges credentials for a backend token and opens a viewer
// session around it.
func (s *DefaultAuthService) Login(ctx context.Context, creds models.Credentials) (*models.ViewerSession, error) {
	result, err := s.Backend.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, result, creds.Email)
}

// LoginWithOTP exchanges a verified one-time code for a session.
func (s *DefaultAuthService) LoginWithOTP(ctx context.Context, verification models.OTPVerification) (*models.ViewerSession, error) {
	result, err := s.Backend.VerifyOTP(ctx, verification)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, result, verification.Email)
}

// Register creates an account, then opens a session when the backend
// returned a token with the registration response.
func (s *DefaultAuthService) Register(ctx context.Context, input models.RegistrationInput) (*models.ViewerSession, error) {
	result, err := s.Backend.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	if result.Token == "" {
		// Backend wants a separate login after signup.
		return nil, nil
	}
	return s.openSession(ctx, result, input.Email)
}

// RequestOTP forwards the one-time code request.
func (s *DefaultAuthService) RequestOTP(ctx context.Context, email string) error {
	return s.Backend.RequestOTP(ctx, email)
}

// Logout discards the viewer session. The backend token is simply dropped;
// there is no server-side revocation endpoint.
func (s *DefaultAuthService) Logout(ctx context.Context, sessionID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.notify(Event{Type: "logout", SessionID: sessionID, Email: session.Email})
	return nil
}

// Session resolves the viewer session behind an opaque cookie id.
func (s *DefaultAuthService) Session(ctx context.Context, sessionID string) (*models.ViewerSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// Expire clears a session whose token the backend rejected. Handled globally
// so individual flows never need bespoke 401 handling.
func (s *DefaultAuthService) Expire(ctx context.Context, sessionID string) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear expired session", zap.String("sessionID", sessionID), zap.Error(err))
		return
	}
	s.notify(Event{Type: "expired", SessionID: sessionID, Email: session.Email})
}

// Subscribe registers a listener for auth events.
func (s *DefaultAuthService) Subscribe(listener func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *DefaultAuthService) notify(event Event) {
	s.mu.Lock()
	listeners := make([]func(Event), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, listener := range listeners {
		listener(event)
	}
}

func (s *DefaultAuthService) openSession(ctx context.Context, result models.AuthResult, email string) (*models.ViewerSession, error) {
	role := result.Role
	if claims, err := utils.DecodeTokenClaims(result.Token); err == nil {
		if claims.Role != "" {
			role = claims.Role
		}
		if email == "" {
			email = claims.Email
		}
	}

	session := models.ViewerSession{
		ID:        uuid.New().String(),
		Token:     result.Token,
		Role:      role,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.notify(Event{Type: "login", SessionID: session.ID, Email: email})
	s.Logger.Info("viewer signed in", zap.String("email", email), zap.String("role", role))
	return &session, nil
}
