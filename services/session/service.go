package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"divinespark/models"
	"divinespark/upstream"
)

// DefaultSessionService implements SessionService over the backend client.
type DefaultSessionService struct {
	Backend *upstream.Client
	Logger  *zap.Logger
	// Now is the clock used for availability derivation; tests override it.
	Now func() time.Time
}

func (s *DefaultSessionService) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List fetches and resolves the public session list.
func (s *DefaultSessionService) List(ctx context.Context) ([]models.ResolvedSession, error) {
	raws, err := s.Backend.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	return s.resolveAll(raws), nil
}

// ListAdmin fetches the unfiltered admin session list.
func (s *DefaultSessionService) ListAdmin(ctx context.Context, token string) ([]models.ResolvedSession, error) {
	raws, err := s.Backend.ListSessionsAdmin(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin sessions: %w", err)
	}
	return s.resolveAll(raws), nil
}

// Get fetches and resolves one session. A missing session surfaces as
// upstream.ErrNotFound so handlers can render a dedicated not-found view
// rather than a transient error.
func (s *DefaultSessionService) Get(ctx context.Context, id string) (*models.ResolvedSession, error) {
	raw, err := s.Backend.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	resolved := Resolve(raw, s.clock())
	return &resolved, nil
}

// Create forwards an admin create and resolves the returned record.
func (s *DefaultSessionService) Create(ctx context.Context, token string, input models.SessionInput) (*models.ResolvedSession, error) {
	raw, err := s.Backend.CreateSession(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("session created", zap.String("title", input.Title))
	resolved := Resolve(raw, s.clock())
	return &resolved, nil
}

// CreateMultipart forwards an admin create carrying an image upload.
func (s *DefaultSessionService) CreateMultipart(ctx context.Context, token string, fields map[string]string, fileName string, file io.Reader) (upstream.RawSession, error) {
	raw, err := s.Backend.CreateSessionMultipart(ctx, token, fields, fileName, file)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("session created", zap.String("title", fields["title"]))
	return raw, nil
}

// Update forwards an admin update and resolves the returned record.
func (s *DefaultSessionService) Update(ctx context.Context, token, id string, input models.SessionInput) (*models.ResolvedSession, error) {
	raw, err := s.Backend.UpdateSession(ctx, token, id, input)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("session updated", zap.String("sessionID", id))
	resolved := Resolve(raw, s.clock())
	return &resolved, nil
}

// Delete forwards an admin delete.
func (s *DefaultSessionService) Delete(ctx context.Context, token, id string) error {
	if err := s.Backend.DeleteSession(ctx, token, id); err != nil {
		return err
	}
	s.Logger.Info("session deleted", zap.String("sessionID", id))
	return nil
}

func (s *DefaultSessionService) resolveAll(raws []upstream.RawSession) []models.ResolvedSession {
	now := s.clock()
	resolved := make([]models.ResolvedSession, 0, len(raws))
	for _, raw := range raws {
		resolved = append(resolved, Resolve(raw, now))
	}
	return resolved
}
