package session

import (
	"context"
	"io"

	"divinespark/models"
	"divinespark/upstream"
)

// SessionService exposes normalized session reads and the admin CRUD
// passthrough. Every read resolves availability from a fresh backend fetch;
// nothing is cached gateway-side.
type SessionService interface {
	List(ctx context.Context) ([]models.ResolvedSession, error)
	ListAdmin(ctx context.Context, token string) ([]models.ResolvedSession, error)
	Get(ctx context.Context, id string) (*models.ResolvedSession, error)

	Create(ctx context.Context, token string, input models.SessionInput) (*models.ResolvedSession, error)
	CreateMultipart(ctx context.Context, token string, fields map[string]string, fileName string, file io.Reader) (upstream.RawSession, error)
	Update(ctx context.Context, token, id string, input models.SessionInput) (*models.ResolvedSession, error)
	Delete(ctx context.Context, token, id string) error
}
