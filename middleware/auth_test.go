package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"divinespark/models"
	"divinespark/services/auth"
)

// fakeAuth resolves one known session id.
type fakeAuth struct {
	session *models.ViewerSession
}

func (f *fakeAuth) Login(ctx context.Context, creds models.Credentials) (*models.ViewerSession, error) {
	return nil, nil
}

func (f *fakeAuth) LoginWithOTP(ctx context.Context, verification models.OTPVerification) (*models.ViewerSession, error) {
	return nil, nil
}

func (f *fakeAuth) Register(ctx context.Context, input models.RegistrationInput) (*models.ViewerSession, error) {
	return nil, nil
}

func (f *fakeAuth) RequestOTP(ctx context.Context, email string) error { return nil }

func (f *fakeAuth) Logout(ctx context.Context, sessionID string) error { return nil }

func (f *fakeAuth) Session(ctx context.Context, sessionID string) (*models.ViewerSession, error) {
	if f.session != nil && f.session.ID == sessionID {
		return f.session, nil
	}
	return nil, errors.New("session not found")
}

func (f *fakeAuth) Expire(ctx context.Context, sessionID string) {}

func (f *fakeAuth) Subscribe(listener func(auth.Event)) {}

func newAuthRouter(authSvc auth.AuthService, optional bool, admin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{ViewerSessionMiddleware(authSvc, optional)}
	if admin {
		handlers = append(handlers, AdminMiddleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		session := GetViewerSession(c)
		if session == nil {
			c.JSON(http.StatusOK, gin.H{"viewer": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"viewer": session.Email})
	})
	r.GET("/probe", handlers...)
	return r
}

func TestRequiredSessionFromCookie(t *testing.T) {
	svc := &fakeAuth{session: &models.ViewerSession{ID: "sid-1", Email: "v@example.com", Role: "user"}}
	router := newAuthRouter(svc, false, false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "v@example.com")
}

func TestRequiredSessionFromHeaderFallback(t *testing.T) {
	svc := &fakeAuth{session: &models.ViewerSession{ID: "sid-1", Email: "v@example.com"}}
	router := newAuthRouter(svc, false, false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Session-Id", "sid-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequiredRejectsMissingSession(t *testing.T) {
	router := newAuthRouter(&fakeAuth{}, false, false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestRequiredRejectsUnknownSession(t *testing.T) {
	router := newAuthRouter(&fakeAuth{}, false, false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalPassesThroughAnonymous(t *testing.T) {
	router := newAuthRouter(&fakeAuth{}, true, false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"viewer":null`)
}

func TestAdminMiddlewareEnforcesRole(t *testing.T) {
	viewer := &fakeAuth{session: &models.ViewerSession{ID: "sid-1", Email: "v@example.com", Role: "user"}}
	router := newAuthRouter(viewer, false, true)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	admin := &fakeAuth{session: &models.ViewerSession{ID: "sid-2", Email: "a@example.com", Role: "admin"}}
	router = newAuthRouter(admin, false, true)

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-2"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
