package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"divinespark/models"
	"divinespark/services/auth"
)

// SessionCookieName is the opaque viewer-session cookie set at login.
const SessionCookieName = "ds_session"

const viewerSessionKey = "viewerSession"

// sessionID extracts the viewer session id from the cookie, falling back to
// the X-Session-Id header for non-browser clients.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(SessionCookieName); err == nil && id != "" {
		return id
	}
	return c.GetHeader("X-Session-Id")
}

// ViewerSessionMiddleware resolves the viewer session behind the request's
// cookie. With optional set, unauthenticated requests pass through without a
// session in context; otherwise they are rejected and the front redirects to
// the login view.
func ViewerSessionMiddleware(authSvc auth.AuthService, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		if id == "" {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "redirect": "/login"})
			return
		}

		session, err := authSvc.Session(c.Request.Context(), id)
		if err != nil || session == nil {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again", "redirect": "/login"})
			return
		}

		c.Set(viewerSessionKey, session)
		c.Next()
	}
}

// AdminMiddleware requires a resolved viewer session carrying the admin
// role. Lacking the role is surfaced as a notification, not a redirect.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetViewerSession(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "redirect": "/login"})
			return
		}
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. You do not have permission to perform this action."})
			return
		}
		c.Next()
	}
}

// GetViewerSession returns the resolved session, or nil when the request is
// unauthenticated.
func GetViewerSession(c *gin.Context) *models.ViewerSession {
	value, ok := c.Get(viewerSessionKey)
	if !ok {
		return nil
	}
	session, ok := value.(*models.ViewerSession)
	if !ok {
		return nil
	}
	return session
}

// ViewerSessionID returns the raw session id for the request, empty when
// absent.
func ViewerSessionID(c *gin.Context) string {
	return sessionID(c)
}
