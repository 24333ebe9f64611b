package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"divinespark/middleware"
	"divinespark/models"
	"divinespark/services/auth"
	"divinespark/services/session"
)

// SessionHandler serves the public session discovery views and the admin
// CRUD passthrough.
type SessionHandler struct {
	Sessions session.SessionService
	Auth     auth.AuthService
}

func NewSessionHandler(sessions session.SessionService, authSvc auth.AuthService) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Auth: authSvc}
}

// ListSessionsHandler returns the public session list with availability
// derived from this fetch.
func (h *SessionHandler) ListSessionsHandler(c *gin.Context) {
	resolved, err := h.Sessions.List(c.Request.Context())
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": resolved})
}

// GetSessionHandler returns one session. A missing id renders the dedicated
// not-found response, distinct from transient fetch failures.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	resolved, err := h.Sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// ListSessionsAdminHandler returns the unfiltered session list for the
// dashboard.
func (h *SessionHandler) ListSessionsAdminHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	resolved, err := h.Sessions.ListAdmin(c.Request.Context(), viewer.Token)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": resolved})
}

// CreateSessionHandler forwards an admin create, as JSON or multipart when
// an image upload accompanies the fields.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.createMultipart(c, viewer.Token)
		return
	}

	var input models.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resolved, err := h.Sessions.Create(c.Request.Context(), viewer.Token, input)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusCreated, resolved)
}

func (h *SessionHandler) createMultipart(c *gin.Context, token string) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}

	fields := make(map[string]string, len(form.Value))
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	var fileName string
	var file io.Reader
	if headers := form.File["image"]; len(headers) > 0 {
		opened, err := headers[0].Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload", "details": err.Error()})
			return
		}
		defer opened.Close()
		file = opened
		fileName = headers[0].Filename
	}

	raw, err := h.Sessions.CreateMultipart(c.Request.Context(), token, fields, fileName, file)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusCreated, raw)
}

// UpdateSessionHandler forwards an admin update.
func (h *SessionHandler) UpdateSessionHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	var input models.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resolved, err := h.Sessions.Update(c.Request.Context(), viewer.Token, c.Param("id"), input)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// DeleteSessionHandler forwards an admin delete.
func (h *SessionHandler) DeleteSessionHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	if err := h.Sessions.Delete(c.Request.Context(), viewer.Token, c.Param("id")); err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
