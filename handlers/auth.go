package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"divinespark/middleware"
	"divinespark/models"
	"divinespark/services/auth"
	"divinespark/upstream"
)

const sessionCookieMaxAge = 24 * 60 * 60

// AuthHandler owns the login/logout surface and the profile passthrough.
type AuthHandler struct {
	Auth    auth.AuthService
	Backend *upstream.Client
}

func NewAuthHandler(authSvc auth.AuthService, backend *upstream.Client) *AuthHandler {
	return &AuthHandler{Auth: authSvc, Backend: backend}
}

func setSessionCookie(c *gin.Context, sessionID string) {
	c.SetCookie(middleware.SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
}

// LoginHandler exchanges credentials for a viewer session cookie.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Auth.Login(c.Request.Context(), creds)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}

	setSessionCookie(c, session.ID)
	c.JSON(http.StatusOK, gin.H{"role": session.Role, "email": session.Email})
}

// RegisterHandler creates an account; when the backend returns a token with
// the response the viewer is signed in immediately.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Auth.Register(c.Request.Context(), input)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusCreated, gin.H{"message": "Account created, please sign in"})
		return
	}

	setSessionCookie(c, session.ID)
	c.JSON(http.StatusCreated, gin.H{"role": session.Role, "email": session.Email})
}

// RequestOTPHandler asks the backend to mail a one-time code.
func (h *AuthHandler) RequestOTPHandler(c *gin.Context) {
	var body models.OTPRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Auth.RequestOTP(c.Request.Context(), body.Email); err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyOTPHandler exchanges a one-time code for a viewer session cookie.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var body models.OTPVerification
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Auth.LoginWithOTP(c.Request.Context(), body)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}

	setSessionCookie(c, session.ID)
	c.JSON(http.StatusOK, gin.H{"role": session.Role, "email": session.Email})
}

// LogoutHandler drops the viewer session and clears the cookie.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if id := middleware.ViewerSessionID(c); id != "" {
		_ = h.Auth.Logout(c.Request.Context(), id)
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// MeHandler returns the signed-in user's backend profile.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	viewer := middleware.GetViewerSession(c)
	profile, err := h.Backend.CurrentUser(c.Request.Context(), viewer.Token)
	if err != nil {
		handleUpstreamError(c, h.Auth, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
