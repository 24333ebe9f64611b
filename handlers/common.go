package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"divinespark/middleware"
	"divinespark/services/auth"
	"divinespark/upstream"
)

// handleUpstreamError converts a backend failure into the viewer-facing
// response for its error class. Authentication failures additionally clear
// the stored viewer session, so no flow needs bespoke 401 handling.
func handleUpstreamError(c *gin.Context, authSvc auth.AuthService, err error) {
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, upstream.ErrUnauthenticated):
		if id := middleware.ViewerSessionID(c); id != "" && authSvc != nil {
			authSvc.Expire(c.Request.Context(), id)
		}
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again", "redirect": "/login"})
	case errors.Is(err, upstream.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. You do not have permission to perform this action."})
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Something went wrong. Please try again."})
	}
}
