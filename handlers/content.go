package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"divinespark/content"
)

// ContentHandler serves the static marketing pages as structured payloads.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) LandingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, content.GetLanding())
}

func (h *ContentHandler) AboutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, content.GetAbout())
}

func (h *ContentHandler) ContactHandler(c *gin.Context) {
	c.JSON(http.StatusOK, content.GetContact())
}

func (h *ContentHandler) ReviewsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": content.GetReviews()})
}
