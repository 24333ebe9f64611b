package upstream

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"divinespark/config"
)

// Client is the typed REST client for the remote DivineSpark backend. The
// backend owns storage, authentication and payment-order creation; this
// client only shapes requests and classifies failures.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New builds a client against the given API base URL. Every request carries
// the fixed timeout; there are no automatic retries, the viewer re-initiates
// after a failure.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// NewFromConfig builds a client from the loaded application config.
func NewFromConfig(logger *zap.Logger) *Client {
	timeout := time.Duration(config.AppConfig.RequestTimeoutSecs) * time.Second
	return New(config.AppConfig.APIBaseURL, timeout, logger)
}

// request prepares a request with the viewer's bearer token attached. Public
// endpoints pass an empty token and no Authorization header is sent, which
// mirrors the backend's contract for login/registration/OTP.
func (c *Client) request(token string) *resty.Request {
	req := c.http.R()
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}
