package upstream

import (
	"context"

	"divinespark/models"
)

// Login exchanges credentials for a bearer token. No Authorization header is
// attached; this is one of the public auth endpoints.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	var result models.AuthResult
	var errBody errorBody
	resp, err := c.request("").
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		SetError(&errBody).
		Post("/auth/login")
	if err := classify(resp, err, &errBody); err != nil {
		return models.AuthResult{}, err
	}
	return result, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, input models.RegistrationInput) (models.AuthResult, error) {
	var result models.AuthResult
	var errBody errorBody
	resp, err := c.request("").
		SetContext(ctx).
		SetBody(input).
		SetResult(&result).
		SetError(&errBody).
		Post("/auth/register")
	if err := classify(resp, err, &errBody); err != nil {
		return models.AuthResult{}, err
	}
	return result, nil
}

// RequestOTP asks the backend to mail a one-time code.
func (c *Client) RequestOTP(ctx context.Context, email string) error {
	var errBody errorBody
	resp, err := c.request("").
		SetContext(ctx).
		SetBody(models.OTPRequest{Email: email}).
		SetError(&errBody).
		Post("/auth/request-otp")
	return classify(resp, err, &errBody)
}

// VerifyOTP exchanges a one-time code for a bearer token.
func (c *Client) VerifyOTP(ctx context.Context, verification models.OTPVerification) (models.AuthResult, error) {
	var result models.AuthResult
	var errBody errorBody
	resp, err := c.request("").
		SetContext(ctx).
		SetBody(verification).
		SetResult(&result).
		SetError(&errBody).
		Post("/auth/verify-otp")
	if err := classify(resp, err, &errBody); err != nil {
		return models.AuthResult{}, err
	}
	return result, nil
}
