package upstream

import (
	"context"
	"fmt"

	"divinespark/models"
)

// PaymentHistory lists past payments for the admin dashboard.
func (c *Client) PaymentHistory(ctx context.Context, token string) ([]models.PaymentRecord, error) {
	var out []models.PaymentRecord
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get("/payments/history")
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPayment fetches one payment record by id.
func (c *Client) GetPayment(ctx context.Context, token, id string) (models.PaymentRecord, error) {
	var out models.PaymentRecord
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get(fmt.Sprintf("/payments/%s", id))
	if err := classify(resp, err, &errBody); err != nil {
		return models.PaymentRecord{}, err
	}
	return out, nil
}

// CurrentUser fetches the signed-in user's profile, the prefill source for
// checkout contact fields.
func (c *Client) CurrentUser(ctx context.Context, token string) (models.Profile, error) {
	var out models.Profile
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get("/users/me")
	if err := classify(resp, err, &errBody); err != nil {
		return models.Profile{}, err
	}
	return out, nil
}
