package upstream

import (
	"context"

	"divinespark/models"
)

// CreateDonationOrder creates a checkout order and a pending donation record
// on the backend. Donations do not require a signed-in viewer.
func (c *Client) CreateDonationOrder(ctx context.Context, token string, input models.DonationInput) (models.DonationOrder, error) {
	var order models.DonationOrder
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetBody(input).
		SetResult(&order).
		SetError(&errBody).
		Post("/donations/create-order")
	if err := classify(resp, err, &errBody); err != nil {
		return models.DonationOrder{}, err
	}
	return order, nil
}

// VerifyDonationPayment submits the provider's signed identifiers for
// server-side signature verification.
func (c *Client) VerifyDonationPayment(ctx context.Context, token string, verification models.DonationVerification) error {
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetBody(verification).
		SetError(&errBody).
		Post("/donations/verify-payment")
	return classify(resp, err, &errBody)
}
