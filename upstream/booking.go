package upstream

import (
	"context"
	"fmt"

	"divinespark/models"
)

// BookFree books a zero-price session directly, no payment involved.
func (c *Client) BookFree(ctx context.Context, token, sessionID string) error {
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetError(&errBody).
		Post(fmt.Sprintf("/book/free/%s", sessionID))
	return classify(resp, err, &errBody)
}

// InitiatePaidBooking asks the backend for a payment order. The response
// amount is in minor currency units per the backend contract; completeness
// is the orchestrator's concern, not the client's.
func (c *Client) InitiatePaidBooking(ctx context.Context, token, sessionID string) (models.PaymentOrder, error) {
	var order models.PaymentOrder
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetResult(&order).
		SetError(&errBody).
		Post(fmt.Sprintf("/book/paid/%s", sessionID))
	if err := classify(resp, err, &errBody); err != nil {
		return models.PaymentOrder{}, err
	}
	return order, nil
}

// ConfirmPaidBooking correlates a provider payment id with the session being
// booked. Called only after the checkout widget reported success.
func (c *Client) ConfirmPaidBooking(ctx context.Context, token, paymentID, sessionID string) error {
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"paymentId": paymentID,
			"sessionId": sessionID,
		}).
		SetError(&errBody).
		Post("/book/paid/confirm")
	return classify(resp, err, &errBody)
}
