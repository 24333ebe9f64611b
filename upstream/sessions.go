package upstream

import (
	"context"
	"fmt"
	"io"

	"divinespark/models"
)

// RawSession is an undecoded backend session record. Field names drift
// between backend versions, so normalization is deferred to the resolver.
type RawSession = map[string]any

// ListSessions fetches the public session list.
func (c *Client) ListSessions(ctx context.Context) ([]RawSession, error) {
	var raw []RawSession
	var errBody errorBody
	resp, err := c.request("").
		SetContext(ctx).
		SetResult(&raw).
		SetError(&errBody).
		Get("/sessions")
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return raw, nil
}

// ListSessionsAdmin fetches the unfiltered session list, inactive records
// included. Requires an admin token.
func (c *Client) ListSessionsAdmin(ctx context.Context, token string) ([]RawSession, error) {
	var raw []RawSession
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetResult(&raw).
		SetError(&errBody).
		Get("/sessions/admin")
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return raw, nil
}

// GetSession fetches one session by its opaque id.
func (c *Client) GetSession(ctx context.Context, id string) (RawSession, error) {
	var raw RawSession
	var errBody errorBody
	resp, err := c.request("").
		SetContext(ctx).
		SetResult(&raw).
		SetError(&errBody).
		Get(fmt.Sprintf("/sessions/%s", id))
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return raw, nil
}

// CreateSession creates a session via the admin API (JSON body).
func (c *Client) CreateSession(ctx context.Context, token string, input models.SessionInput) (RawSession, error) {
	var raw RawSession
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetBody(input).
		SetResult(&raw).
		SetError(&errBody).
		Post("/sessions/admin/create")
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return raw, nil
}

// CreateSessionMultipart creates a session with an attached image upload.
func (c *Client) CreateSessionMultipart(ctx context.Context, token string, fields map[string]string, fileName string, file io.Reader) (RawSession, error) {
	var raw RawSession
	var errBody errorBody
	req := c.request(token).
		SetContext(ctx).
		SetMultipartFormData(fields).
		SetResult(&raw).
		SetError(&errBody)
	if file != nil {
		req.SetMultipartField("image", fileName, "application/octet-stream", file)
	}
	resp, err := req.Post("/sessions/admin/create")
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return raw, nil
}

// UpdateSession updates a session via the admin API.
func (c *Client) UpdateSession(ctx context.Context, token, id string, input models.SessionInput) (RawSession, error) {
	var raw RawSession
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetBody(input).
		SetResult(&raw).
		SetError(&errBody).
		Put(fmt.Sprintf("/sessions/admin/%s", id))
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return raw, nil
}

// DeleteSession removes a session via the admin API.
func (c *Client) DeleteSession(ctx context.Context, token, id string) error {
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetError(&errBody).
		Delete(fmt.Sprintf("/sessions/admin/%s", id))
	return classify(resp, err, &errBody)
}

// GetSessionAttendees lists the registrants of one session for the admin
// dashboard.
func (c *Client) GetSessionAttendees(ctx context.Context, token, id string) ([]models.Registrant, error) {
	var out []models.Registrant
	var errBody errorBody
	resp, err := c.request(token).
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get(fmt.Sprintf("/sessions/%s/attendees", id))
	if err := classify(resp, err, &errBody); err != nil {
		return nil, err
	}
	return out, nil
}
