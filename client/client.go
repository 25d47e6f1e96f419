// Package client is the Go counterpart of the site booking form: an API
// client for the booking endpoint and the form's submission state machine.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bvetra/models"
)

// ErrServer covers network failures, non-2xx statuses and logically
// unsuccessful response bodies. The form shows it as one generic message.
var ErrServer = errors.New("client: network/server error")

// Submitter submits one booking request. *Client is the production
// implementation; tests substitute their own.
type Submitter interface {
	Submit(ctx context.Context, req models.BookingRequest) error
}

// Client talks to the booking API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts the booking and interprets the {ok, message} body. Both a
// non-2xx status and ok:false count as failure.
func (c *Client) Submit(ctx context.Context, req models.BookingRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/booking", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	defer resp.Body.Close()

	var apiResp models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("%w: bad response body", ErrServer)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !apiResp.OK {
		if apiResp.Message != "" {
			return fmt.Errorf("%w: %s", ErrServer, apiResp.Message)
		}
		return ErrServer
	}
	return nil
}
