// Package webhook delivers rendered messages to the configured HTTP endpoint.
package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client posts rendered messages to a single webhook URL. Any 2xx status is
// a success; everything else, including transport errors and the timeout,
// counts as a failed delivery.
type Client struct {
	url    string
	client *http.Client
}

func New(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Send(ctx context.Context, message string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(message))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}
