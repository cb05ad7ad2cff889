// Package notify is the client side of the notification relay.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ApplicationEmail is the payload of the "application received" mail.
type ApplicationEmail struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	Surname     string `json:"surname"`
	JobTitle    string `json:"jobTitle"`
	JobPosition string `json:"jobPosition"` // company name
	JobLink     string `json:"jobLink"`
}

// VerificationEmail asks the applicant to schedule a verification call.
type VerificationEmail struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
}

// Notifier sends transactional mail through the relay.
type Notifier interface {
	NotifyApplication(ctx context.Context, msg ApplicationEmail) error
	NotifyVerification(ctx context.Context, msg VerificationEmail) error
}

// RelayError is returned for any non-200 relay response.
type RelayError struct {
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("relay responded %d: %s", e.StatusCode, e.Message)
}

// Client posts JSON payloads to the relay endpoints.
type Client struct {
	baseURL          string
	applicationPath  string
	verificationPath string
	apiKey           string
	httpClient       *http.Client
}

type ClientConfig struct {
	BaseURL          string
	ApplicationPath  string
	VerificationPath string
	APIKey           string
	Timeout          time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		applicationPath:  cfg.ApplicationPath,
		verificationPath: cfg.VerificationPath,
		apiKey:           cfg.APIKey,
		httpClient:       &http.Client{Timeout: timeout},
	}
}

var _ Notifier = (*Client)(nil)

func (c *Client) NotifyApplication(ctx context.Context, msg ApplicationEmail) error {
	return c.post(ctx, c.applicationPath, msg)
}

func (c *Client) NotifyVerification(ctx context.Context, msg VerificationEmail) error {
	return c.post(ctx, c.verificationPath, msg)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode relay payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Relay-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode != http.StatusOK {
		return &RelayError{StatusCode: resp.StatusCode, Message: errorMessage(respBody, resp.Status)}
	}
	return nil
}

// errorMessage pulls the most specific text out of a relay error body.
func errorMessage(body []byte, fallback string) string {
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		msg := parsed.Get("message").String()
		if detail := parsed.Get("error").String(); detail != "" {
			if msg == "" {
				return detail
			}
			return msg + ": " + detail
		}
		if msg != "" {
			return msg
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return fallback
}

// Noop discards notifications. Used when no relay is configured.
type Noop struct{}

func (Noop) NotifyApplication(context.Context, ApplicationEmail) error   { return nil }
func (Noop) NotifyVerification(context.Context, VerificationEmail) error { return nil }
