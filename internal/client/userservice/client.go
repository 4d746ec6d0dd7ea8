// Package userservice is the appointment service's client for the identity
// service's verify endpoints. Outcomes are typed (exists, upstream rejection,
// transport failure) so callers never branch on raw status codes.
package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"odontocare/config"

	"github.com/sirupsen/logrus"
)

// VerifyResult is the successful outcome: the entity exists and is active.
type VerifyResult struct {
	Exists bool `json:"exists"`
	ID     uint `json:"id"`
}

// UpstreamError is a non-success response from the identity service. The
// status and body are preserved so callers can propagate auth failures
// unchanged and surface the rest for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("user service returned status %d: %s", e.StatusCode, e.Body)
}

// IsAuthFailure reports whether the identity service rejected the forwarded
// token rather than the entity lookup.
func (e *UpstreamError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// TransportError is a network-level failure (connection refused, timeout).
// Treated the same as a failed verification.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("user service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client interface {
	VerifyPatient(ctx context.Context, token string, id uint) (*VerifyResult, error)
	VerifyDoctor(ctx context.Context, token string, id uint) (*VerifyResult, error)
	VerifyCenter(ctx context.Context, token string, id uint) (*VerifyResult, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.UserServiceConfig, log *logrus.Logger) Client {
	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

func (c *client) VerifyPatient(ctx context.Context, token string, id uint) (*VerifyResult, error) {
	return c.verify(ctx, token, fmt.Sprintf("/verify/pacientes/%d", id))
}

func (c *client) VerifyDoctor(ctx context.Context, token string, id uint) (*VerifyResult, error) {
	return c.verify(ctx, token, fmt.Sprintf("/verify/doctores/%d", id))
}

func (c *client) VerifyCenter(ctx context.Context, token string, id uint) (*VerifyResult, error) {
	return c.verify(ctx, token, fmt.Sprintf("/verify/centros/%d", id))
}

// verify performs a single GET with the caller's bearer token forwarded.
// Calls are not retried; a timeout counts as a failed verification.
func (c *client) verify(ctx context.Context, token, path string) (*VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Verify call %s failed: %+v", path, err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// Cap the body read; it is only carried for diagnostics.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result VerifyResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if !result.Exists {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &result, nil
}
