// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// Package api provides a typed HTTP client for the CampusVibes backend.
// All business logic, persistence, and authorization live on the
// backend; this client mirrors its wire format with its own request
// and response types and classifies failures into the categories the
// UI layer presents.
//
// Every call takes a context and runs under an explicit per-request
// timeout. Nothing is retried automatically; the user re-triggers
// the action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every request unless the Client is configured
// otherwise. An elapsed deadline surfaces as a timeout error rather
// than hanging indefinitely.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer credential for authenticated calls.
// The session store satisfies this interface; requests made without a
// stored session simply omit the Authorization header.
type TokenSource interface {
	// Token returns the current access token, or "" when
	// unauthenticated.
	Token() string
}

// Client is a typed HTTP client for the CampusVibes backend API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	tokens     TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.timeout = timeout
		}
	}
}

// WithTokenSource attaches a bearer credential source. Authenticated
// endpoints send "Authorization: Bearer <token>" when the source
// returns a non-empty token.
func WithTokenSource(tokens TokenSource) Option {
	return func(client *Client) {
		client.tokens = tokens
	}
}

// New creates a Client for the backend at baseURL
// (e.g. "http://localhost:3000"). A trailing slash is stripped.
func New(baseURL string, options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// NewForTesting creates a Client with a custom transport. Tests use
// this to redirect requests to an httptest.Server.
func NewForTesting(transport http.RoundTripper, options ...Option) *Client {
	client := New("http://backend", options...)
	client.httpClient = &http.Client{Transport: transport}
	return client
}

// BaseURL returns the backend base URL this client was configured with.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// statusMessage is the minimal error-bearing shape shared by most
// backend responses. Success is a pointer because some endpoints
// (event listings) omit the field entirely; absence is not failure.
type statusMessage struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// roundTrip issues a request with the client's timeout, bearer header,
// and a correlation ID, reads the full body, then classifies
// transport-level failures. The body is returned with the response so
// callers never touch response.Body directly.
func (client *Client) roundTrip(operation string, ctx context.Context, request *http.Request) (*http.Response, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()
	request = request.WithContext(ctx)

	request.Header.Set("X-Request-ID", uuid.NewString())
	if client.tokens != nil {
		if token := client.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, Timeout("%s: timed out after %s", operation, client.timeout)
		}
		return nil, nil, Transport("%s: %w", operation, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, Timeout("%s: timed out after %s", operation, client.timeout)
		}
		return nil, nil, Transport("%s: reading response: %w", operation, err)
	}

	return response, body, nil
}

// call performs a request and decodes the JSON response into result,
// classifying error statuses. A non-2xx status, or a 2xx body with
// success:false, becomes a categorized error carrying the backend
// message when one is present, else a generic fallback.
func (client *Client) call(ctx context.Context, operation, method, path string, requestBody io.Reader, contentType string, result any) error {
	request, err := http.NewRequest(method, client.baseURL+path, requestBody)
	if err != nil {
		return Internal("%s: building request: %w", operation, err)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	response, body, err := client.roundTrip(operation, ctx, request)
	if err != nil {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message := backendMessage(body)
		switch response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return Auth("%s: %s", operation, message)
		case http.StatusNotFound:
			return NotFound("%s: %s", operation, message)
		default:
			return Request("%s: HTTP %d: %s", operation, response.StatusCode, message)
		}
	}

	var status statusMessage
	if err := json.Unmarshal(body, &status); err == nil && status.Success != nil && !*status.Success {
		message := status.Message
		if message == "" {
			message = "request failed"
		}
		return Request("%s: %s", operation, message)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return Internal("%s: parsing response: %w", operation, err)
		}
	}

	return nil
}

// getJSON issues a GET (path may include a query string) and decodes
// the response.
func (client *Client) getJSON(ctx context.Context, operation, path string, result any) error {
	return client.call(ctx, operation, http.MethodGet, path, nil, "", result)
}

// postJSON issues a POST with a JSON body and decodes the response.
func (client *Client) postJSON(ctx context.Context, operation, path string, requestBody any, result any) error {
	encoded, err := json.Marshal(requestBody)
	if err != nil {
		return Internal("%s: encoding request body: %w", operation, err)
	}
	return client.call(ctx, operation, http.MethodPost, path, bytes.NewReader(encoded), "application/json", result)
}

// deleteJSON issues a DELETE and decodes the response.
func (client *Client) deleteJSON(ctx context.Context, operation, path string, result any) error {
	return client.call(ctx, operation, http.MethodDelete, path, nil, "", result)
}

// backendMessage extracts the message field from an error body,
// falling back to a generic string when the body does not parse.
func backendMessage(body []byte) string {
	var status statusMessage
	if err := json.Unmarshal(body, &status); err == nil && status.Message != "" {
		return status.Message
	}
	return "request failed"
}
