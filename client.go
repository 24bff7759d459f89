// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Default client configuration values
const (
	// DefaultRequestTimeout bounds every call; it matches the server's
	// own worst-case operation time
	DefaultRequestTimeout = 60 * time.Second
)

// acceptedStatusCodes is the transport-level allow-list: HTTP status
// codes for which the server produced a real response whose body may
// still encode a logical outcome. Anything else is an unsupported
// transport result and fails before the body is interpreted.
var acceptedStatusCodes = map[int]struct{}{
	http.StatusOK:                  {},
	http.StatusNoContent:           {},
	http.StatusBadRequest:          {},
	http.StatusNotFound:            {},
	http.StatusMethodNotAllowed:    {},
	http.StatusInternalServerError: {},
	http.StatusNotImplemented:      {},
}

// Shared HTTP transport: one process-wide connection pool amortizes
// connection setup across all client instances. Individual clients get
// their own resty/http.Client on top of it, so per-client settings
// never leak between instances.
var (
	sharedTransportOnce sync.Once
	sharedTransport     *http.Transport
)

// sharedHTTPTransport returns the process-wide HTTP transport,
// creating it on first use.
func sharedHTTPTransport() *http.Transport {
	sharedTransportOnce.Do(func() {
		sharedTransport = http.DefaultTransport.(*http.Transport).Clone()
	})
	return sharedTransport
}

// Client represents an HTTP client connection to an instrument-control
// server
type Client struct {
	// BaseURL is the server base URL, e.g. "http://10.0.0.10"
	// Endpoints are appended to it verbatim
	BaseURL string

	// RequestTimeout bounds each call (default: 60s)
	RequestTimeout time.Duration

	// LastResponse holds the raw body text of the most recent response,
	// success or failure, for diagnostic inspection.
	//
	// The field is deliberately unsynchronized best-effort state: it
	// races under concurrent use of one client instance. Callers needing
	// per-call response text must serialize their calls or use separate
	// client instances.
	LastResponse string

	// rest is the resty client carrying the shared transport
	rest *resty.Client

	// Credentials for HTTP basic authentication
	username string // unexported for security
	password string // unexported for security

	// insecure disables TLS certificate verification
	insecure bool

	// transport overrides the shared transport (tests, custom pools)
	transport http.RoundTripper

	// Logging configuration
	logger Logger
}

// NewClient creates a new instrument client with the specified base URL
// and options
//
// No connection is established at construction; the first call opens a
// pooled connection that is reused afterwards. The connection pool is
// shared process-wide across all client instances.
//
// Example:
//
//	client, err := instrument.NewClient(
//	    "http://10.0.0.10",
//	    instrument.Username("admin"),
//	    instrument.Password("secret"),
//	)
//	if err != nil {
//	    log.Fatal(err) // Configuration error
//	}
//
//	res, err := client.Get(ctx, "/api/channels/1")
//
// Returns a configured Client or an error if configuration validation
// fails.
func NewClient(baseURL string, opts ...func(*Client)) (*Client, error) {
	// Create client with default values
	client := &Client{
		BaseURL:        baseURL,
		RequestTimeout: DefaultRequestTimeout,
		logger:         &NoOpLogger{},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(client)
	}

	// Validate configuration
	if err := client.validateConfig(); err != nil {
		return nil, err
	}

	transport := client.transport
	if transport == nil {
		if client.insecure {
			// Do not relax verification on the shared transport;
			// give this client its own copy
			t := sharedHTTPTransport().Clone()
			t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // Explicitly requested via Insecure option
			transport = t
		} else {
			transport = sharedHTTPTransport()
		}
	}

	client.rest = resty.NewWithClient(&http.Client{Transport: transport})
	if client.username != "" || client.password != "" {
		client.rest.SetBasicAuth(client.username, client.password)
	}

	client.logger.Info("instrument client created",
		"baseURL", client.BaseURL,
		"timeout", client.RequestTimeout.String())

	return client, nil
}

// validateConfig validates client configuration
//
// Validates:
//   - Base URL is not empty
//   - Request timeout is positive
//
// Returns an error if validation fails.
func (c *Client) validateConfig() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base URL cannot be empty")
	}

	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	if c.insecure {
		c.logger.Warn("TLS certificate verification disabled",
			"baseURL", c.BaseURL,
			"recommendation", "use only with devices that cannot present a trusted certificate")
	}

	return nil
}

// Put sends a PUT request to the endpoint and checks the outcome.
//
// The body is serialized to JSON (a nil body serializes to the JSON
// literal "null"); a Body builder is sent as built. Query parameters
// and a per-request timeout can be supplied via modifiers.
//
// Outcome classification:
//   - HTTP status outside the accepted set: TransportError
//   - deadline exceeded: TimeoutError
//   - other transport failures (connection refused, DNS, TLS): the
//     underlying error, returned unwrapped
//   - response envelope reporting a non-benign status: ProtocolError
//   - envelope-shaped body that fails to parse: DecodeError
//
// An accepted non-2xx HTTP status whose body carries a benign envelope
// counts as success: the envelope, not the HTTP status, is the server's
// outcome channel.
//
// No retries are performed at this layer; retry policy belongs to the
// caller.
//
// Example:
//
//	body := instrument.Body{}.Set("Enabled", true)
//	err := client.Put(ctx, "/api/channels/1", body)
func (c *Client) Put(ctx context.Context, endpoint string, body any, mods ...func(*Req)) error {
	_, err := c.do(ctx, http.MethodPut, endpoint, body, mods)
	return err
}

// Get sends a GET request to the endpoint and returns the checked
// response.
//
// The status-envelope check runs before the body is handed back, so a
// returned Res is always a logical success. Decode it into a typed
// model, query it with GetValue, or read leaves with Scalar.
//
// Example:
//
//	res, err := client.Get(ctx, "/api/channels",
//	    instrument.Query("Enabled", "true"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	count := res.GetValue("#").Int()
//
// Error classification matches Put.
func (c *Client) Get(ctx context.Context, endpoint string, mods ...func(*Req)) (Res, error) {
	body, err := c.do(ctx, http.MethodGet, endpoint, nil, mods)
	if err != nil {
		return Res{}, err
	}
	return Res{body: body}, nil
}

// Delete sends a DELETE request to the endpoint and checks the outcome.
//
// Identical in shape to Put with no request body.
//
// Example:
//
//	err := client.Delete(ctx, "/api/recordings/17")
func (c *Client) Delete(ctx context.Context, endpoint string, mods ...func(*Req)) error {
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, mods)
	return err
}

// GetDecoded sends a GET request and deserializes the checked response
// body into T.
//
// Example:
//
//	type Channel struct {
//	    Name    string `json:"Name"`
//	    Enabled bool   `json:"Enabled"`
//	}
//	ch, err := instrument.GetDecoded[Channel](ctx, client, "/api/channels/1")
func GetDecoded[T any](ctx context.Context, c *Client, endpoint string, mods ...func(*Req)) (T, error) {
	var out T
	res, err := c.Get(ctx, endpoint, mods...)
	if err != nil {
		return out, err
	}
	if err := res.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// do executes one HTTP exchange and classifies its outcome.
//
// LastResponse is updated as soon as the body has been read, before any
// failure classification, so diagnostics can inspect the raw text even
// after an error.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, mods []func(*Req)) (string, error) {
	req := &Req{Timeout: c.RequestTimeout}
	for _, mod := range mods {
		mod(req)
	}

	url := buildURL(c.BaseURL, endpoint, req.Params)

	r := c.rest.R()
	if method == http.MethodPut {
		payload, err := encodeBody(body)
		if err != nil {
			c.logger.Error("request body encoding failed",
				"endpoint", endpoint,
				"error", err.Error())
			return "", err
		}
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(payload)
		c.logger.Debug("HTTP request body",
			"endpoint", endpoint,
			"body", bodySnippet(payload))
	}

	ctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()
	r.SetContext(ctx)

	c.logger.Debug("HTTP request",
		"method", method,
		"url", url)

	resp, err := r.Execute(method, url)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Error("HTTP request timed out",
				"method", method,
				"baseURL", c.BaseURL,
				"timeout", req.Timeout.String())
			return "", &TimeoutError{BaseURL: c.BaseURL}
		}
		// Unrecognized transport failures propagate unwrapped,
		// preserving the original detail for diagnostics
		c.logger.Error("HTTP request failed",
			"method", method,
			"url", url,
			"error", err.Error())
		return "", err
	}

	bodyText := string(resp.Body())
	c.LastResponse = bodyText

	c.logger.Debug("HTTP response",
		"method", method,
		"url", url,
		"status", resp.StatusCode(),
		"body", bodySnippet(bodyText))

	if _, ok := acceptedStatusCodes[resp.StatusCode()]; !ok {
		c.logger.Error("HTTP status not accepted",
			"endpoint", endpoint,
			"status", resp.StatusCode())
		return bodyText, &TransportError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Body:       bodyText,
		}
	}

	if err := checkStatus(bodyText); err != nil {
		c.logger.Error("server reported failure",
			"endpoint", endpoint,
			"error", err.Error())
		return bodyText, err
	}

	return bodyText, nil
}
