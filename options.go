// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import (
	"net/http"
	"time"
)

// Client configuration options using the functional options pattern

// Username sets the username for HTTP basic authentication
func Username(username string) func(*Client) {
	return func(c *Client) {
		c.username = username
	}
}

// Password sets the password for HTTP basic authentication
func Password(password string) func(*Client) {
	return func(c *Client) {
		c.password = password
	}
}

// RequestTimeout sets the per-call deadline (default: 60s)
//
// Each call is bounded by this deadline; exceeding it fails the call
// with a TimeoutError naming the base URL.
func RequestTimeout(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.RequestTimeout = duration
	}
}

// Insecure disables TLS certificate verification
//
// WARNING: Disabling certificate verification makes the connection
// vulnerable to Man-in-the-Middle attacks. Instrument servers commonly
// present self-signed certificates on isolated measurement networks;
// prefer installing the device certificate where possible.
//
// Example:
//
//	client, _ := instrument.NewClient("https://10.0.0.10",
//	    instrument.Insecure(true))
func Insecure(skip bool) func(*Client) {
	return func(c *Client) {
		c.insecure = skip
	}
}

// WithTransport overrides the shared HTTP transport for this client
//
// By default all clients share one process-wide connection pool. Use
// this option to substitute a dedicated pool or a fake transport in
// tests without mutating global state.
func WithTransport(transport http.RoundTripper) func(*Client) {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithLogger configures a custom logger for the client
//
// By default, the client uses NoOpLogger which discards all log
// messages. Use this option to enable logging with DefaultLogger or a
// custom logger.
//
// Example:
//
//	logger := instrument.NewDefaultLogger(instrument.LogLevelDebug)
//	client, _ := instrument.NewClient("http://10.0.0.10",
//	    instrument.WithLogger(logger))
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Request modifiers for individual operations

// Query returns a request modifier that appends one query parameter.
//
// Parameters are sent in the order the modifiers appear, rendered as
// name=value with no URL escaping; pre-escape values where the server
// requires it.
//
// Example:
//
//	res, err := client.Get(ctx, "/api/channels",
//	    instrument.Query("Type", "Analog"),
//	    instrument.Query("Enabled", "true"))
func Query(name, value string) func(*Req) {
	return func(req *Req) {
		req.Params = append(req.Params, Param{Name: name, Value: value})
	}
}

// Timeout returns a request modifier that sets a custom deadline for the
// operation, overriding the client's RequestTimeout.
//
// Example:
//
//	// Auto-zero can take longer than regular calls
//	err := client.Put(ctx, "/api/channels/1/autozero", nil,
//	    instrument.Timeout(2*time.Minute))
func Timeout(duration time.Duration) func(*Req) {
	return func(req *Req) {
		req.Timeout = duration
	}
}
