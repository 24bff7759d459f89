// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import "fmt"

// maxErrorBodyLength limits response body text embedded in error messages.
const maxErrorBodyLength = 512

// TransportError is returned when the server answers with an HTTP status
// code outside the accepted set (200, 204, 400, 404, 405, 500, 501).
//
// The raw response body is carried for diagnostics; it is never
// interpreted as a status envelope, since the transport outcome itself
// is unsupported.
type TransportError struct {
	// Endpoint is the endpoint path of the failed request
	Endpoint string

	// StatusCode is the rejected HTTP status code
	StatusCode int

	// Body is the raw response body text
	Body string
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("instrument: %s failed: unsupported HTTP status %d: %s",
		e.Endpoint, e.StatusCode, bodySnippet(e.Body))
}

// TimeoutError is returned when a request exceeds its deadline.
//
// The error names the base URL rather than the endpoint: a timeout is a
// property of the server connection, not of the individual call.
type TimeoutError struct {
	// BaseURL is the base URL of the unresponsive server
	BaseURL string
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("instrument: request to %s timed out", e.BaseURL)
}

// DecodeError is returned when a response body that claims to carry a
// status envelope cannot be parsed, or when a response cannot be
// deserialized into the requested type.
//
// A DecodeError indicates a compatibility break between client and
// server, not a logical failure reported by the server (see ProtocolError).
type DecodeError struct {
	// Body is the raw response body text that failed to decode
	Body string

	// Err is the underlying decode failure
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("instrument: decode failed: %v: %s", e.Err, bodySnippet(e.Body))
}

// Unwrap returns the underlying decode failure
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when a response carries a well-formed status
// envelope reporting a non-benign status code.
//
// This is the server's intended failure-signaling channel: the HTTP call
// itself succeeded, but the server-side operation did not.
type ProtocolError struct {
	// StatusCode is the status code reported by the server
	StatusCode StatusCode

	// Message is the human-readable message reported by the server
	Message string
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("instrument: server reported %s", e.StatusCode)
	}
	return fmt.Sprintf("instrument: server reported %s: %s", e.StatusCode, e.Message)
}

// bodySnippet truncates body text for inclusion in errors and logs
func bodySnippet(body string) string {
	if len(body) <= maxErrorBodyLength {
		return body
	}
	return body[:maxErrorBodyLength] + "...[TRUNCATED]"
}
