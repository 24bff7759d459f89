// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package instrument provides a simple, fluent API for interacting with
// instrument-control servers over HTTP with JSON payloads.
//
// The library is a protocol bridge: it issues PUT/GET/DELETE requests
// against the server, and translates the server's embedded status-code
// protocol into typed success/failure outcomes. Responses may carry an
// optional status envelope {TypeCode, StatusCode, Message}; a benign
// status (Success, Updated, RequiresRestart) or the absence of an
// envelope means success, any other status surfaces as a ProtocolError
// with the server's own code and message.
//
// # Quick Start
//
// Create a client and perform basic operations:
//
//	client, err := instrument.NewClient(
//	    "http://10.0.0.10",
//	    instrument.Username("admin"),
//	    instrument.Password("secret"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	res, err := client.Get(ctx, "/api/channels/1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Parse response using gjson
//	name := res.GetValue("Name").String()
//	fmt.Println("Channel:", name)
//
// # JSON Manipulation
//
// Use the Body builder for constructing JSON payloads:
//
//	body := instrument.Body{}.
//	    Set("Name", "AI 1/1").
//	    Set("Enabled", true).
//	    Set("Filter.CutoffFrequency", 500)
//
//	err = client.Put(ctx, "/api/channels/1", body)
//
// # Error Handling
//
// Failures surface as a small closed set of typed errors, each needing
// different caller remediation:
//
//   - TransportError: the server answered with an HTTP status outside
//     the accepted set
//   - TimeoutError: the call exceeded its deadline (default 60s)
//   - DecodeError: the body claimed to be a status envelope but could
//     not be parsed, or a response could not be deserialized
//   - ProtocolError: the server executed the request and reported a
//     logical failure
//
// Transport failures the library does not recognize (connection refused,
// DNS, TLS) propagate unwrapped. The library never retries; retry policy
// belongs to the caller.
//
//	err = client.Put(ctx, "/api/channels/1/autozero", nil)
//	var statusErr *instrument.ProtocolError
//	if errors.As(err, &statusErr) {
//	    fmt.Println("server says:", statusErr.StatusCode, statusErr.Message)
//	}
//
// # Thread Safety
//
// All operations may be called concurrently; the underlying connection
// pool is shared process-wide. The Client.LastResponse diagnostic field
// is intentionally unsynchronized and races under concurrent use of a
// single instance.
//
// # References
//
//   - gjson: https://github.com/tidwall/gjson
//   - sjson: https://github.com/tidwall/sjson
//   - resty: https://github.com/go-resty/resty
package instrument
