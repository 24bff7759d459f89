// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import (
	"encoding/json"
	"strings"
	"time"
)

// Param is a single query parameter.
//
// Parameters are kept as an ordered sequence, not a map: the server
// receives them in the exact order the caller supplied them.
type Param struct {
	// Name is the parameter name
	Name string

	// Value is the parameter value, sent verbatim (no URL escaping)
	Value string
}

// Req represents a request modifier
//
// This struct is used to apply request-specific options via functional
// modifiers. Operation parameters (endpoint, body) are passed directly
// to methods.
//
// Example:
//
//	// Get with query parameters and a custom timeout
//	res, err := client.Get(ctx, "/api/channels/1",
//	    instrument.Query("Single", "true"),
//	    instrument.Timeout(5*time.Second))
type Req struct {
	// Params are the query parameters in caller-supplied order
	Params []Param

	// Timeout is the request-specific deadline
	// Overrides the client default if set
	Timeout time.Duration
}

// buildURL concatenates base URL, endpoint and query string.
//
// The base URL and endpoint are joined verbatim with no normalization.
// A non-empty parameter sequence appends "?" followed by name=value
// pairs joined with "&", preserving input order. Values are not URL
// escaped by this layer; callers pre-escape where the server requires
// it. This matches the server's query handling byte for byte.
func buildURL(baseURL, endpoint string, params []Param) string {
	if len(params) == 0 {
		return baseURL + endpoint
	}

	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString(endpoint)
	b.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// encodeBody serializes a request body to JSON text.
//
// A Body builder contributes its built JSON directly (including any
// deferred build error). Any other value goes through encoding/json;
// a nil body serializes to the JSON literal "null", which the server
// accepts as an empty payload.
func encodeBody(body any) (string, error) {
	if b, ok := body.(Body); ok {
		return b.String()
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
