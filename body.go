// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Body provides a fluent interface for building JSON request payloads
// using sjson for path-based manipulation.
//
// The builder tracks errors internally to enable method chaining; check
// the accumulated error through String() or Err(). A Body can be passed
// directly to Put, which serializes it as-is.
//
// Example:
//
//	body := instrument.Body{}.
//	    Set("Name", "AI 1/1").
//	    Set("Enabled", true).
//	    Set("Filter.Type", "Bessel").
//	    Set("Filter.CutoffFrequency", 500)
//
//	if err := client.Put(ctx, "/api/channels/1", body); err != nil {
//	    log.Fatal(err)
//	}
type Body struct {
	// str contains the JSON string being built
	str string
	// err tracks the first error encountered during building
	err error
}

// Set sets a value at the specified JSON path and returns a new Body
//
// The path uses dot notation for nested fields (e.g., "Filter.Type").
// The value can be any type that sjson supports (string, number, bool, etc.).
//
// If an error occurs, the error is stored and returned by String() or Err().
// Once an error occurs, all subsequent operations are no-ops that preserve
// the error.
//
// Returns the Body for method chaining.
func (b Body) Set(path string, value any) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Set(b.str, path, value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Set(%q): %w", path, err)}
	}
	return Body{str: result, err: nil}
}

// Delete removes a value at the specified JSON path and returns a new Body
//
// The path uses dot notation for nested fields (e.g., "Filter.Type").
//
// If an error occurs, the error is stored and returned by String() or Err().
//
// Returns the Body for method chaining.
func (b Body) Delete(path string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Delete(b.str, path)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Delete(%q): %w", path, err)}
	}
	return Body{str: result, err: nil}
}

// String returns the JSON string representation and any error encountered
// during building
//
// Example:
//
//	body := instrument.Body{}.Set("Enabled", true)
//	payload, err := body.String()
//	if err != nil {
//	    log.Fatal(err)
//	}
func (b Body) String() (string, error) {
	return b.str, b.err
}

// Err returns any error that occurred during the building process
//
// This method allows checking for errors without retrieving the string
// value.
func (b Body) Err() error {
	return b.err
}

// Bytes returns the JSON byte slice representation and any error
// encountered during building
func (b Body) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []byte(b.str), nil
}
