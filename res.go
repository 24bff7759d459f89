// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
)

// Res represents a response body that passed the transport and status
// checks.
//
// The body is kept as raw text and can be consumed three ways:
// Decode into a typed model, GetValue for gjson path queries, or
// Scalar for leaf-value inference.
type Res struct {
	body string
}

// Body returns the raw response body text
func (r Res) Body() string {
	return r.body
}

// Decode deserializes the response body into the provided value.
//
// The target follows encoding/json conventions and must be a non-nil
// pointer. Use a concretely-typed model for nested structure; Scalar
// only materializes leaf values.
//
// Example:
//
//	var ch struct {
//	    Name    string `json:"Name"`
//	    Enabled bool   `json:"Enabled"`
//	}
//	res, err := client.Get(ctx, "/api/channels/1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := res.Decode(&ch); err != nil {
//	    log.Fatal(err)
//	}
//
// Returns a DecodeError if the body cannot be materialized as the
// target type.
func (r Res) Decode(out any) error {
	if err := json.Unmarshal([]byte(r.body), out); err != nil {
		return &DecodeError{Body: r.body, Err: err}
	}
	return nil
}

// GetValue retrieves a value from the response body using a gjson path.
// The path follows gjson syntax for querying JSON structures.
//
// Returns gjson.Result which can be converted to specific types:
//   - result.String() for string values
//   - result.Int() for integer values
//   - result.Bool() for boolean values
//   - result.Array() for array values
//
// Example:
//
//	res, err := client.Get(ctx, "/api/channels/1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name := res.GetValue("Name").String()
//	sampleRate := res.GetValue("SampleRate").Int()
func (r Res) GetValue(path string) gjson.Result {
	return gjson.Get(r.body, path)
}

// Scalar retrieves a leaf value from the response body and infers its
// native Go type.
//
// The inference rule decodes unknown-shaped JSON leaves only:
//   - strings decode to string
//   - numbers decode to int64 when the wire form is an exact integer,
//     otherwise to float64
//   - booleans decode to bool
//   - null, objects, arrays and missing paths decode to nil
//
// Containers are deliberately not materialized; callers needing nested
// structure decode into a typed model via Decode.
//
// Example:
//
//	res, _ := client.Get(ctx, "/api/channels/1/signal")
//	switch v := res.Scalar("Value").(type) {
//	case int64:
//	    fmt.Println("counts:", v)
//	case float64:
//	    fmt.Println("measurement:", v)
//	}
func (r Res) Scalar(path string) any {
	return inferScalar(gjson.Get(r.body, path))
}

// inferScalar converts a gjson leaf result to a native Go scalar.
//
// Integer detection uses the raw wire text, not the parsed float: the
// wire forms 2 and 2.0 infer to int64(2) and float64(2.0) respectively.
func inferScalar(result gjson.Result) any {
	switch result.Type {
	case gjson.String:
		return result.Str
	case gjson.Number:
		if i, err := strconv.ParseInt(result.Raw, 10, 64); err == nil {
			return i
		}
		return result.Num
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		// Null, containers and missing paths carry no scalar value
		return nil
	}
}
