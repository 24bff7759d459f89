// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Status envelope field names as they appear on the wire.
const (
	envelopeFieldTypeCode   = "TypeCode"
	envelopeFieldStatusCode = "StatusCode"
	envelopeFieldMessage    = "Message"
)

// envelope is the optional status structure a response body may embed to
// report the logical outcome of an operation.
type envelope struct {
	TypeCode   string
	StatusCode StatusCode
	Message    string
}

// hasEnvelope reports whether the body appears to carry a status envelope.
//
// Detection is structural, not a parse: the raw text must contain all
// three field names as literal substrings, anywhere, in any order. A
// body that fails this check is interpreted as an implicit success.
func hasEnvelope(body string) bool {
	return strings.Contains(body, envelopeFieldTypeCode) &&
		strings.Contains(body, envelopeFieldStatusCode) &&
		strings.Contains(body, envelopeFieldMessage)
}

// parseEnvelope parses a body that passed the hasEnvelope pre-check.
//
// The wire shape is {"TypeCode": string, "StatusCode": string-or-int,
// "Message": string}. Integer status enumerants map by declaration
// order; out-of-range integers become unrecognized (failing) codes.
//
// Returns a DecodeError if the body is not valid JSON or the StatusCode
// field is missing or not a string/number: a body that claims to be an
// envelope but cannot be read as one is a compatibility break, not a
// logical failure.
func parseEnvelope(body string) (envelope, error) {
	if !gjson.Valid(body) {
		return envelope{}, &DecodeError{Body: body, Err: errors.New("status envelope is not valid JSON")}
	}

	env := envelope{
		TypeCode: gjson.Get(body, envelopeFieldTypeCode).String(),
		Message:  gjson.Get(body, envelopeFieldMessage).String(),
	}

	code := gjson.Get(body, envelopeFieldStatusCode)
	switch code.Type {
	case gjson.String:
		env.StatusCode = StatusCode(code.Str)
	case gjson.Number:
		sc, ok := statusCodeFromOrdinal(code.Int())
		if !ok {
			// Unknown enumerant, keep the raw value so the failure names it
			sc = StatusCode(code.Raw)
		}
		env.StatusCode = sc
	default:
		return envelope{}, &DecodeError{
			Body: body,
			Err:  fmt.Errorf("status envelope field %q is missing or not a string or number", envelopeFieldStatusCode),
		}
	}

	return env, nil
}

// checkStatus classifies a response body as a logical success or failure,
// independent of the HTTP transport status.
//
// Bodies without an envelope are unconditional successes. Bodies with a
// well-formed envelope succeed only for benign status codes; every other
// code, recognized or not, yields a ProtocolError carrying the server's
// own code and message.
func checkStatus(body string) error {
	if !hasEnvelope(body) {
		return nil
	}

	env, err := parseEnvelope(body)
	if err != nil {
		return err
	}

	if env.StatusCode.Benign() {
		return nil
	}

	return &ProtocolError{StatusCode: env.StatusCode, Message: env.Message}
}
