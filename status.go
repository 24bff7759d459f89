// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

// StatusCode is a status value reported by the instrument server inside
// a response envelope.
//
// The enumeration is closed on the server side but open on the wire:
// values not recognized by this client are treated as failures
// (fail-closed), so a newer server cannot silently report an unknown
// failure mode as success.
type StatusCode string

// Benign status codes: the server-side operation succeeded, possibly
// with a side note such as a required restart.
const (
	// StatusSuccess indicates the operation completed
	StatusSuccess StatusCode = "Success"

	// StatusUpdated indicates the operation completed and changed configuration
	StatusUpdated StatusCode = "Updated"

	// StatusRequiresRestart indicates the operation completed but takes
	// effect only after a device restart
	StatusRequiresRestart StatusCode = "RequiresRestart"
)

// Failure status codes reported by the instrument server.
const (
	StatusError                            StatusCode = "Error"
	StatusInvalidConfiguration             StatusCode = "InvalidConfiguration"
	StatusInvalidID                        StatusCode = "InvalidId"
	StatusVersionMismatch                  StatusCode = "VersionMismatch"
	StatusActionNotFound                   StatusCode = "ActionNotFound"
	StatusChannelOnly                      StatusCode = "ChannelOnly"
	StatusAnalogOutputChannelOnly          StatusCode = "AnalogOutputChannelOnly"
	StatusDataChannelOnly                  StatusCode = "DataChannelOnly"
	StatusChannelDisabled                  StatusCode = "ChannelDisabled"
	StatusChannelDoesNotSupportTestSignals StatusCode = "ChannelDoesNotSupportTestSignals"
	StatusChannelDoesNotSupportTeds        StatusCode = "ChannelDoesNotSupportTeds"
	StatusActionHasSideEffects             StatusCode = "ActionHasSideEffects"
	StatusAutoZeroNotSupported             StatusCode = "AutoZeroNotSupported"
	StatusAutoZeroFailed                   StatusCode = "AutoZeroFailed"
	StatusReadingStatusRegisterFailed      StatusCode = "ReadingStatusRegisterFailed"
	StatusStatusRegisterNotSupported       StatusCode = "StatusRegisterNotSupported"
	StatusCanFdChannelOnly                 StatusCode = "CanFdChannelOnly"
)

// statusCodeOrder lists all status codes in wire declaration order.
// Integer enumerants on the wire index into this list.
var statusCodeOrder = []StatusCode{
	StatusSuccess,
	StatusUpdated,
	StatusRequiresRestart,
	StatusError,
	StatusInvalidConfiguration,
	StatusInvalidID,
	StatusVersionMismatch,
	StatusActionNotFound,
	StatusChannelOnly,
	StatusAnalogOutputChannelOnly,
	StatusDataChannelOnly,
	StatusChannelDisabled,
	StatusChannelDoesNotSupportTestSignals,
	StatusChannelDoesNotSupportTeds,
	StatusActionHasSideEffects,
	StatusAutoZeroNotSupported,
	StatusAutoZeroFailed,
	StatusReadingStatusRegisterFailed,
	StatusStatusRegisterNotSupported,
	StatusCanFdChannelOnly,
}

// Benign reports whether the status code indicates a successful
// server-side operation.
//
// Every other value, including values this client does not recognize,
// is a failure.
//
// Example:
//
//	var statusErr *instrument.ProtocolError
//	if errors.As(err, &statusErr) && !statusErr.StatusCode.Benign() {
//	    log.Printf("server rejected request: %s", statusErr.Message)
//	}
func (s StatusCode) Benign() bool {
	switch s {
	case StatusSuccess, StatusUpdated, StatusRequiresRestart:
		return true
	}
	return false
}

// String returns the wire name of the status code
func (s StatusCode) String() string {
	return string(s)
}

// statusCodeFromOrdinal maps an integer wire enumerant to its StatusCode.
//
// Returns false for out-of-range values; callers treat those as
// unrecognized (and therefore failing) status codes.
func statusCodeFromOrdinal(n int64) (StatusCode, bool) {
	if n < 0 || n >= int64(len(statusCodeOrder)) {
		return "", false
	}
	return statusCodeOrder[n], true
}
