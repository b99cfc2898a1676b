package model

import "fmt"

// OutcomeKind tags a fetch outcome or a load error
type OutcomeKind string

const (
	// OutcomeSuccess means the server answered with a 2xx status
	OutcomeSuccess OutcomeKind = "success"

	// OutcomeTransportError means no response was received
	OutcomeTransportError OutcomeKind = "transport_error"

	// OutcomeServerError means the server answered with a non-success status
	OutcomeServerError OutcomeKind = "server_error"

	// OutcomeDecodeError means the body was received but is not a list of entries.
	// The fetch bridge never produces it; the owner does while parsing.
	OutcomeDecodeError OutcomeKind = "decode_error"
)

// String returns the string representation of OutcomeKind
func (k OutcomeKind) String() string {
	return string(k)
}

// Outcome is the single terminal value produced by one dispatched fetch
type Outcome struct {
	Kind       OutcomeKind
	Body       string // response body on success
	Message    string // failure text: raw body for server errors, transport description otherwise
	StatusCode int    // HTTP status, 0 for transport errors
}

// Success builds a successful outcome
func Success(body string, status int) Outcome {
	return Outcome{Kind: OutcomeSuccess, Body: body, StatusCode: status}
}

// ServerFailure builds a failure carrying the raw response body
func ServerFailure(body string, status int) Outcome {
	return Outcome{Kind: OutcomeServerError, Message: body, StatusCode: status}
}

// TransportFailure builds a failure from a transport error
func TransportFailure(err error) Outcome {
	msg := "request failed"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Outcome{Kind: OutcomeTransportError, Message: msg}
}

// IsSuccess returns true if the outcome carries a body to parse
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// Err converts a failed outcome into a LoadError, nil on success
func (o Outcome) Err() *LoadError {
	if o.IsSuccess() {
		return nil
	}
	return &LoadError{Kind: o.Kind, Message: o.Message, StatusCode: o.StatusCode}
}

// LoadError is the user-visible error for a finished load
type LoadError struct {
	Kind       OutcomeKind
	Message    string
	StatusCode int
}

func (e *LoadError) Error() string {
	return e.Message
}

// Detail returns the message prefixed with its kind, for logs and the CLI
func (e *LoadError) Detail() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsTransport returns true for errors raised before any response arrived
func (e *LoadError) IsTransport() bool { return e.Kind == OutcomeTransportError }

// IsServer returns true for non-success responses
func (e *LoadError) IsServer() bool { return e.Kind == OutcomeServerError }

// IsDecode returns true for bodies that are not a list of entries
func (e *LoadError) IsDecode() bool { return e.Kind == OutcomeDecodeError }
