package model

import (
	"errors"
	"testing"
)

func TestOutcome_Err(t *testing.T) {
	tests := []struct {
		name      string
		outcome   Outcome
		wantNil   bool
		transport bool
		server    bool
		message   string
	}{
		{"success", Success("[]", 200), true, false, false, ""},
		{"server", ServerFailure("unauthorized", 401), false, false, true, "unauthorized"},
		{"transport", TransportFailure(errors.New("connection refused")), false, true, false, "connection refused"},
	}

	for _, test := range tests {
		err := test.outcome.Err()
		if test.wantNil {
			if err != nil {
				t.Errorf("%s: expected nil error, got %v", test.name, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("%s: expected error, got nil", test.name)
		}
		if err.IsTransport() != test.transport {
			t.Errorf("%s: IsTransport() = %v, expected %v", test.name, err.IsTransport(), test.transport)
		}
		if err.IsServer() != test.server {
			t.Errorf("%s: IsServer() = %v, expected %v", test.name, err.IsServer(), test.server)
		}
		if err.IsDecode() {
			t.Errorf("%s: fetch outcomes must never be decode errors", test.name)
		}
		if err.Error() != test.message {
			t.Errorf("%s: Error() = %q, expected %q", test.name, err.Error(), test.message)
		}
	}
}

func TestTransportFailure_NeverEmpty(t *testing.T) {
	if msg := TransportFailure(nil).Message; msg == "" {
		t.Error("transport failure message should not be empty")
	}
	if msg := TransportFailure(errors.New("")).Message; msg == "" {
		t.Error("transport failure message should not be empty for blank errors")
	}
}

func TestLoadError_Detail(t *testing.T) {
	err := &LoadError{Kind: OutcomeServerError, Message: "unauthorized", StatusCode: 401}
	if got, want := err.Detail(), "server_error (401): unauthorized"; got != want {
		t.Errorf("Detail() = %q, expected %q", got, want)
	}

	err = &LoadError{Kind: OutcomeDecodeError, Message: "Failed to parse JSON: eof"}
	if got, want := err.Detail(), "decode_error: Failed to parse JSON: eof"; got != want {
		t.Errorf("Detail() = %q, expected %q", got, want)
	}
}
