package model

import "testing"

func TestLoadStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected bool
	}{
		{LoadStatusIdle, false},
		{LoadStatusLoading, true},
		{LoadStatusLoaded, false},
		{LoadStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("LoadStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLoadStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected bool
	}{
		{LoadStatusIdle, false},
		{LoadStatusLoading, false},
		{LoadStatusLoaded, true},
		{LoadStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("LoadStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLoadStatus_String(t *testing.T) {
	status := LoadStatusLoading
	expected := "Loading"
	result := status.String()

	if result != expected {
		t.Errorf("LoadStatus.String() = %s, expected %s", result, expected)
	}
}
