package model

import "testing"

func TestFetchStatusString(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected string
	}{
		{FetchStatusIdle, "Idle"},
		{FetchStatusLoading, "Loading"},
		{FetchStatusReady, "Ready"},
		{FetchStatusEmpty, "Empty"},
		{FetchStatusError, "Error"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestFetchStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, false},
		{FetchStatusLoading, false},
		{FetchStatusReady, true},
		{FetchStatusEmpty, true},
		{FetchStatusError, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.expected {
			t.Errorf("IsTerminal(%s): expected %v, got %v", tt.status, tt.expected, got)
		}
	}
}
