package model

// FetchStatus represents the state of a widget-bound fetch operation
type FetchStatus string

const (
	// FetchStatusIdle means no fetch has been triggered yet
	FetchStatusIdle FetchStatus = "Idle"

	// FetchStatusLoading means a request is in flight
	FetchStatusLoading FetchStatus = "Loading"

	// FetchStatusReady means the last fetch produced a non-empty result
	FetchStatusReady FetchStatus = "Ready"

	// FetchStatusEmpty means the last fetch succeeded but returned no items
	FetchStatusEmpty FetchStatus = "Empty"

	// FetchStatusError means the last fetch failed
	FetchStatusError FetchStatus = "Error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsTerminal returns true if the fetch reached a final state (ready, empty, or error)
func (fs FetchStatus) IsTerminal() bool {
	return fs == FetchStatusReady || fs == FetchStatusEmpty || fs == FetchStatusError
}
