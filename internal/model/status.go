package model

// LoadStatus represents where the entry list is in its fetch cycle
type LoadStatus string

const (
	// LoadStatusIdle means nothing was requested yet
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means a request is outstanding
	LoadStatusLoading LoadStatus = "Loading"

	// LoadStatusLoaded means the last request produced a list of entries
	LoadStatusLoaded LoadStatus = "Loaded"

	// LoadStatusFailed means the last request ended with an error
	LoadStatusFailed LoadStatus = "Failed"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsActive returns true while a request is outstanding
func (ls LoadStatus) IsActive() bool {
	return ls == LoadStatusLoading
}

// IsFinished returns true if the last request produced a result (loaded or failed)
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadStatusLoaded || ls == LoadStatusFailed
}
