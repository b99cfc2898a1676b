package fetch

// Dispatcher defines the interface for starting fetches.
type Dispatcher interface {
	// Dispatch starts a GET of url with a bearer token and returns at once.
	Dispatch(url, token string) *Handle
}
