//go:build js && wasm

package fetch

import "net/http"

// newTransport returns the default transport, which the Go runtime maps onto
// the browser Fetch API. Goroutines are scheduled cooperatively on the single
// JS thread, so the transfer yields while the request is in flight.
func newTransport() http.RoundTripper {
	return http.DefaultTransport
}
