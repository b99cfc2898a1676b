package fetch

import (
	"time"

	"github.com/google/uuid"

	"github.com/ytget/mycelia/internal/model"
)

// HandleIDPrefix prefixes every handle ID
const HandleIDPrefix = "fetch-"

// Handle is the consumer side of one dispatched fetch.
// TryRecv must only be called from the owning goroutine.
type Handle struct {
	ID           string
	URL          string
	DispatchedAt time.Time

	ch       chan model.Outcome // capacity 1, written once by the transfer goroutine
	consumed bool
}

func newHandle(url string) *Handle {
	return &Handle{
		ID:           generateHandleID(),
		URL:          url,
		DispatchedAt: time.Now(),
		ch:           make(chan model.Outcome, 1),
	}
}

// NewHandle returns a pending handle and the function that completes it.
// It lets other Dispatcher implementations reuse the one-slot handoff.
func NewHandle(url string) (*Handle, func(model.Outcome)) {
	h := newHandle(url)
	return h, h.deliver
}

// deliver stores the outcome. It never blocks, so an abandoned handle
// does not leak the producing goroutine.
func (h *Handle) deliver(outcome model.Outcome) {
	select {
	case h.ch <- outcome:
	default:
	}
}

// TryRecv returns the outcome if it is ready. It yields a value at most once;
// every later call returns false.
func (h *Handle) TryRecv() (model.Outcome, bool) {
	if h == nil || h.consumed {
		return model.Outcome{}, false
	}
	select {
	case outcome := <-h.ch:
		h.consumed = true
		return outcome, true
	default:
		return model.Outcome{}, false
	}
}

// Done reports whether the outcome was already consumed
func (h *Handle) Done() bool {
	return h != nil && h.consumed
}

// generateHandleID generates a unique handle ID
func generateHandleID() string {
	return HandleIDPrefix + uuid.New().String()
}
