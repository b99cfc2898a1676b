package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ytget/mycelia/internal/applog"
	"github.com/ytget/mycelia/internal/fetch"
	"github.com/ytget/mycelia/internal/model"
)

// DefaultEndpoint is the messages endpoint of the public Mycelia instance
const DefaultEndpoint = "https://mycelia.nel.re/api/messages"

// ErrEntryNotFound is returned when editing an entry that is not loaded
var ErrEntryNotFound = errors.New("entry not found")

// Snapshot is a copy of the loader state for rendering
type Snapshot struct {
	Status    model.LoadStatus
	Entries   model.Entries
	Err       *model.LoadError
	HandleID  string // handle of the outstanding request, empty when idle
	UpdatedAt time.Time
}

// Service holds the entry list and the single outstanding request.
// It is not safe for concurrent use; call it from the UI goroutine only.
type Service struct {
	fetcher  fetch.Dispatcher
	endpoint string
	logger   *slog.Logger

	pending   *fetch.Handle
	status    model.LoadStatus
	entries   model.Entries
	err       *model.LoadError
	updatedAt time.Time

	onUpdate func(Snapshot) // callback for UI updates
}

// NewService creates a new loader service
func NewService(fetcher fetch.Dispatcher, endpoint string) *Service {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Service{
		fetcher:  fetcher,
		endpoint: endpoint,
		logger:   applog.WithComponent("loader"),
		status:   model.LoadStatusIdle,
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.onUpdate = callback
}

// Endpoint returns the URL reloads are sent to
func (s *Service) Endpoint() string {
	return s.endpoint
}

// Reload dispatches a fetch of the endpoint with the given API key.
// A request still in flight is abandoned: its outcome is never observed.
func (s *Service) Reload(apiKey string) *fetch.Handle {
	if s.pending != nil {
		s.logger.Debug("abandoning outstanding request", slog.String("handle", s.pending.ID))
	}

	s.pending = s.fetcher.Dispatch(s.endpoint, apiKey)
	s.status = model.LoadStatusLoading
	s.err = nil
	s.updatedAt = time.Now()

	s.logger.Info("reload dispatched", slog.String("handle", s.pending.ID), slog.String("endpoint", s.endpoint))
	s.notifyUpdate()
	return s.pending
}

// Poll drains the outstanding request without blocking. It returns true only
// when an outcome was consumed and applied to the state.
func (s *Service) Poll() bool {
	if s.pending == nil {
		return false
	}

	outcome, ok := s.pending.TryRecv()
	if !ok {
		return false
	}

	handleID := s.pending.ID
	s.pending = nil
	s.apply(outcome)

	if s.err != nil {
		s.logger.Warn("reload failed",
			slog.String("handle", handleID),
			slog.String("kind", s.err.Kind.String()),
			slog.Int("status", s.err.StatusCode))
	} else {
		s.logger.Info("reload finished", slog.String("handle", handleID), slog.Int("entries", len(s.entries)))
	}

	s.notifyUpdate()
	return true
}

// apply updates the state from one outcome
func (s *Service) apply(outcome model.Outcome) {
	s.updatedAt = time.Now()

	if !outcome.IsSuccess() {
		s.status = model.LoadStatusFailed
		s.err = outcome.Err()
		return
	}

	s.entries = nil
	entries, err := model.ParseEntries(outcome.Body)
	if err != nil {
		s.status = model.LoadStatusFailed
		s.err = &model.LoadError{
			Kind:       model.OutcomeDecodeError,
			Message:    err.Error(),
			StatusCode: outcome.StatusCode,
		}
		return
	}

	s.entries = entries
	s.status = model.LoadStatusLoaded
	s.err = nil
}

// Pending reports whether a request is outstanding
func (s *Service) Pending() bool {
	return s.pending != nil
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() Snapshot {
	snap := Snapshot{
		Status:    s.status,
		Err:       s.err,
		UpdatedAt: s.updatedAt,
	}
	if s.entries != nil {
		snap.Entries = append(model.Entries(nil), s.entries...)
	}
	if s.pending != nil {
		snap.HandleID = s.pending.ID
	}
	return snap
}

// UpdateEntryText edits an entry locally. The change is not sent to the
// server and is replaced by the next successful reload.
func (s *Service) UpdateEntryText(id, text string) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Text = text
			s.updatedAt = time.Now()
			s.notifyUpdate()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// UpdateEntryAt edits the entry at index in server order. The entry there
// must still carry id; entry IDs are not assumed unique.
func (s *Service) UpdateEntryAt(index int, id, text string) error {
	if index < 0 || index >= len(s.entries) || s.entries[index].ID != id {
		return fmt.Errorf("%w: %s at %d", ErrEntryNotFound, id, index)
	}
	s.entries[index].Text = text
	s.updatedAt = time.Now()
	s.notifyUpdate()
	return nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.Snapshot())
	}
}
