package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Entry is a single text record served by the messages endpoint
type Entry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DecodeError reports a response body that is not a JSON array of entries
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to parse JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// wireEntry uses pointers so missing or null fields can be told apart from empty strings.
type wireEntry struct {
	ID   *string `json:"id"`
	Text *string `json:"text"`
}

// ParseEntries decodes a response body into entries, preserving order.
// Unknown fields are ignored; a missing id or text is an error.
func ParseEntries(body string) ([]Entry, error) {
	trimmed := bytes.TrimSpace([]byte(body))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &DecodeError{Err: errors.New("expected a JSON array of entries")}
	}

	var raw []wireEntry
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}

	entries := make([]Entry, 0, len(raw))
	for i, w := range raw {
		if w.ID == nil {
			return nil, &DecodeError{Err: fmt.Errorf("entry %d: missing field `id`", i)}
		}
		if w.Text == nil {
			return nil, &DecodeError{Err: fmt.Errorf("entry %d: missing field `text`", i)}
		}
		entries = append(entries, Entry{ID: *w.ID, Text: *w.Text})
	}
	return entries, nil
}

// Entries is an ordered list of entries as returned by the server
type Entries []Entry

// Find returns the entry with the given ID
func (es Entries) Find(id string) (Entry, bool) {
	for _, e := range es {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Reversed returns a copy with the newest (last served) entry first
func (es Entries) Reversed() Entries {
	out := make(Entries, len(es))
	for i, e := range es {
		out[len(es)-1-i] = e
	}
	return out
}
