package loader

// Package loader owns the application's entry list. It dispatches reloads
// through the fetch bridge, drains the pending handle once per UI frame, and
// applies the outcome: entries on success, a tagged error otherwise.
