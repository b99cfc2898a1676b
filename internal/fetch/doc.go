package fetch

// Package fetch implements the async fetch bridge: a non-blocking authenticated
// GET whose single terminal outcome is handed to a polling owner through a
// one-slot channel. The owner drains it with Handle.TryRecv once per UI frame.
