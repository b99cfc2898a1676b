package model

// Package model defines domain data structures used across the app: entries
// served by the Mycelia API, fetch outcomes, load errors, and load status
// enums. Structures are plain values so the UI can render snapshots of them.
