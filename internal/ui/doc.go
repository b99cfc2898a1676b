package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the reload action to the loader service, drains pending fetches once
// per frame, and renders entries, errors, and the markdown editor pane.
// All UI strings are localized via Localization.
