package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey   = "api_key"
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages the persisted application state.
// The API key is the only domain value kept across runs.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIKey returns the stored API key, empty if none was saved
func (s *Settings) GetAPIKey() string {
	return s.app.Preferences().String(KeyAPIKey)
}

// SetAPIKey stores the API key
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, strings.TrimSpace(key))
}

// GetLanguage returns the configured language. Reading never writes
// preferences; an unset value yields DefaultLanguage.
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
