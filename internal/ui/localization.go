package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyAPIKey            = "api_key"
	KeyAPIKeyPlaceholder = "api_key_placeholder"
	KeyReload            = "reload"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyLoading           = "loading"
	KeyEntriesCount      = "entries_count"
	KeyNoEntries         = "no_entries"
	KeyPressReload       = "press_reload"
	KeySelectEntry       = "select_entry"
	KeyEdit              = "edit"
	KeyDone              = "done"
	KeySettingsSaved     = "settings_saved"
	KeyEditFailed        = "edit_failed"
	KeyEndpoint          = "endpoint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Mycelia",
		KeyAPIKey:            "API key: ",
		KeyAPIKeyPlaceholder: "Insert API key",
		KeyReload:            "Reload",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyLoading:           "Loading...",
		KeyEntriesCount:      "%d entries",
		KeyNoEntries:         "No entries",
		KeyPressReload:       "Press reload to fetch entries",
		KeySelectEntry:       "Select an entry to view it",
		KeyEdit:              "Edit",
		KeyDone:              "Done",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyEditFailed:        "Could not apply edit",
		KeyEndpoint:          "Endpoint",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Mycelia",
		KeyAPIKey:            "API ключ: ",
		KeyAPIKeyPlaceholder: "Введите API ключ",
		KeyReload:            "Обновить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyLoading:           "Загрузка...",
		KeyEntriesCount:      "Записей: %d",
		KeyNoEntries:         "Нет записей",
		KeyPressReload:       "Нажмите «Обновить», чтобы загрузить записи",
		KeySelectEntry:       "Выберите запись для просмотра",
		KeyEdit:              "Редактировать",
		KeyDone:              "Готово",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyEditFailed:        "Не удалось применить изменения",
		KeyEndpoint:          "Адрес API",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Mycelia",
		KeyAPIKey:            "Chave de API: ",
		KeyAPIKeyPlaceholder: "Insira a chave de API",
		KeyReload:            "Recarregar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyLoading:           "Carregando...",
		KeyEntriesCount:      "%d entradas",
		KeyNoEntries:         "Nenhuma entrada",
		KeyPressReload:       "Clique em recarregar para buscar as entradas",
		KeySelectEntry:       "Selecione uma entrada para visualizá-la",
		KeyEdit:              "Editar",
		KeyDone:              "Concluir",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyEditFailed:        "Não foi possível aplicar a edição",
		KeyEndpoint:          "Endpoint",
	}
}
