package ui

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mycelia/internal/applog"
	"github.com/ytget/mycelia/internal/config"
	"github.com/ytget/mycelia/internal/loader"
	"github.com/ytget/mycelia/internal/markdown"
	"github.com/ytget/mycelia/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	loader       *loader.Service
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	apiKeyLabel *widget.Label
	apiKeyEntry *widget.Entry
	reloadBtn   *widget.Button
	settingsBtn *widget.Button
	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite
	errorLabel  *widget.Label
	hintLabel   *widget.Label
	entryList   *widget.List
	listPane    *fyne.Container
	editor      *EntryEditor

	// rows are the displayed entries, newest first
	rows model.Entries
	// selected is the row shown in the editor, -1 when none
	selected widget.ListItemID

	// Frame loop
	frameStop chan struct{}
	frameOnce sync.Once
	stopOnce  sync.Once
}

// NewRootUI creates and initializes the main UI. The API key shown in the
// entry field is read once here; call SaveState to persist it.
func NewRootUI(window fyne.Window, loaderSvc *loader.Service, settings *config.Settings, apiKey string) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		loader:       loaderSvc,
		settings:     settings,
		localization: localization,
		logger:       applog.WithComponent("ui"),
		selected:     -1,
		frameStop:    make(chan struct{}),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Loader callbacks run on the UI goroutine: Reload is called from widget
	// handlers and Poll from pollFrame.
	ui.loader.SetUpdateCallback(ui.render)

	ui.setupUI()
	ui.apiKeyEntry.SetText(apiKey)
	ui.render(ui.loader.Snapshot())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.apiKeyLabel = widget.NewLabel(ui.localization.GetText(KeyAPIKey))
	ui.apiKeyEntry = widget.NewPasswordEntry()
	ui.apiKeyEntry.SetPlaceHolder(ui.localization.GetText(KeyAPIKeyPlaceholder))
	ui.apiKeyEntry.OnSubmitted = func(string) {
		ui.onReloadClick()
	}

	ui.reloadBtn = widget.NewButton(IconReload+" "+ui.localization.GetText(KeyReload), ui.onReloadClick)
	ui.reloadBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	heading := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	keyRow := container.NewBorder(nil, nil, ui.apiKeyLabel, container.NewHBox(ui.reloadBtn, ui.settingsBtn), ui.apiKeyEntry)

	ui.statusLabel = widget.NewLabel("")
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	statusRow := container.NewBorder(nil, nil, nil, ui.statusLabel, ui.spinner)

	top := container.NewVBox(heading, keyRow, statusRow, widget.NewSeparator())

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Importance = widget.DangerImportance

	ui.hintLabel = widget.NewLabel("")
	ui.hintLabel.Alignment = fyne.TextAlignCenter

	ui.entryList = widget.NewList(
		func() int {
			return len(ui.rows)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.rows) {
				return
			}
			if label, ok := obj.(*widget.Label); ok {
				label.SetText(markdown.Preview(ui.rows[id].Text, PreviewLength))
			}
		},
	)
	ui.entryList.OnSelected = ui.onEntrySelected

	ui.editor = NewEntryEditor(ui.localization)
	ui.editor.SetOnSave(ui.onEntryEdited)

	split := container.NewHSplit(ui.entryList, ui.editor.Container())
	split.SetOffset(ListSplitOffset)
	ui.listPane = container.NewStack(split)

	center := container.NewStack(ui.hintLabel, container.NewVScroll(ui.errorLabel), ui.listPane)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, center))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.onReloadClick)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Fyne appends Quit to the first menu on desktop
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.apiKeyLabel.SetText(ui.localization.GetText(KeyAPIKey))
	ui.apiKeyEntry.SetPlaceHolder(ui.localization.GetText(KeyAPIKeyPlaceholder))
	ui.reloadBtn.SetText(IconReload + " " + ui.localization.GetText(KeyReload))
	ui.editor.RefreshTexts()
	ui.render(ui.loader.Snapshot())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.loader.Endpoint(), func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

// onReloadClick dispatches a fetch with the key currently in the field.
// A request still in flight is abandoned.
func (ui *RootUI) onReloadClick() {
	ui.editor.Clear()
	ui.selected = -1
	ui.entryList.UnselectAll()
	ui.loader.Reload(ui.apiKeyEntry.Text)
}

// onEntrySelected shows the selected entry in the editor pane
func (ui *RootUI) onEntrySelected(id widget.ListItemID) {
	if id < 0 || id >= len(ui.rows) {
		return
	}
	ui.selected = id
	ui.editor.Show(ui.rows[id])
}

// onEntryEdited applies a local edit to the selected row. Rows are
// reversed, so the row index maps back to server order.
func (ui *RootUI) onEntryEdited(id, text string) error {
	index := len(ui.rows) - 1 - ui.selected
	if err := ui.loader.UpdateEntryAt(index, id, text); err != nil {
		ui.statusLabel.SetText(ui.localization.GetText(KeyEditFailed))
		return err
	}
	return nil
}

// render updates the widgets from a loader snapshot
func (ui *RootUI) render(snap loader.Snapshot) {
	ui.hintLabel.Hide()
	ui.errorLabel.Hide()
	ui.listPane.Hide()
	ui.spinner.Hide()
	ui.spinner.Stop()

	switch snap.Status {
	case model.LoadStatusIdle:
		ui.statusLabel.SetText("")
		ui.hintLabel.SetText(ui.localization.GetText(KeyPressReload))
		ui.hintLabel.Show()

	case model.LoadStatusLoading:
		ui.statusLabel.SetText(ui.localization.GetText(KeyLoading))
		ui.spinner.Show()
		ui.spinner.Start()

	case model.LoadStatusFailed:
		ui.statusLabel.SetText("")
		if snap.Err != nil {
			ui.errorLabel.SetText(snap.Err.Message)
		}
		ui.errorLabel.Show()

	case model.LoadStatusLoaded:
		ui.rows = snap.Entries.Reversed()
		if len(ui.rows) == 0 {
			ui.statusLabel.SetText("")
			ui.hintLabel.SetText(ui.localization.GetText(KeyNoEntries))
			ui.hintLabel.Show()
		} else {
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyEntriesCount), len(ui.rows)))
			ui.listPane.Show()
		}
		ui.entryList.Refresh()
	}
}

// pollFrame drains the pending fetch once. It must run on the UI goroutine.
func (ui *RootUI) pollFrame() {
	ui.loader.Poll()
}

// Start launches the frame loop that drains pending fetches every
// FramePollInterval. The loop only schedules work on the UI goroutine; it
// never waits on the network.
func (ui *RootUI) Start() {
	ui.frameOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(FramePollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					fyne.Do(ui.pollFrame)
				case <-ui.frameStop:
					return
				}
			}
		}()
		ui.logger.Debug("frame loop started", slog.Duration("interval", FramePollInterval))
	})
}

// Stop ends the frame loop. Pending fetches are left to finish unobserved.
func (ui *RootUI) Stop() {
	ui.stopOnce.Do(func() {
		close(ui.frameStop)
	})
}

// SaveState persists the API key currently in the field
func (ui *RootUI) SaveState() {
	ui.settings.SetAPIKey(ui.apiKeyEntry.Text)
	ui.logger.Debug("state saved")
}
