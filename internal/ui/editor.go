package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mycelia/internal/model"
)

// EntryEditor shows one entry as rendered markdown and can switch to a
// plain text editor. Edits are handed to onSave when leaving edit mode.
type EntryEditor struct {
	localization *Localization

	entry   model.Entry
	loaded  bool
	editing bool

	// UI components
	hintLabel *widget.Label
	idLabel   *widget.Label
	viewer    *widget.RichText
	input     *widget.Entry
	toggleBtn *widget.Button
	body      *fyne.Container
	content   *fyne.Container

	onSave func(id, text string) error
}

// NewEntryEditor creates a new editor pane
func NewEntryEditor(localization *Localization) *EntryEditor {
	e := &EntryEditor{localization: localization}
	e.createUI()
	e.Clear()
	return e
}

// SetOnSave sets the callback invoked with edited text
func (e *EntryEditor) SetOnSave(onSave func(id, text string) error) {
	e.onSave = onSave
}

// Container returns the root canvas object of the pane
func (e *EntryEditor) Container() fyne.CanvasObject {
	return e.content
}

// createUI builds the editor widgets
func (e *EntryEditor) createUI() {
	e.hintLabel = widget.NewLabel("")
	e.hintLabel.Alignment = fyne.TextAlignCenter

	e.idLabel = widget.NewLabel("")
	e.idLabel.TextStyle = fyne.TextStyle{Monospace: true}

	e.viewer = widget.NewRichTextFromMarkdown("")
	e.viewer.Wrapping = fyne.TextWrapWord

	e.input = widget.NewMultiLineEntry()
	e.input.Wrapping = fyne.TextWrapWord

	e.toggleBtn = widget.NewButton("", e.Toggle)

	header := container.NewBorder(nil, nil, e.idLabel, e.toggleBtn)
	e.body = container.NewStack(container.NewVScroll(e.viewer), e.input)
	e.content = container.NewStack(
		e.hintLabel,
		container.NewBorder(header, nil, nil, nil, e.body),
	)
}

// Show loads an entry in view mode
func (e *EntryEditor) Show(entry model.Entry) {
	e.entry = entry
	e.loaded = true
	e.editing = false
	e.idLabel.SetText("#" + entry.ID)
	e.viewer.ParseMarkdown(entry.Text)
	e.input.SetText(entry.Text)
	e.refreshMode()
}

// Clear empties the pane
func (e *EntryEditor) Clear() {
	e.entry = model.Entry{}
	e.loaded = false
	e.editing = false
	e.idLabel.SetText("")
	e.viewer.ParseMarkdown("")
	e.input.SetText("")
	e.refreshMode()
}

// Toggle switches between view and edit mode, saving when leaving edit mode
func (e *EntryEditor) Toggle() {
	if !e.loaded {
		return
	}

	if !e.editing {
		e.input.SetText(e.entry.Text)
		e.editing = true
		e.refreshMode()
		return
	}

	text := e.input.Text
	if e.onSave != nil && text != e.entry.Text {
		if err := e.onSave(e.entry.ID, text); err != nil {
			slog.Warn("edit not applied", slog.String("entry", e.entry.ID), slog.Any("err", err))
			return
		}
	}
	e.entry.Text = text
	e.viewer.ParseMarkdown(text)
	e.editing = false
	e.refreshMode()
}

// Editing reports whether the pane is in edit mode
func (e *EntryEditor) Editing() bool {
	return e.editing
}

// EntryID returns the ID of the shown entry, empty when cleared
func (e *EntryEditor) EntryID() string {
	if !e.loaded {
		return ""
	}
	return e.entry.ID
}

// RefreshTexts updates localized labels
func (e *EntryEditor) RefreshTexts() {
	e.refreshMode()
}

// refreshMode shows the widgets matching the current state
func (e *EntryEditor) refreshMode() {
	e.hintLabel.SetText(e.localization.GetText(KeySelectEntry))

	if !e.loaded {
		e.hintLabel.Show()
		e.body.Hide()
		e.idLabel.Hide()
		e.toggleBtn.Hide()
		return
	}

	e.hintLabel.Hide()
	e.body.Show()
	e.idLabel.Show()
	e.toggleBtn.Show()

	if e.editing {
		e.toggleBtn.SetText(IconView + " " + e.localization.GetText(KeyDone))
		e.body.Objects[0].Hide()
		e.input.Show()
	} else {
		e.toggleBtn.SetText(IconEdit + " " + e.localization.GetText(KeyEdit))
		e.input.Hide()
		e.body.Objects[0].Show()
	}
}
