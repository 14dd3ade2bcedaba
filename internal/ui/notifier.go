package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// NotifyKind classifies a user-visible notification
type NotifyKind int

const (
	NotifyInfo NotifyKind = iota
	NotifySuccess
	NotifyError
)

// Notifier shows a user-visible notification. A host application can supply
// its own implementation; the default renders Fyne modal dialogs on the app
// window.
type Notifier interface {
	Notify(title, message string, kind NotifyKind)
}

type dialogNotifier struct {
	window fyne.Window
}

// NewDialogNotifier returns the default dialog-based Notifier
func NewDialogNotifier(window fyne.Window) Notifier {
	return &dialogNotifier{window: window}
}

// Notify shows a modal dialog for the given message
func (n *dialogNotifier) Notify(title, message string, kind NotifyKind) {
	if kind == NotifyError {
		dialog.ShowError(errors.New(message), n.window)
		return
	}
	dialog.ShowInformation(title, message, n.window)
}
