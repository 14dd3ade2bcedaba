package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ScribblerCoder/whale-admin/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverEntry    *widget.Entry
	tokenEntry     *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved is invoked
// after a successful save so the caller can rebuild its API client.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder(config.DefaultServerURL)

	sd.tokenEntry = widget.NewPasswordEntry()
	sd.tokenEntry.SetPlaceHolder("ctfd_...")

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultRequestTimeout))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL)),
		sd.serverEntry,

		widget.NewLabel(sd.localization.GetText(KeyAccessToken)),
		sd.tokenEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverEntry.SetText(sd.settings.GetServerURL())
	sd.tokenEntry.SetText(sd.settings.GetAccessToken())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save the server URL
	serverURL := sd.serverEntry.Text
	if serverURL != "" {
		if err := config.ValidateServerURL(serverURL); err != nil {
			dialog.ShowInformation(
				sd.localization.GetText(KeyErrorTitle),
				sd.localization.GetText(KeyInvalidServerURL)+": "+serverURL,
				sd.window,
			)
			return
		}
		sd.settings.SetServerURL(serverURL)
	}

	sd.settings.SetAccessToken(sd.tokenEntry.Text)

	if sd.timeoutEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
			sd.settings.SetRequestTimeoutSeconds(seconds)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
