package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ScribblerCoder/whale-admin/internal/api"
	"github.com/ScribblerCoder/whale-admin/internal/config"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	client       api.WhaleAPI
	settings     *config.Settings
	localization *Localization
	notifier     Notifier

	picker     *ImagePicker
	details    *ImageDetails
	containers *ContainersView

	tabs          *container.AppTabs
	imagesTab     *container.TabItem
	containersTab *container.TabItem
}

// NewRootUI creates and initializes the main UI. launchValue optionally
// carries an image name or a ?image= URL handed to the app at startup.
func NewRootUI(window fyne.Window, app fyne.App, client api.WhaleAPI, launchValue string) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		client:       client,
		settings:     settings,
		localization: localization,
		notifier:     NewDialogNotifier(window),
	}

	log.Printf("RootUI initialized with API client: %v", ui.client != nil)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI(launchValue)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(launchValue string) {
	ui.createMenu()

	timeout := ui.settings.GetRequestTimeout()

	ui.picker = NewImagePicker(ui.window, ui.client, ui.notifier, ui.localization, timeout)
	ui.picker.Setup()
	ui.picker.ApplyLaunchValue(launchValue)

	ui.details = NewImageDetails(ui.client, ui.notifier, ui.localization, timeout)
	ui.containers = NewContainersView(ui.window, ui.client, ui.notifier, ui.localization, timeout)

	ui.imagesTab = container.NewTabItem(ui.localization.GetText(KeyImagesTab),
		container.NewBorder(ui.picker.Container(), nil, nil, nil, ui.details.Container()))
	ui.containersTab = container.NewTabItem(ui.localization.GetText(KeyContainersTab), ui.containers.Container())

	ui.tabs = container.NewAppTabs(ui.imagesTab, ui.containersTab)
	ui.tabs.OnSelected = ui.onTabSelected

	ui.window.SetContent(ui.tabs)

	log.Printf("UI setup completed successfully")
}

// onTabSelected lazily loads the containers page when its tab is first opened
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	if item == ui.containersTab {
		go ui.containers.Reload()
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
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

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.picker.RefreshTexts()

	ui.imagesTab.Text = ui.localization.GetText(KeyImagesTab)
	ui.containersTab.Text = ui.localization.GetText(KeyContainersTab)
	ui.tabs.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Server URL and token apply to new clients on next start; the
		// language switch applies immediately.
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}
