package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ScribblerCoder/whale-admin/internal/api"
	"github.com/ScribblerCoder/whale-admin/internal/config"
)

const (
	AppID   = "com.scribblercoder.whale-admin"
	AppName = "Whale Admin"
)

// LaunchOptions carries command-line overrides into the GUI bootstrap
type LaunchOptions struct {
	ServerURL string
	Token     string
	Timeout   time.Duration

	// Image is an image name or admin-panel URL with ?image= that pre-fills
	// the picker's target entry
	Image string
}

// RunApp bootstraps the Fyne application and blocks until the window closes
func RunApp(version string, opts LaunchOptions) {
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Command-line overrides are persisted so the next run keeps them
	settings := config.NewSettings(myApp)
	if opts.ServerURL != "" {
		settings.SetServerURL(opts.ServerURL)
	}
	if opts.Token != "" {
		settings.SetAccessToken(opts.Token)
	}
	if opts.Timeout > 0 {
		settings.SetRequestTimeoutSeconds(int(opts.Timeout / time.Second))
	}

	client := api.NewClient(settings.GetServerURL(), settings.GetAccessToken(), settings.GetRequestTimeout())

	NewRootUI(myWindow, myApp, client, opts.Image)

	myWindow.ShowAndRun()
}
