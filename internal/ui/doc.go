package ui

// Package ui contains the Fyne-based desktop user interface for the admin
// console. It wires user interactions to the whale API client and renders the
// image picker, image details, container administration, and settings. All UI
// strings are localized via Localization.
