package main

import (
	"github.com/ScribblerCoder/whale-admin/internal/ui"
)

func main() {
	// Minimal entry point launching the desktop UI directly
	ui.RunApp("dev", ui.LaunchOptions{})
}
