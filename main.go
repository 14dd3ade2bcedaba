package main

import (
	"fmt"

	"github.com/ScribblerCoder/whale-admin/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Log version information
	fmt.Printf("Whale Admin v%s starting...\n", version)

	cli.Execute(version)
}
