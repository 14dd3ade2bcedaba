// Package cli wires the cobra command tree: the bare command launches the
// desktop UI, subcommands run headless against the same whale API client.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ScribblerCoder/whale-admin/internal/api"
	"github.com/ScribblerCoder/whale-admin/internal/config"
	"github.com/ScribblerCoder/whale-admin/internal/ui"
)

// Environment fallbacks for headless use
const (
	EnvServerURL = "WHALE_ADMIN_SERVER"
	EnvToken     = "WHALE_ADMIN_TOKEN"
)

var (
	serverURL   string
	token       string
	timeout     time.Duration
	launchImage string

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "whale-admin",
	Short: "Desktop admin console for the CTFd whale plugin",
	Long: `whale-admin manages the ctfd-whale plugin of a CTFd instance: browse and
refresh the container image catalog and administer challenge containers.
Run without arguments to open the desktop UI.`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.RunApp(version, ui.LaunchOptions{
			ServerURL: serverURL,
			Token:     token,
			Timeout:   timeout,
			Image:     launchImage,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "CTFd base URL (defaults to saved settings or "+EnvServerURL+")")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "CTFd API access token (or "+EnvToken+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout")
	rootCmd.Flags().StringVar(&launchImage, "image", "", "image name or admin-panel URL with ?image= to pre-fill the picker")
}

// Execute is the main entry point for command-line parsing
func Execute(v string) {
	version = v
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient builds an API client for headless subcommands from flags and
// environment, without touching the GUI preference store
func newClient() (*api.Client, error) {
	server := serverURL
	if server == "" {
		server = os.Getenv(EnvServerURL)
	}
	if server == "" {
		server = config.DefaultServerURL
	}
	if err := config.ValidateServerURL(server); err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", server, err)
	}

	tok := token
	if tok == "" {
		tok = os.Getenv(EnvToken)
	}

	return api.NewClient(server, tok, timeout), nil
}
