package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Inspect and refresh the image catalog",
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available image names",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		names, err := client.ListImageNames(cmd.Context())
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var imagesInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show image metadata (size, created, architecture)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		images, err := client.DescribeImages(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tCREATED\tARCH")
		for _, im := range images {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", im.Name, im.Size, im.Created, im.Architecture)
		}
		return w.Flush()
	},
}

var imagesRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the server-side image cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		msg, err := client.RefreshImages(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(msg)
		return nil
	},
}

func init() {
	imagesCmd.AddCommand(imagesListCmd, imagesInspectCmd, imagesRefreshCmd)
	rootCmd.AddCommand(imagesCmd)
}
