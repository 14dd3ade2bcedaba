package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	containersPage    int
	containersPerPage int
)

var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "List alive challenge containers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		page, err := client.ListContainers(cmd.Context(), containersPage, containersPerPage)
		if err != nil {
			return err
		}

		if page.Total == 0 {
			fmt.Println("no alive containers")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USER\tCHALLENGE\tUUID\tPORT\tRENEWED\tSTARTED")
		for _, c := range page.Containers {
			fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%s\n",
				c.UserID, c.ChallengeID, c.ShortUUID(), c.Port, c.RenewCount, c.StartTime)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("page %d of %d (%d total)\n", containersPage, page.Pages, page.Total)
		return nil
	},
}

func init() {
	containersCmd.Flags().IntVar(&containersPage, "page", 1, "page number")
	containersCmd.Flags().IntVar(&containersPerPage, "per-page", 20, "containers per page")
	rootCmd.AddCommand(containersCmd)
}
