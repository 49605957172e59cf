package commands

import (
	"os"

	"capscrape/lib/serviceutil"
	"capscrape/services/capsheet"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary <path/to/dataset.csv>",
	Short: "Prints row and per-year counts for an exported dataset.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := capsheet.ReadDataset(args[0])
		if err != nil {
			serviceutil.Fatal("failed to read dataset", err)
		}
		capsheet.Summarize(records).Render(os.Stdout)
	},
}
