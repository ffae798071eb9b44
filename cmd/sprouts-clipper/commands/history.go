package commands

import (
	"errors"
	"os"

	"github.com/kingb12/sprouts-coupons/lib/osutil"
	"github.com/kingb12/sprouts-coupons/services/clipper"

	"github.com/spf13/cobra"
)

var (
	historyLimit *int
	historyRun   *string
)

func init() {
	historyLimit = historyCmd.Flags().Int("limit", 20, "How many runs to show.")
	historyRun = historyCmd.Flags().String("run", "", "Show the offers clipped in a specific run.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [--limit <n>] [--run <id>]",
	Short: "Shows past clipping runs from the history database.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		store, closeStore := openStore(cfg)
		defer closeStore()
		if store == nil {
			osutil.Fatal(
				"no history database configured",
				errors.New("set database.file or database.url in config.json5"),
			)
		}

		if *historyRun != "" {
			offers, err := store.ClippedOffers(cmd.Context(), *historyRun)
			if err != nil {
				osutil.Fatal("failed to read clipped offers", err)
			}
			clipper.RenderOffers(os.Stdout, offers)
			return
		}

		runs, err := store.ListRuns(cmd.Context(), *historyLimit)
		if err != nil {
			osutil.Fatal("failed to list runs", err)
		}
		clipper.RenderRuns(os.Stdout, runs)
	},
}
