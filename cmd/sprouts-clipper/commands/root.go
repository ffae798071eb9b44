package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/kingb12/sprouts-coupons/lib/restyutil"
	"github.com/kingb12/sprouts-coupons/lib/scrapers/sprouts"
	"github.com/kingb12/sprouts-coupons/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP(
		"verbose", "v", false,
		"Log debug output and dump http traffic to .dev/resty.",
	)
}

var rootCmd = &cobra.Command{
	Use:   "sprouts-clipper",
	Short: "sprouts-clipper lists and clips Sprouts digital coupons.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
		if *verbose {
			sprouts.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/sprouts"))
		}
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
