package commands

import (
	"os"

	"github.com/kingb12/sprouts-coupons/lib/osutil"
	"github.com/kingb12/sprouts-coupons/services/clipper"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the current offers without clipping anything.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)

		offers, err := client.GetOffers(cmd.Context(), cfg.OfferLimit)
		if err != nil {
			osutil.Fatal("failed to fetch offers", err)
		}
		clipper.RenderOffers(os.Stdout, offers)
	},
}
