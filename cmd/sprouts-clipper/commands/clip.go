package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kingb12/sprouts-coupons/lib/osutil"
	"github.com/kingb12/sprouts-coupons/services/clipper"

	"github.com/spf13/cobra"
)

var (
	clipSkipClip *bool
	clipNoEmail  *bool
)

func init() {
	clipSkipClip = clipCmd.Flags().Bool(
		"skip-clip", false,
		"Fetch and report offers without clipping anything.",
	)
	clipNoEmail = clipCmd.Flags().Bool(
		"no-email", false,
		"Print the report without emailing it, even when smtp is configured.",
	)
	rootCmd.AddCommand(clipCmd)
}

var clipCmd = &cobra.Command{
	Use:   "clip [--skip-clip] [--no-email]",
	Short: "Clips every available coupon and reports the results.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)
		store, closeStore := openStore(cfg)
		defer closeStore()

		service := clipper.NewService(client, store, clipper.Options{
			Limit:     cfg.OfferLimit,
			Watchlist: cfg.Watchlist,
			SkipClip:  *clipSkipClip,
		})
		result, err := service.Run(cmd.Context())
		if err != nil {
			osutil.Fatal("run failed", err)
		}

		clipper.RenderOffers(os.Stdout, result.Offers)
		fmt.Println()
		fmt.Print(clipper.BuildReport(result.Offers))
		if len(result.Failed) > 0 {
			fmt.Printf("\nFailed to clip %d offers, see logs.\n", len(result.Failed))
		}

		if *clipNoEmail || !cfg.Smtp.Configured() {
			return
		}
		err = clipper.SendReport(result, cfg.Smtp)
		if err != nil {
			slog.Error("failed to send report email", "err", err)
			return
		}
		slog.Info("sent report email", "recipient", cfg.Smtp.Recipient)
	},
}
