package main

import (
	"context"

	"github.com/kingb12/sprouts-coupons/cmd/sprouts-clipper/commands"
	"github.com/kingb12/sprouts-coupons/lib/osutil"
	"github.com/kingb12/sprouts-coupons/lib/telemetry"
)

func main() {
	ctx := osutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "sprouts-clipper")
	if err != nil {
		osutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
