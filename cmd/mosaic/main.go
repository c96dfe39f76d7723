package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/mosaic/internal/cli/cmd"
	"github.com/bnema/mosaic/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.New(version, commit, buildDate))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.ExecuteContext(ctx)
}
