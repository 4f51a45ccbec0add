// Package main generates seeded fake data.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	fakecmd "github.com/louisbranch/chance/internal/cmd/fake"
	platformcmd "github.com/louisbranch/chance/internal/platform/cmd"
	"github.com/louisbranch/chance/internal/platform/config"
)

func main() {
	cfg, err := fakecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceFake, func(ctx context.Context) error {
		return fakecmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}
