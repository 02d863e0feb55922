package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/breweryteam/releasehook/pkg/cli"
	"github.com/fatih/color"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewCommand().Run(ctx, os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "releasehook: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
