// SPDX-License-Identifier: MIT

// Command routefind prints the cheapest route between two grid positions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/deliveryroute/internal/cli"
	"github.com/katalvlaran/deliveryroute/internal/config"
	"github.com/katalvlaran/deliveryroute/internal/logging"
)

func main() {
	opts, exit, err := cli.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fail(err)
	}
	if exit {
		return
	}

	logger := logging.NewWithWriter(os.Stderr, config.LoggingConfig{Level: opts.LogLevel, Format: opts.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, opts, os.Stdout, logger); err != nil {
		stop()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	os.Exit(cli.ExitFailure)
}
