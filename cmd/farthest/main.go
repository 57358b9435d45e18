// SPDX-License-Identifier: MIT

// Command farthest selects mutually distant rows of a numeric table.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/farthest/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
