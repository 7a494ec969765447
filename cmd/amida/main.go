// SPDX-License-Identifier: MIT

// Command amida prints the divisor table of 0..N_MAX computed by bit
// propagation. With no flags it reproduces the reference run
// (N_MAX = M_MAX = DSP_MAX = 128).
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/chotto2/amida/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
