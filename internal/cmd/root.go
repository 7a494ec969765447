// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chotto2/amida/divisors"
	"github.com/chotto2/amida/internal/config"
	"github.com/chotto2/amida/internal/logging"
	"github.com/chotto2/amida/table"
)

// NewRootCommand builds the amida command with its own viper instance, so
// separate commands never share configuration state.
func NewRootCommand() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "amida",
		Short: "Print the divisors of 0..N found by bit propagation",
		Long: `amida lists, for every n from 0 to N_MAX, which m in 1..M_MAX divide n.
It never divides: the origin 0 starts with every divisor, and each divisor m
found at n is handed on to n+m. The result is printed as a table with one
'*' per divisor, DSP_MAX columns wide.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return run(c.Context(), cfg, c.OutOrStdout(), c.ErrOrStderr())
		},
	}

	if err := config.AddFlags(root.Flags(), v); err != nil {
		// flag names are static; a bind failure is a programming error
		panic(err)
	}

	return root
}

// Execute runs the root command against the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func run(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	logger := logging.New(errOut, cfg.LogLevel)
	logger.Info("computing divisor table",
		slog.Int("n_max", cfg.NMax),
		slog.Int("m_max", cfg.MMax),
		slog.String("backend", cfg.Backend))

	p, err := divisors.Run(cfg.NMax, cfg.MMax,
		divisors.WithBackend(cfg.Kind()),
		divisors.WithContext(ctx),
		divisors.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}

	if cfg.Verify {
		if err = p.Verify(); err != nil {
			return fmt.Errorf("verify table: %w", err)
		}
		logger.Info("table matches modulo reference")
	}

	if err = table.Write(out, p, cfg.DspMax); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}
