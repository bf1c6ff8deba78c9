package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"strmsync/internal/daemonrun"
)

func newDaemonCommand(ctx *commandContext) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run sync passes on a fixed interval until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return daemonrun.Run(cmd.Context(), cfg, logger, daemonrun.Options{Interval: interval})
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 6*time.Hour, "Time between sync passes")
	return cmd
}
