package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/internal/logging"
	"github.com/katalvlaran/circuits/internal/report"
)

func newBoundedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounded <input-file>",
		Short: "Make N connections and multiply the three largest circuit sizes",
		Long: `Connect the closest pairs of junction boxes until N connections have been
made, then print the product of the sizes of the three largest circuits.

By default only connections that join two separate circuits count toward N.
With --count-attempts every examined pair counts, even one whose boxes were
already in the same circuit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(cmd, args[0])
			if err != nil {
				return err
			}

			res, err := circuit.Connect(r.points, r.cfg.Connections, r.options(cmd.Context())...)
			if err != nil {
				return err
			}
			r.log.Info("circuits connected",
				zap.String(logging.FieldMode, "bounded"),
				zap.Int(logging.FieldPoints, len(r.points)),
				zap.Int(logging.FieldMerges, res.Merges),
				zap.Int(logging.FieldAttempts, res.Attempts),
				zap.Int(logging.FieldCircuits, res.Circuits),
				zap.Ints(logging.FieldTopSizes, res.Top[:]),
				zap.Duration(logging.FieldDuration, time.Since(r.start)),
			)

			if r.cfg.Report > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), report.Circuits(res, r.cfg.Report))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Answer: %d\n", res.Product)

			return nil
		},
	}

	cmd.Flags().IntP("connections", "n", 1000, "number of connections to make")
	cmd.Flags().Bool("count-attempts", false, "count every examined pair toward --connections")
	cmd.Flags().Int("report", 0, "print a table of the N largest circuits")

	return cmd
}
