package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/internal/logging"
)

func newFullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "full <input-file>",
		Short: "Connect until one circuit remains and multiply the last pair's X coordinates",
		Long: `Connect the closest pairs of junction boxes until every box belongs to a
single circuit, then print the product of the X coordinates of the two boxes
whose connection completed it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(cmd, args[0])
			if err != nil {
				return err
			}

			res, err := circuit.ConnectAll(r.points, r.options(cmd.Context())...)
			if err != nil {
				return err
			}
			a, b := r.points[res.A], r.points[res.B]
			r.log.Info("single circuit formed",
				zap.String(logging.FieldMode, "full"),
				zap.Int(logging.FieldPoints, len(r.points)),
				zap.Int(logging.FieldMerges, res.Merges),
				zap.Int(logging.FieldAttempts, res.Attempts),
				zap.Stringer(logging.FieldA, a),
				zap.Stringer(logging.FieldB, b),
				zap.Duration(logging.FieldDuration, time.Since(r.start)),
			)

			answer := res.Project(r.points, circuit.ProductX)
			fmt.Fprintf(cmd.OutOrStdout(), "Answer: %s\n", strconv.FormatFloat(answer, 'f', -1, 64))

			return nil
		},
	}
}
