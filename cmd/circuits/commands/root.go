// Package commands implements the circuits command tree.
package commands

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/internal/config"
	"github.com/katalvlaran/circuits/internal/logging"
	"github.com/katalvlaran/circuits/spatial"
)

// FS is the filesystem input files and config files are read from.
var FS afero.Fs = afero.NewOsFs()

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "circuits",
		Short: "Join 3-D junction boxes into circuits, closest pairs first",
		Long: `circuits reads junction box positions (one "x,y,z" per line) and
connects them pairwise in increasing order of distance.

Available commands:
  bounded - make N connections, print the product of the three largest circuit sizes
  full    - connect until one circuit remains, print the X product of the last pair
  version - print version information

Examples:
  circuits bounded input.txt --connections 1000
  circuits bounded input.txt -n 10 --count-attempts --report 5
  circuits full input.txt --verbose`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "TOML config file")
	pf.BoolP("verbose", "v", false, "log every examined connection")
	pf.Bool("json", false, "log as JSON")
	pf.Int("workers", 0, "goroutines generating candidate pairs (0 or 1 = sequential)")
	pf.String("metric", spatial.MetricSquaredEuclidean, "distance metric: squared-euclidean or euclidean")
	pf.String("strategy", "rank", "union heuristic: rank or size")

	root.AddCommand(newBoundedCmd(), newFullCmd(), newVersionCmd())

	return root
}

// run holds what every solving command needs once flags are resolved.
type run struct {
	cfg    *config.Config
	log    *zap.Logger
	points []spatial.Point
	start  time.Time
}

// prepare resolves configuration, builds the logger and loads the input file.
func prepare(cmd *cobra.Command, path string) (*run, error) {
	start := time.Now()

	v := config.New()
	v.SetFs(FS)
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(v, cfgPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.JSON)
	points, err := spatial.Load(FS, path)
	if err != nil {
		return nil, errors.WithHint(err, "run with --help for the expected input format")
	}
	log.Debug("loaded points",
		zap.String(logging.FieldFile, path),
		zap.Int(logging.FieldPoints, len(points)),
	)

	return &run{cfg: cfg, log: log, points: points, start: start}, nil
}

// options returns the configured circuit options, adding the trace logger in
// verbose mode.
func (r *run) options(ctx context.Context) []circuit.Option {
	opts := append(r.cfg.Options(), circuit.WithContext(ctx))
	if r.cfg.Verbose {
		opts = append(opts, circuit.WithObserver(logging.NewObserver(r.log)))
	}

	return opts
}
