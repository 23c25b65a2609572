// Package logging builds the zap loggers used by the circuits CLI and
// adapts them to circuit.Observer so a run's connection trace can be logged
// without the core packages doing any I/O.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/circuits/circuit"
)

// Standard field names for trace and run logging.
const (
	FieldStep      = "step"
	FieldA         = "a"
	FieldB         = "b"
	FieldDistance  = "distance"
	FieldMerged    = "merged"
	FieldCircuits  = "circuits"
	FieldPoints    = "points"
	FieldMode      = "mode"
	FieldFile      = "file"
	FieldDuration  = "duration"
	FieldMerges    = "merges"
	FieldAttempts  = "attempts"
	FieldTopSizes  = "top_sizes"
	FieldComponent = "component"
)

// New writes console (or JSON) logs to w. Debug entries, including the
// per-edge trace, are only emitted when verbose is set.
func New(w io.Writer, verbose, jsonOutput bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // deterministic output; durations are logged as fields
	var enc zapcore.Encoder
	if jsonOutput {
		encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core).With(zap.String(FieldComponent, "circuits"))
}

// Observer logs every examined edge at debug level.
type Observer struct {
	log *zap.Logger
}

var _ circuit.Observer = (*Observer)(nil)

// NewObserver returns an Observer writing to l; nil l means a no-op logger.
func NewObserver(l *zap.Logger) *Observer {
	if l == nil {
		l = zap.NewNop()
	}

	return &Observer{log: l}
}

// Observe implements circuit.Observer.
func (o *Observer) Observe(e circuit.Event) {
	if ce := o.log.Check(zapcore.DebugLevel, "connection"); ce != nil {
		ce.Write(
			zap.Int(FieldStep, e.Step),
			zap.Int(FieldA, e.A),
			zap.Int(FieldB, e.B),
			zap.Float64(FieldDistance, e.Distance),
			zap.Bool(FieldMerged, e.Merged),
			zap.Int(FieldCircuits, e.Circuits),
		)
	}
}
