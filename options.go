package vecshard

import (
	"log/slog"

	"github.com/hupe1980/vecshard/codec"
)

type options struct {
	codec            codec.Codec
	compressor       codec.Compressor
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures shard construction (Wrap, SplitSlice, UnmarshalShard).
//
// Options travel with the shard: split and merge propagate them to the
// resulting shards, so one configured Wrap is enough for a whole family of
// shards.
type Option func(*options)

// WithCodec configures the codec used to encode elements in MarshalShard
// and UnmarshalShard.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompressor configures the compressor applied to serialized frames.
//
// If nil is passed, frames are written uncompressed.
func WithCompressor(c codec.Compressor) Option {
	return func(o *options) {
		if c == nil {
			c = codec.None{}
		}
		o.compressor = c
	}
}

// WithMetricsCollector configures a metrics collector for split, merge,
// clone and conversion operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecshard.BasicMetricsCollector{}
//	shard := vecshard.Wrap(data, vecshard.WithMetricsCollector(metrics))
//	// ... split/merge ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		codec:            codec.Default,
		compressor:       codec.None{},
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(o)
		}
	}
	return o
}
