package domain

import (
	"io"
	"log/slog"
	"runtime"
)

const defaultCacheSize = 512

// ProgressFunc receives the number of finished and scheduled renders. total may
// grow while a document is processed.
type ProgressFunc func(done, total int)

type options struct {
	workers   int
	cacheSize int
	logger    *slog.Logger
	progress  ProgressFunc
}

// Option configures a Mutagen or a Mapper.
type Option func(*options)

// WithWorkers bounds the number of concurrent renders or scoring tasks.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithCacheSize sets the per-document render cache size. 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress registers a progress callback. It may be called from several goroutines.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func newOptions(opts ...Option) options {
	o := options{
		workers:   runtime.NumCPU(),
		cacheSize: defaultCacheSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
