package platform

import (
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// options holds the internal configuration for a notes Datastore.
type options struct {
	store    core.Store
	logger   *slog.Logger
	idPolicy fs.IDPolicy
	atomic   bool
	fileMode os.FileMode
	debounce time.Duration
}

// Option defines a functional option for configuring notes.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		idPolicy: fs.IDPolicyNext,
		atomic:   true,
		fileMode: 0644,
	}
}

// WithLogger sets the logger for the datastore.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDPolicy chooses how ids are assigned on add.
// Defaults to fs.IDPolicyNext.
func WithIDPolicy(p fs.IDPolicy) Option {
	return func(o *options) {
		o.idPolicy = p
	}
}

// WithAtomicWrites enables or disables the temp-file-and-rename persist strategy.
// By default, writes are atomic.
func WithAtomicWrites(enabled bool) Option {
	return func(o *options) {
		o.atomic = enabled
	}
}

// WithFileMode sets the permissions of the backing file.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithDebounce sets the coalescing window of Watch.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithStore allows injecting a custom store (e.g. a mock).
// If provided, the filesystem datastore is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}
