package notes

import (
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/app"
	"github.com/aretw0/notes/pkg/core"
)

// Version is the release of the notes module.
const Version = "0.3.0"

// DefaultPath is the backing file used when no path is given.
const DefaultPath = fs.DefaultPath

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Store is a public alias for the store contract.
type Store = core.Store

// App is a public alias for the subcommand façade.
type App = app.App

// --- ID Policies ---

const (
	IDPolicyNext  = fs.IDPolicyNext
	IDPolicyCount = fs.IDPolicyCount
)

// --- Configuration ---

// Option defines a functional option for configuring the datastore.
type Option = platform.Option

// WithLogger sets the logger for the datastore.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIDPolicy chooses how ids are assigned on add.
func WithIDPolicy(p fs.IDPolicy) Option {
	return platform.WithIDPolicy(p)
}

// WithAtomicWrites enables or disables crash-safe persistence.
func WithAtomicWrites(enabled bool) Option {
	return platform.WithAtomicWrites(enabled)
}

// WithFileMode sets the permissions of the backing file.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithDebounce sets the coalescing window for Watch.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithStore allows injecting a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// --- Factory ---

// Open loads the backing file at path. It never fails: a missing or
// unreadable file yields an empty collection.
func Open(path string, opts ...Option) core.Store {
	return platform.Open(path, opts...)
}

// New opens the backing file at path and wraps it in an App that prints
// to stdout.
func New(path string, opts ...Option) *app.App {
	return app.New(Open(path, opts...))
}
