// Package app implements the notes subcommands on top of a core.Store.
// Every operation performs exactly one delegation and prints one status.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notes/pkg/core"
)

// Format selects how notes are rendered by Get and List.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// App is the façade the CLI talks to. It owns the store for the
// lifetime of the process.
type App struct {
	store  core.Store
	out    io.Writer
	format Format
	logger *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithOutput redirects status lines (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithFormat sets the rendering of Get and List.
func WithFormat(f Format) Option {
	return func(a *App) { a.format = f }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// New creates an App around store.
func New(store core.Store, opts ...Option) *App {
	a := &App{
		store:  store,
		out:    os.Stdout,
		format: FormatText,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store exposes the underlying store.
func (a *App) Store() core.Store {
	return a.store
}

// Add appends a note.
func (a *App) Add(text string) error {
	n, err := a.store.Add(text)
	if err != nil {
		return err
	}
	a.log("add", n.ID)
	return a.printf("added new note: %q\n", n.Text)
}

// Get prints the text of the note with the given id, or nothing on a miss.
func (a *App) Get(id int) error {
	n, err := a.store.Get(id)
	if errors.Is(err, core.ErrNotFound) {
		a.log("get miss", id)
		return nil
	}
	if err != nil {
		return err
	}

	switch a.format {
	case FormatJSON, FormatYAML:
		return a.render(n)
	default:
		return a.printf("%q\n", n.Text)
	}
}

// List prints every note as `<id>: <text>`, or a placeholder when empty.
func (a *App) List() error {
	notes := a.store.List()

	switch a.format {
	case FormatJSON, FormatYAML:
		return a.render(notes)
	}

	if len(notes) == 0 {
		return a.printf("nothing to show.\n")
	}
	for _, n := range notes {
		if err := a.printf("%d: %s\n", n.ID, n.Text); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a note.
func (a *App) Delete(id int) error {
	n, err := a.store.Delete(id)
	if err != nil {
		return err
	}
	a.log("delete", id)
	return a.printf("removed note %d: %s\n", n.ID, n.Text)
}

// Update replaces the text of a note.
func (a *App) Update(id int, text string) error {
	old, err := a.store.Update(id, text)
	if err != nil {
		return err
	}
	a.log("update", id)
	return a.printf("updated note %d from '%s' to '%s'\n", old.ID, old.Text, text)
}

func (a *App) render(v any) error {
	if a.format == FormatYAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func (a *App) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(a.out, format, args...)
	return err
}

func (a *App) log(op string, id int) {
	if a.logger != nil {
		a.logger.Debug("operation completed", "op", op, "id", id)
	}
}
