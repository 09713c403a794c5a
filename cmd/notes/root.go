package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/app"
	"github.com/aretw0/notes/pkg/core"
)

var (
	verbose  bool
	filePath string
	idPolicy string
)

// errUsage is returned when the program is invoked without a subcommand.
var errUsage = errors.New("a subcommand is required")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "A tiny command-line notes manager",
	Long: `notes keeps a list of short text notes in a single plain-text file.
Each line of the file is one note, written as <id>|<text>.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errUsage
	},
}

// Execute runs the command tree and returns the process exit code.
// This is called by main.main().
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			reportError(err)
		}
		return exitCode(err)
	}
	return ExitSuccess
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", notes.DefaultPath, "Path of the backing notes file")
	rootCmd.PersistentFlags().StringVar(&idPolicy, "id-policy", "next", "How new ids are assigned: next (max+1) or count (legacy)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return core.Errorf(core.KindBadArgument, cmd.Name(), "%v", err)
	})
}

// openApp loads the backing file and wraps it in the subcommand façade.
func openApp(cmd *cobra.Command, opts ...app.Option) (*app.App, error) {
	policy, err := platform.ParseIDPolicy(idPolicy)
	if err != nil {
		return nil, err
	}

	store := notes.Open(filePath,
		notes.WithLogger(slog.Default()),
		notes.WithIDPolicy(policy),
	)

	opts = append([]app.Option{
		app.WithOutput(cmd.OutOrStdout()),
		app.WithLogger(slog.Default()),
	}, opts...)
	return app.New(store, opts...), nil
}

// reportError prints a short message to the error stream, in red when that stream is a terminal.
func reportError(err error) {
	w := rootCmd.ErrOrStderr()
	c := color.New(color.FgRed)
	if useColor(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintf(w, "error: %v\n", err)
}

// useColor reports whether w is a terminal. fatih/color only inspects stdout.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
