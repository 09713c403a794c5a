package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the notes every time the file changes",
	Long: `Watch prints all notes, then prints them again whenever the notes file is
changed by another invocation. It never writes. Stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}

		w, ok := a.Store().(core.Watchable)
		if !ok {
			return fmt.Errorf("store does not support watching")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := w.Watch(ctx)
		if err != nil {
			return err
		}

		if err := a.List(); err != nil {
			return err
		}

		for e := range events {
			slog.Debug("notes file changed", "event", e.String())
			if _, err := a.Store().Reload(); err != nil {
				slog.Warn("reload failed", "error", err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout())
			if err := a.List(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
