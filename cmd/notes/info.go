package main

import (
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the state of the notes file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}

		state, ok := a.Store().(introspection.Introspectable)
		if !ok {
			return fmt.Errorf("store does not expose its state")
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(state.State()); err != nil {
			return fmt.Errorf("encoding state: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
