package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notes version %s\n", notes.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
