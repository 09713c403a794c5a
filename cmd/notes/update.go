package main

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id> <text...>",
	Short: "Replace the text of a note",
	Long:  `Update replaces the text of the note with the given id. The text tokens are joined by a single space.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := argID(args, 0)
		if err != nil {
			return err
		}
		text, err := argText("update", args, 1)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		return a.Update(id, text)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
