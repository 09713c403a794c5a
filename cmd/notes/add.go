package main

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a new note",
	Long:  `Add appends a new note. All positional tokens are joined by a single space.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := argText("add", args, 0)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		return a.Add(text)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
