package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/app"
	"github.com/aretw0/notes/pkg/core"
)

var (
	getJSON bool
	getYAML bool
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Read one note, or all notes",
	Long: `Get prints the text of the note with the given id, or nothing if there is none.
Without an id it prints every note as "<id>: <text>".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if getJSON && getYAML {
			return core.Errorf(core.KindBadArgument, "get", "--json and --yaml are mutually exclusive")
		}

		format := app.FormatText
		switch {
		case getJSON:
			format = app.FormatJSON
		case getYAML:
			format = app.FormatYAML
		}

		a, err := openApp(cmd, app.WithFormat(format))
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return a.List()
		}

		id, err := argID(args, 0)
		if err != nil {
			return err
		}
		return a.Get(id)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	getCmd.Flags().BoolVar(&getYAML, "yaml", false, "Output in YAML format")
}
