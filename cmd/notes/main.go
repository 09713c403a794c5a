// Package main provides the notes CLI entry point.
package main

import (
	"os"
	"strings"

	"github.com/aretw0/notes/pkg/core"
)

func main() {
	os.Exit(Execute())
}

// argID parses the positional id at index i.
func argID(args []string, i int) (int, error) {
	if i >= len(args) {
		return core.ParseID("")
	}
	return core.ParseID(args[i])
}

// argText joins the positional tokens from index i with single spaces.
func argText(op string, args []string, i int) (string, error) {
	if i >= len(args) {
		return "", core.Errorf(core.KindBadArgument, op, "missing note text")
	}
	return strings.Join(args[i:], " "), nil
}
