// Package notes is the composition root of the notes manager.
//
// It connects the domain (package core) with the file-backed datastore
// (package fs) and the subcommand façade (package app).
//
// The backing file holds one note per line, `<id>|<text>`. Every
// invocation loads the file, performs one operation and rewrites the
// whole file after a mutation.
//
// Usage:
//
//	store := notes.Open("notes.txt", notes.WithLogger(logger))
//	n, err := store.Add("buy milk")
//
//	// Or drive it the way the CLI does:
//	err = notes.New("notes.txt").List()
package notes
