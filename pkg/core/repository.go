package core

import "context"

// Store defines the contract for the note collection and its backing file.
// Mutations persist the whole collection before returning.
type Store interface {
	// Reload replaces the in-memory sequence with the backing file and returns its length.
	Reload() (int, error)

	// Add appends a note with the next available id.
	Add(text string) (Note, error)

	// Get returns the first note with the given id without touching disk.
	Get(id int) (Note, error)

	// List returns the notes in insertion order.
	List() []Note

	// Update replaces the text of a note and returns the previous version.
	Update(id int, text string) (Note, error)

	// Delete removes a note and returns it.
	Delete(id int) (Note, error)
}

// Watchable defines an interface for stores that can report changes made
// to their backing file by other processes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
