package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// DatastoreState exposes internal state for observability.
type DatastoreState struct {
	Path          string     `json:"path" yaml:"path"`
	Count         int        `json:"count" yaml:"count"`
	NextID        int        `json:"next_id" yaml:"next_id"` // -1 once ids are exhausted
	IDPolicy      string     `json:"id_policy" yaml:"id_policy"`
	Skipped       int        `json:"skipped_lines" yaml:"skipped_lines"`
	Atomic        bool       `json:"atomic_writes" yaml:"atomic_writes"`
	WatcherActive bool       `json:"watcher_active" yaml:"watcher_active"`
	LastLoad      *time.Time `json:"last_load,omitempty" yaml:"last_load,omitempty"`
}

// State implements introspection.Introspectable.
func (d *Datastore) State() any {
	d.mu.RLock()
	defer d.mu.RUnlock()

	next, err := d.nextID()
	if err != nil {
		next = -1
	}

	return DatastoreState{
		Path:          d.Path,
		Count:         len(d.notes),
		NextID:        next,
		IDPolicy:      d.config.IDPolicy.String(),
		Skipped:       d.skipped,
		Atomic:        !d.config.TruncateInPlace,
		WatcherActive: d.watcherActive,
		LastLoad:      d.lastLoad,
	}
}

// ComponentType implements introspection.Component.
func (d *Datastore) ComponentType() string {
	return "datastore"
}

var _ introspection.Introspectable = (*Datastore)(nil)
var _ introspection.Component = (*Datastore)(nil)
