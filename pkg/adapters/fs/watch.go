package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notes/pkg/core"
)

// Watch reports changes made to the backing file until ctx is cancelled.
//
// The parent directory is watched rather than the file itself, because an
// atomic persist replaces the file with a new inode. Bursts of events are
// coalesced into a single event per debounce window.
func (d *Datastore) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, core.WrapIO("watch", fmt.Errorf("failed to create watcher: %w", err))
	}

	dir := filepath.Dir(d.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, core.WrapIO("watch", fmt.Errorf("failed to watch %s: %w", dir, err))
	}

	events := make(chan core.Event, 1)
	d.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer d.setWatcherActive(false)
		defer watcher.Close()
		return d.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		if d.config.Logger != nil {
			d.config.Logger.Error("watcher stopped", "path", d.Path, "error", err)
		}
	}))

	return events, nil
}

func (d *Datastore) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- core.Event) error {
	timer := time.NewTimer(d.config.Debounce)
	timer.Stop()
	defer timer.Stop()

	var pending *core.Event
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			e, relevant := d.mapEvent(ev)
			if !relevant {
				continue
			}
			d.debug("event received", "name", ev.Name, "op", ev.Op.String())
			pending = &e
			timer.Reset(d.config.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			d.warn("watcher error", "path", d.Path, "error", err)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case out <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil
		}
	}
}

// mapEvent translates an fsnotify event into a core.Event for the backing file.
func (d *Datastore) mapEvent(ev fsnotify.Event) (core.Event, bool) {
	if strings.HasPrefix(filepath.Base(ev.Name), TempFilePrefix) {
		return core.Event{}, false
	}
	if filepath.Clean(ev.Name) != filepath.Clean(d.Path) {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		t = core.EventCreate
	case ev.Has(fsnotify.Write):
		t = core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{Type: t, Path: d.Path, Timestamp: time.Now().Unix()}, true
}

func (d *Datastore) setWatcherActive(active bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.watcherActive = active
}

var _ core.Watchable = (*Datastore)(nil)
