package fs

import (
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/aretw0/notes/pkg/core"
)

// DefaultPath is the backing file used when no path is configured.
const DefaultPath = "notes.txt"

// IDPolicy decides which id a freshly added note receives.
type IDPolicy int

const (
	// IDPolicyNext assigns max(existing id) + 1, so ids stay unique after deletions.
	IDPolicyNext IDPolicy = iota
	// IDPolicyCount assigns the number of notes currently stored.
	// Ids handed out after a deletion may collide with existing ones.
	IDPolicyCount
)

func (p IDPolicy) String() string {
	switch p {
	case IDPolicyNext:
		return "next"
	case IDPolicyCount:
		return "count"
	default:
		return "unknown"
	}
}

// Config holds the configuration for the file-backed datastore.
type Config struct {
	Path            string
	Logger          *slog.Logger
	IDPolicy        IDPolicy
	TruncateInPlace bool          // Rewrite the file in place instead of temp file + rename.
	FileMode        os.FileMode   // Defaults to 0644.
	Debounce        time.Duration // Coalescing window for Watch events. Defaults to 50ms.
}

// Datastore implements core.Store on top of a single line-oriented text file.
// It owns the in-memory sequence; the file is opened only while loading or persisting.
type Datastore struct {
	Path   string
	config Config

	mu            sync.RWMutex
	notes         []core.Note
	skipped       int
	lastLoad      *time.Time
	watcherActive bool
}

// Open creates a Datastore for the file at path and loads it.
func Open(path string) *Datastore {
	return NewDatastore(Config{Path: path})
}

// NewDatastore creates a Datastore and loads its backing file.
// A missing or unreadable file results in an empty collection; construction never fails.
func NewDatastore(config Config) *Datastore {
	if config.Path == "" {
		config.Path = DefaultPath
	}
	if config.FileMode == 0 {
		config.FileMode = 0644
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}

	d := &Datastore{
		Path:   config.Path,
		config: config,
		notes:  []core.Note{},
	}

	if _, err := d.reload(); err != nil {
		d.warn("backing file unreadable, starting empty", "path", d.Path, "error", err)
	}
	return d
}

// Reload replaces the in-memory sequence with the contents of the backing file.
func (d *Datastore) Reload() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reload()
}

func (d *Datastore) reload() (int, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		if os.IsNotExist(err) {
			d.setLoaded([]core.Note{}, 0)
			return 0, nil
		}
		return len(d.notes), core.WrapIO("reload", err)
	}

	notes, skipped := decode(data)
	if skipped > 0 {
		d.debug("skipped malformed lines", "path", d.Path, "skipped", skipped)
	}

	d.setLoaded(notes, skipped)
	return len(notes), nil
}

func (d *Datastore) setLoaded(notes []core.Note, skipped int) {
	now := time.Now()
	d.notes = notes
	d.skipped = skipped
	d.lastLoad = &now
}

// Add reloads the backing file, appends a note with the next id and persists.
//
// Workflow:
//  1. Validate the text against the line format.
//  2. Reload from disk so the id reflects the file as it is now.
//  3. Assign the id according to the configured IDPolicy.
//  4. Append and rewrite the whole file.
func (d *Datastore) Add(text string) (core.Note, error) {
	if err := core.ValidateText(text); err != nil {
		return core.Note{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.reload(); err != nil {
		return core.Note{}, err
	}

	id, err := d.nextID()
	if err != nil {
		return core.Note{}, err
	}

	n := core.Note{ID: id, Text: text}
	prev := d.notes
	d.notes = append(append(make([]core.Note, 0, len(prev)+1), prev...), n)

	if err := d.persist(); err != nil {
		d.notes = prev
		return core.Note{}, err
	}

	d.debug("note added", "id", n.ID, "count", len(d.notes))
	return n, nil
}

// NextID returns the id the next Add would assign, based on the in-memory sequence.
// It fails with KindIO once the id space is exhausted.
func (d *Datastore) NextID() (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.nextID()
}

func (d *Datastore) nextID() (int, error) {
	if d.config.IDPolicy == IDPolicyCount {
		if len(d.notes) == math.MaxInt {
			return 0, errIDsExhausted()
		}
		return len(d.notes), nil
	}
	next := 0
	for _, n := range d.notes {
		if n.ID == math.MaxInt {
			return 0, errIDsExhausted()
		}
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	return next, nil
}

func errIDsExhausted() error {
	return core.Errorf(core.KindIO, "add", "id space exhausted at %d", math.MaxInt)
}

// Get returns the first note whose id matches. It does not touch disk.
func (d *Datastore) Get(id int) (core.Note, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.indexOf(id); i >= 0 {
		return d.notes[i], nil
	}
	return core.Note{}, core.Errorf(core.KindNotFound, "get", "note %d not found", id)
}

// List returns a copy of the notes in insertion order. It does not touch disk.
func (d *Datastore) List() []core.Note {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]core.Note, len(d.notes))
	copy(out, d.notes)
	return out
}

// Update replaces the text of the first note with a matching id, persists,
// and returns the previous version of the note.
func (d *Datastore) Update(id int, text string) (core.Note, error) {
	if err := core.ValidateText(text); err != nil {
		return core.Note{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i, err := d.locate("update", id)
	if err != nil {
		return core.Note{}, err
	}

	old := d.notes[i]
	d.notes[i] = core.Note{ID: id, Text: text}

	if err := d.persist(); err != nil {
		d.notes[i] = old
		return core.Note{}, err
	}

	d.debug("note updated", "id", id)
	return old, nil
}

// Delete removes the first note with a matching id, keeping the order of the
// remaining notes, persists, and returns the removed note.
func (d *Datastore) Delete(id int) (core.Note, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i, err := d.locate("delete", id)
	if err != nil {
		return core.Note{}, err
	}

	prev := d.notes
	removed := prev[i]
	next := make([]core.Note, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	d.notes = next

	if err := d.persist(); err != nil {
		d.notes = prev
		return core.Note{}, err
	}

	d.debug("note deleted", "id", id, "count", len(d.notes))
	return removed, nil
}

// Persist rewrites the whole backing file from the in-memory sequence.
func (d *Datastore) Persist() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.persist()
}

func (d *Datastore) persist() error {
	data := encode(d.notes)

	write := writeFileAtomic
	if d.config.TruncateInPlace {
		write = writeFileTruncate
	}
	if err := write(d.Path, data, d.config.FileMode); err != nil {
		return core.WrapIO("persist", err)
	}
	return nil
}

func (d *Datastore) locate(op string, id int) (int, error) {
	if len(d.notes) == 0 {
		return -1, core.Errorf(core.KindEmptyStore, op, "no notes stored")
	}
	i := d.indexOf(id)
	if i < 0 {
		return -1, core.UnknownID(op, id)
	}
	return i, nil
}

func (d *Datastore) indexOf(id int) int {
	for i, n := range d.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (d *Datastore) debug(msg string, args ...any) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, args...)
	}
}

func (d *Datastore) warn(msg string, args ...any) {
	if d.config.Logger != nil {
		d.config.Logger.Warn(msg, args...)
	}
}

var _ core.Store = (*Datastore)(nil)
