package catalog

import (
	"context"
	"sort"
)

// Printer is the line sink a demonstration writes to.
//
// Each Println or Printf call emits exactly one output line. The harness
// supplies an implementation that captures lines in order; demonstrations
// must not write to process stdout directly, so that concurrent runs never
// interleave.
type Printer interface {
	// Println emits one output line.
	Println(line string)

	// Printf formats and emits one output line.
	Printf(format string, args ...any)
}

// RunFunc is the executable body of one demonstration.
//
// A RunFunc writes its output lines to out and returns an error on
// failure. It is expected to be finite, deterministic, and free of side
// effects beyond the emitted lines. Panics are tolerated: the harness
// isolates them at its boundary and reports them as faults.
type RunFunc func(ctx context.Context, out Printer) error

// Entry is one registered demonstration. Immutable once registered.
type Entry struct {
	// Key identifies the entry.
	Key Key

	// Title is a short human-readable description (e.g. "Observer — pull model").
	Title string

	// Run is the demonstration body. Must be non-nil.
	Run RunFunc
}

// Catalog maps (category, name, variant) keys to entries.
//
// A catalog is populated during a single initialization phase and sealed
// before use. It owns its entries exclusively; they live only as long as
// the process. Registration is not safe for concurrent use, but a sealed
// catalog may be read from any goroutine.
type Catalog struct {
	entries map[Key]Entry
	sealed  bool
}

// New creates an empty, unsealed catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[Key]Entry)}
}

// Register adds an entry to the catalog.
//
// Fails with ErrCodeInvalidKey for malformed keys or a nil Run, with
// ErrCodeDuplicateEntry if the key is already present, and with
// ErrCodeSealed after Seal. Duplicate registration indicates a catalog
// bug, so callers populating a catalog should treat any error as fatal.
func (c *Catalog) Register(e Entry) error {
	if c.sealed {
		return newSealedError(e.Key)
	}
	if err := e.Key.Validate(); err != nil {
		return err
	}
	if e.Run == nil {
		return newInvalidKeyError(e.Key, "entry has nil run func")
	}
	if _, exists := c.entries[e.Key]; exists {
		return newDuplicateError(e.Key)
	}
	c.entries[e.Key] = e
	return nil
}

// Seal ends the initialization phase. The catalog is read-only afterwards.
// Sealing an already-sealed catalog is a no-op.
func (c *Catalog) Seal() {
	c.sealed = true
}

// Sealed reports whether the initialization phase has ended.
func (c *Catalog) Sealed() bool {
	return c.sealed
}

// Resolve returns the entry registered under key.
//
// Fails with ErrCodeNotFound when absent. A missing variant of an
// otherwise-registered (category, name) pair is an ordinary not-found:
// the pairing convention is not enforced here.
func (c *Catalog) Resolve(key Key) (Entry, error) {
	e, ok := c.entries[key]
	if !ok {
		return Entry{}, newNotFoundError(key)
	}
	return e, nil
}

// Filter narrows List and the harness batch operations.
// The zero value matches everything.
type Filter struct {
	// Category restricts to one category when non-empty.
	Category Category

	// Name restricts to one pattern name when non-empty.
	// Matched after NormalizeName, so raw user input is acceptable.
	Name string
}

// Matches reports whether key passes the filter.
func (f Filter) Matches(key Key) bool {
	if f.Category != "" && key.Category != f.Category {
		return false
	}
	if f.Name != "" && key.Name != NormalizeName(f.Name) {
		return false
	}
	return true
}

// List returns the keys matching the filter in lexicographic order by
// category, then name, then variant. The order is deterministic: two calls
// with the same filter yield identical sequences.
func (c *Catalog) List(f Filter) []Key {
	keys := make([]Key, 0, len(c.entries))
	for k := range c.entries {
		if f.Matches(k) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Len returns the number of registered entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// UnpairedKeys returns keys whose sibling variant is missing, in List
// order. An empty result means the base/improved pairing convention holds
// for the whole catalog. Intended for diagnostics; nothing in the catalog
// depends on pairing.
func (c *Catalog) UnpairedKeys() []Key {
	var unpaired []Key
	for _, k := range c.List(Filter{}) {
		if _, err := c.Resolve(k.Sibling()); err != nil {
			unpaired = append(unpaired, k)
		}
	}
	return unpaired
}
