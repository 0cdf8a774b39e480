// Package screenlist holds an editable, ordered list of screens as typed by
// the user, and reads such lists from YAML files.
package screenlist

import (
	"slices"
	"sync"

	"github.com/macropower/aspect/pkg/screen"
)

// List is an ordered collection of [Entry] values keyed by [ID]. It is safe
// for concurrent use.
type List struct {
	entries map[ID]Entry
	order   []ID
	units   screen.UnitOptions
	nextID  ID
	mu      sync.RWMutex
}

// ListOpt configures a [List].
type ListOpt func(*List)

// WithDefaultUnits sets the units given to entries added without any.
func WithDefaultUnits(units screen.UnitOptions) ListOpt {
	return func(l *List) {
		l.units = units
	}
}

func New(opts ...ListOpt) *List {
	l := &List{
		entries: map[ID]Entry{},
		units:   screen.DefaultUnitOptions(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Add appends e under a new ID and returns that ID. Missing units are
// filled from the list defaults.
func (l *List) Add(e Entry) ID {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.ID = l.nextID
	l.nextID++

	if e.DiagonalUnit == "" {
		e.DiagonalUnit = l.units.DiagonalUnit
	}
	if e.SizeUnit == "" {
		e.SizeUnit = l.units.SizeUnit
	}

	l.entries[e.ID] = e
	l.order = append(l.order, e.ID)

	return e.ID
}

// Update applies changes to the entry with the given ID. It reports false,
// and changes nothing, if there is no such entry.
func (l *List) Update(id ID, changes ...Change) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[id]
	if !ok {
		return false
	}

	for _, change := range changes {
		change(&e)
	}

	e.ID = id
	l.entries[id] = e

	return true
}

// UpdateAll applies changes to every entry.
func (l *List) UpdateAll(changes ...Change) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, e := range l.entries {
		for _, change := range changes {
			change(&e)
		}

		e.ID = id
		l.entries[id] = e
	}
}

// Replace swaps in a new set of entries, keyed by ID. It only succeeds when
// entries has exactly as many elements as the list and every ID already
// exists; the order is kept.
func (l *List) Replace(entries map[ID]Entry) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(entries) != len(l.entries) {
		return false
	}

	for id := range entries {
		if _, ok := l.entries[id]; !ok {
			return false
		}
	}

	next := make(map[ID]Entry, len(entries))
	for id, e := range entries {
		e.ID = id
		next[id] = e
	}

	l.entries = next

	return true
}

// Remove deletes the entry with the given ID. It reports whether the entry
// existed.
func (l *List) Remove(id ID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries[id]; !ok {
		return false
	}

	delete(l.entries, id)
	l.order = slices.DeleteFunc(l.order, func(v ID) bool {
		return v == id
	})

	return true
}

// Get returns the entry with the given ID.
func (l *List) Get(id ID) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.entries[id]

	return e, ok
}

// Entries returns all entries in order.
func (l *List) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.entries[id])
	}

	return out
}

// Map returns a copy of the entries keyed by ID, for use with
// [List.Replace].
func (l *List) Map() map[ID]Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[ID]Entry, len(l.entries))
	for id, e := range l.entries {
		out[id] = e
	}

	return out
}

// IDs returns the IDs in order.
func (l *List) IDs() []ID {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.order)
}

// Len returns the number of entries.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.order)
}

// Reports serializes every valid entry, in order, each in its own units.
// Invalid entries are skipped.
func (l *List) Reports() []*screen.Report {
	var reports []*screen.Report

	for _, e := range l.Entries() {
		if r, ok := e.Report(); ok {
			reports = append(reports, r)
		}
	}

	return reports
}

// Text renders all valid entries with [screen.FormatList].
func (l *List) Text() string {
	return screen.FormatList(l.Reports()...)
}
