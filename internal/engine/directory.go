package engine

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Directory is the keyed collection of all records of a session.
// Iteration follows insertion order; replacing a name keeps its slot.
// A Directory is owned by a single goroutine and is not safe for concurrent use.
type Directory struct {
	records map[Name]*Record
	order   []Name
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{records: make(map[Name]*Record)}
}

// AddRecord inserts r, fully replacing any record stored under the same name.
func (d *Directory) AddRecord(r *Record) {
	log := slog.With(config.LogKeyComponent, config.CompEngine, config.LogKeyName, string(r.Name))

	if _, exists := d.records[r.Name]; exists {
		d.records[r.Name] = r
		log.Debug(config.MsgRecordReplaced)
		return
	}
	d.records[r.Name] = r
	d.order = append(d.order, r.Name)
	log.Debug(config.MsgRecordAdded)
}

// Find returns the record stored under name. Absence is not an error here;
// the caller decides how to report it.
func (d *Directory) Find(name string) (*Record, bool) {
	r, ok := d.records[Name(name)]
	return r, ok
}

// Delete removes the record stored under name and reports whether one existed.
func (d *Directory) Delete(name string) bool {
	key := Name(name)
	if _, ok := d.records[key]; !ok {
		return false
	}
	delete(d.records, key)
	if i := slices.Index(d.order, key); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
	slog.Debug(config.MsgRecordDeleted,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name)
	return true
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.order)
}

// All yields (name, record) pairs in directory order. Mutating the directory
// while iterating is not supported.
func (d *Directory) All() iter.Seq2[Name, *Record] {
	return func(yield func(Name, *Record) bool) {
		for _, name := range d.order {
			if !yield(name, d.records[name]) {
				return
			}
		}
	}
}
