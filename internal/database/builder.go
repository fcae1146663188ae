package database

import (
	"fmt"
	"sort"
)

// Builder accumulates setting records into per-group entries. The first
// setting recorded for a group number creates its entry from the supplied
// standard metadata; later settings for the same number append to it.
type Builder struct {
	entries map[int]*Entry
}

// NewBuilder starts an empty build.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[int]*Entry)}
}

// Has reports whether an entry exists for the group number, letting callers
// skip the standard-metadata lookup for groups already seen.
func (b *Builder) Has(number int) bool {
	_, ok := b.entries[number]
	return ok
}

// RecordSetting appends a processed setting under its group number. The
// metadata is consulted only on first sight of the number; passing the
// zero Metadata for an already-seen number is allowed.
func (b *Builder) RecordSetting(meta Metadata, rec SettingRecord) error {
	entry, ok := b.entries[meta.Number]
	if !ok {
		if meta.Number <= 0 {
			return fmt.Errorf("invalid group number %d", meta.Number)
		}
		entry = &Entry{
			Number:          meta.Number,
			StandardSymbol:  meta.StandardSymbol,
			CrystalSystem:   meta.CrystalSystem,
			PointGroup:      meta.PointGroup,
			Centrosymmetric: meta.Centrosymmetric,
		}
		b.entries[meta.Number] = entry
	}
	entry.Settings = append(entry.Settings, rec)
	return nil
}

// Len reports the number of distinct groups recorded so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Finalize produces the immutable Database sorted ascending by group
// number. The builder must not be used afterwards.
func (b *Builder) Finalize() *Database {
	db := &Database{Entries: make([]*Entry, 0, len(b.entries))}
	for _, e := range b.entries {
		db.Entries = append(db.Entries, e)
	}
	sort.Slice(db.Entries, func(i, j int) bool {
		return db.Entries[i].Number < db.Entries[j].Number
	})
	b.entries = nil
	return db
}
