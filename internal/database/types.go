package database

import "github.com/xtaldev/sgdb/internal/hkl"

// Setting is one input record: a space-group setting to process.
type Setting struct {
	Number    int    `json:"number"`
	Symbol    string `json:"symbol"`
	Qualifier string `json:"qualifier"`
}

// Metadata is the standard (first-listed) setting's metadata for a group
// number, used when its entry is first created.
type Metadata struct {
	Number          int
	StandardSymbol  string
	CrystalSystem   string
	PointGroup      string
	Centrosymmetric bool
}

// ZoneConditions pairs a zone with its ordered condition list. Slices of
// ZoneConditions keep the canonical zone order for serialization.
type ZoneConditions struct {
	Zone       hkl.Zone
	Conditions []string
}

// SettingRecord is one processed setting: its symbol, qualifier label and
// the zones that carry conditions (zones without conditions are omitted).
type SettingRecord struct {
	Symbol      string
	Description string
	Conditions  []ZoneConditions
}

// Entry is one space group: standard metadata plus its settings in
// processing order.
type Entry struct {
	Number          int
	StandardSymbol  string
	CrystalSystem   string
	PointGroup      string
	Centrosymmetric bool
	Settings        []SettingRecord
}

// Database is the finalized output: entries sorted ascending by number.
// It is write-once; nothing mutates it after Builder.Finalize.
type Database struct {
	Entries []*Entry
}

// Entry returns the entry for a group number, or nil.
func (d *Database) Entry(number int) *Entry {
	for _, e := range d.Entries {
		if e.Number == number {
			return e
		}
	}
	return nil
}
