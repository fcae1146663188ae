package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Encode serializes the database as indented JSON with a trailing newline.
// Group keys appear in ascending numeric order and zone keys in canonical
// zone order; the bytes are identical across runs on identical input.
func Encode(db *Database) ([]byte, error) {
	groups := make(object, 0, len(db.Entries))
	for _, e := range db.Entries {
		groups = append(groups, member{key: strconv.Itoa(e.Number), val: encodeEntry(e)})
	}
	compact, err := marshalCanonical(object{{key: "space_groups", val: groups}})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFile writes the encoded database to path.
func WriteFile(db *Database, path string) error {
	data, err := Encode(db)
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing database: %w", err)
	}
	return nil
}

func encodeEntry(e *Entry) object {
	settings := make(array, 0, len(e.Settings))
	for _, s := range e.Settings {
		settings = append(settings, encodeSetting(s))
	}
	return object{
		{key: "number", val: e.Number},
		{key: "standard_symbol", val: e.StandardSymbol},
		{key: "crystal_system", val: e.CrystalSystem},
		{key: "point_group", val: e.PointGroup},
		{key: "centrosymmetric", val: e.Centrosymmetric},
		{key: "settings", val: settings},
	}
}

func encodeSetting(s SettingRecord) object {
	zones := make(object, 0, len(s.Conditions))
	for _, zc := range s.Conditions {
		conds := make(array, 0, len(zc.Conditions))
		for _, c := range zc.Conditions {
			conds = append(conds, c)
		}
		zones = append(zones, member{key: string(zc.Zone), val: conds})
	}
	return object{
		{key: "symbol", val: s.Symbol},
		{key: "description", val: s.Description},
		{key: "reflection_conditions", val: zones},
	}
}
