package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xtaldev/sgdb/internal/database"
	"github.com/xtaldev/sgdb/internal/hkl"
)

// ErrNotFound reports a lookup that matched no stored rows.
var ErrNotFound = errors.New("not found in store")

// Load reconstructs the complete database. Entries come back in ascending
// number order, settings and conditions in their stored positions.
func (s *Store) Load(ctx context.Context) (*database.Database, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT number, standard_symbol, crystal_system, point_group, centrosymmetric
		 FROM space_groups ORDER BY number ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying space_groups: %w", err)
	}
	defer rows.Close()

	db := &database.Database{}
	for rows.Next() {
		e := &database.Entry{}
		if err := rows.Scan(&e.Number, &e.StandardSymbol, &e.CrystalSystem, &e.PointGroup, &e.Centrosymmetric); err != nil {
			return nil, fmt.Errorf("scanning space group: %w", err)
		}
		db.Entries = append(db.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range db.Entries {
		settings, err := s.settingsForGroup(ctx, e.Number)
		if err != nil {
			return nil, err
		}
		e.Settings = settings
	}
	return db, nil
}

// SettingBySymbol returns the stored group entry and setting record for a
// symbol, or ErrNotFound.
func (s *Store) SettingBySymbol(ctx context.Context, symbol string) (*database.Entry, *database.SettingRecord, error) {
	var (
		settingID int64
		e         database.Entry
		rec       database.SettingRecord
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT st.id, st.symbol, st.description,
		        sg.number, sg.standard_symbol, sg.crystal_system, sg.point_group, sg.centrosymmetric
		 FROM settings st JOIN space_groups sg ON sg.number = st.group_number
		 WHERE st.symbol = ? ORDER BY st.id ASC LIMIT 1`, symbol).
		Scan(&settingID, &rec.Symbol, &rec.Description,
			&e.Number, &e.StandardSymbol, &e.CrystalSystem, &e.PointGroup, &e.Centrosymmetric)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: symbol %q", ErrNotFound, symbol)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("querying setting %q: %w", symbol, err)
	}
	conds, err := s.conditionsForSetting(ctx, settingID)
	if err != nil {
		return nil, nil, err
	}
	rec.Conditions = conds
	return &e, &rec, nil
}

func (s *Store) settingsForGroup(ctx context.Context, number int) ([]database.SettingRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, symbol, description FROM settings
		 WHERE group_number = ? ORDER BY position ASC`, number)
	if err != nil {
		return nil, fmt.Errorf("querying settings for %d: %w", number, err)
	}
	defer rows.Close()

	type settingRow struct {
		id  int64
		rec database.SettingRecord
	}
	var loaded []settingRow
	for rows.Next() {
		var sr settingRow
		if err := rows.Scan(&sr.id, &sr.rec.Symbol, &sr.rec.Description); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		loaded = append(loaded, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]database.SettingRecord, 0, len(loaded))
	for _, sr := range loaded {
		conds, err := s.conditionsForSetting(ctx, sr.id)
		if err != nil {
			return nil, err
		}
		sr.rec.Conditions = conds
		records = append(records, sr.rec)
	}
	return records, nil
}

func (s *Store) conditionsForSetting(ctx context.Context, settingID int64) ([]database.ZoneConditions, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT zone, condition FROM conditions
		 WHERE setting_id = ? ORDER BY position ASC`, settingID)
	if err != nil {
		return nil, fmt.Errorf("querying conditions: %w", err)
	}
	defer rows.Close()

	var out []database.ZoneConditions
	for rows.Next() {
		var zone, cond string
		if err := rows.Scan(&zone, &cond); err != nil {
			return nil, fmt.Errorf("scanning condition: %w", err)
		}
		if n := len(out); n > 0 && out[n-1].Zone == hkl.Zone(zone) {
			out[n-1].Conditions = append(out[n-1].Conditions, cond)
		} else {
			out = append(out, database.ZoneConditions{Zone: hkl.Zone(zone), Conditions: []string{cond}})
		}
	}
	return out, rows.Err()
}
