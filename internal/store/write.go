package store

import (
	"context"
	"fmt"

	"github.com/xtaldev/sgdb/internal/database"
)

// Save replaces the stored database with db in a single transaction.
// Existing rows are deleted first so repeated saves of the same database
// leave identical content.
func (s *Store) Save(ctx context.Context, db *database.Database) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Cascades clear settings and conditions.
	if _, err := tx.ExecContext(ctx, `DELETE FROM space_groups`); err != nil {
		return fmt.Errorf("clearing space_groups: %w", err)
	}

	for _, e := range db.Entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO space_groups (number, standard_symbol, crystal_system, point_group, centrosymmetric)
			 VALUES (?, ?, ?, ?, ?)`,
			e.Number, e.StandardSymbol, e.CrystalSystem, e.PointGroup, e.Centrosymmetric)
		if err != nil {
			return fmt.Errorf("inserting group %d: %w", e.Number, err)
		}
		for pos, rec := range e.Settings {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO settings (group_number, position, symbol, description)
				 VALUES (?, ?, ?, ?)`,
				e.Number, pos, rec.Symbol, rec.Description)
			if err != nil {
				return fmt.Errorf("inserting setting %q: %w", rec.Symbol, err)
			}
			settingID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("setting id for %q: %w", rec.Symbol, err)
			}
			condPos := 0
			for _, zc := range rec.Conditions {
				for _, cond := range zc.Conditions {
					_, err := tx.ExecContext(ctx,
						`INSERT INTO conditions (setting_id, zone, position, condition)
						 VALUES (?, ?, ?, ?)`,
						settingID, string(zc.Zone), condPos, cond)
					if err != nil {
						return fmt.Errorf("inserting condition %q for %q: %w", cond, rec.Symbol, err)
					}
					condPos++
				}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
