package database

import (
	"errors"
	"log/slog"

	"github.com/xtaldev/sgdb/internal/conditions"
	"github.com/xtaldev/sgdb/internal/hkl"
	"github.com/xtaldev/sgdb/internal/symmetry"
)

// Source resolves space-group settings to their operation lists.
// *symmetry.Table satisfies it; tests substitute fakes.
type Source interface {
	Resolve(symbol string) (*symmetry.Group, error)
	ByNumber(number int) (*symmetry.Group, error)
}

// BuildOptions configures a database build.
type BuildOptions struct {
	// MaxIndex is the sampling window bound; free indices range over
	// [-MaxIndex/2, MaxIndex).
	MaxIndex int

	// Log receives one record per skipped setting. Required.
	Log *SkipLog

	// Logger receives progress events; defaults to slog.Default().
	Logger *slog.Logger
}

// BuildStats summarizes a finished build.
type BuildStats struct {
	Groups   int `json:"groups"`
	Settings int `json:"settings"`
	Skipped  int `json:"skipped"`
}

// Build processes the ordered settings list against the source and returns
// the finalized database. Per-setting failures (unresolvable symbol, number
// mismatch, expansion error) are written to the skip log and never abort
// the run.
func Build(settings []Setting, src Source, opts BuildOptions) (*Database, BuildStats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var stats BuildStats
	b := NewBuilder()
	for _, s := range settings {
		g, err := src.Resolve(s.Symbol)
		if err != nil {
			stats.Skipped++
			if errors.Is(err, symmetry.ErrUnknownSymbol) {
				logger.Warn("symbol not resolved, skipping", "number", s.Number, "symbol", s.Symbol)
				if err := opts.Log.Unresolved(s.Number, s.Symbol, s.Qualifier); err != nil {
					return nil, stats, err
				}
				continue
			}
			logger.Warn("setting failed, skipping", "number", s.Number, "symbol", s.Symbol, "err", err)
			if err := opts.Log.Failure(s.Number, s.Symbol, err); err != nil {
				return nil, stats, err
			}
			continue
		}
		if g.Number != s.Number {
			stats.Skipped++
			logger.Warn("number mismatch, skipping", "number", s.Number, "symbol", s.Symbol, "resolved", g.Number)
			if err := opts.Log.Mismatch(s.Number, s.Symbol, g.Number); err != nil {
				return nil, stats, err
			}
			continue
		}

		meta := Metadata{Number: g.Number}
		if !b.Has(g.Number) {
			std, err := src.ByNumber(g.Number)
			if err != nil {
				stats.Skipped++
				logger.Warn("standard setting lookup failed, skipping", "number", s.Number, "symbol", s.Symbol, "err", err)
				if err := opts.Log.Failure(s.Number, s.Symbol, err); err != nil {
					return nil, stats, err
				}
				continue
			}
			meta = Metadata{
				Number:          std.Number,
				StandardSymbol:  std.Symbol,
				CrystalSystem:   std.CrystalSystem(),
				PointGroup:      std.PointGroup,
				Centrosymmetric: std.Centrosymmetric(),
			}
			logger.Info("space group", "number", std.Number, "symbol", std.Symbol, "system", std.CrystalSystem())
		}

		logger.Debug("processing setting", "symbol", s.Symbol, "qualifier", s.Qualifier, "ops", len(g.Ops))
		rec := SettingRecord{
			Symbol:      s.Symbol,
			Description: s.Qualifier,
			Conditions:  OrderedConditions(conditions.InferZones(g.Ops, opts.MaxIndex)),
		}
		if err := b.RecordSetting(meta, rec); err != nil {
			stats.Skipped++
			if err := opts.Log.Failure(s.Number, s.Symbol, err); err != nil {
				return nil, stats, err
			}
			continue
		}
		stats.Settings++
	}

	db := b.Finalize()
	stats.Groups = len(db.Entries)
	return db, stats, nil
}

// OrderedConditions flattens the inference result into canonical zone order.
func OrderedConditions(byZone map[hkl.Zone][]string) []ZoneConditions {
	var out []ZoneConditions
	for _, zone := range hkl.Zones {
		if conds, ok := byZone[zone]; ok {
			out = append(out, ZoneConditions{Zone: zone, Conditions: conds})
		}
	}
	return out
}
