package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xtaldev/sgdb/internal/conditions"
	"github.com/xtaldev/sgdb/internal/database"
	"github.com/xtaldev/sgdb/internal/store"
	"github.com/xtaldev/sgdb/internal/symmetry"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Database string
	Table    string
	MaxIndex int
}

// ZoneResult is one zone's conditions in the show payload.
type ZoneResult struct {
	Zone       string   `json:"zone"`
	Conditions []string `json:"conditions"`
}

// ShowResult is the payload of the show command.
type ShowResult struct {
	Symbol          string       `json:"symbol"`
	Qualifier       string       `json:"qualifier,omitempty"`
	Number          int          `json:"number"`
	CrystalSystem   string       `json:"crystal_system"`
	PointGroup      string       `json:"point_group"`
	Centrosymmetric bool         `json:"centrosymmetric"`
	Operations      int          `json:"operations,omitempty"`
	Conditions      []ZoneResult `json:"reflection_conditions"`
}

func (r ShowResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (space group %d, %s, point group %s", r.Symbol, r.Number, r.CrystalSystem, r.PointGroup)
	if r.Centrosymmetric {
		b.WriteString(", centrosymmetric")
	}
	b.WriteString(")\n")
	if r.Operations > 0 {
		fmt.Fprintf(&b, "Operations: %d\n", r.Operations)
	}
	if len(r.Conditions) == 0 {
		b.WriteString("No reflection conditions")
		return b.String()
	}
	b.WriteString("Reflection conditions:")
	for _, zr := range r.Conditions {
		fmt.Fprintf(&b, "\n  %s: %s", zr.Zone, strings.Join(zr.Conditions, ", "))
	}
	return b.String()
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <symbol>",
		Short: "Show the reflection conditions of one setting",
		Long: `Show space-group metadata and per-zone reflection conditions for a
single setting.

By default the symbol is resolved against the bundled space-group table and
the conditions derived on the spot. With --db the setting is read from a
previously generated SQLite database instead.

Example:
  sgdb show P21/c
  sgdb show I41 --format json
  sgdb show Fm-3m --db conditions.sqlite`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "read from a generated SQLite database")
	cmd.Flags().StringVar(&opts.Table, "table", "", "space-group table overriding the bundled one")
	cmd.Flags().IntVar(&opts.MaxIndex, "max-index", DefaultConfig().MaxIndex, "sampling window bound")

	return cmd
}

func runShow(opts *ShowOptions, symbol string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Database != "" {
		return showFromStore(opts, symbol, formatter, cmd.Context())
	}

	table, err := loadTable(opts.Table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load space-group table", err)
	}
	g, err := table.Resolve(symbol)
	if err != nil {
		if errors.Is(err, symmetry.ErrUnknownSymbol) {
			return WrapExitError(ExitFailure, "symbol not found", err)
		}
		return WrapExitError(ExitCommandError, "failed to resolve symbol", err)
	}
	for _, op := range g.Ops {
		formatter.VerboseLog("op: %s", op)
	}

	result := ShowResult{
		Symbol:          g.Symbol,
		Qualifier:       g.Qualifier,
		Number:          g.Number,
		CrystalSystem:   g.CrystalSystem(),
		PointGroup:      g.PointGroup,
		Centrosymmetric: g.Centrosymmetric(),
		Operations:      len(g.Ops),
	}
	for _, zc := range byZoneResults(g, opts.MaxIndex) {
		result.Conditions = append(result.Conditions, zc)
	}
	return formatter.Success(result)
}

func showFromStore(opts *ShowOptions, symbol string, formatter *OutputFormatter, ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	entry, rec, err := st.SettingBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return WrapExitError(ExitFailure, "symbol not found in database", err)
		}
		return WrapExitError(ExitCommandError, "failed to read database", err)
	}

	result := ShowResult{
		Symbol:          rec.Symbol,
		Qualifier:       rec.Description,
		Number:          entry.Number,
		CrystalSystem:   entry.CrystalSystem,
		PointGroup:      entry.PointGroup,
		Centrosymmetric: entry.Centrosymmetric,
	}
	for _, zc := range rec.Conditions {
		result.Conditions = append(result.Conditions, ZoneResult{Zone: string(zc.Zone), Conditions: zc.Conditions})
	}
	return formatter.Success(result)
}

func byZoneResults(g *symmetry.Group, maxIndex int) []ZoneResult {
	byZone := conditions.InferZones(g.Ops, maxIndex)
	var out []ZoneResult
	for _, zc := range database.OrderedConditions(byZone) {
		out = append(out, ZoneResult{Zone: string(zc.Zone), Conditions: zc.Conditions})
	}
	return out
}
