package symmetry

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed data/spacegroups.cue
var bundledTable []byte

// tableSchema constrains table data, bundled or user-supplied. JSON table
// files unify against the same schema since JSON is a subset of CUE.
const tableSchema = `
#Setting: {
	number:      int & >0 & <=230
	symbol:      string & !=""
	qualifier:   string | *""
	point_group: string & !=""
	centering:   "P" | "A" | "B" | "C" | "I" | "F" | "R"
	generators: [...string]
}
settings: [...#Setting]
`

// Sentinel errors for table lookups.
var (
	ErrUnknownSymbol = errors.New("unknown space-group symbol")
	ErrUnknownNumber = errors.New("unknown space-group number")
)

type settingRecord struct {
	Number     int      `json:"number"`
	Symbol     string   `json:"symbol"`
	Qualifier  string   `json:"qualifier"`
	PointGroup string   `json:"point_group"`
	Centering  string   `json:"centering"`
	Generators []string `json:"generators"`
}

// Table is a symmetry operation source backed by a list of standard
// settings with generator triplets. Lookups expand generators to the full
// operation list via Closure.
type Table struct {
	records       []settingRecord
	bySymbol      map[string]*settingRecord
	firstByNumber map[int]*settingRecord
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// DefaultTable returns the bundled table of standard settings.
func DefaultTable() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = parseTable(bundledTable)
	})
	return defaultTable, defaultErr
}

// LoadTable reads a table from a CUE or JSON file with the same schema as
// the bundled data.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	t, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return t, nil
}

func parseTable(data []byte) (*Table, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(tableSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling table schema: %w", err)
	}
	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compiling table data: %w", err)
	}
	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating table data: %w", err)
	}

	var decoded struct {
		Settings []settingRecord `json:"settings"`
	}
	if err := unified.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding table data: %w", err)
	}
	if len(decoded.Settings) == 0 {
		return nil, errors.New("table contains no settings")
	}

	t := &Table{
		records:       decoded.Settings,
		bySymbol:      make(map[string]*settingRecord, len(decoded.Settings)),
		firstByNumber: make(map[int]*settingRecord, len(decoded.Settings)),
	}
	for i := range t.records {
		rec := &t.records[i]
		key := normalizeSymbol(rec.Symbol)
		if _, dup := t.bySymbol[key]; dup {
			return nil, fmt.Errorf("duplicate symbol %q in table", rec.Symbol)
		}
		t.bySymbol[key] = rec
		if _, seen := t.firstByNumber[rec.Number]; !seen {
			t.firstByNumber[rec.Number] = rec
		}
	}
	return t, nil
}

// Resolve looks up a setting by Hermann-Mauguin symbol and expands its
// operation list. Spaces and underscores in the symbol are ignored.
func (t *Table) Resolve(symbol string) (*Group, error) {
	rec, ok := t.bySymbol[normalizeSymbol(symbol)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return t.expand(rec)
}

// ByNumber returns the canonical (first-listed) setting for a group number.
func (t *Table) ByNumber(number int) (*Group, error) {
	rec, ok := t.firstByNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNumber, number)
	}
	return t.expand(rec)
}

// Len reports the number of settings in the table.
func (t *Table) Len() int {
	return len(t.records)
}

func (t *Table) expand(rec *settingRecord) (*Group, error) {
	ops, err := Closure(rec.Generators, rec.Centering)
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", rec.Symbol, err)
	}
	return &Group{
		Number:     rec.Number,
		Symbol:     rec.Symbol,
		Qualifier:  rec.Qualifier,
		PointGroup: rec.PointGroup,
		Ops:        ops,
	}, nil
}

func normalizeSymbol(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}
