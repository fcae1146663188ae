package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/xtaldev/sgdb/internal/database"
)

// Error codes for settings loading.
const (
	ErrCodeNotFound  = "SETTINGS_NOT_FOUND"
	ErrCodeParse     = "SETTINGS_PARSE"
	ErrCodeSchema    = "SETTINGS_SCHEMA"
	ErrCodeGeneric   = "SETTINGS_ERROR"
)

// settingsSchema constrains the input list. JSON files unify against it
// directly since JSON is a subset of CUE.
const settingsSchema = `
#Setting: {
	number:    int & >0 & <=230
	symbol:    string & !=""
	qualifier: string | *""
}
#List: [...#Setting]
`

// LoadMode controls how errors are handled during settings loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadError represents an error that occurred during settings loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadSettings loads the ordered settings list from a CUE or JSON file and
// validates it against the settings schema. In LoadModeCollectAll every
// schema violation is reported; in LoadModeFailFast the first error wins.
func LoadSettings(path string, mode LoadMode) ([]database.Setting, []error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("settings file not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading settings file: %v", err)}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(settingsSchema)
	if err := schema.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling settings schema: %v", err)}}
	}
	list := schema.LookupPath(cue.ParsePath("#List"))

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, cueErrorList(ErrCodeParse, err, mode)
	}

	unified := list.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueErrorList(ErrCodeSchema, err, mode)
	}

	var settings []database.Setting
	if err := unified.Decode(&settings); err != nil {
		return nil, cueErrorList(ErrCodeSchema, err, mode)
	}
	return settings, nil
}

// cueErrorList expands a CUE error into one LoadError per underlying
// position-carrying error.
func cueErrorList(code string, err error, mode LoadMode) []error {
	split := cueerrors.Errors(err)
	if len(split) == 0 {
		return []error{&LoadError{Code: code, Message: err.Error()}}
	}
	if mode == LoadModeFailFast {
		split = split[:1]
	}
	out := make([]error, 0, len(split))
	for _, e := range split {
		out = append(out, &LoadError{Code: code, Message: e.Error(), Pos: e.Position()})
	}
	return out
}
