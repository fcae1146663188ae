package database

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// SkipLog is the append-only diagnostic record of settings the build could
// not process. Every write is flushed through a buffered writer on Close;
// callers must Close on all exit paths.
type SkipLog struct {
	f *os.File
	w *bufio.Writer
}

// OpenSkipLog creates (or truncates) the log file and writes its header.
// The run token ties the log to one generation run.
func OpenSkipLog(path, runToken string) (*SkipLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening skip log: %w", err)
	}
	l := &SkipLog{f: f, w: bufio.NewWriter(f)}
	if _, err := fmt.Fprintf(l.w, "Log of skipped space group symbols:\nRun: %s\n======================================\n", runToken); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing skip log header: %w", err)
	}
	return l, nil
}

// Unresolved records a symbol the source could not resolve.
func (l *SkipLog) Unresolved(number int, symbol, qualifier string) error {
	_, err := fmt.Fprintf(l.w, "Number: %d, Symbol: '%s', Qualifier: '%s'\n", number, symbol, qualifier)
	return err
}

// Mismatch records a symbol that resolved to an unexpected group number.
func (l *SkipLog) Mismatch(number int, symbol string, resolved int) error {
	_, err := fmt.Fprintf(l.w, "Number Mismatch: %d, Symbol: '%s', Parsed as: %d\n", number, symbol, resolved)
	return err
}

// Failure records any other per-setting processing error.
func (l *SkipLog) Failure(number int, symbol string, cause error) error {
	_, err := fmt.Fprintf(l.w, "CRITICAL ERROR: %d, Symbol: '%s', Error: %v\n", number, symbol, cause)
	return err
}

// Close flushes and closes the log file.
func (l *SkipLog) Close() error {
	return errors.Join(l.w.Flush(), l.f.Close())
}
