package cfgtext

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedEncoding indicates an input encoding DecodeInput cannot handle.
	ErrUnsupportedEncoding = errors.New("cfgtext: unsupported encoding")

	// ErrInvalidSyntax indicates a Syntax whose reserved bytes collide.
	ErrInvalidSyntax = errors.New("cfgtext: invalid syntax")
)

// Warning is a non-fatal diagnostic raised while tokenizing. Lines carrying a
// warning are either repaired (unclosed quotes) or skipped (missing '=').
type Warning struct {
	Line   int
	Reason string
}

func (w *Warning) Error() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// Reasons attached to warnings.
const (
	ReasonUnclosedQuote   = "quote not closed"
	ReasonMissingAssign   = "no equal sign, line skipped"
	ReasonUnclosedSection = "section header not closed, line skipped"
	ReasonTrailingText    = "text after section header ignored"
)

// isFatal classifies collected errors: only *Warning values are tolerated.
func isFatal(err error) bool {
	var w *Warning
	return !errors.As(err, &w)
}
