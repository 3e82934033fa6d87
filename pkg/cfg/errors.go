package cfg

import (
	"errors"

	"github.com/joshuapare/cfgkit/internal/cache"
	"github.com/joshuapare/cfgkit/internal/cfgtext"
	"github.com/joshuapare/cfgkit/internal/mmfile"
	"github.com/joshuapare/cfgkit/internal/store"
)

// ============================================================================
// Typed Errors (stable categories for programmatic handling)
// ============================================================================

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	KindNullArgument    ErrKind = iota // required handle missing
	KindAllocation                     // buffer over MaxBufferSize, or the model could not be built
	KindFileOpen                       // file could not be opened
	KindFileRead                       // input could not be read or decoded
	KindFileWrite                      // output could not be written
	KindEntryNotFound                  // no such key in the section, or a deleted entry handle
	KindSectionNotFound                // no such section
	KindNoEntries                      // indexed access into an empty section
	KindIndexOutOfRange                // index past the end
	KindCacheDisabled                  // operation needs a nonzero cache capacity
	KindInvalidOption                  // Options or an argument failed validation
	KindInvalidValue                   // value text does not parse as the requested type
)

var kindNames = [...]string{
	KindNullArgument:    "null argument",
	KindAllocation:      "allocation failure",
	KindFileOpen:        "file open failure",
	KindFileRead:        "file read failure",
	KindFileWrite:       "file write failure",
	KindEntryNotFound:   "entry not found",
	KindSectionNotFound: "section not found",
	KindNoEntries:       "no entries",
	KindIndexOutOfRange: "index out of range",
	KindCacheDisabled:   "cache disabled",
	KindInvalidOption:   "invalid option",
	KindInvalidValue:    "invalid value",
}

func (k ErrKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown error"
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrFileOpen)
// holds whatever the cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && t.Kind == e.Kind
}

// Sentinels, one per kind.
var (
	ErrNullArgument    = &Error{Kind: KindNullArgument, Msg: "cfg: nil argument"}
	ErrAllocation      = &Error{Kind: KindAllocation, Msg: "cfg: buffer limit exceeded"}
	ErrFileOpen        = &Error{Kind: KindFileOpen, Msg: "cfg: cannot open file"}
	ErrFileRead        = &Error{Kind: KindFileRead, Msg: "cfg: cannot read input"}
	ErrFileWrite       = &Error{Kind: KindFileWrite, Msg: "cfg: cannot write output"}
	ErrEntryNotFound   = &Error{Kind: KindEntryNotFound, Msg: "cfg: entry not found"}
	ErrSectionNotFound = &Error{Kind: KindSectionNotFound, Msg: "cfg: section not found"}
	ErrNoEntries       = &Error{Kind: KindNoEntries, Msg: "cfg: section has no entries"}
	ErrIndexOutOfRange = &Error{Kind: KindIndexOutOfRange, Msg: "cfg: index out of range"}
	ErrCacheDisabled   = &Error{Kind: KindCacheDisabled, Msg: "cfg: cache disabled"}
	ErrInvalidOption   = &Error{Kind: KindInvalidOption, Msg: "cfg: invalid option"}
	ErrInvalidValue    = &Error{Kind: KindInvalidValue, Msg: "cfg: invalid value"}
)

// Warning is a non-fatal diagnostic recorded while parsing.
type Warning = cfgtext.Warning

// Warning reasons.
const (
	ReasonUnclosedQuote   = cfgtext.ReasonUnclosedQuote
	ReasonMissingAssign   = cfgtext.ReasonMissingAssign
	ReasonUnclosedSection = cfgtext.ReasonUnclosedSection
	ReasonTrailingText    = cfgtext.ReasonTrailingText
)

func wrap(kind ErrKind, msg string, err error) error {
	return &Error{Kind: kind, Msg: "cfg: " + msg, Err: err}
}

// translate maps errors from the internal packages onto kinds.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrSectionNotFound):
		return ErrSectionNotFound
	case errors.Is(err, store.ErrEntryNotFound), errors.Is(err, store.ErrStaleEntry):
		return ErrEntryNotFound
	case errors.Is(err, store.ErrNoEntries):
		return ErrNoEntries
	case errors.Is(err, store.ErrIndexOutOfRange):
		return ErrIndexOutOfRange
	case errors.Is(err, store.ErrCorruptBuffer):
		return wrap(KindAllocation, "cannot build model", err)
	case errors.Is(err, cache.ErrDisabled):
		return ErrCacheDisabled
	case errors.Is(err, cache.ErrNegativeCapacity):
		return wrap(KindInvalidOption, "cache size", err)
	case errors.Is(err, mmfile.ErrTooLarge):
		return wrap(KindAllocation, "input too large", err)
	case errors.Is(err, cfgtext.ErrUnsupportedEncoding), errors.Is(err, cfgtext.ErrInvalidSyntax):
		return wrap(KindInvalidOption, "options", err)
	}
	return err
}
