package store

import "errors"

var (
	// ErrSectionNotFound indicates no section matches the requested name.
	ErrSectionNotFound = errors.New("store: section not found")

	// ErrEntryNotFound indicates the section has no entry with the requested key.
	ErrEntryNotFound = errors.New("store: entry not found")

	// ErrNoEntries indicates an indexed access into an empty section.
	ErrNoEntries = errors.New("store: section has no entries")

	// ErrIndexOutOfRange indicates an index past the end of a section or entry list.
	ErrIndexOutOfRange = errors.New("store: index out of range")

	// ErrStaleEntry indicates a handle to an entry that has been deleted.
	ErrStaleEntry = errors.New("store: entry no longer in store")

	// ErrCorruptBuffer indicates a canonical buffer that disagrees with its
	// entry counts.
	ErrCorruptBuffer = errors.New("store: canonical buffer does not match counts")
)
