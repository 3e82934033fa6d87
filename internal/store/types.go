package store

// Identity selects how names are matched.
type Identity int

const (
	// IdentityName matches on hash and then on the exact string.
	IdentityName Identity = iota

	// IdentityHash matches on hash only.
	IdentityHash
)

func (i Identity) String() string {
	switch i {
	case IdentityName:
		return "name"
	case IdentityHash:
		return "hash"
	}
	return "unknown"
}

// Entry is a key/value pair owned by one section.
type Entry struct {
	key     string
	value   string
	keyHash uint32
	section *Section
}

// Key returns the entry key.
func (e *Entry) Key() string { return e.key }

// Value returns the entry value. An empty value is still a present entry.
func (e *Entry) Value() string { return e.value }

// KeyHash returns the hash of the key.
func (e *Entry) KeyHash() uint32 { return e.keyHash }

// Section returns the owning section, or nil once the entry was deleted.
func (e *Entry) Section() *Section { return e.section }

// SectionHash returns the hash of the owning section's name. Root entries and
// detached entries report RootHash; use Live to tell them apart.
func (e *Entry) SectionHash() uint32 {
	if e.section == nil {
		return RootHash
	}
	return e.section.hash
}

// Live reports whether the entry is still part of a store.
func (e *Entry) Live() bool { return e.section != nil }

// Section is a named group of entries.
type Section struct {
	name    string
	hash    uint32
	root    bool
	entries []*Entry
}

// Name returns the section name; the root section's name is empty.
func (s *Section) Name() string { return s.name }

// Hash returns the hash of the section name.
func (s *Section) Hash() uint32 { return s.hash }

// IsRoot reports whether s holds the entries declared before any header.
func (s *Section) IsRoot() bool { return s.root }

// Len returns the number of entries.
func (s *Section) Len() int { return len(s.entries) }

// EntryAt returns the i-th entry in insertion order.
func (s *Section) EntryAt(i int) (*Entry, error) {
	if len(s.entries) == 0 {
		return nil, ErrNoEntries
	}
	if i < 0 || i >= len(s.entries) {
		return nil, ErrIndexOutOfRange
	}
	return s.entries[i], nil
}

// Entries returns a snapshot of the entries in insertion order.
func (s *Section) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Section) indexOf(e *Entry) int {
	for i, cur := range s.entries {
		if cur == e {
			return i
		}
	}
	return -1
}

// removeAt drops the i-th entry, keeping the others in order. The slice is
// released once it empties.
func (s *Section) removeAt(i int) {
	e := s.entries[i]
	n := len(s.entries) - 1
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[n] = nil
	s.entries = s.entries[:n]
	if n == 0 {
		s.entries = nil
	}
	e.section = nil
}

func (s *Section) detachAll() {
	for _, e := range s.entries {
		e.section = nil
	}
	s.entries = nil
}
