package store

import (
	"errors"

	"github.com/joshuapare/cfgkit/internal/cache"
)

// Store owns the sections of one configuration and the cache over its entries.
type Store struct {
	hash     func(string) uint32
	identity Identity

	sections []*Section // root at index 0
	cache    *cache.MRU[*Entry]
}

// New creates an empty store holding only the root section.
func New(hash func(string) uint32, identity Identity, cacheSize int) (*Store, error) {
	c, err := cache.New[*Entry](cacheSize)
	if err != nil {
		return nil, err
	}
	s := &Store{hash: hash, identity: identity, cache: c}
	s.sections = []*Section{s.newRoot()}
	return s, nil
}

// RootHash is the reserved hash of the root section. It is fixed for every
// algorithm; named sections are never matched against it.
const RootHash uint32 = 0

func (s *Store) newRoot() *Section {
	return &Section{hash: RootHash, root: true}
}

// Identity returns the name matching mode.
func (s *Store) Identity() Identity { return s.identity }

// Hash returns the hash of name under the store's algorithm.
func (s *Store) Hash(name string) uint32 { return s.hash(name) }

// Root returns the root section.
func (s *Store) Root() *Section { return s.sections[0] }

// NumSections returns the number of sections, root included.
func (s *Store) NumSections() int { return len(s.sections) }

// SectionAt returns the i-th section in insertion order; index 0 is root.
func (s *Store) SectionAt(i int) (*Section, error) {
	if i < 0 || i >= len(s.sections) {
		return nil, ErrIndexOutOfRange
	}
	return s.sections[i], nil
}

// Sections returns a snapshot of all sections in insertion order.
func (s *Store) Sections() []*Section {
	out := make([]*Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// NumEntries returns the total number of entries across all sections.
func (s *Store) NumEntries() int {
	n := 0
	for _, sec := range s.sections {
		n += len(sec.entries)
	}
	return n
}

// Section resolves a section by name. The empty name resolves to root.
func (s *Store) Section(name string) (*Section, bool) {
	if name == "" {
		return s.Root(), true
	}
	sec := findSection(s.sections, name, s.hash(name), s.identity)
	return sec, sec != nil
}

func findSection(list []*Section, name string, h uint32, id Identity) *Section {
	for _, sec := range list[1:] {
		if sec.hash != h {
			continue
		}
		if id == IdentityHash || sec.name == name {
			return sec
		}
	}
	return nil
}

func (s *Store) findEntry(sec *Section, key string, h uint32) *Entry {
	for _, e := range sec.entries {
		if e.keyHash != h {
			continue
		}
		if s.identity == IdentityHash || e.key == key {
			return e
		}
	}
	return nil
}

// Lookup returns the entry for key in section, consulting the cache before
// scanning the section. A hit is promoted to the front of the cache.
func (s *Store) Lookup(section, key string) (*Entry, error) {
	sec, ok := s.Section(section)
	if !ok {
		return nil, ErrSectionNotFound
	}
	return s.lookupIn(sec, key)
}

func (s *Store) lookupIn(sec *Section, key string) (*Entry, error) {
	h := s.hash(key)
	e, ok := s.cache.Probe(sec.hash, h, func(e *Entry) bool {
		return e.section == sec && (s.identity == IdentityHash || e.key == key)
	})
	if !ok {
		if e = s.findEntry(sec, key, h); e == nil {
			return nil, ErrEntryNotFound
		}
	}
	s.promote(e)
	return e, nil
}

// Set replaces the value of key in section. When the entry is missing and
// create is true, the section (if needed) and the entry are appended;
// otherwise the lookup error is returned.
func (s *Store) Set(section, key, value string, create bool) (*Entry, error) {
	sec, ok := s.Section(section)
	if !ok {
		if !create {
			return nil, ErrSectionNotFound
		}
		sec = s.addSection(section)
	}
	e, err := s.lookupIn(sec, key)
	switch {
	case err == nil:
		e.value = value
		return e, nil
	case errors.Is(err, ErrEntryNotFound) && create:
		e = s.appendEntry(sec, key, value)
		s.promote(e)
		return e, nil
	default:
		return nil, err
	}
}

// SetValue replaces the value of a live entry and promotes it.
func (s *Store) SetValue(e *Entry, value string) error {
	if !e.Live() {
		return ErrStaleEntry
	}
	e.value = value
	s.promote(e)
	return nil
}

func (s *Store) addSection(name string) *Section {
	sec := &Section{name: name, hash: s.hash(name)}
	s.sections = append(s.sections, sec)
	return sec
}

func (s *Store) appendEntry(sec *Section, key, value string) *Entry {
	e := &Entry{key: key, value: value, keyHash: s.hash(key), section: sec}
	sec.entries = append(sec.entries, e)
	return e
}

// DeleteEntry removes a live entry from its section and from the cache. The
// remaining entries keep their order.
func (s *Store) DeleteEntry(e *Entry) error {
	sec := e.section
	if sec == nil {
		return ErrStaleEntry
	}
	i := sec.indexOf(e)
	if i < 0 {
		return ErrStaleEntry
	}
	s.cache.Remove(e)
	sec.removeAt(i)
	return nil
}

// DeleteSection removes every entry of the named section and, unless it is
// root, the section itself.
func (s *Store) DeleteSection(name string) error {
	sec, ok := s.Section(name)
	if !ok {
		return ErrSectionNotFound
	}
	s.cache.RemoveFunc(func(e *Entry) bool { return e.section == sec })
	sec.detachAll()
	if sec.root {
		return nil
	}
	for i, cur := range s.sections {
		if cur == sec {
			copy(s.sections[i:], s.sections[i+1:])
			s.sections[len(s.sections)-1] = nil
			s.sections = s.sections[:len(s.sections)-1]
			break
		}
	}
	return nil
}

// Clear drops every section and entry and empties the cache. The cache
// capacity, hash, and identity mode are kept.
func (s *Store) Clear() {
	for _, sec := range s.sections {
		sec.detachAll()
	}
	s.sections = []*Section{s.newRoot()}
	s.cache.Reset()
}

// ResizeCache changes the cache capacity, emptying it.
func (s *Store) ResizeCache(n int) error { return s.cache.Resize(n) }

// CacheAdd promotes a live entry to the front of the cache.
func (s *Store) CacheAdd(e *Entry) error {
	if !e.Live() {
		return ErrStaleEntry
	}
	return s.cache.Promote(e)
}

// CacheClear empties the cache without changing its capacity.
func (s *Store) CacheClear() { s.cache.Reset() }

// CacheLen returns the number of cached entries.
func (s *Store) CacheLen() int { return s.cache.Len() }

// CacheCap returns the cache capacity.
func (s *Store) CacheCap() int { return s.cache.Cap() }

// Cached returns the cached entries, most recent first.
func (s *Store) Cached() []*Entry { return s.cache.Items() }

func (s *Store) promote(e *Entry) {
	// A disabled cache is not an error for lookups and updates.
	_ = s.cache.Promote(e)
}
