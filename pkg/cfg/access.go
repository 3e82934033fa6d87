package cfg

import (
	"strconv"

	"github.com/joshuapare/cfgkit/internal/store"
)

// Get returns the value of key in section. The empty section name addresses
// the root section.
func (c *Config) Get(section, key string) (string, error) {
	e, err := c.store.Lookup(section, key)
	if err != nil {
		return "", translate(err)
	}
	return e.Value(), nil
}

// Lookup is Get with a found flag instead of an error.
func (c *Config) Lookup(section, key string) (string, bool) {
	v, err := c.Get(section, key)
	return v, err == nil
}

// Entry returns the handle for key in section.
func (c *Config) Entry(section, key string) (*Entry, error) {
	e, err := c.store.Lookup(section, key)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// Set replaces the value of key in section. With create, a missing section
// and entry are appended; without it a missing one is an error.
func (c *Config) Set(section, key, value string, create bool) error {
	if err := c.checkText(section, key, value); err != nil {
		return err
	}
	_, err := c.store.Set(section, key, value, create)
	return translate(err)
}

// AddEntry creates or updates key in section and returns its handle.
func (c *Config) AddEntry(section, key, value string) (*Entry, error) {
	if err := c.checkText(section, key, value); err != nil {
		return nil, err
	}
	e, err := c.store.Set(section, key, value, true)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// SetEntryValue replaces the value behind a handle.
func (c *Config) SetEntryValue(e *Entry, value string) error {
	if e == nil {
		return ErrNullArgument
	}
	if err := c.checkText(value); err != nil {
		return err
	}
	return translate(c.store.SetValue(e, value))
}

// checkText rejects names and values holding a separator byte.
func (c *Config) checkText(texts ...string) error {
	for _, s := range texts {
		if c.opts.reserved(s) {
			return wrap(KindInvalidValue, "separator byte in "+strconv.Quote(s), nil)
		}
	}
	return nil
}

// DeleteEntry removes the entry behind a handle. The handle becomes stale.
func (c *Config) DeleteEntry(e *Entry) error {
	if e == nil {
		return ErrNullArgument
	}
	return translate(c.store.DeleteEntry(e))
}

// DeleteKey removes key from section.
func (c *Config) DeleteKey(section, key string) error {
	e, err := c.store.Lookup(section, key)
	if err != nil {
		return translate(err)
	}
	return translate(c.store.DeleteEntry(e))
}

// DeleteSection removes a section and all its entries. For the root section
// only the entries are removed.
func (c *Config) DeleteSection(name string) error {
	return translate(c.store.DeleteSection(name))
}

// Clear removes every section and entry. Settings and cache capacity are kept.
func (c *Config) Clear() {
	c.store.Clear()
	c.warnings = nil
}

// Root returns the root section.
func (c *Config) Root() *Section { return c.store.Root() }

// Section returns the named section.
func (c *Config) Section(name string) (*Section, error) {
	sec, ok := c.store.Section(name)
	if !ok {
		return nil, ErrSectionNotFound
	}
	return sec, nil
}

// HasSection reports whether the named section exists.
func (c *Config) HasSection(name string) bool {
	_, ok := c.store.Section(name)
	return ok
}

// NumSections returns the number of sections, root included.
func (c *Config) NumSections() int { return c.store.NumSections() }

// NumEntries returns the number of entries across all sections.
func (c *Config) NumEntries() int { return c.store.NumEntries() }

// SectionAt returns the i-th section in order; index 0 is root.
func (c *Config) SectionAt(i int) (*Section, error) {
	sec, err := c.store.SectionAt(i)
	return sec, translate(err)
}

// EntryAt returns the i-th entry of the named section in order.
func (c *Config) EntryAt(section string, i int) (*Entry, error) {
	sec, ok := c.store.Section(section)
	if !ok {
		return nil, ErrSectionNotFound
	}
	e, err := sec.EntryAt(i)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// Sections returns all sections in order, root first.
func (c *Config) Sections() []*Section { return c.store.Sections() }

// Hash returns the hash of name under the configured algorithm.
func (c *Config) Hash(name string) uint32 { return c.store.Hash(name) }

// RootHash is the reserved hash carried by the root section.
const RootHash = store.RootHash

// Hash returns the default (FNV-1a) hash of name.
func Hash(name string) uint32 { return HashFNV1a.Sum(name) }

// ============================================================================
// Cache control
// ============================================================================

// SetCacheSize changes the cache capacity and empties the cache. 0 disables
// it.
func (c *Config) SetCacheSize(n int) error {
	if err := c.store.ResizeCache(n); err != nil {
		return translate(err)
	}
	c.opts.CacheSize = n
	return nil
}

// CacheSize returns the cache capacity.
func (c *Config) CacheSize() int { return c.store.CacheCap() }

// CacheLen returns the number of cached entries.
func (c *Config) CacheLen() int { return c.store.CacheLen() }

// CacheAdd moves e to the front of the cache.
func (c *Config) CacheAdd(e *Entry) error {
	if e == nil {
		return ErrNullArgument
	}
	return translate(c.store.CacheAdd(e))
}

// CacheClear empties the cache without changing its capacity.
func (c *Config) CacheClear() { c.store.CacheClear() }

// CachedEntries returns the cached entries, most recent first.
func (c *Config) CachedEntries() []*Entry { return c.store.Cached() }
