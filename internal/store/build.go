package store

import (
	"bytes"
)

// Separators names the two reserved bytes of a canonical buffer.
type Separators struct {
	Section  byte
	KeyValue byte
}

// Load replaces the store contents with the sections and entries described by
// a canonical buffer and its per-slot entry counts (slot 0 is root, slot i the
// i-th header). The cache is emptied.
//
// Load is all-or-nothing: on error the store is left as it was.
func (s *Store) Load(buf []byte, counts []int, sep Separators) error {
	sections, err := s.build(buf, counts, sep)
	if err != nil {
		return err
	}
	for _, sec := range s.sections {
		sec.detachAll()
	}
	s.sections = sections
	s.cache.Reset()
	return nil
}

// build makes one forward pass over buf. Every header slot gets one block of
// exactly counts[slot] entries, so entries never move after creation.
func (s *Store) build(buf []byte, counts []int, sep Separators) ([]*Section, error) {
	if len(counts) == 0 {
		return nil, ErrCorruptBuffer
	}
	for _, c := range counts {
		if c < 0 {
			return nil, ErrCorruptBuffer
		}
	}
	root := s.newRoot()
	root.entries = make([]*Entry, 0, counts[0])
	sections := make([]*Section, 1, len(counts))
	sections[0] = root

	slot := 0
	active := root
	block := make([]Entry, counts[0])
	used := 0

	for i := 0; i < len(buf); {
		if buf[i] == sep.Section {
			end := bytes.IndexByte(buf[i+1:], sep.Section)
			if end < 0 {
				return nil, ErrCorruptBuffer
			}
			name := string(buf[i+1 : i+1+end])
			i += end + 2

			if used != len(block) {
				return nil, ErrCorruptBuffer
			}
			slot++
			if slot >= len(counts) {
				return nil, ErrCorruptBuffer
			}
			active = s.openSection(&sections, name, counts[slot])
			block = make([]Entry, counts[slot])
			used = 0
			continue
		}

		kEnd := bytes.IndexByte(buf[i:], sep.KeyValue)
		if kEnd < 0 {
			return nil, ErrCorruptBuffer
		}
		key := string(buf[i : i+kEnd])
		i += kEnd + 1
		vEnd := bytes.IndexByte(buf[i:], sep.KeyValue)
		if vEnd < 0 {
			return nil, ErrCorruptBuffer
		}
		value := string(buf[i : i+vEnd])
		i += vEnd + 1

		// The counts are authoritative: an entry past the end of its block
		// means the buffer and counts disagree.
		if used == len(block) {
			return nil, ErrCorruptBuffer
		}
		e := &block[used]
		used++
		*e = Entry{key: key, value: value, keyHash: s.hash(key), section: active}
		active.entries = append(active.entries, e)
	}

	if used != len(block) || slot != len(counts)-1 {
		return nil, ErrCorruptBuffer
	}
	return sections, nil
}

// openSection returns the section a header names: root for "[]", an earlier
// section for a repeated header, or a new section appended to the list.
func (s *Store) openSection(list *[]*Section, name string, hint int) *Section {
	if name == "" {
		return (*list)[0]
	}
	h := s.hash(name)
	if sec := findSection(*list, name, h, s.identity); sec != nil {
		return sec
	}
	sec := &Section{name: name, hash: h, entries: make([]*Entry, 0, hint)}
	*list = append(*list, sec)
	return sec
}
