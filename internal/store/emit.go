package store

import "github.com/joshuapare/cfgkit/internal/cfgtext"

// Emit writes every section to w in order. Root entries come first with no
// header; named sections are always written, even when empty.
func (s *Store) Emit(w *cfgtext.Writer) {
	for _, sec := range s.sections {
		if !sec.root {
			w.Header(sec.name)
		}
		for _, e := range sec.entries {
			w.Entry(e.key, e.value)
		}
	}
}

// SizeHint estimates the serialized size of the store.
func (s *Store) SizeHint() int {
	n := 0
	for _, sec := range s.sections {
		n += len(sec.name) + 4
		for _, e := range sec.entries {
			n += len(e.key) + len(e.value) + 6
		}
	}
	return n
}
