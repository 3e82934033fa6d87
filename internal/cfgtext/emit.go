package cfgtext

import "strings"

// Writer regenerates INI text from sections and entries. Blocks are written
// in call order; a blank line separates each header from the preceding text.
type Writer struct {
	buf             []byte
	escapeBackslash bool
}

// NewWriter returns a Writer with room for at least sizeHint bytes. When
// escapeBackslash is set a literal '\' is written as "\\" so it survives a
// re-parse.
func NewWriter(sizeHint int, escapeBackslash bool) *Writer {
	return &Writer{
		buf:             make([]byte, 0, max(sizeHint, initialOutputCapacity)),
		escapeBackslash: escapeBackslash,
	}
}

// Header starts a named section block.
func (w *Writer) Header(name string) {
	if len(w.buf) > 0 {
		w.buf = append(w.buf, '\n')
	}
	w.buf = append(w.buf, SectionOpen)
	quote := strings.ContainsAny(name, " \t")
	if quote {
		w.buf = append(w.buf, Quote)
	}
	w.buf = AppendEscaped(w.buf, name, w.escapeBackslash)
	if quote {
		w.buf = append(w.buf, Quote)
	}
	w.buf = append(w.buf, SectionClose, '\n')
}

// Entry writes one "key"="value" line.
func (w *Writer) Entry(key, value string) {
	w.buf = append(w.buf, Quote)
	w.buf = AppendEscaped(w.buf, key, w.escapeBackslash)
	w.buf = append(w.buf, Quote, Assign, Quote)
	w.buf = AppendEscaped(w.buf, value, w.escapeBackslash)
	w.buf = append(w.buf, Quote, '\n')
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the generated text. The slice aliases the Writer's buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// AppendEscaped appends s to dst with every structural character prefixed by
// a backslash and each newline written as the two bytes "\n".
func AppendEscaped(dst []byte, s string, escapeBackslash bool) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case SectionOpen, SectionClose, Assign, Quote:
			dst = append(dst, Escape, c)
		case '\n':
			dst = append(dst, Escape, 'n')
		case Escape:
			if escapeBackslash {
				dst = append(dst, Escape)
			}
			dst = append(dst, c)
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// EscapeString returns s escaped for output.
func EscapeString(s string, escapeBackslash bool) string {
	return string(AppendEscaped(make([]byte, 0, len(s)+len(s)/4), s, escapeBackslash))
}
