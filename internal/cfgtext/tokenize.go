package cfgtext

import (
	"gopkg.in/warnings.v0"
)

// Syntax holds the reserved bytes used while tokenizing.
type Syntax struct {
	// CommentChars start full-line comments. Set both to the same byte to use
	// a single marker.
	CommentChars [2]byte

	// SectionSeparator delimits section names in the canonical buffer.
	SectionSeparator byte

	// KeyValueSeparator terminates keys and values in the canonical buffer.
	KeyValueSeparator byte
}

// DefaultSyntax returns the standard ';' / '#' comment markers and the 0x01 /
// 0x02 separator bytes.
func DefaultSyntax() Syntax {
	return Syntax{
		CommentChars:      [2]byte{DefaultCommentChar1, DefaultCommentChar2},
		SectionSeparator:  DefaultSectionSeparator,
		KeyValueSeparator: DefaultKeyValueSeparator,
	}
}

// Validate checks that the reserved bytes cannot be confused with each other
// or with text the tokenizer interprets.
func (s Syntax) Validate() error {
	seps := []byte{s.SectionSeparator, s.KeyValueSeparator}
	for _, b := range seps {
		if b == 0 || b >= ' ' || b == '\n' || b == '\r' || b == '\t' {
			return ErrInvalidSyntax
		}
	}
	if s.SectionSeparator == s.KeyValueSeparator {
		return ErrInvalidSyntax
	}
	for _, c := range s.CommentChars {
		switch c {
		case 0, ' ', '\t', '\n', '\r', SectionOpen, SectionClose, Assign, Quote, Escape,
			s.SectionSeparator, s.KeyValueSeparator:
			return ErrInvalidSyntax
		}
	}
	return nil
}

// Tokens is the tokenizer output.
type Tokens struct {
	// Buf is the canonical buffer. Each section header appears as
	// SEP_S name SEP_S and each entry as key SEP_KV value SEP_KV.
	Buf []byte

	// Counts holds the number of entries per section slot. Slot 0 is the
	// root section; slot i is the i-th header in the input.
	Counts []int
}

// Sections returns the number of section slots, root included.
func (t *Tokens) Sections() int { return len(t.Counts) }

// Entries returns the total number of entries across all slots.
func (t *Tokens) Entries() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}

// state names the tokenizer position within a logical line.
type state int

const (
	stateLineStart   state = iota // before the first token of a line
	stateComment                  // inside a full-line comment, or ignored tail
	stateKey                      // before the first unquoted '='
	stateValue                    // after the first unquoted '='
	stateSection                  // between '[' and ']'
	stateSectionTail              // after ']' on a header line
	stateEscape                   // the byte after an unescaped '\'
)

// Tokenize scans src once and returns the canonical buffer with per-section
// entry counts.
//
// The returned error is nil or a warnings.List holding only *Warning values;
// malformed lines never abort the scan. src is not modified.
func Tokenize(src []byte, syn Syntax) (*Tokens, error) {
	t := &tokenizer{
		syn:    syn,
		out:    make([]byte, 0, len(src)),
		counts: make([]int, 1, initialSectionCapacity),
		line:   1,
		warn:   warnings.Collector{IsFatal: isFatal},
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case syn.SectionSeparator, syn.KeyValueSeparator:
			// Reserved bytes never reach the canonical buffer.
			continue
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				continue
			}
			c = '\n'
		}
		t.step(c)
	}
	t.finish()

	toks := &Tokens{Buf: t.out, Counts: t.counts}
	return toks, t.warn.Done()
}

type tokenizer struct {
	syn    Syntax
	out    []byte
	counts []int
	line   int

	state  state
	resume state // state to return to after an escape

	quoted    bool
	quoteLine int
	armed     bool // "\ " seen: the next line break continues the token
	skipBlank bool // leading blanks of a continuation line are dropped
	mark      int  // len(out) at the start of the current logical line

	warn warnings.Collector
}

func (t *tokenizer) step(c byte) {
	if t.skipBlank {
		if c == ' ' || c == '\t' {
			return
		}
		t.skipBlank = false
	}

	switch t.state {
	case stateLineStart:
		t.lineStart(c)
	case stateComment:
		if c == '\n' {
			t.endLine()
		}
	case stateEscape:
		t.escape(c)
	case stateKey:
		t.key(c)
	case stateValue:
		t.value(c)
	case stateSection:
		t.section(c)
	case stateSectionTail:
		t.sectionTail(c)
	}
}

func (t *tokenizer) lineStart(c byte) {
	switch {
	case c == ' ' || c == '\t':
	case c == '\n':
		t.line++
	case t.isComment(c):
		t.state = stateComment
	case c == SectionOpen:
		t.mark = len(t.out)
		t.out = append(t.out, t.syn.SectionSeparator)
		t.state = stateSection
	default:
		t.mark = len(t.out)
		t.state = stateKey
		t.key(c)
	}
}

func (t *tokenizer) key(c byte) {
	switch c {
	case Escape:
		t.enterEscape()
	case Quote:
		t.toggleQuote()
	case ' ', '\t':
		if t.quoted {
			t.out = append(t.out, c)
		}
	case Assign:
		if t.quoted {
			t.out = append(t.out, c)
			return
		}
		t.out = append(t.out, t.syn.KeyValueSeparator)
		t.counts[len(t.counts)-1]++
		t.state = stateValue
	case '\n':
		if t.continued() {
			return
		}
		t.closeQuote()
		t.warnf(ReasonMissingAssign)
		t.out = t.out[:t.mark]
		t.endLine()
	default:
		t.out = append(t.out, c)
	}
}

func (t *tokenizer) value(c byte) {
	switch c {
	case Escape:
		t.enterEscape()
	case Quote:
		t.toggleQuote()
	case ' ', '\t':
		if t.quoted {
			t.out = append(t.out, c)
		}
	case '\n':
		if t.continued() {
			return
		}
		t.closeQuote()
		t.out = append(t.out, t.syn.KeyValueSeparator)
		t.endLine()
	default:
		t.out = append(t.out, c)
	}
}

func (t *tokenizer) section(c byte) {
	switch c {
	case Escape:
		t.enterEscape()
	case Quote:
		t.toggleQuote()
	case ' ', '\t':
		if t.quoted {
			t.out = append(t.out, c)
		}
	case SectionClose:
		if t.quoted {
			t.out = append(t.out, c)
			return
		}
		t.out = append(t.out, t.syn.SectionSeparator)
		t.counts = append(t.counts, 0)
		t.state = stateSectionTail
	case '\n':
		if t.continued() {
			return
		}
		t.closeQuote()
		t.warnf(ReasonUnclosedSection)
		t.out = t.out[:t.mark]
		t.endLine()
	default:
		t.out = append(t.out, c)
	}
}

func (t *tokenizer) sectionTail(c byte) {
	switch {
	case c == '\n':
		t.endLine()
	case c == ' ' || c == '\t':
	case t.isComment(c):
		t.state = stateComment
	default:
		t.warnf(ReasonTrailingText)
		t.state = stateComment
	}
}

func (t *tokenizer) enterEscape() {
	t.resume = t.state
	t.state = stateEscape
}

func (t *tokenizer) escape(c byte) {
	t.state = t.resume
	switch c {
	case 'n':
		t.out = append(t.out, '\n')
	case '\n':
		t.line++
		t.skipBlank = true
	case ' ':
		t.armed = true
	default:
		t.out = append(t.out, c)
	}
}

// continued consumes a line break armed by "\ " and reports whether it did.
func (t *tokenizer) continued() bool {
	if !t.armed {
		return false
	}
	t.armed = false
	t.line++
	t.skipBlank = true
	return true
}

func (t *tokenizer) toggleQuote() {
	t.quoted = !t.quoted
	if t.quoted {
		t.quoteLine = t.line
	}
}

func (t *tokenizer) closeQuote() {
	if t.quoted {
		t.warnAt(t.quoteLine, ReasonUnclosedQuote)
		t.quoted = false
	}
}

func (t *tokenizer) endLine() {
	t.line++
	t.armed = false
	t.state = stateLineStart
}

// finish treats end of input as a final line break.
func (t *tokenizer) finish() {
	if t.state == stateEscape {
		t.state = t.resume
	}
	t.armed = false
	t.skipBlank = false
	if t.state != stateLineStart {
		t.step('\n')
	}
}

func (t *tokenizer) isComment(c byte) bool {
	return c == t.syn.CommentChars[0] || c == t.syn.CommentChars[1]
}

func (t *tokenizer) warnf(reason string) {
	t.warnAt(t.line, reason)
}

func (t *tokenizer) warnAt(line int, reason string) {
	// Collect only fails for fatal errors, and *Warning never is.
	_ = t.warn.Collect(&Warning{Line: line, Reason: reason})
}
