package cfg

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/natefinch/atomic"
	"gopkg.in/warnings.v0"

	"github.com/joshuapare/cfgkit/internal/cfgtext"
	"github.com/joshuapare/cfgkit/internal/mmfile"
	"github.com/joshuapare/cfgkit/internal/store"
)

// Entry is a key/value pair. Handles stay valid until the entry is deleted
// or the configuration is cleared or re-parsed.
type Entry = store.Entry

// Section is a named group of entries. The root section has an empty name.
type Section = store.Section

// Config is a parsed configuration. It is not safe for concurrent use.
type Config struct {
	opts     Options
	store    *store.Store
	log      *slog.Logger
	warnings []*Warning
}

// New returns an empty configuration. A nil opts selects DefaultOptions.
func New(opts *Options) (*Config, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	st, err := store.New(o.Hash.Func(), o.Identity, o.CacheSize)
	if err != nil {
		return nil, translate(err)
	}
	c := &Config{opts: o, store: st}
	c.setLogger(o.Logger)
	return c, nil
}

// Parse is a convenience for New followed by Config.Parse.
func Parse(data []byte, opts *Options) (*Config, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err := c.Parse(data); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseFile is a convenience for New followed by Config.ParseFile.
func ParseFile(path string, opts *Options) (*Config, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err := c.ParseFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) setLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.log = l
}

// Options returns a copy of the current settings.
func (c *Config) Options() Options { return c.opts }

// SetVerbose changes the diagnostic level.
func (c *Config) SetVerbose(level int) { c.opts.Verbose = level }

// SetLogger replaces the diagnostic logger. Nil discards output.
func (c *Config) SetLogger(l *slog.Logger) {
	c.opts.Logger = l
	c.setLogger(l)
}

// Warnings returns the diagnostics recorded by the last parse.
func (c *Config) Warnings() []*Warning {
	out := make([]*Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Parse replaces the contents with the sections and entries in data. Lines
// that cannot be parsed are skipped and reported through Warnings; they are
// not errors. On error the previous contents are kept.
func (c *Config) Parse(data []byte) error {
	if c.opts.overLimit(len(data)) {
		return wrap(KindAllocation, "input of "+strconv.Itoa(len(data))+" bytes", ErrAllocation)
	}
	text, err := cfgtext.DecodeInput(data, c.opts.InputEncoding)
	if err != nil {
		return wrap(KindFileRead, "decode input", translate(err))
	}

	toks, err := cfgtext.Tokenize(text, c.opts.syntax())
	if fatal := warnings.FatalOnly(err); fatal != nil {
		return wrap(KindFileRead, "tokenize", fatal)
	}
	if err := c.store.Load(toks.Buf, toks.Counts, c.opts.separators()); err != nil {
		return translate(err)
	}

	c.warnings = c.warnings[:0]
	for _, w := range warnings.WarningsOnly(err) {
		var pw *Warning
		if errors.As(w, &pw) {
			c.warnings = append(c.warnings, pw)
		}
	}
	c.logParse(toks)
	return nil
}

// ParseString parses s.
func (c *Config) ParseString(s string) error { return c.Parse([]byte(s)) }

// ParseReader reads r to the end and parses the result.
func (c *Config) ParseReader(r io.Reader) error {
	if c.opts.MaxBufferSize > 0 {
		r = io.LimitReader(r, int64(c.opts.MaxBufferSize)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return wrap(KindFileRead, "read input", err)
	}
	return c.Parse(data)
}

// ParseFile memory-maps the file at path and parses it.
func (c *Config) ParseFile(path string) error {
	f, err := mmfile.Open(path, int64(c.opts.MaxBufferSize))
	if err != nil {
		switch {
		case errors.Is(err, mmfile.ErrTooLarge):
			return translate(err)
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
			return wrap(KindFileOpen, "open "+path, err)
		default:
			return wrap(KindFileRead, "read "+path, err)
		}
	}
	defer f.Close()

	c.log.Debug("parsing file", "path", path, "bytes", f.Len(), "mapped", f.Mapped())
	return c.Parse(f.Bytes())
}

func (c *Config) logParse(toks *cfgtext.Tokens) {
	if c.opts.Verbose < 1 {
		return
	}
	for _, w := range c.warnings {
		c.log.Warn("parse warning", "line", w.Line, "reason", w.Reason)
	}
	if c.opts.Verbose < 2 {
		return
	}
	c.log.Debug("canonical buffer",
		"sections", toks.Sections(),
		"entries", toks.Entries(),
		"buf", strconv.Quote(string(toks.Buf)),
	)
}

// Bytes serializes the configuration: root entries first, then each section
// under its header, blocks separated by a blank line. Comments and source
// formatting are not preserved.
func (c *Config) Bytes() ([]byte, error) {
	w := cfgtext.NewWriter(c.store.SizeHint(), c.opts.EscapeBackslash)
	c.store.Emit(w)
	if c.opts.overLimit(w.Len()) {
		return nil, wrap(KindAllocation, "output of "+strconv.Itoa(w.Len())+" bytes", ErrAllocation)
	}
	return w.Bytes(), nil
}

// String returns the serialized configuration, or "" if it exceeds the
// buffer limit.
func (c *Config) String() string {
	b, err := c.Bytes()
	if err != nil {
		return ""
	}
	return string(b)
}

// WriteTo writes the serialized configuration to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	b, err := c.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	if err != nil {
		return int64(n), wrap(KindFileWrite, "write output", err)
	}
	return int64(n), nil
}

// WriteFile atomically replaces the file at path with the serialized
// configuration.
func (c *Config) WriteFile(path string) error {
	b, err := c.Bytes()
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(b)); err != nil {
		return wrap(KindFileWrite, "write "+path, err)
	}
	c.log.Debug("wrote file", "path", path, "bytes", len(b))
	return nil
}
