package cfg

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type triple struct {
	Section, Key, Value string
}

// snapshot lists sections and entries in order.
func snapshot(c *Config) ([]string, []triple) {
	var names []string
	var entries []triple
	for _, sec := range c.Sections() {
		names = append(names, sec.Name())
		for _, e := range sec.Entries() {
			entries = append(entries, triple{sec.Name(), e.Key(), e.Value()})
		}
	}
	return names, entries
}

func mustParse(t *testing.T, text string, opts *Options) *Config {
	t.Helper()
	c, err := Parse([]byte(text), opts)
	require.NoError(t, err)
	return c
}

func TestParse_Example(t *testing.T) {
	c := mustParse(t, "key1=value1\n[s]\nkey2=value2\n", nil)

	v, err := c.Get("", "key1")
	require.NoError(t, err)
	require.Equal(t, "value1", v)

	v, err = c.Get("s", "key2")
	require.NoError(t, err)
	require.Equal(t, "value2", v)

	_, err = c.Get("", "key2")
	require.ErrorIs(t, err, ErrEntryNotFound)

	require.Equal(t, 1, c.Root().Len())
	sec, err := c.Section("s")
	require.NoError(t, err)
	require.Equal(t, 1, sec.Len())
	require.Empty(t, c.Warnings())
}

func TestParse_EveryPairIsRetrievable(t *testing.T) {
	text := `
; settings
name = demo
"greeting" = "hello world"

[server]
host = localhost
port = 8080
path = C:\\srv

[paths]
"log dir" = "/var/log/demo app"
empty =
`
	want := []triple{
		{"", "name", "demo"},
		{"", "greeting", "hello world"},
		{"server", "host", "localhost"},
		{"server", "port", "8080"},
		{"server", "path", `C:\srv`},
		{"paths", "log dir", "/var/log/demo app"},
		{"paths", "empty", ""},
	}

	c := mustParse(t, text, nil)
	for _, tr := range want {
		v, err := c.Get(tr.Section, tr.Key)
		require.NoError(t, err, "%s/%s", tr.Section, tr.Key)
		assert.Equal(t, tr.Value, v, "%s/%s", tr.Section, tr.Key)
	}
	_, entries := snapshot(c)
	require.Empty(t, cmp.Diff(want, entries))
}

func TestParse_UnclosedQuote(t *testing.T) {
	c := mustParse(t, "key1=\"abc\nbad line\nkey2=x\n", nil)

	v, err := c.Get("", "key1")
	require.NoError(t, err)
	require.Equal(t, "abc", v)
	require.Equal(t, 2, c.NumEntries())

	ws := c.Warnings()
	require.Len(t, ws, 2)
	require.Equal(t, Warning{Line: 1, Reason: ReasonUnclosedQuote}, *ws[0])
	require.Equal(t, Warning{Line: 2, Reason: ReasonMissingAssign}, *ws[1])
}

func TestParse_MalformedYieldsNothing(t *testing.T) {
	c := mustParse(t, "no equals here\n[unclosed\n", nil)
	require.Equal(t, 0, c.NumEntries())
	require.Equal(t, 1, c.NumSections())
	require.Len(t, c.Warnings(), 2)
}

func TestParse_ReplacesContents(t *testing.T) {
	c := mustParse(t, "[old]\nk=v\n", nil)
	e, err := c.Entry("old", "k")
	require.NoError(t, err)

	require.NoError(t, c.ParseString("[new]\nk=w\n"))
	require.False(t, c.HasSection("old"))
	require.Equal(t, 0, c.CacheLen())
	require.ErrorIs(t, c.SetEntryValue(e, "x"), ErrEntryNotFound)
}

func TestRoundTrip(t *testing.T) {
	text := "a=1\n" +
		"[s]\n" +
		"\"k k\"=\" v=[x] \"\n" +
		"q=say \\\"hi\\\"\n" +
		"nl=line1\\nline2\n" +
		"[empty]\n" +
		"[\"sp ace\"]\n" +
		"z=\n"

	first := mustParse(t, text, nil)
	out, err := first.Bytes()
	require.NoError(t, err)
	second := mustParse(t, string(out), nil)
	require.Empty(t, second.Warnings())

	n1, e1 := snapshot(first)
	n2, e2 := snapshot(second)
	require.Empty(t, cmp.Diff(n1, n2))
	require.Empty(t, cmp.Diff(e1, e2))
	require.Equal(t, []string{"", "s", "empty", "sp ace"}, n1)

	// Regenerating is stable.
	again, err := second.Bytes()
	require.NoError(t, err)
	require.Equal(t, string(out), string(again))
}

func TestRoundTrip_Backslash(t *testing.T) {
	build := func(escape bool) *Config {
		opts := DefaultOptions()
		opts.EscapeBackslash = escape
		c, err := New(&opts)
		require.NoError(t, err)
		require.NoError(t, c.Set("", "path", `C:\dir`, true))
		return c
	}

	// Without escaping the reader consumes the backslash.
	out, err := build(false).Bytes()
	require.NoError(t, err)
	v, err := mustParse(t, string(out), nil).Get("", "path")
	require.NoError(t, err)
	require.Equal(t, "C:dir", v)

	out, err = build(true).Bytes()
	require.NoError(t, err)
	require.Equal(t, "\"path\"=\"C:\\\\dir\"\n", string(out))
	v, err = mustParse(t, string(out), nil).Get("", "path")
	require.NoError(t, err)
	require.Equal(t, `C:\dir`, v)
}

func TestBytes_Layout(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, c.Set("s", "k", "v", true))
	require.NoError(t, c.Set("", "r", "1", true))

	out, err := c.Bytes()
	require.NoError(t, err)
	require.Equal(t, "\"r\"=\"1\"\n\n[s]\n\"k\"=\"v\"\n", string(out))
	require.Equal(t, string(out), c.String())

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(out)), n)
	require.Equal(t, out, buf.Bytes())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTo_Error(t *testing.T) {
	c := mustParse(t, "k=v\n", nil)
	_, err := c.WriteTo(failWriter{})
	require.ErrorIs(t, err, ErrFileWrite)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ini")
	require.NoError(t, os.WriteFile(path, []byte("[db]\nuser = admin\n"), 0o644))

	c, err := ParseFile(path, nil)
	require.NoError(t, err)
	v, err := c.Get("db", "user")
	require.NoError(t, err)
	require.Equal(t, "admin", v)

	require.NoError(t, c.Set("db", "pass", "secret", true))
	out := filepath.Join(dir, "out.ini")
	require.NoError(t, c.WriteFile(out))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := c.Bytes()
	require.NoError(t, err)
	require.Equal(t, want, written)

	_, err = ParseFile(filepath.Join(dir, "missing.ini"), nil)
	require.ErrorIs(t, err, ErrFileOpen)

	err = c.WriteFile(filepath.Join(dir, "no", "such", "dir.ini"))
	require.ErrorIs(t, err, ErrFileWrite)
}

func TestParseReader(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, c.ParseReader(strings.NewReader("[a]\nb=c\n")))
	v, err := c.Get("a", "b")
	require.NoError(t, err)
	require.Equal(t, "c", v)
}

func TestMaxBufferSize(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxBufferSize = 16
	c, err := New(&opts)
	require.NoError(t, err)

	require.NoError(t, c.ParseString("k=v\n"))
	err = c.ParseString("key=" + strings.Repeat("x", 32) + "\n")
	require.ErrorIs(t, err, ErrAllocation)
	v, err := c.Get("", "k")
	require.NoError(t, err, "a rejected parse keeps the previous contents")
	require.Equal(t, "v", v)

	err = c.ParseReader(strings.NewReader(strings.Repeat("y", 64)))
	require.ErrorIs(t, err, ErrAllocation)

	path := filepath.Join(t.TempDir(), "big.ini")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("z", 64)), 0o644))
	require.ErrorIs(t, c.ParseFile(path), ErrAllocation)

	require.NoError(t, c.Set("", "long", strings.Repeat("w", 32), true))
	_, err = c.Bytes()
	require.ErrorIs(t, err, ErrAllocation)
	require.Empty(t, c.String())
}

func TestInputEncoding(t *testing.T) {
	opts := DefaultOptions()
	opts.InputEncoding = EncodingWindows1252
	c := mustParse(t, string([]byte{'k', '=', 0xE9, '\n'}), &opts)
	v, err := c.Get("", "k")
	require.NoError(t, err)
	require.Equal(t, "é", v)

	// A UTF-16LE byte order mark overrides the option.
	c = mustParse(t, string([]byte{0xFF, 0xFE, 'a', 0, '=', 0, 'b', 0}), &opts)
	v, err = c.Get("", "a")
	require.NoError(t, err)
	require.Equal(t, "b", v)
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := New(&opts)
	require.NoError(t, err)

	require.NoError(t, c.ParseString("bad\n"))
	require.NotContains(t, buf.String(), "parse warning")

	c.SetVerbose(1)
	require.NoError(t, c.ParseString("bad\n"))
	require.Contains(t, buf.String(), "parse warning")
	require.NotContains(t, buf.String(), "canonical buffer")

	c.SetVerbose(2)
	require.NoError(t, c.ParseString("k=v\n"))
	require.Contains(t, buf.String(), "canonical buffer")
	require.Equal(t, 2, c.Options().Verbose)
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	tests := []struct {
		name string
		mut  func(*Options)
	}{
		{"negative cache", func(o *Options) { o.CacheSize = -1 }},
		{"negative buffer", func(o *Options) { o.MaxBufferSize = -1 }},
		{"unknown hash", func(o *Options) { o.Hash = HashAlgorithm(9) }},
		{"unknown identity", func(o *Options) { o.Identity = Identity(5) }},
		{"equal separators", func(o *Options) { o.KeyValueSeparator = o.SectionSeparator }},
		{"printable separator", func(o *Options) { o.SectionSeparator = 'x' }},
		{"structural comment", func(o *Options) { o.CommentChars[0] = '[' }},
		{"unknown encoding", func(o *Options) { o.InputEncoding = "EBCDIC" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mut(&o)
			require.ErrorIs(t, o.Validate(), ErrInvalidOption)
			_, err := New(&o)
			require.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestCustomSyntax(t *testing.T) {
	opts := DefaultOptions()
	opts.CommentChars = [2]byte{'%', '%'}
	opts.SectionSeparator = 0x1E
	opts.KeyValueSeparator = 0x1F

	c := mustParse(t, "% note\n#k=v\n[s]\nx=y\n", &opts)
	v, err := c.Get("", "#k")
	require.NoError(t, err)
	require.Equal(t, "v", v)
	v, err = c.Get("s", "x")
	require.NoError(t, err)
	require.Equal(t, "y", v)
}

func TestErrorKinds(t *testing.T) {
	err := wrap(KindFileOpen, "open x", os.ErrNotExist)
	require.ErrorIs(t, err, ErrFileOpen)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, ErrFileRead)
	require.Equal(t, "cfg: open x: file does not exist", err.Error())

	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, KindFileOpen, e.Kind)
	require.Equal(t, "file open failure", e.Kind.String())
	require.Equal(t, "unknown error", ErrKind(99).String())
}
