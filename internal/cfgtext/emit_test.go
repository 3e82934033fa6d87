package cfgtext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_Layout(t *testing.T) {
	w := NewWriter(0, false)
	w.Entry("a", "1")
	w.Header("s")
	w.Entry("k", "v")
	w.Header("empty")
	w.Header("a b")
	w.Entry("x", "")

	want := "\"a\"=\"1\"\n" +
		"\n[s]\n\"k\"=\"v\"\n" +
		"\n[empty]\n" +
		"\n[\"a b\"]\n\"x\"=\"\"\n"
	require.Equal(t, want, string(w.Bytes()))
	require.Equal(t, len(want), w.Len())
}

func TestWriter_FirstHeaderHasNoLeadingBlank(t *testing.T) {
	w := NewWriter(16, false)
	w.Header("s")
	w.Entry("k", "v")
	require.Equal(t, "[s]\n\"k\"=\"v\"\n", string(w.Bytes()))
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in   string
		bs   bool
		want string
	}{
		{"plain", false, "plain"},
		{"a=b", false, `a\=b`},
		{"[x]", false, `\[x\]`},
		{`say "hi"`, false, `say \"hi\"`},
		{"two\nlines", false, `two\nlines`},
		{`C:\dir`, false, `C:\dir`},
		{`C:\dir`, true, `C:\\dir`},
		{"", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, EscapeString(tt.in, tt.bs))
		})
	}
}

func TestWriter_TokenizesBack(t *testing.T) {
	key := "a b=c"
	value := " x\n\"y\" [z] "
	section := "my sec]"

	w := NewWriter(0, false)
	w.Entry(key, value)
	w.Header(section)
	w.Entry("k", "v")

	toks, err := Tokenize(w.Bytes(), DefaultSyntax())
	require.NoError(t, err)
	require.Equal(t, key+K+value+K+S+section+S+"k"+K+"v"+K, string(toks.Buf))
	require.Equal(t, []int{1, 1}, toks.Counts)
}

func TestWriter_BackslashRoundTrip(t *testing.T) {
	value := `C:\dir\`

	w := NewWriter(0, true)
	w.Entry("path", value)
	toks, err := Tokenize(w.Bytes(), DefaultSyntax())
	require.NoError(t, err)
	require.Equal(t, "path"+K+value+K, string(toks.Buf))

	// Without escaping, the reader consumes the backslashes.
	w = NewWriter(0, false)
	w.Entry("path", `C:\dir`)
	toks, err = Tokenize(w.Bytes(), DefaultSyntax())
	require.NoError(t, err)
	require.Equal(t, "path"+K+"C:dir"+K, string(toks.Buf))
}
