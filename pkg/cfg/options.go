package cfg

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuapare/cfgkit/internal/cfgtext"
	"github.com/joshuapare/cfgkit/internal/namehash"
	"github.com/joshuapare/cfgkit/internal/store"
)

// HashAlgorithm selects the 32-bit name hash.
type HashAlgorithm = namehash.Algorithm

// Hash algorithms. All of them hash "" to the same seed.
const (
	// HashFNV1a is 32-bit FNV-1a.
	HashFNV1a = namehash.FNV1a

	// HashLegacy is the square-and-xor hash kept for compatibility with
	// existing hash values. It distributes poorly.
	HashLegacy = namehash.Legacy

	// HashXXH folds a 64-bit xxHash to 32 bits.
	HashXXH = namehash.XXH
)

// ParseHashAlgorithm maps "fnv1a", "legacy" or "xxh" to its algorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	alg, err := namehash.ParseAlgorithm(name)
	if err != nil {
		return alg, wrap(KindInvalidOption, "hash algorithm", err)
	}
	return alg, nil
}

// Identity selects how section and key names are matched.
type Identity = store.Identity

const (
	// IdentityName uses the hash as a pre-filter and then compares strings.
	IdentityName = store.IdentityName

	// IdentityHash matches on the hash alone; colliding names alias.
	IdentityHash = store.IdentityHash
)

// Input encodings accepted by Options.InputEncoding.
const (
	EncodingUTF8        = cfgtext.EncodingUTF8
	EncodingUTF16LE     = cfgtext.EncodingUTF16LE
	EncodingUTF16BE     = cfgtext.EncodingUTF16BE
	EncodingWindows1252 = cfgtext.EncodingWindows1252
)

const (
	// DefaultCacheSize is the number of entries kept in the recency cache.
	DefaultCacheSize = 32

	// DefaultMaxBufferSize bounds input and output buffers (64 MiB).
	DefaultMaxBufferSize = 64 << 20
)

// Options controls parsing, lookup, and serialization. Start from
// DefaultOptions and override fields.
type Options struct {
	// CacheSize is the recency cache capacity. 0 disables the cache.
	CacheSize int

	// CommentChars start full-line comments. Default: ';' and '#'.
	CommentChars [2]byte

	// SectionSeparator and KeyValueSeparator are the reserved control bytes
	// used internally between tokens. Input bytes equal to either are dropped.
	// Defaults: 0x01 and 0x02.
	SectionSeparator  byte
	KeyValueSeparator byte

	// Hash is the name hash algorithm. Default: HashFNV1a.
	Hash HashAlgorithm

	// Identity is the name matching mode. Default: IdentityName.
	Identity Identity

	// EscapeBackslash writes a literal '\' as "\\" so values containing
	// backslashes round-trip. Off by default to match the existing format.
	EscapeBackslash bool

	// InputEncoding names the encoding of input without a byte order mark:
	// "" or "UTF-8", "UTF-16LE", "UTF-16BE", "WINDOWS-1252".
	InputEncoding string

	// MaxBufferSize bounds input files and generated output, in bytes.
	// 0 disables the check.
	MaxBufferSize int

	// Verbose enables diagnostics: 1 logs parse warnings, 2 also logs the
	// canonical buffer.
	Verbose int

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the standard settings.
func DefaultOptions() Options {
	return Options{
		CacheSize:         DefaultCacheSize,
		CommentChars:      [2]byte{cfgtext.DefaultCommentChar1, cfgtext.DefaultCommentChar2},
		SectionSeparator:  cfgtext.DefaultSectionSeparator,
		KeyValueSeparator: cfgtext.DefaultKeyValueSeparator,
		Hash:              HashFNV1a,
		Identity:          IdentityName,
		MaxBufferSize:     DefaultMaxBufferSize,
	}
}

// Validate reports the first invalid setting.
func (o Options) Validate() error {
	if o.CacheSize < 0 {
		return wrap(KindInvalidOption, fmt.Sprintf("cache size %d", o.CacheSize), nil)
	}
	if o.MaxBufferSize < 0 {
		return wrap(KindInvalidOption, fmt.Sprintf("max buffer size %d", o.MaxBufferSize), nil)
	}
	if !o.Hash.Valid() {
		return wrap(KindInvalidOption, "hash algorithm "+o.Hash.String(), nil)
	}
	if o.Identity != IdentityName && o.Identity != IdentityHash {
		return wrap(KindInvalidOption, fmt.Sprintf("identity mode %d", int(o.Identity)), nil)
	}
	if err := o.syntax().Validate(); err != nil {
		return wrap(KindInvalidOption, "reserved bytes", err)
	}
	if !cfgtext.SupportedEncoding(o.InputEncoding) {
		return wrap(KindInvalidOption, "input encoding "+o.InputEncoding, cfgtext.ErrUnsupportedEncoding)
	}
	return nil
}

func (o Options) syntax() cfgtext.Syntax {
	return cfgtext.Syntax{
		CommentChars:      o.CommentChars,
		SectionSeparator:  o.SectionSeparator,
		KeyValueSeparator: o.KeyValueSeparator,
	}
}

func (o Options) separators() store.Separators {
	return store.Separators{Section: o.SectionSeparator, KeyValue: o.KeyValueSeparator}
}

// reserved reports whether s contains a separator byte. Such text cannot
// survive a write followed by a parse.
func (o Options) reserved(s string) bool {
	return strings.IndexByte(s, o.SectionSeparator) >= 0 ||
		strings.IndexByte(s, o.KeyValueSeparator) >= 0
}

func (o Options) overLimit(n int) bool {
	return o.MaxBufferSize > 0 && n > o.MaxBufferSize
}
