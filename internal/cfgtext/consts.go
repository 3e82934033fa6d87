package cfgtext

const (
	// ============================================================================
	// Structural Characters
	// ============================================================================

	// SectionOpen starts a section header line.
	SectionOpen = '['

	// SectionClose ends a section header.
	SectionClose = ']'

	// Assign separates a key from its value.
	Assign = '='

	// Quote protects blanks and structural characters inside a token.
	Quote = '"'

	// Escape introduces an escape sequence.
	Escape = '\\'

	// ============================================================================
	// Default Syntax
	// ============================================================================

	// DefaultSectionSeparator marks section name boundaries in the canonical buffer.
	DefaultSectionSeparator byte = 0x01

	// DefaultKeyValueSeparator marks key and value boundaries in the canonical buffer.
	DefaultKeyValueSeparator byte = 0x02

	// DefaultCommentChar1 is the primary full-line comment marker.
	DefaultCommentChar1 byte = ';'

	// DefaultCommentChar2 is the secondary full-line comment marker.
	DefaultCommentChar2 byte = '#'

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is the identifier for UTF-8 input.
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian input.
	EncodingUTF16LE = "UTF-16LE"

	// EncodingUTF16BE is the identifier for UTF-16 big-endian input.
	EncodingUTF16BE = "UTF-16BE"

	// EncodingWindows1252 is the identifier for Windows-1252 (Latin-1 superset) input.
	EncodingWindows1252 = "WINDOWS-1252"

	// ============================================================================
	// Buffer Sizes
	// ============================================================================

	// initialSectionCapacity is the starting size of the per-section counter array.
	initialSectionCapacity = 1

	// initialOutputCapacity is the minimum capacity of a serializer buffer.
	initialOutputCapacity = 512
)

var (
	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF16BEBOM is the byte order mark for UTF-16 big-endian.
	UTF16BEBOM = []byte{0xFE, 0xFF}
)
