package cfgtext

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeInput converts raw input to UTF-8 bytes ready for tokenizing.
//
// A byte order mark wins over enc: UTF-8 BOMs are stripped and UTF-16 BOMs
// select the matching decoder. Without a BOM, enc picks the decoder; the empty
// string means UTF-8. UTF-8 input is returned without copying.
func DecodeInput(data []byte, enc string) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, UTF8BOM):
		return data[len(UTF8BOM):], nil
	case bytes.HasPrefix(data, UTF16LEBOM):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
	case bytes.HasPrefix(data, UTF16BEBOM):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data)
	}

	switch NormalizeEncoding(enc) {
	case "", EncodingUTF8:
		return data, nil
	case EncodingUTF16LE:
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
	case EncodingUTF16BE:
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), data)
	case EncodingWindows1252:
		return decodeWith(charmap.Windows1252, data)
	default:
		return nil, ErrUnsupportedEncoding
	}
}

// NormalizeEncoding maps accepted spellings of an encoding name onto the
// package constants. Unknown names are returned upper-cased.
func NormalizeEncoding(enc string) string {
	e := strings.ToUpper(strings.TrimSpace(enc))
	switch e {
	case "UTF8":
		return EncodingUTF8
	case "UTF16LE", "UTF-16":
		return EncodingUTF16LE
	case "UTF16BE":
		return EncodingUTF16BE
	case "CP1252", "WINDOWS1252", "LATIN1", "LATIN-1", "ISO-8859-1":
		return EncodingWindows1252
	}
	return e
}

// SupportedEncoding reports whether DecodeInput accepts enc.
func SupportedEncoding(enc string) bool {
	switch NormalizeEncoding(enc) {
	case "", EncodingUTF8, EncodingUTF16LE, EncodingUTF16BE, EncodingWindows1252:
		return true
	}
	return false
}

func decodeWith(e encoding.Encoding, data []byte) ([]byte, error) {
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}
