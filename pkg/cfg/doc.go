// Package cfg parses and writes INI-style configuration text and gives
// hash-indexed access to its sections and entries.
//
// # Format
//
//	; full-line comment, '#' works too
//	key = value
//	[section]
//	"padded key" = "  value kept with blanks  "
//	path = C:\\temp
//	multi = first\
//	        second
//
// Entries before the first header belong to the root section. Blanks outside
// quotes are dropped; inside quotes '=', '[' and ']' are literal. The escapes
// are \n for a newline and \X for a literal X, so path above reads C:\temp.
// A backslash at the end of a line joins the next line with its leading
// blanks removed, giving multi the value "firstsecond". A line without '='
// is skipped and reported through Config.Warnings.
//
// # Usage
//
//	c, err := cfg.ParseFile("app.ini", nil)
//	if err != nil {
//	    return err
//	}
//	port, err := c.GetInt("server", "port")
//	if errors.Is(err, cfg.ErrEntryNotFound) {
//	    port = 8080
//	}
//	_ = c.Set("server", "port", "9090", true)
//	err = c.WriteFile("app.ini")
//
// # Lookup
//
// Names are matched by a 32-bit hash (Options.Hash). By default a hash match
// is confirmed with a string comparison; Options.Identity = IdentityHash
// turns that off, making colliding names the same section or key. Recent
// lookups are kept in a bounded cache (Options.CacheSize) that is consulted
// before a section is scanned.
//
// # Writing
//
// Serialization regenerates the text: comments and layout are lost, every key
// and value is quoted, and '[', ']', '=', '"' and newlines are escaped. A
// backslash is written as-is unless Options.EscapeBackslash is set, so values
// containing backslashes only round-trip with that option.
package cfg
