package cfg

import (
	"encoding/hex"
	"strconv"
	"strings"
)

var boolValues = map[string]bool{
	"true": true, "yes": true, "on": true, "1": true,
	"false": false, "no": false, "off": false, "0": false,
}

// ParseBool accepts true/yes/on/1 and false/no/off/0, ignoring case.
func ParseBool(s string) (bool, error) {
	b, ok := boolValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, wrap(KindInvalidValue, "not a boolean: "+strconv.Quote(s), nil)
	}
	return b, nil
}

// GetInt parses the value of key as an integer. Decimal, 0x hex, 0o octal and
// 0b binary forms are accepted.
func (c *Config) GetInt(section, key string) (int64, error) {
	v, err := c.Get(section, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
	if err != nil {
		return 0, wrap(KindInvalidValue, key, err)
	}
	return n, nil
}

// GetFloat parses the value of key as a float64.
func (c *Config) GetFloat(section, key string) (float64, error) {
	v, err := c.Get(section, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, wrap(KindInvalidValue, key, err)
	}
	return f, nil
}

// GetBool parses the value of key with ParseBool.
func (c *Config) GetBool(section, key string) (bool, error) {
	v, err := c.Get(section, key)
	if err != nil {
		return false, err
	}
	return ParseBool(v)
}

// GetHex decodes a hex-encoded value.
func (c *Config) GetHex(section, key string) ([]byte, error) {
	v, err := c.Get(section, key)
	if err != nil {
		return nil, err
	}
	return HexDecode(v)
}

// SetInt stores n in decimal.
func (c *Config) SetInt(section, key string, n int64, create bool) error {
	return c.Set(section, key, strconv.FormatInt(n, 10), create)
}

// SetFloat stores f in the shortest form that parses back to f.
func (c *Config) SetFloat(section, key string, f float64, create bool) error {
	return c.Set(section, key, strconv.FormatFloat(f, 'g', -1, 64), create)
}

// SetBool stores "true" or "false".
func (c *Config) SetBool(section, key string, b bool, create bool) error {
	return c.Set(section, key, strconv.FormatBool(b), create)
}

// SetHex stores data hex-encoded.
func (c *Config) SetHex(section, key string, data []byte, create bool) error {
	return c.Set(section, key, HexEncode(data), create)
}

// HexEncode returns data as upper-case hex digits, two per byte.
func HexEncode(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// HexDecode reverses HexEncode. Either case is accepted; an odd length or a
// non-hex digit is an error.
func HexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, wrap(KindInvalidValue, "hex", err)
	}
	return b, nil
}
