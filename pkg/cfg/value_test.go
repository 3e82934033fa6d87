package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	c := mustParse(t, `
[n]
dec = 42
neg = -7
hex = 0x1F
pi = 3.25
yes = Yes
off = off
one = 1
word = maybe
blob = DEADbeef
`, nil)

	i, err := c.GetInt("n", "dec")
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)
	i, err = c.GetInt("n", "neg")
	require.NoError(t, err)
	assert.Equal(t, int64(-7), i)
	i, err = c.GetInt("n", "hex")
	require.NoError(t, err)
	assert.Equal(t, int64(31), i)

	f, err := c.GetFloat("n", "pi")
	require.NoError(t, err)
	assert.InDelta(t, 3.25, f, 1e-9)

	for key, want := range map[string]bool{"yes": true, "off": false, "one": true} {
		b, err := c.GetBool("n", key)
		require.NoError(t, err, key)
		assert.Equal(t, want, b, key)
	}

	_, err = c.GetBool("n", "word")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = c.GetInt("n", "word")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = c.GetFloat("n", "word")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = c.GetInt("n", "absent")
	require.ErrorIs(t, err, ErrEntryNotFound)

	blob, err := c.GetHex("n", "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, blob)
}

func TestTypedSetters(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, c.SetInt("t", "i", -12, true))
	require.NoError(t, c.SetFloat("t", "f", 0.1, true))
	require.NoError(t, c.SetBool("t", "b", true, true))
	require.NoError(t, c.SetHex("t", "h", []byte{0x01, 0xAB}, true))

	for key, want := range map[string]string{"i": "-12", "f": "0.1", "b": "true", "h": "01AB"} {
		v, err := c.Get("t", key)
		require.NoError(t, err, key)
		assert.Equal(t, want, v, key)
	}

	require.ErrorIs(t, c.SetInt("t", "missing", 1, false), ErrEntryNotFound)
}

func TestHexHelpers(t *testing.T) {
	assert.Equal(t, "00FF10", HexEncode([]byte{0x00, 0xFF, 0x10}))
	assert.Equal(t, "", HexEncode(nil))

	b, err := HexDecode("00ff10")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x10}, b)

	_, err = HexDecode("ABC")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = HexDecode("ZZ")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "yes", "On", "1", " on "} {
		b, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.True(t, b, s)
	}
	for _, s := range []string{"false", "No", "OFF", "0"} {
		b, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.False(t, b, s)
	}
	_, err := ParseBool("")
	require.ErrorIs(t, err, ErrInvalidValue)
}
