/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// surrogatePairUnits splits an astral codepoint into its UTF-16 high/low
// surrogate code units.
func surrogatePairUnits(cp rune) (hi, lo uint16) {
	r := cp - 0x10000
	return uint16(0xD800 + (r >> 10)), uint16(0xDC00 + (r & 0x3FF))
}

func Test_zeroBytePositionalProber_detectsUTF16BE(t *testing.T) {
	buf := make([]byte, 0, 40)
	for c := byte('A'); len(buf) < 40; c++ {
		buf = append(buf, 0x00, c)
	}
	p := newZeroBytePositionalProber()
	state := p.Feed(buf)
	assert.Equal(t, FoundIt, state)
	assert.Equal(t, "UTF-16BE", p.CharsetName())
	assert.Equal(t, 0.99, p.GetConfidence())
}

func Test_zeroBytePositionalProber_detectsUTF16LE(t *testing.T) {
	buf := make([]byte, 0, 40)
	for c := byte('A'); len(buf) < 40; c++ {
		buf = append(buf, c, 0x00)
	}
	p := newZeroBytePositionalProber()
	state := p.Feed(buf)
	assert.Equal(t, FoundIt, state)
	assert.Equal(t, "UTF-16LE", p.CharsetName())
	assert.Equal(t, 0.99, p.GetConfidence())
}

func Test_zeroBytePositionalProber_detectsUTF32LE(t *testing.T) {
	var buf []byte
	for c := byte('A'); len(buf) < 40; c++ {
		buf = append(buf, c, 0x00, 0x00, 0x00)
	}
	p := newZeroBytePositionalProber()
	state := p.Feed(buf)
	assert.Equal(t, FoundIt, state)
	assert.Equal(t, "UTF-32LE", p.CharsetName())
}

func Test_zeroBytePositionalProber_orphanLowSurrogateInvalidatesUTF16BE(t *testing.T) {
	p := newZeroBytePositionalProber()
	// A lone low surrogate (0xDC00) with no preceding high surrogate, fed as
	// a big-endian pair, must flip invalidUTF16BE and stay flipped.
	p.checkUTF16(0xDC, 0x00, false)
	assert.True(t, p.invalidUTF16BE)
}

func Test_zeroBytePositionalProber_validSurrogatePairDoesNotInvalidate(t *testing.T) {
	p := newZeroBytePositionalProber()
	p.checkUTF16(0xD8, 0x00, false) // high surrogate
	assert.False(t, p.invalidUTF16BE)
	p.checkUTF16(0xDC, 0x00, false) // matching low surrogate
	assert.False(t, p.invalidUTF16BE)
}

// Property 6 (§8): the UTF-16 validity state is invariant under appending a
// valid surrogate pair, and flips to invalid on the first orphan low
// surrogate, for either byte order.
func Test_zeroBytePositionalProber_surrogateCorrectnessProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		little := rapid.Bool().Draw(t, "little")
		p := newZeroBytePositionalProber()

		// checkUTF16(hi, lo, little) treats v = hi<<8|lo as the intended code
		// unit value; little only selects which sticky-flag pair is updated.
		validPairs := rapid.IntRange(0, 10).Draw(t, "validPairs")
		for i := 0; i < validPairs; i++ {
			cp := rune(rapid.IntRange(0x10000, 0x10FFFF).Draw(t, "cp"))
			hiUnit, loUnit := surrogatePairUnits(cp)
			p.checkUTF16(byte(hiUnit>>8), byte(hiUnit&0xFF), little)
			p.checkUTF16(byte(loUnit>>8), byte(loUnit&0xFF), little)
		}

		invalidBefore := p.invalidUTF16BE
		if little {
			invalidBefore = p.invalidUTF16LE
		}
		assert.False(t, invalidBefore, "a run of only valid surrogate pairs must not invalidate")

		// Now append one orphan low surrogate (0xDC00) with no pending high half.
		p.checkUTF16(0xDC, 0x00, little)
		if little {
			assert.True(t, p.invalidUTF16LE)
		} else {
			assert.True(t, p.invalidUTF16BE)
		}
	})
}

func Test_zeroBytePositionalProber_resetClearsStickyFlags(t *testing.T) {
	p := newZeroBytePositionalProber()
	p.checkUTF16(0xDC, 0x00, false)
	assert.True(t, p.invalidUTF16BE)
	p.Reset()
	assert.False(t, p.invalidUTF16BE)
	assert.Equal(t, Detecting, p.state)
}

func Test_validateUTF32_rejectsSurrogateRange(t *testing.T) {
	assert.False(t, validateUTF32([4]byte{0x00, 0x00, 0xD8, 0x00}, false))
	assert.True(t, validateUTF32([4]byte{0x00, 0x00, 0x00, 0x41}, false))
}
