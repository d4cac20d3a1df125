/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

// The zero-byte positional analyzer recognizes UTF-16/UTF-32 encodings
// without a BOM by exploiting the distribution of zero bytes at positions
// mod 2 and mod 4, with surrogate-pair validation keeping it from mistaking
// a stream of stray surrogate halves for valid UTF-16.
//
// This is a direct port of chardet's second (intended — see spec §9 "Open
// questions") UTF1632Prober: the first, dead-code version in the original
// source does not drive implementation here.
const (
	minCharsForDetection = 20
	expectedRatio        = 0.94
)

type zeroBytePositionalProber struct {
	state ProbingState

	position      int
	zerosAtMod    [4]int
	nonzerosAtMod [4]int
	quad          [4]byte

	invalidUTF16BE bool
	invalidUTF16LE bool
	invalidUTF32BE bool
	invalidUTF32LE bool

	firstHalfSurrogatePairDetected16BE bool
	firstHalfSurrogatePairDetected16LE bool

	charsetName string
}

func newZeroBytePositionalProber() *zeroBytePositionalProber {
	return &zeroBytePositionalProber{}
}

func (p *zeroBytePositionalProber) Reset() {
	*p = zeroBytePositionalProber{}
}

func (p *zeroBytePositionalProber) State() ProbingState { return p.state }
func (p *zeroBytePositionalProber) CharsetName() string { return p.charsetName }
func (p *zeroBytePositionalProber) Language() string    { return "" }

func (p *zeroBytePositionalProber) Feed(buf []byte) ProbingState {
	if p.state != Detecting {
		return p.state
	}

	for _, b := range buf {
		mod4 := p.position % 4
		p.quad[mod4] = b
		if b == 0 {
			p.zerosAtMod[mod4]++
		} else {
			p.nonzerosAtMod[mod4]++
		}

		if mod4 == 3 {
			if !p.invalidUTF32BE {
				p.invalidUTF32BE = !validateUTF32(p.quad, false)
			}
			if !p.invalidUTF32LE {
				p.invalidUTF32LE = !validateUTF32(p.quad, true)
			}
		}

		if p.position%2 == 1 {
			// The pair ending at the current position, in stream order.
			loIdx := (p.position - 1) % 4
			hiIdx := p.position % 4
			beLead, beTrail := p.quad[loIdx], p.quad[hiIdx]

			if !p.invalidUTF16BE {
				p.checkUTF16(beLead, beTrail, false)
			}
			if !p.invalidUTF16LE {
				// The reversed pair, for little-endian interpretation.
				p.checkUTF16(beTrail, beLead, true)
			}
		}

		p.position++

		if p.position >= minCharsForDetection && p.checkEncoding() {
			p.state = FoundIt
			return p.state
		}
	}

	return p.state
}

// checkUTF16 validates one 16-bit code unit built from (hi, lo) in that byte
// order, tracking sticky invalidity and surrogate-pair pendency for either
// the BE or LE interpretation (selected by little).
func (p *zeroBytePositionalProber) checkUTF16(hi, lo byte, little bool) {
	v := uint16(hi)<<8 | uint16(lo)
	if !validUTF16Unit(v) {
		if little {
			p.invalidUTF16LE = true
		} else {
			p.invalidUTF16BE = true
		}
		return
	}
	switch {
	case v >= 0xD800 && v <= 0xDBFF:
		if little {
			p.firstHalfSurrogatePairDetected16LE = true
		} else {
			p.firstHalfSurrogatePairDetected16BE = true
		}
	case v >= 0xDC00 && v <= 0xDFFF:
		if little {
			if !p.firstHalfSurrogatePairDetected16LE {
				p.invalidUTF16LE = true
			}
			p.firstHalfSurrogatePairDetected16LE = false
		} else {
			if !p.firstHalfSurrogatePairDetected16BE {
				p.invalidUTF16BE = true
			}
			p.firstHalfSurrogatePairDetected16BE = false
		}
	}
}

// checkEncoding runs the zero-byte ratio test, in the mandated order:
// UTF-32BE, UTF-32LE, UTF-16BE, UTF-16LE. Each ratio is the share of zero
// bytes among the bytes at the positions (mod 4) where that encoding puts
// zero bytes for ASCII-range text: 0,1,2 for UTF-32BE, 1,2,3 for UTF-32LE,
// 0,2 for UTF-16BE and 1,3 for UTF-16LE. The first ratio exceeding
// expectedRatio whose corresponding invalid flag is false wins.
func (p *zeroBytePositionalProber) checkEncoding() bool {
	total := 0
	var n [4]int
	for i := 0; i < 4; i++ {
		n[i] = p.zerosAtMod[i] + p.nonzerosAtMod[i]
		total += n[i]
	}
	if total < minCharsForDetection {
		return false
	}
	z := p.zerosAtMod

	utf32be := float64(z[0]+z[1]+z[2]) / float64(n[0]+n[1]+n[2])
	utf32le := float64(z[1]+z[2]+z[3]) / float64(n[1]+n[2]+n[3])
	utf16be := float64(z[0]+z[2]) / float64(n[0]+n[2])
	utf16le := float64(z[1]+z[3]) / float64(n[1]+n[3])

	switch {
	case utf32be > expectedRatio && !p.invalidUTF32BE:
		p.charsetName = "UTF-32BE"
		return true
	case utf32le > expectedRatio && !p.invalidUTF32LE:
		p.charsetName = "UTF-32LE"
		return true
	case utf16be > expectedRatio && !p.invalidUTF16BE:
		p.charsetName = "UTF-16BE"
		return true
	case utf16le > expectedRatio && !p.invalidUTF16LE:
		p.charsetName = "UTF-16LE"
		return true
	}
	return false
}

func (p *zeroBytePositionalProber) GetConfidence() float64 {
	switch p.state {
	case FoundIt:
		return 0.99
	case NotMe:
		return 0.01
	default:
		return 0.5
	}
}

// validateUTF32 checks whether quad, interpreted as a 32-bit big-endian
// integer when le is false (reversed first when le is true), is a valid
// UTF-32 codepoint: 0 <= v <= 0x10FFFF, excluding the surrogate range.
func validateUTF32(quad [4]byte, le bool) bool {
	b0, b1, b2, b3 := quad[0], quad[1], quad[2], quad[3]
	if le {
		b0, b1, b2, b3 = b3, b2, b1, b0
	}
	v := uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
	return v <= 0x10FFFF && !(v >= 0xD800 && v <= 0xDFFF)
}

// validUTF16Unit checks whether v is valid as either half of a UTF-16
// surrogate pair or as a regular BMP code unit outside the surrogate range.
func validUTF16Unit(v uint16) bool {
	if v >= 0xD800 && v <= 0xDBFF {
		return true // high surrogate
	}
	if v >= 0xDC00 && v <= 0xDFFF {
		return true // low surrogate
	}
	return v < 0xD800 || (v >= 0xE000 && v <= 0xFFFF)
}
