/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

import (
	"errors"

	"chardet/pkg/logger"
)

// minimumThreshold is the confidence a prober must clear at close() for the
// coordinator to trust it over the "undecidable"/"windows-1252 fallback"
// paths (§4.1).
const minimumThreshold = 0.20

// BOM signatures, byte-exact, checked in the order mandated by §6: the
// 4-byte UTF-32 BOMs MUST be checked before the 2-byte UTF-16 BOMs, since
// the UTF-32LE BOM is a byte-prefix of no UTF-16 BOM but its first two bytes
// equal the UTF-16LE BOM.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detector is the coordinator that fuses several independent statistical
// sub-probers into a single Verdict. It is a single-threaded, synchronous
// state machine: a Detector instance is not safe for concurrent Feed/Close
// calls, but distinct instances share no mutable state and may be used from
// different goroutines concurrently without synchronization.
type Detector struct {
	langFilter LanguageFilter

	result Verdict
	done   bool
	gotData bool

	inputState InputState
	hasWinBytes bool

	escProber   *escCharSetProber
	positional  *zeroBytePositionalProber
	mbcsGroup   *mbcsGroupProber
	sbcsGroup   *sbcsGroupProber
	latin1      *latin1Prober
	highByteProbers []Prober // positional, mbcsGroup, sbcsGroup, latin1 — in dispatch order
}

// New constructs a Detector. langFilter selects which HIGH_BYTE multi-byte
// sub-probers are instantiated; pass LangAll when in doubt. New returns an
// error if langFilter contains a bit this package does not know about.
func New(langFilter LanguageFilter) (*Detector, error) {
	if langFilter&^validLanguageFilterBits != 0 {
		return nil, ErrInvalidLanguageFilter
	}
	d := &Detector{langFilter: langFilter}
	d.Reset()
	return d, nil
}

// ErrInvalidLanguageFilter is returned by New when langFilter carries a bit
// outside the closed set in §6.
var ErrInvalidLanguageFilter = errors.New("chardet: invalid language filter")

// Reset returns the Detector and all of its probers to their initial state,
// for reuse across documents.
func (d *Detector) Reset() {
	d.result = Verdict{}
	d.done = false
	d.gotData = false
	d.inputState = PureASCII
	d.hasWinBytes = false
	d.escProber = nil
	d.positional = nil
	d.mbcsGroup = nil
	d.sbcsGroup = nil
	d.latin1 = nil
	d.highByteProbers = nil
}

// Result is the current best Verdict, observable at any time — even before
// Close.
func (d *Detector) Result() Verdict { return d.result }

// Done reports whether the Detector has latched a final Verdict.
func (d *Detector) Done() bool { return d.done }

// Feed advances the Detector with a chunk of the document. It is a no-op
// once Done. Feed does not retain buf.
func (d *Detector) Feed(buf []byte) {
	if d.done {
		return
	}
	if len(buf) == 0 {
		return
	}

	firstChunk := !d.gotData
	d.gotData = true

	if firstChunk && d.checkBOM(buf) {
		return
	}

	for _, b := range buf {
		switch d.inputState {
		case PureASCII:
			if b > 0x7F {
				if b > 0xC0 {
					d.inputState = HighByte
				} else {
					d.inputState = EscASCII
				}
			}
		case EscASCII:
			if b > 0x7F {
				d.inputState = HighByte
			}
		case HighByte:
			if b >= 0x80 && b <= 0x9F {
				d.hasWinBytes = true
			}
		}
	}

	switch d.inputState {
	case EscASCII:
		d.feedEsc(buf)
	case HighByte:
		d.feedHighByte(buf)
	}
}

// checkBOM matches buf's prefix against the BOM table (§6), in the mandated
// order. On a match it latches a 1.0-confidence Verdict and returns true.
func (d *Detector) checkBOM(buf []byte) bool {
	switch {
	case hasPrefix(buf, bomUTF8):
		d.latch(Verdict{Encoding: "UTF-8-SIG", Confidence: 1.0, Language: ""})
	case hasPrefix(buf, bomUTF32LE):
		d.latch(Verdict{Encoding: "UTF-32LE", Confidence: 1.0, Language: ""})
	case hasPrefix(buf, bomUTF32BE):
		d.latch(Verdict{Encoding: "UTF-32BE", Confidence: 1.0, Language: ""})
	case hasPrefix(buf, bomUTF16LE):
		d.latch(Verdict{Encoding: "UTF-16LE", Confidence: 1.0, Language: ""})
	case hasPrefix(buf, bomUTF16BE):
		d.latch(Verdict{Encoding: "UTF-16BE", Confidence: 1.0, Language: ""})
	default:
		return false
	}
	return true
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if buf[i] != b {
			return false
		}
	}
	return true
}

func (d *Detector) latch(v Verdict) {
	d.result = v
	d.done = true
}

func (d *Detector) feedEsc(buf []byte) {
	if d.escProber == nil {
		d.escProber = newEscCharSetProber()
	}
	if d.escProber.Feed(buf) == FoundIt {
		d.latch(Verdict{
			Encoding:   d.escProber.CharsetName(),
			Confidence: d.escProber.GetConfidence(),
			Language:   d.escProber.Language(),
		})
	}
}

func (d *Detector) feedHighByte(buf []byte) {
	if d.positional == nil {
		d.positional = newZeroBytePositionalProber()
		d.mbcsGroup = newMBCSGroupProber(d.langFilter)
		d.sbcsGroup = newSBCSGroupProber(d.langFilter)
		d.latin1 = newLatin1Prober()
		d.highByteProbers = []Prober{d.positional, d.mbcsGroup, d.sbcsGroup, d.latin1}
	}
	for _, p := range d.highByteProbers {
		if p.Feed(buf) == FoundIt {
			d.latch(Verdict{
				Encoding:   p.CharsetName(),
				Confidence: p.GetConfidence(),
				Language:   p.Language(),
			})
			return
		}
	}
}

// Close stops analyzing the current document and produces a final Verdict
// (§4.1 step 6 / §7's error taxonomy). Repeated calls return the same
// Verdict without mutating state.
func (d *Detector) Close() Verdict {
	if d.done {
		return d.result
	}
	if !d.gotData {
		logger.Log().Warn("no data received")
		d.done = true
		return d.result
	}

	switch d.inputState {
	case PureASCII:
		d.result = Verdict{Encoding: "ascii", Confidence: 1.0, Language: ""}

	case HighByte:
		if best, ok := d.bestHighByteProber(); ok {
			d.result = Verdict{
				Encoding:   rewriteISOToWindows(best.CharsetName(), d.hasWinBytes),
				Confidence: best.GetConfidence(),
				Language:   best.Language(),
			}
		} else if d.hasWinBytes {
			d.result = Verdict{Encoding: "windows-1252", Confidence: 0.90, Language: ""}
		}

	case EscASCII:
		// No ESC prober ever reached FOUND_IT; leave the null verdict.
	}

	d.done = true
	return d.result
}

// bestHighByteProber selects the HIGH_BYTE prober with the greatest
// get_confidence(), provided it exceeds minimumThreshold (§4.1 step 6).
func (d *Detector) bestHighByteProber() (Prober, bool) {
	if len(d.highByteProbers) == 0 {
		return nil, false
	}
	var best Prober
	bestConf := -1.0
	for _, p := range d.highByteProbers {
		if c := p.GetConfidence(); c > bestConf {
			bestConf = c
			best = p
		}
	}
	if best == nil || bestConf <= minimumThreshold {
		return nil, false
	}
	return best, true
}

// rewriteISOToWindows optionally rewrites an ISO-8859-* label to its Windows
// equivalent when Windows-range bytes were observed (§4.1 "ISO→Windows
// rewrite"). This is a presenter detail, not required for correctness.
func rewriteISOToWindows(name string, hasWinBytes bool) string {
	if !hasWinBytes {
		return name
	}
	if win, ok := isoToWindows[name]; ok {
		return win
	}
	return name
}

// Detect is a convenience free function equivalent to
// New(LangAll); Feed(data); Close().
func Detect(data []byte) (Verdict, error) {
	d, err := New(LangAll)
	if err != nil {
		return Verdict{}, err
	}
	d.Feed(data)
	return d.Close(), nil
}
