/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"chardet/pkg/chardet/internal/xtextcheck"
)

// mbcsCodec describes how one CJK multi-byte encoding segments a byte stream
// into 2-byte characters: which bytes can start a character, which trail
// bytes a given lead byte accepts, which frequency table backs it, and
// (optionally) an x/text encoding used as a byte-legality oracle and a key
// remap function for tables shared across encodings with different byte
// layouts (EUC-JP borrows the Shift_JIS-keyed jisTable).
type mbcsCodec struct {
	name    string
	lang    string
	isLead  func(b byte) bool
	isTrail func(lead, trail byte) bool
	table   *freqTable
	xtext   encoding.Encoding
	remap   func(lead, trail byte) (byte, byte)
}

func rangeByte(lo, hi byte) func(byte) bool {
	return func(b byte) bool { return b >= lo && b <= hi }
}

func or(fs ...func(byte) bool) func(byte) bool {
	return func(b byte) bool {
		for _, f := range fs {
			if f(b) {
				return true
			}
		}
		return false
	}
}

var big5Codec = mbcsCodec{
	name:   "Big5",
	lang:   "Chinese",
	isLead: rangeByte(0xA1, 0xFE),
	isTrail: func(_, trail byte) bool {
		return (trail >= 0x40 && trail <= 0x7E) || (trail >= 0xA1 && trail <= 0xFE)
	},
	table: big5Table,
	xtext: traditionalchinese.Big5,
}

var gb2312Codec = mbcsCodec{
	name:    "GB2312",
	lang:    "Chinese",
	isLead:  rangeByte(0xA1, 0xFE),
	isTrail: func(_, trail byte) bool { return trail >= 0xA1 && trail <= 0xFE },
	table:   gb2312Table,
	// GB2312 proper has no x/text codec; GBK is the closest EUC-style
	// superset sharing the same lead/trail byte structure.
	xtext: simplifiedchinese.GBK,
}

var eucTWCodec = mbcsCodec{
	name:    "EUC-TW",
	lang:    "Chinese",
	isLead:  rangeByte(0xA1, 0xFE),
	isTrail: func(_, trail byte) bool { return trail >= 0xA1 && trail <= 0xFE },
	table:   eucTWTable,
	// x/text has no EUC-TW codec; segmentation relies on byte ranges alone.
}

var eucKRCodec = mbcsCodec{
	name:    "EUC-KR",
	lang:    "Korean",
	isLead:  rangeByte(0xA1, 0xFE),
	isTrail: func(_, trail byte) bool { return trail >= 0xA1 && trail <= 0xFE },
	table:   eucKRTable,
	xtext:   korean.EUCKR,
}

var johabCodec = mbcsCodec{
	name: "Johab",
	lang: "Korean",
	isLead: or(
		rangeByte(0x84, 0xD3),
		rangeByte(0xD8, 0xDE),
		rangeByte(0xE0, 0xF9),
	),
	isTrail: func(_, trail byte) bool {
		return (trail >= 0x41 && trail <= 0x7E) || (trail >= 0x81 && trail <= 0xFE)
	},
	table: eucKRTable, // Johab reuses the EUC-KR table, per spec §4.3.
	// x/text exposes no Johab codec.
}

var shiftJISCodec = mbcsCodec{
	name:   "Shift_JIS",
	lang:   "Japanese",
	isLead: or(rangeByte(0x81, 0x9F), rangeByte(0xE0, 0xFC)),
	isTrail: func(_, trail byte) bool {
		return (trail >= 0x40 && trail <= 0x7E) || (trail >= 0x80 && trail <= 0xFC)
	},
	table: jisTable,
	xtext: japanese.ShiftJIS,
}

var eucJPCodec = mbcsCodec{
	name:    "EUC-JP",
	lang:    "Japanese",
	isLead:  rangeByte(0xA1, 0xFE),
	isTrail: func(_, trail byte) bool { return trail >= 0xA1 && trail <= 0xFE },
	table:   jisTable,
	xtext:   japanese.EUCJP,
	remap:   eucJPToShiftJISKey,
}

// eucJPToShiftJISKey converts an EUC-JP JIS X 0208 byte pair to the
// equivalent Shift_JIS byte pair, using the standard ku-ten remap formula,
// so EUC-JP characters can be looked up in the Shift_JIS-keyed jisTable they
// share per spec §4.3.
func eucJPToShiftJISKey(lead, trail byte) (byte, byte) {
	c1, c2 := lead&0x7F, trail&0x7F
	if c1%2 == 1 {
		c2 += 0x1F
		if c2 >= 0x7F {
			c2++
		}
	} else {
		c2 += 0x7E
	}
	c1 = (c1-0x21)/2 + 0x81
	if c1 > 0x9F {
		c1 += 0x40
	}
	return c1, c2
}

// mbcsProber is a single CJK multi-byte prober: a minimal lead/trail byte
// segmenter feeding a shared charDistributionAnalysis. It implements Prober.
type mbcsProber struct {
	codec    mbcsCodec
	analysis *charDistributionAnalysis
	state    ProbingState

	inChar      bool
	pendingLead byte

	totalSeq int
	errSeq   int
}

func newMBCSProber(codec mbcsCodec) *mbcsProber {
	return &mbcsProber{codec: codec, analysis: newCharDistributionAnalysis(codec.table)}
}

func (p *mbcsProber) Reset() {
	p.state = Detecting
	p.inChar = false
	p.pendingLead = 0
	p.totalSeq = 0
	p.errSeq = 0
	p.analysis.reset()
}

func (p *mbcsProber) State() ProbingState { return p.state }
func (p *mbcsProber) CharsetName() string { return p.codec.name }
func (p *mbcsProber) Language() string    { return p.codec.lang }

func (p *mbcsProber) Feed(buf []byte) ProbingState {
	if p.state != Detecting {
		return p.state
	}

	for _, b := range buf {
		if !p.inChar {
			switch {
			case b < 0x80:
				// ASCII passes through without affecting state.
			case p.codec.isLead(b):
				p.inChar = true
				p.pendingLead = b
			default:
				p.totalSeq++
				p.errSeq++
			}
			continue
		}

		p.inChar = false
		p.totalSeq++
		if !p.codec.isTrail(p.pendingLead, b) {
			p.errSeq++
			continue
		}

		lead, trail := p.pendingLead, b
		if p.codec.remap != nil {
			lead, trail = p.codec.remap(lead, trail)
		}
		if p.codec.xtext != nil && !xtextcheck.Valid(p.codec.xtext, []byte{p.pendingLead, b}) {
			p.errSeq++
			continue
		}
		p.analysis.feed([2]byte{lead, trail}, 2)

		if p.analysis.gotEnoughData() && p.analysis.getConfidence() > shortcutThreshold {
			p.state = FoundIt
			return p.state
		}
	}

	// A run with a high proportion of sequencing errors is not this
	// encoding: require a handful of samples before ruling out, so a short
	// chunk's first ASCII bytes don't trip a false negative.
	if p.totalSeq >= 4 && p.errSeq*2 > p.totalSeq {
		p.state = NotMe
	}
	return p.state
}

func (p *mbcsProber) GetConfidence() float64 {
	switch p.state {
	case FoundIt:
		return sureYes
	case NotMe:
		return sureNo
	default:
		return p.analysis.getConfidence()
	}
}

// mbcsGroupProber fans out to the multi-byte sub-probers selected by a
// LanguageFilter, feeding every chunk to each and surfacing the first to
// reach FoundIt.
type mbcsGroupProber struct {
	probers []*mbcsProber
	state   ProbingState
	winner  *mbcsProber
}

func newMBCSGroupProber(filter LanguageFilter) *mbcsGroupProber {
	g := &mbcsGroupProber{}
	if filter.Has(ChineseSimplified) {
		g.probers = append(g.probers, newMBCSProber(gb2312Codec))
	}
	if filter.Has(ChineseTraditional) {
		g.probers = append(g.probers, newMBCSProber(big5Codec), newMBCSProber(eucTWCodec))
	}
	if filter.Has(Japanese) {
		g.probers = append(g.probers, newMBCSProber(shiftJISCodec), newMBCSProber(eucJPCodec))
	}
	if filter.Has(Korean) {
		g.probers = append(g.probers, newMBCSProber(eucKRCodec), newMBCSProber(johabCodec))
	}
	return g
}

func (g *mbcsGroupProber) Reset() {
	g.state = Detecting
	g.winner = nil
	for _, p := range g.probers {
		p.Reset()
	}
}

func (g *mbcsGroupProber) State() ProbingState { return g.state }

func (g *mbcsGroupProber) CharsetName() string {
	if g.winner != nil {
		return g.winner.CharsetName()
	}
	return ""
}

func (g *mbcsGroupProber) Language() string {
	if g.winner != nil {
		return g.winner.Language()
	}
	return ""
}

func (g *mbcsGroupProber) Feed(buf []byte) ProbingState {
	if g.state != Detecting {
		return g.state
	}
	active := 0
	for _, p := range g.probers {
		if p.State() == NotMe {
			continue
		}
		active++
		if p.Feed(buf) == FoundIt {
			g.state = FoundIt
			g.winner = p
			return g.state
		}
	}
	if active == 0 && len(g.probers) > 0 {
		g.state = NotMe
	}
	return g.state
}

func (g *mbcsGroupProber) GetConfidence() float64 {
	switch g.state {
	case FoundIt:
		return sureYes
	case NotMe:
		return sureNo
	}
	best := 0.0
	var bestProber *mbcsProber
	for _, p := range g.probers {
		if c := p.GetConfidence(); c > best {
			best = c
			bestProber = p
		}
	}
	if bestProber != nil {
		g.winner = bestProber
	}
	return best
}
