/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

// latin1Prober is an external collaborator consumed through the narrow
// Prober contract (§4.2): spec §1 puts the Latin-1 prober's real
// character-class transition tables out of this package's scope. This is a
// simplified stand-in built on the same byte-class idea — ASCII, high-byte
// "letter-like" (0xC0-0xFF), and control/undefined (0x80-0x9F, 0x7F) — using
// removeXMLTags the same way the original restricts itself to prose outside
// markup.
type latin1Prober struct {
	state ProbingState

	ascii   int
	letters int
	control int
	total   int

	sawWinByte bool // a 0x80-0x9F byte was observed: charset is windows-1252, not ISO-8859-1
}

func newLatin1Prober() *latin1Prober { return &latin1Prober{} }

func (p *latin1Prober) Reset() { *p = latin1Prober{} }

func (p *latin1Prober) State() ProbingState { return p.state }
func (p *latin1Prober) Language() string    { return "" }

// CharsetName defaults to ISO-8859-1, the same way real chardet's
// Latin1Prober starts there and switches to windows-1252 the first time it
// sees a byte in the 0x80-0x9F range, which ISO-8859-1 leaves undefined but
// Windows-1252 assigns to printable characters (smart quotes, dashes, etc).
func (p *latin1Prober) CharsetName() string {
	if p.sawWinByte {
		return "windows-1252"
	}
	return "ISO-8859-1"
}

func (p *latin1Prober) Feed(buf []byte) ProbingState {
	if p.state != Detecting {
		return p.state
	}
	for _, b := range removeXMLTags(buf) {
		p.total++
		switch {
		case b < 0x7F:
			p.ascii++
		case b >= 0xC0:
			p.letters++
		case b >= 0x80 && b <= 0x9F:
			p.control++
			p.sawWinByte = true
		case b == 0x7F:
			p.control++
		}
	}
	if p.total >= minimumDataThreshold*8 {
		if p.control*4 > p.total {
			p.state = NotMe
		} else if p.GetConfidence() > shortcutThreshold {
			p.state = FoundIt
		}
	}
	return p.state
}

func (p *latin1Prober) GetConfidence() float64 {
	switch p.state {
	case FoundIt:
		return sureYes
	case NotMe:
		return sureNo
	}
	if p.total <= minimumDataThreshold {
		return sureNo
	}
	highByte := p.total - p.ascii
	if highByte == 0 {
		return sureNo
	}
	// Confidence rises with the proportion of high bytes that look like
	// accented letters rather than control/undefined positions, capped
	// below sureYes so a real CJK/UTF match always outranks this stand-in.
	r := float64(p.letters) / float64(highByte)
	if r > 0.9 {
		r = 0.9
	}
	return r
}
