/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

import "bytes"

// escCharSetProber is an external collaborator consumed through the narrow
// Prober contract (§4.2): spec §1 puts the full ESC-sequence prober for all
// ISO-2022 variants out of this package's scope. This is a simplified
// stand-in that recognizes the handful of designator sequences that
// identify the ISO-2022 family, which is all the coordinator's ESC_ASCII
// branch needs from it.
type escCharSetProber struct {
	state       ProbingState
	charsetName string
	buffered    []byte
}

type escSequence struct {
	seq     []byte
	charset string
	lang    string
}

var escSequences = []escSequence{
	{[]byte("\x1b$@"), "ISO-2022-JP", "Japanese"},
	{[]byte("\x1b$B"), "ISO-2022-JP", "Japanese"},
	{[]byte("\x1b(J"), "ISO-2022-JP", "Japanese"},
	{[]byte("\x1b(B"), "ISO-2022-JP", "Japanese"},
	{[]byte("\x1b$)C"), "ISO-2022-KR", "Korean"},
	{[]byte("\x1b$)A"), "ISO-2022-CN", "Chinese"},
	{[]byte("\x1b$)G"), "ISO-2022-CN", "Chinese"},
	{[]byte("\x1b$*H"), "ISO-2022-CN", "Chinese"},
}

// escMaxSeqLen is the longest designator above; feed keeps at most this many
// trailing bytes buffered across chunk boundaries so a sequence split across
// two Feed calls is still recognized.
const escMaxSeqLen = 4

var escLang = map[string]string{}

func init() {
	for _, e := range escSequences {
		escLang[e.charset] = e.lang
	}
}

func newEscCharSetProber() *escCharSetProber { return &escCharSetProber{} }

func (p *escCharSetProber) Reset() { *p = escCharSetProber{} }

func (p *escCharSetProber) State() ProbingState { return p.state }
func (p *escCharSetProber) CharsetName() string { return p.charsetName }
func (p *escCharSetProber) Language() string    { return escLang[p.charsetName] }

func (p *escCharSetProber) Feed(buf []byte) ProbingState {
	if p.state != Detecting {
		return p.state
	}

	window := append(p.buffered, buf...)
	for _, e := range escSequences {
		if bytes.Contains(window, e.seq) {
			p.charsetName = e.charset
			p.state = FoundIt
			return p.state
		}
	}

	if len(window) > escMaxSeqLen {
		window = window[len(window)-escMaxSeqLen:]
	}
	p.buffered = append(p.buffered[:0], window...)
	return p.state
}

func (p *escCharSetProber) GetConfidence() float64 {
	switch p.state {
	case FoundIt:
		return 0.99
	case NotMe:
		return 0.01
	default:
		return 0.0
	}
}
