/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

import (
	"golang.org/x/text/encoding/charmap"

	"chardet/pkg/chardet/internal/xtextcheck"
)

// The single-byte group prober is an external collaborator consumed through
// the narrow Prober contract (§4.2): spec §1 puts each single-byte prober's
// language-specific bigram/sequence model out of this package's scope. What
// follows is a simplified stand-in — a byte-legality vote across a handful
// of common 8-bit charmaps — good enough to participate in the coordinator's
// max-confidence selection at close() without claiming corpus-trained
// accuracy.

type sbcsCandidate struct {
	name string
	cm   *charmap.Charmap
}

var sbcsCandidates = []sbcsCandidate{
	{"windows-1252", charmap.Windows1252},
	{"ISO-8859-2", charmap.ISO8859_2},
	{"ISO-8859-5", charmap.ISO8859_5},
	{"ISO-8859-7", charmap.ISO8859_7},
	{"ISO-8859-9", charmap.ISO8859_9},
}

// isoToWindows is consulted when presenting results upstream: it rewrites an
// ISO-8859-* label to its Windows-125x equivalent once Windows-range bytes
// (0x80-0x9F) have been observed (§6).
var isoToWindows = map[string]string{
	"ISO-8859-1":  "Windows-1252",
	"ISO-8859-2":  "Windows-1250",
	"ISO-8859-5":  "Windows-1251",
	"ISO-8859-6":  "Windows-1256",
	"ISO-8859-7":  "Windows-1253",
	"ISO-8859-8":  "Windows-1255",
	"ISO-8859-9":  "Windows-1254",
	"ISO-8859-13": "Windows-1257",
}

// charmapProber tracks, for a single 8-bit charmap, how many non-ASCII bytes
// seen decode legally versus illegally under that charmap.
type charmapProber struct {
	name string
	cm   *charmap.Charmap

	state    ProbingState
	total    int
	illegal  int
}

func newCharmapProber(c sbcsCandidate) *charmapProber {
	return &charmapProber{name: c.name, cm: c.cm}
}

func (p *charmapProber) Reset() {
	p.state = Detecting
	p.total = 0
	p.illegal = 0
}

func (p *charmapProber) State() ProbingState { return p.state }
func (p *charmapProber) CharsetName() string { return p.name }
func (p *charmapProber) Language() string    { return "" }

func (p *charmapProber) Feed(buf []byte) ProbingState {
	if p.state != Detecting {
		return p.state
	}
	for _, b := range buf {
		if b < 0x80 {
			continue
		}
		p.total++
		if !xtextcheck.Valid(p.cm, []byte{b}) {
			p.illegal++
		}
	}
	if p.total >= minimumDataThreshold*4 {
		if p.illegal*5 > p.total {
			p.state = NotMe
		} else if p.GetConfidence() > shortcutThreshold {
			p.state = FoundIt
		}
	}
	return p.state
}

func (p *charmapProber) GetConfidence() float64 {
	switch p.state {
	case FoundIt:
		return sureYes
	case NotMe:
		return sureNo
	}
	if p.total <= minimumDataThreshold {
		return sureNo
	}
	// Legality ratio, capped below sureYes so a single-byte candidate never
	// out-scores a CJK/Latin-1 prober that actually reached FOUND_IT.
	r := 1.0 - float64(p.illegal)/float64(p.total)
	if r > 0.9 {
		r = 0.9
	}
	return r
}

// sbcsGroupProber fans out to every candidate charmap, gated by the NonCJK
// language-filter bit (§6).
type sbcsGroupProber struct {
	probers []*charmapProber
	state   ProbingState
	winner  *charmapProber
}

func newSBCSGroupProber(filter LanguageFilter) *sbcsGroupProber {
	g := &sbcsGroupProber{}
	if !filter.Has(NonCJK) {
		return g
	}
	for _, c := range sbcsCandidates {
		g.probers = append(g.probers, newCharmapProber(c))
	}
	return g
}

func (g *sbcsGroupProber) Reset() {
	g.state = Detecting
	g.winner = nil
	for _, p := range g.probers {
		p.Reset()
	}
}

func (g *sbcsGroupProber) State() ProbingState { return g.state }

func (g *sbcsGroupProber) CharsetName() string {
	if g.winner != nil {
		return g.winner.CharsetName()
	}
	return ""
}

func (g *sbcsGroupProber) Language() string { return "" }

func (g *sbcsGroupProber) Feed(buf []byte) ProbingState {
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

func (g *sbcsGroupProber) GetConfidence() float64 {
	switch g.state {
	case FoundIt:
		return sureYes
	case NotMe:
		return sureNo
	}
	best := 0.0
	var bestProber *charmapProber
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
