/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/

// Package chardet is a streaming character-encoding detector. Callers push
// successive chunks of an opaque byte stream through a Detector and read back
// a best-guess Verdict — an encoding label, a confidence in [0,1], and an
// optional language tag. Detection is incremental: a Verdict may be available
// well before the stream ends, and Close always produces a best-effort result
// even when nothing crossed its own acceptance threshold.
package chardet

import "fmt"

// ProbingState is the lifecycle of a single prober. It only ever advances
// DETECTING -> FOUND_IT or DETECTING -> NOT_ME; neither terminal state
// reverts to DETECTING without an explicit Reset.
type ProbingState int

const (
	// Detecting means the prober has not yet reached a verdict.
	Detecting ProbingState = iota
	// FoundIt means the prober has settled on its charset_name.
	FoundIt
	// NotMe means the prober has ruled itself out.
	NotMe
)

func (s ProbingState) String() string {
	switch s {
	case Detecting:
		return "DETECTING"
	case FoundIt:
		return "FOUND_IT"
	case NotMe:
		return "NOT_ME"
	default:
		return "UNKNOWN"
	}
}

// InputState is the coordinator's coarse read of the byte stream so far. It
// is monotonic: PURE_ASCII -> ESC_ASCII -> HIGH_BYTE or PURE_ASCII ->
// HIGH_BYTE, never backward.
type InputState int

const (
	PureASCII InputState = iota
	EscASCII
	HighByte
)

func (s InputState) String() string {
	switch s {
	case PureASCII:
		return "PURE_ASCII"
	case EscASCII:
		return "ESC_ASCII"
	case HighByte:
		return "HIGH_BYTE"
	default:
		return "UNKNOWN"
	}
}

// LanguageFilter is a bitset selecting which HIGH_BYTE multi-byte sub-probers
// the coordinator instantiates. The zero value selects nothing; LangAll is
// the default a caller should pass when in doubt.
type LanguageFilter uint8

const (
	ChineseSimplified LanguageFilter = 1 << iota
	ChineseTraditional
	Japanese
	Korean
	NonCJK

	LangAll = ChineseSimplified | ChineseTraditional | Japanese | Korean | NonCJK
)

// Has reports whether f includes bit.
func (f LanguageFilter) Has(bit LanguageFilter) bool { return f&bit != 0 }

// validLanguageFilterBits is every bit this version of the package knows
// about; New rejects a filter with any bit outside this set so that a typo'd
// caller-defined constant fails fast instead of silently detecting nothing.
const validLanguageFilterBits = LangAll

// Verdict is the coordinator's (encoding, confidence, language) result
// record. The zero Verdict is the initial "no opinion yet" value.
type Verdict struct {
	Encoding   string
	Confidence float64
	Language   string
}

func (v Verdict) String() string {
	if v.Encoding == "" {
		return fmt.Sprintf("<no verdict, confidence=%.2f>", v.Confidence)
	}
	return fmt.Sprintf("%s (confidence=%.2f, language=%q)", v.Encoding, v.Confidence, v.Language)
}

// Prober is the capability every sub-detector satisfies: accept bytes,
// expose confidence, name, language, and state, and support being reset for
// reuse across documents.
type Prober interface {
	// Feed advances the prober with a chunk of the document and returns its
	// resulting ProbingState. Once the prober is in a terminal state,
	// further calls return that state without mutating accumulated evidence.
	Feed(buf []byte) ProbingState
	// State returns the prober's current ProbingState without feeding it.
	State() ProbingState
	// GetConfidence returns a confidence in [0,1] reflecting the evidence
	// accumulated so far, regardless of State.
	GetConfidence() float64
	// CharsetName is the prober's charset label, possibly empty until the
	// prober has an opinion.
	CharsetName() string
	// Language is the prober's intrinsic language tag, possibly empty.
	Language() string
	// Reset returns the prober to its initial DETECTING state.
	Reset()
}

// shortcutThreshold is the per-prober confidence at which a prober MAY
// short-circuit its own internal work. It is a prober-local optimization,
// not a coordinator policy — the coordinator's own early-termination is
// driven purely by a prober reaching FoundIt.
const shortcutThreshold = 0.95
