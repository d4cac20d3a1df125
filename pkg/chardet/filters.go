/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

import "regexp"

// internationalWordsPattern mirrors chardet's INTERNATIONAL_WORDS_PATTERN:
// a maximal run of [a-zA-Z]* [\x80-\xff]+ [a-zA-Z]* followed by at most one
// non-alphabetic, non-high byte.
var internationalWordsPattern = regexp.MustCompile(`[a-zA-Z]*[\x80-\xff]+[a-zA-Z]*[^a-zA-Z\x80-\xff]?`)

// filterInternationalWords collapses every run matching
// internationalWordsPattern — a word carrying at least one high byte,
// together with its ASCII-letter fringe and one trailing separator — down to
// a single ASCII space, leaving the surrounding pure-ASCII text untouched.
// Mirrors charsetprober.py's filter_international_words, which keeps only the
// ASCII filler between foreign-script words when deciding whether a Latin-1
// guess is plausible.
func filterInternationalWords(buf []byte) []byte {
	return internationalWordsPattern.ReplaceAll(buf, []byte(" "))
}

// removeXMLTags returns a copy of buf retaining every byte that falls outside
// of <...> tags; the '<' and '>' delimiters themselves are dropped. Used by
// the Latin-1 prober only.
func removeXMLTags(buf []byte) []byte {
	filtered := make([]byte, 0, len(buf))
	insideTag := false
	for _, b := range buf {
		switch {
		case b == '<':
			insideTag = true
		case b == '>':
			insideTag = false
		case !insideTag:
			filtered = append(filtered, b)
		}
	}
	return filtered
}
