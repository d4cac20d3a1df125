/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/

// Package xtextcheck is a small byte-legality oracle built on top of
// golang.org/x/text/encoding decoders. It answers one question — "does this
// encoding accept this byte pair at all?" — for the multi-byte and
// single-byte probers in the parent package, the same way the donor repo's
// pkg/charset used simplifiedchinese.GB18030's decoder to probe GB18030
// legality before trusting a guess.
package xtextcheck

import (
	"golang.org/x/text/encoding"
)

// Valid reports whether enc's decoder accepts buf without error. It is used
// as a cheap legality gate ahead of frequency-table lookups: a byte sequence
// an encoding's own decoder rejects can never be a legitimate character in
// that encoding, regardless of what a frequency table says about it.
func Valid(enc encoding.Encoding, buf []byte) bool {
	_, err := enc.NewDecoder().Bytes(buf)
	return err == nil
}
