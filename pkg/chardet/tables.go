/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

// This file wires the seven CJK distribution analyzers to their table
// triples. The real chardet frequency tables are multi-thousand-entry,
// corpus-derived data files; per spec §1/§9 they are out of this package's
// scope ("treated as opaque data inputs"). The entry lists below are small,
// illustrative samples built from real, in-range lead/trail byte pairs for
// each encoding so the tables exercise the same code path a full table
// would, without claiming corpus fidelity. table_size and
// typical_distribution_ratio are chosen independently of the original
// constants, within a range where get_confidence behaves sensibly.

// bigEndianKey is a readability helper: table keys are the little-endian
// concatenation lead | trail<<8, i.e. the bytes in stream order.
func bigEndianKey(lead, trail byte) int {
	return int(lead) | int(trail)<<8
}

var big5Table = newFreqTable(sampleEntries(
	// Big5: lead 0xA1-0xFE, trail 0x40-0x7E or 0xA1-0xFE.
	0xA4, 0x40, 0xA4, 0x41, 0xA4, 0x42, 0xA4, 0xA1, 0xA4, 0xA2,
	0xA5, 0x40, 0xA5, 0x41, 0xA5, 0xA1, 0xA6, 0x40, 0xA6, 0xA1,
	0xA7, 0x40, 0xA7, 0xA1, 0xA8, 0x40, 0xA8, 0xA1, 0xB0, 0x40,
	0xB1, 0x40, 0xB2, 0x40, 0xC4, 0x40, 0xC5, 0x40, 0xC6, 0x40,
), 600, 0.5624)

var gb2312Table = newFreqTable(sampleEntries(
	// GB2312: lead 0xA1-0xFE, trail 0xA1-0xFE.
	0xA1, 0xA1, 0xA1, 0xA2, 0xA1, 0xA3, 0xB0, 0xA1, 0xB0, 0xA2,
	0xB1, 0xA1, 0xB1, 0xA2, 0xB2, 0xA1, 0xB3, 0xA1, 0xC0, 0xA1,
	0xC1, 0xA1, 0xC2, 0xA1, 0xD0, 0xA1, 0xD1, 0xA1, 0xD2, 0xA1,
	0xD3, 0xA1, 0xD4, 0xA1, 0xD5, 0xA1, 0xD6, 0xA1, 0xD7, 0xA1,
), 350, 0.9)

var eucTWTable = newFreqTable(sampleEntries(
	// EUC-TW plane 1: lead 0xA1-0xFE, trail 0xA1-0xFE.
	0xA1, 0xA1, 0xA1, 0xA2, 0xA2, 0xA1, 0xA3, 0xA1, 0xB0, 0xA1,
	0xB1, 0xA1, 0xB2, 0xA1, 0xC0, 0xA1, 0xC1, 0xA1, 0xD0, 0xA1,
), 800, 0.2475)

var eucKRTable = newFreqTable(sampleEntries(
	// EUC-KR / Johab share this table: lead 0xA1-0xFE, trail 0xA1-0xFE.
	0xB0, 0xA1, 0xB0, 0xA2, 0xB0, 0xA3, 0xB1, 0xA1, 0xB2, 0xA1,
	0xB3, 0xA1, 0xC0, 0xA1, 0xC1, 0xA1, 0xC2, 0xA1, 0xC3, 0xA1,
), 300, 0.9741)

var jisTable = newFreqTable(sampleEntries(
	// Shift_JIS / EUC-JP share this table. Entries are expressed as
	// Shift_JIS-style (lead 0x81-0x9F/0xE0-0xFC, trail 0x40-0xFC) pairs;
	// the EUC-JP prober re-maps its own (0xA1-0xFE, 0xA1-0xFE) pairs onto
	// the same key space before consulting it (see mbcs.go).
	0x82, 0xA0, 0x82, 0xA2, 0x82, 0xA4, 0x83, 0x40, 0x83, 0x41,
	0x88, 0x9F, 0x89, 0x40, 0x8A, 0xA0, 0x93, 0xFA, 0x96, 0x7B,
), 400, 0.92)

// sampleEntries turns a flat (lead, trail, lead, trail, ...) list into
// [][2]int entries, assigning successive frequency ranks in argument order —
// the earliest entries are the "most frequent" characters of the sample.
func sampleEntries(leadTrail ...byte) [][2]int {
	entries := make([][2]int, 0, len(leadTrail)/2)
	for i, rank := 0, 0; i+1 < len(leadTrail); i, rank = i+2, rank+1 {
		entries = append(entries, [2]int{bigEndianKey(leadTrail[i], leadTrail[i+1]), rank})
	}
	return entries
}
