/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

// distribution constants, shared by every CJK distribution analysis.
const (
	sureYes                = 0.99
	sureNo                 = 0.01
	minimumDataThreshold   = 3
	enoughDataThreshold    = 1024
)

// freqTable is the immutable, process-lifetime data one CJK distribution
// analysis is parameterized by: a dense lookup from a 2-byte character key
// (little-endian concatenation of the two bytes as they appear in the
// stream) to frequency rank, how many of the top ranks count as "frequent",
// and the empirical ratio between frequent-char count and tail count for
// genuine text of that encoding.
//
// The real chardet frequency tables run tens of thousands of entries and are
// out of this package's scope (spec treats them as opaque data); freqTable
// instead carries a small illustrative entry set, built once into a dense
// [65536]int16 array per §9's "dense array ... rather than a hash map"
// guidance, with -1 marking an absent key.
type freqTable struct {
	orderOf          [65536]int16
	tableSize        int
	typicalRatio     float64
}

// newFreqTable builds the dense lookup from a compact (key, rank) entry
// list. entries need not be sorted or complete; any key never mentioned
// resolves to -1 ("unknown order").
func newFreqTable(entries [][2]int, tableSize int, typicalRatio float64) *freqTable {
	t := &freqTable{tableSize: tableSize, typicalRatio: typicalRatio}
	for i := range t.orderOf {
		t.orderOf[i] = -1
	}
	for _, e := range entries {
		t.orderOf[uint16(e[0])] = int16(e[1])
	}
	return t
}

// charDistributionAnalysis is the shared statistical engine behind every
// 2-byte CJK prober, parameterized by one freqTable.
type charDistributionAnalysis struct {
	table      *freqTable
	totalChars int
	freqChars  int
}

func newCharDistributionAnalysis(table *freqTable) *charDistributionAnalysis {
	return &charDistributionAnalysis{table: table}
}

// reset returns the analysis to its initial state; the table reference is
// untouched since it is immutable and shared.
func (d *charDistributionAnalysis) reset() {
	d.totalChars = 0
	d.freqChars = 0
}

// feed is ignored unless charLen == 2. charBytes must hold exactly the two
// bytes of the character as they appeared in the stream.
func (d *charDistributionAnalysis) feed(charBytes [2]byte, charLen int) {
	if charLen != 2 {
		return
	}
	order := d.getOrder(charBytes)
	if order < 0 {
		return
	}
	d.totalChars++
	if int(order) < d.table.tableSize {
		d.freqChars++
	}
}

func (d *charDistributionAnalysis) getOrder(charBytes [2]byte) int16 {
	key := uint16(charBytes[0]) | uint16(charBytes[1])<<8
	return d.table.orderOf[key]
}

// gotEnoughData is the observation that total_chars has crossed the
// "enough data" advisory threshold; callers may choose to stop feeding.
func (d *charDistributionAnalysis) gotEnoughData() bool {
	return d.totalChars >= enoughDataThreshold
}

// getConfidence implements spec §4.3's formula, including the explicit
// branch for total_chars == freq_chars that avoids a division by zero when
// typical_ratio is finite but the tail is empty.
func (d *charDistributionAnalysis) getConfidence() float64 {
	if d.totalChars <= 0 || d.freqChars <= minimumDataThreshold {
		return sureNo
	}
	if d.totalChars != d.freqChars {
		r := float64(d.freqChars) / (float64(d.totalChars-d.freqChars) * d.table.typicalRatio)
		if r < sureYes {
			return r
		}
	}
	return sureYes
}
