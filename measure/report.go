package measure

import "github.com/arloliu/leb128/format"

// Row holds the sizes measured for one width of one fixture set.
//
// Columns that do not apply to the width are zero: LEB128 and lesqlite sizes
// for signed widths, lesqlite for u128, group varint for anything but u32.
type Row struct {
	Set   string
	Width format.Width
	Count int

	RawBytes         int
	LEB128Bytes      int
	LesqliteBytes    int
	GroupVarintBytes int

	RawCompressedBytes    int64
	LEB128CompressedBytes int64

	// Digest is the xxHash64 of the LEB128 stream.
	Digest uint64
}

// LEB128Ratio returns LEB128 bytes over raw bytes, or 0 when not applicable.
func (r Row) LEB128Ratio() float64 {
	return ratio(r.LEB128Bytes, r.RawBytes)
}

// LesqliteRatio returns lesqlite bytes over raw bytes, or 0 when not applicable.
func (r Row) LesqliteRatio() float64 {
	return ratio(r.LesqliteBytes, r.RawBytes)
}

// BytesPerValue returns the mean LEB128 length of the row's values.
func (r Row) BytesPerValue() float64 {
	return ratio(r.LEB128Bytes, r.Count)
}

// Report is the result of a Runner.
type Report struct {
	Compression format.CompressionType
	Rows        []Row
}

// Total sums every row into one. Set and Width are left empty and Digest is
// zero.
//
// RawBytes includes signed rows, which have no LEB128 column; use
// EncodedTotal for ratios between the raw and encoded columns.
func (rep *Report) Total() Row {
	return sumRows(rep.Rows, func(Row) bool { return true })
}

// EncodedTotal is Total restricted to rows that carry a LEB128 column, so
// that its LEB128Ratio and BytesPerValue compare like with like.
func (rep *Report) EncodedTotal() Row {
	return sumRows(rep.Rows, func(r Row) bool { return r.LEB128Bytes > 0 })
}

func sumRows(rows []Row, keep func(Row) bool) Row {
	var total Row
	for _, r := range rows {
		if !keep(r) {
			continue
		}
		total.Count += r.Count
		total.RawBytes += r.RawBytes
		total.LEB128Bytes += r.LEB128Bytes
		total.LesqliteBytes += r.LesqliteBytes
		total.GroupVarintBytes += r.GroupVarintBytes
		total.RawCompressedBytes += r.RawCompressedBytes
		total.LEB128CompressedBytes += r.LEB128CompressedBytes
	}

	return total
}

func ratio(num, den int) float64 {
	if num == 0 || den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}
