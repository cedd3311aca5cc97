// Package mvfield holds the per-frame motion-vector grid: one cell per
// macroblock, surrounded by a one-MB guard border so predictor lookups
// never need bounds checks. The search package fills a Field in; the
// analyzer reads it back out for per-frame aggregates.
package mvfield

// Mode is the coding decision recorded for a macroblock.
type Mode int

const (
	ModeIntra Mode = iota
	ModeInterP
	ModeInterB
	ModeSkip
)

func (m Mode) String() string {
	switch m {
	case ModeIntra:
		return "intra"
	case ModeInterP:
		return "inter_p"
	case ModeInterB:
		return "inter_b"
	case ModeSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// MV is an integer motion vector, in samples.
type MV struct {
	X, Y int32
}

// Add returns the component-wise sum of two vectors.
func (a MV) Add(b MV) MV {
	return MV{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the component-wise difference of two vectors.
func (a MV) Sub(b MV) MV {
	return MV{X: a.X - b.X, Y: a.Y - b.Y}
}

// Cell is the state recorded for one macroblock.
type Cell struct {
	MV   MV
	SAD  int
	Bits int
	Mode Mode
}

// Field is a dense (mbCols+2) x (mbRows+2) grid of Cells: one cell per
// macroblock plus a one-cell guard border on every side, so that the
// predictor in 4.4.2 can index (i-1,j), (i,j-1), (i+1,j-1) unconditionally
// even along the first row or column.
type Field struct {
	MBCols, MBRows int
	Stride         int // mbCols + 2
	Cells          []Cell

	countIntra, countInterP, countInterB int
	bits                                  int
}

// NewField allocates a field sized for an mbCols x mbRows macroblock grid.
func NewField(mbCols, mbRows int) *Field {
	stride := mbCols + 2
	rows := mbRows + 2
	return &Field{
		MBCols: mbCols,
		MBRows: mbRows,
		Stride: stride,
		Cells:  make([]Cell, stride*rows),
	}
}

// Reset sets every cell, guard border included, to {mv=(0,0), sad=0, bits=0,
// mode=INTRA} and zeroes the aggregate counters.
func (f *Field) Reset() {
	for i := range f.Cells {
		f.Cells[i] = Cell{Mode: ModeIntra}
	}
	f.countIntra, f.countInterP, f.countInterB = 0, 0, 0
	f.bits = 0
}

// Index returns the offset into Cells of macroblock (i, j). i and j may be
// -1 or MBCols/MBRows to address the guard border.
func (f *Field) Index(i, j int) int {
	return (j+1)*f.Stride + (i + 1)
}

// FirstMBOffset is the offset of macroblock (0,0): Stride+1, leaving the
// one-cell guard border before it.
func (f *Field) FirstMBOffset() int {
	return f.Stride + 1
}

// At returns a pointer to the cell for macroblock (i, j), guard border
// included, so callers may mutate it in place.
func (f *Field) At(i, j int) *Cell {
	return &f.Cells[f.Index(i, j)]
}

// Set records a macroblock decision and folds it into the aggregate
// counters and bit total. It must be called exactly once per interior
// macroblock per frame; calling it twice for the same cell double-counts.
func (f *Field) Set(i, j int, c Cell) {
	*f.At(i, j) = c
	switch c.Mode {
	case ModeIntra:
		f.countIntra++
	case ModeInterP:
		f.countInterP++
	case ModeInterB:
		f.countInterB++
	}
	f.bits += c.Bits
}

// CountIntra returns the number of macroblocks decided INTRA this frame.
func (f *Field) CountIntra() int { return f.countIntra }

// CountInterP returns the number of macroblocks decided INTER_P this frame.
func (f *Field) CountInterP() int { return f.countInterP }

// CountInterB returns the number of macroblocks decided INTER_B this frame.
func (f *Field) CountInterB() int { return f.countInterB }

// Bits returns the sum of per-MB bit proxies recorded via Set this frame.
func (f *Field) Bits() int { return f.bits }
