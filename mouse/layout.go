package mouse

// Span is one visible column's or row's placement in the most recent
// draw: the logical index it displays, its screen offset, and its size
// in cells.
type Span struct {
	Index  int
	Offset int
	Size   int
}

// Layout records where the last draw put each visible column and row,
// for click-to-move-cursor lookups. Valid only until the next draw.
type Layout struct {
	Cols []Span
	Rows []Span
}

// ColAt returns the logical column index at screen column x. Column
// spans match their upper bound inclusively; the scan runs in layout
// order so an earlier span wins the shared boundary cell.
func (l *Layout) ColAt(x int) (int, bool) {
	for _, s := range l.Cols {
		if x >= s.Offset && x <= s.Offset+s.Size {
			return s.Index, true
		}
	}
	return 0, false
}

// RowAt returns the logical row index at screen row y. Row spans
// exclude their upper bound.
func (l *Layout) RowAt(y int) (int, bool) {
	for _, s := range l.Rows {
		if y >= s.Offset && y < s.Offset+s.Size {
			return s.Index, true
		}
	}
	return 0, false
}
