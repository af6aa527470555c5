package scrollview

import "math"

// Layout converts between the scroller's raw space and the index space of a
// padded list whose cells have a fixed pixel size. Raw space runs from 0 to
// ItemCount-1 across the scrollable range. Index space counts cell intervals
// from the first item, shifted by head padding.
//
// Layout is a plain value; every method is pure and total.
type Layout struct {
	ViewportSize     float64 // pixels along the scroll axis
	CellSize         float64 // pixels along the scroll axis
	Spacing          float64 // pixels between neighbouring cells
	PaddingHead      float64 // pixels before the first cell
	PaddingTail      float64 // pixels after the last cell
	ReuseMarginCount float64 // extra cells kept alive beyond each viewport edge
	ItemCount        int

	// CellInterval is the normalized cell interval, usually from Adjust.
	CellInterval float64
}

// Adjust derives the normalized cell interval and scroll offset from the
// pixel geometry.
func (l Layout) Adjust() (cellInterval, scrollOffset float64) {
	total := l.ViewportSize + l.stride()*(1+2*l.ReuseMarginCount)
	cellInterval = l.stride() / math.Max(total, epsilon)
	scrollOffset = cellInterval * (1 + l.ReuseMarginCount)
	return cellInterval, scrollOffset
}

// Adjusted returns a copy of l with CellInterval set from Adjust.
func (l Layout) Adjusted() Layout {
	l.CellInterval, _ = l.Adjust()
	return l
}

// ScrollLength is the number of cell intervals spanned by the scroll area.
func (l Layout) ScrollLength() float64 {
	return 1/math.Max(l.CellInterval, minCellInterval) - 1
}

// ViewportLength is ScrollLength without the reuse margins.
func (l Layout) ViewportLength() float64 {
	return l.ScrollLength() - 2*l.ReuseMarginCount
}

// PaddingHeadLength is the head padding in cell intervals.
func (l Layout) PaddingHeadLength() float64 {
	return (l.PaddingHead - l.Spacing*0.5) / l.stride()
}

// MaxScrollPosition is the largest index-space position that still keeps
// content in view.
func (l Layout) MaxScrollPosition() float64 {
	return float64(l.ItemCount) -
		l.ScrollLength() +
		2*l.ReuseMarginCount +
		(l.PaddingHead+l.PaddingTail-l.Spacing)/l.stride()
}

// Scrollable reports whether the content is longer than the viewport.
func (l Layout) Scrollable() bool {
	return l.MaxScrollPosition() > 0
}

// ToIndexSpace converts a raw scroller position to an index-space position.
func (l Layout) ToIndexSpace(raw float64) float64 {
	return raw/l.lastIndex()*l.maxScroll() - l.PaddingHeadLength()
}

// ToRawSpace converts an index-space position to a raw scroller position.
// It is the exact inverse of ToIndexSpace.
func (l Layout) ToRawSpace(position float64) float64 {
	return (position + l.PaddingHeadLength()) / l.maxScroll() * l.lastIndex()
}

// AlignmentOffset is the index-space shift that places a cell at alignment a
// inside the viewport: 0 head, 0.5 center, 1 tail.
func (l Layout) AlignmentOffset(a float64) float64 {
	return a*(l.ScrollLength()-(1+2*l.ReuseMarginCount)) +
		(1-a-0.5)*l.Spacing/l.stride()
}

// AlignedRawPosition returns the raw position that shows index at alignment a,
// clamped so the content never scrolls past either end.
func (l Layout) AlignedRawPosition(index int, a float64) float64 {
	p := clampf(float64(index)-l.AlignmentOffset(a), 0, math.Max(l.MaxScrollPosition(), 0))
	return l.ToRawSpace(p)
}

// ScrollSize returns the pixel length of the area cells are placed in and the
// pixel length of one reuse margin.
func (l Layout) ScrollSize() (size, reuseMargin float64) {
	reuseMargin = l.stride() * l.ReuseMarginCount
	return l.ViewportSize + l.stride() + 2*reuseMargin, reuseMargin
}

// ScrollbarSize returns the scrollbar handle size in [0, 1] for a visible
// length of viewportLength cell intervals.
func (l Layout) ScrollbarSize(viewportLength float64) float64 {
	if !l.Scrollable() {
		return 1
	}
	content := math.Max(float64(l.ItemCount)+(l.PaddingHead+l.PaddingTail-l.Spacing)/l.stride(), 1)
	return clamp01(viewportLength / content)
}

// OverscrollScrollbarSize returns the scrollbar size while the raw position
// overshoots the content by overshoot raw units.
func (l Layout) OverscrollScrollbarSize(overshoot float64) float64 {
	visible := l.ViewportLength() - l.PaddingHeadLength()
	scale := 1 - l.ToIndexSpace(overshoot)/nonZero(visible)
	return l.ScrollbarSize(visible * scale)
}

func (l Layout) stride() float64 {
	return nonZero(l.CellSize + l.Spacing)
}

func (l Layout) lastIndex() float64 {
	return math.Max(float64(l.ItemCount)-1, 1)
}

func (l Layout) maxScroll() float64 {
	return nonZero(l.MaxScrollPosition())
}

// nonZero keeps v away from zero while preserving its sign.
func nonZero(v float64) float64 {
	if math.Abs(v) < epsilon {
		if v < 0 {
			return -epsilon
		}
		return epsilon
	}
	return v
}
