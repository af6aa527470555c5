package scrollview

// Cell is a reusable visual element bound to one item at a time.
//
// The pool calls Configure once right after the factory creates the cell, then
// SetVisible, UpdateContent and UpdatePosition as the list scrolls.
// UpdatePosition receives the cell's normalized position: 0 is the start of
// the scroll area and 1 its end. Values slightly outside [0, 1] occur for
// cells partly scrolled out.
type Cell[T any] interface {
	Configure(ctx *CellContext)
	SetVisible(visible bool)
	UpdateContent(item T)
	UpdatePosition(normalized float64)
}

// CellFactory creates a new cell. It must never return nil.
type CellFactory[T any] func() Cell[T]

// CellContext is shared by every cell of a view. Cells keep the pointer they
// receive in Configure and query it whenever they lay themselves out.
type CellContext struct {
	Direction ScrollDirection

	viewportSize func() float64
	scrollSize   func() (size, reuseMargin float64)
	selected     func() int
	clicked      func(index int)
}

// ViewportSize returns the viewport length along the scroll axis, in pixels.
func (c *CellContext) ViewportSize() float64 {
	if c == nil || c.viewportSize == nil {
		return 0
	}
	return c.viewportSize()
}

// ScrollSize returns the pixel length of the area normalized positions span,
// and the pixel length of one reuse margin at each end of it.
func (c *CellContext) ScrollSize() (size, reuseMargin float64) {
	if c == nil || c.scrollSize == nil {
		return c.ViewportSize(), 0
	}
	return c.scrollSize()
}

// SelectedIndex returns the index the view currently considers selected.
func (c *CellContext) SelectedIndex() int {
	if c == nil || c.selected == nil {
		return -1
	}
	return c.selected()
}

// OnCellClicked reports a click on the cell showing index.
func (c *CellContext) OnCellClicked(index int) {
	if c == nil || c.clicked == nil {
		return
	}
	c.clicked(index)
}

// CellCenter converts a normalized position into the pixel offset of the
// cell's center from the viewport's head edge.
func (c *CellContext) CellCenter(normalized float64) float64 {
	size, margin := c.ScrollSize()
	interval := size - c.ViewportSize() - 2*margin
	return size*normalized - margin - interval/2
}

// NormalizedViewportPosition rescales a normalized position so that 0 and 1
// are the viewport edges rather than the scroll area's.
func (c *CellContext) NormalizedViewportPosition(normalized float64) float64 {
	size, margin := c.ScrollSize()
	return (size*normalized - margin) / nonZero(size-2*margin)
}
