package opengl

import (
	"math"

	"github.com/go-theft-auto/scrollview"
)

// RectCell draws its item as a coloured bar and outlines the selected one.
type RectCell struct {
	ctx      *scrollview.CellContext
	visible  bool
	item     int
	position float64
}

func (c *RectCell) Configure(ctx *scrollview.CellContext) { c.ctx = ctx }
func (c *RectCell) SetVisible(visible bool)               { c.visible = visible }
func (c *RectCell) UpdateContent(item int)                { c.item = item }
func (c *RectCell) UpdatePosition(normalized float64)     { c.position = normalized }

// draw adds the cell to dl. origin is the viewport's top-left corner, cross
// the viewport size across the scroll axis and length the cell's size along
// it.
func (c *RectCell) draw(dl *DrawList, origin scrollview.Vec2, cross, length float32) {
	if !c.visible {
		return
	}
	center := float32(c.ctx.CellCenter(c.position))
	inset := float32(6)

	x, y := origin.X+inset, origin.Y+center-length/2+inset/2
	w, h := cross-2*inset, length-inset
	if c.ctx.Direction == scrollview.Horizontal {
		x, y = origin.X+center-length/2+inset/2, origin.Y+inset
		w, h = length-inset, cross-2*inset
	}

	dl.AddRect(x, y, w, h, ItemColor(c.item))
	if c.item == c.ctx.SelectedIndex() {
		dl.AddRectOutline(x, y, w, h, RGBA(255, 255, 255, 255), 3)
	}
}

// RectCells creates RectCells for a view and keeps them for drawing.
//
// Usage:
//
//	cells := &opengl.RectCells{}
//	view, err := scrollview.New(cells.New, scrollview.WithViewportSize(size))
//	...
//	cells.Draw(dl, view, origin)
type RectCells struct {
	cells []*RectCell
}

// New is a scrollview.CellFactory.
func (rc *RectCells) New() scrollview.Cell[int] {
	c := &RectCell{}
	rc.cells = append(rc.cells, c)
	return c
}

// Len returns the number of cells created.
func (rc *RectCells) Len() int { return len(rc.cells) }

// Draw fills the viewport background at origin and draws every visible cell
// of view clipped to it.
func (rc *RectCells) Draw(dl *DrawList, view *scrollview.View[int], origin scrollview.Vec2) {
	size := view.ViewportSize()
	cfg := view.Config()
	cross, along := size.X, size.Y
	if cfg.Direction == scrollview.Horizontal {
		cross, along = size.Y, size.X
	}
	length := float32(cfg.CellSize)
	if !cfg.Padded() {
		length = along * float32(cfg.CellInterval)
	}

	dl.AddRect(origin.X, origin.Y, size.X, size.Y, RGBA(30, 30, 36, 255))
	dl.PushClipRect(origin.X, origin.Y, origin.X+size.X, origin.Y+size.Y)
	for _, c := range rc.cells {
		c.draw(dl, origin, cross, length)
	}
	dl.PopClipRect()
}

// ItemColor spreads items around the hue circle by the golden ratio.
func ItemColor(item int) uint32 {
	h := math.Mod(float64(item)*0.618033988749895, 1) * 6
	f := h - math.Floor(h)
	v, p, q, t := 0.85, 0.25, 0.85-0.6*f, 0.25+0.6*f
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGBA(uint8(r*255), uint8(g*255), uint8(b*255), 255)
}
