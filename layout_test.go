package scrollview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func paddedLayout(items int) Layout {
	return Layout{ViewportSize: 100, CellSize: 20, ItemCount: items}.Adjusted()
}

func TestLayout_Adjust(t *testing.T) {
	interval, offset := Layout{ViewportSize: 100, CellSize: 20}.Adjust()
	assert.InDelta(t, 1.0/6, interval, 1e-9)
	assert.InDelta(t, 1.0/6, offset, 1e-9)

	interval, offset = Layout{ViewportSize: 100, CellSize: 20, ReuseMarginCount: 1}.Adjust()
	assert.InDelta(t, 0.125, interval, 1e-9)
	assert.InDelta(t, 0.25, offset, 1e-9)
}

func TestLayout_ScrollSize(t *testing.T) {
	size, margin := Layout{ViewportSize: 100, CellSize: 20, ReuseMarginCount: 1}.ScrollSize()
	assert.InDelta(t, 160, size, 1e-9)
	assert.InDelta(t, 20, margin, 1e-9)
}

func TestLayout_Lengths(t *testing.T) {
	l := paddedLayout(10)
	assert.InDelta(t, 5, l.ScrollLength(), 1e-9)
	assert.InDelta(t, 5, l.ViewportLength(), 1e-9)
	assert.InDelta(t, 5, l.MaxScrollPosition(), 1e-9)
	assert.True(t, l.Scrollable())

	l.PaddingHead = 30
	l.Spacing = 0
	assert.InDelta(t, 1.5, l.PaddingHeadLength(), 1e-9)
}

func TestLayout_SpaceConversionsInvert(t *testing.T) {
	layouts := []Layout{
		paddedLayout(10),
		paddedLayout(40),
		Layout{ViewportSize: 300, CellSize: 24, Spacing: 6, PaddingHead: 12, PaddingTail: 30, ItemCount: 50}.Adjusted(),
		Layout{ViewportSize: 240, CellSize: 40, Spacing: 2, ReuseMarginCount: 2, ItemCount: 25}.Adjusted(),
	}
	for _, l := range layouts {
		for raw := -2.0; raw <= float64(l.ItemCount)+2; raw += 0.7 {
			assert.InDelta(t, raw, l.ToRawSpace(l.ToIndexSpace(raw)), 1e-9)
		}
		assert.InDelta(t, -l.PaddingHeadLength(), l.ToIndexSpace(0), 1e-9)
		assert.InDelta(t, l.MaxScrollPosition()-l.PaddingHeadLength(), l.ToIndexSpace(float64(l.ItemCount-1)), 1e-9)
	}
}

func TestLayout_AlignedRawPosition(t *testing.T) {
	l := paddedLayout(20)

	assert.InDelta(t, 10, l.ToIndexSpace(l.AlignedRawPosition(10, 0)), 1e-9)
	assert.InDelta(t, 8, l.ToIndexSpace(l.AlignedRawPosition(10, 0.5)), 1e-9)
	assert.InDelta(t, 6, l.ToIndexSpace(l.AlignedRawPosition(10, 1)), 1e-9)

	// Clamped at both ends.
	assert.InDelta(t, 0, l.AlignedRawPosition(1, 0.5), 1e-9)
	assert.InDelta(t, 19, l.AlignedRawPosition(19, 0), 1e-9)
}

func TestLayout_ScrollbarSize(t *testing.T) {
	l := paddedLayout(20)
	assert.InDelta(t, 0.25, l.ScrollbarSize(l.ViewportLength()), 1e-9)

	shrunk := l.OverscrollScrollbarSize(1)
	assert.Less(t, shrunk, 0.25)
	assert.Greater(t, shrunk, 0.0)
	assert.Less(t, l.OverscrollScrollbarSize(3), shrunk)
}

func TestLayout_NotScrollable(t *testing.T) {
	l := paddedLayout(3)
	assert.False(t, l.Scrollable())
	assert.Equal(t, 1.0, l.ScrollbarSize(l.ViewportLength()))
}

func TestLayout_ZeroValueIsFinite(t *testing.T) {
	var l Layout
	interval, offset := l.Adjust()
	values := []float64{
		interval, offset,
		l.ScrollLength(), l.ViewportLength(), l.PaddingHeadLength(), l.MaxScrollPosition(),
		l.ToIndexSpace(3), l.ToRawSpace(3), l.AlignmentOffset(0.5), l.AlignedRawPosition(2, 0.5),
		l.ScrollbarSize(1), l.OverscrollScrollbarSize(1),
	}
	for i, v := range values {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %d = %v", i, v)
	}
}
