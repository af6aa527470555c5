package scrollview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

// scrollerRecorder records every callback a Scroller fires.
type scrollerRecorder struct {
	positions  []float64
	selections []int
	scrollbar  []float64
}

func newTestScroller(cfg MotionConfig, count int) (*Scroller, *scrollerRecorder) {
	s := NewScroller(cfg)
	s.SetViewportSize(100)
	s.SetTotalCount(count)
	p := &scrollerRecorder{}
	s.OnValueChanged(func(v float64) { p.positions = append(p.positions, v) })
	s.OnSelectionChanged(func(i int) { p.selections = append(p.selections, i) })
	s.OnScrollbarChanged(func(v float64) { p.scrollbar = append(p.scrollbar, v) })
	return s, p
}

func leftAt(x, y float32) PointerEvent {
	return PointerEvent{Position: Vec2{X: x, Y: y}, Button: MouseButtonLeft}
}

func TestScroller_JumpTo(t *testing.T) {
	s, p := newTestScroller(DefaultMotionConfig(), 20)

	require.NoError(t, s.JumpTo(10))

	assert.Equal(t, []int{10}, p.selections)
	assert.Equal(t, 10.0, s.Position())
	assert.Equal(t, 0.0, s.Velocity())
	assert.False(t, s.InMotion())
}

func TestScroller_JumpToOutOfRange(t *testing.T) {
	s, p := newTestScroller(DefaultMotionConfig(), 20)
	require.NoError(t, s.JumpTo(4))
	p.selections = nil

	for _, index := range []int{-1, 20, 100} {
		err := s.JumpTo(index)
		assert.ErrorIs(t, err, ErrRange, "index %d", index)
	}
	assert.Empty(t, p.selections)
	assert.Equal(t, 4.0, s.Position())

	empty, _ := newTestScroller(DefaultMotionConfig(), 0)
	assert.ErrorIs(t, empty.JumpTo(0), ErrRange)
}

func TestScroller_ScrollToZeroDuration(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	done := 0

	s.ScrollTo(5, 0, OnComplete(func() { done++ }))

	assert.Equal(t, 5.0, s.Position())
	assert.Equal(t, 1, done)
	assert.False(t, s.InMotion())
}

func TestScroller_ScrollToSelectsEagerly(t *testing.T) {
	s, p := newTestScroller(DefaultMotionConfig(), 20)
	done := 0

	s.ScrollTo(7, 0.5, OnComplete(func() { done++ }))

	assert.Equal(t, []int{7}, p.selections, "selection fires before any frame")
	assert.Equal(t, 0.0, s.Position())
	assert.True(t, s.InMotion())

	prev := s.Position()
	for i := 0; i < 10; i++ {
		s.Update(0.1)
		assert.GreaterOrEqual(t, s.Position(), prev)
		prev = s.Position()
	}

	assert.InDelta(t, 7, s.Position(), 1e-9)
	assert.False(t, s.InMotion())
	assert.Equal(t, 1, done)
	assert.Equal(t, []int{7}, p.selections)
}

func TestScroller_ScrollToUsesEase(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)

	s.ScrollTo(10, 1, WithEase(Linear))
	s.Update(0.25)
	assert.InDelta(t, 2.5, s.Position(), 1e-9)

	s.SetPosition(0)
	s.ScrollTo(10, 1, WithEaseFunc(func(t float64) float64 { return t * t }))
	s.Update(0.5)
	assert.InDelta(t, 2.5, s.Position(), 1e-9)
}

func TestScroller_ScrollToCancelledBySetPosition(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	done := 0

	s.ScrollTo(10, 1, OnComplete(func() { done++ }))
	s.Update(0.1)
	s.SetPosition(3)
	for i := 0; i < 120; i++ {
		s.Update(frame)
	}

	assert.Equal(t, 0, done)
	assert.Equal(t, 3.0, s.Position())
}

func TestScroller_MovementAmount(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.MovementType = Unrestricted
	s, _ := newTestScroller(cfg, 10)

	assert.InDelta(t, -3, s.MovementAmount(1, 8), 1e-9)
	assert.InDelta(t, 3, s.MovementAmount(8, 1), 1e-9)
	assert.InDelta(t, 2, s.MovementAmount(1, 3), 1e-9)
	assert.InDelta(t, 1, s.MovementAmount(9, 10), 1e-9)

	cfg.MovementType = Elastic
	s.SetConfig(cfg)
	assert.InDelta(t, 7, s.MovementAmount(1, 8), 1e-9)
	assert.InDelta(t, 8, s.MovementAmount(1, 25), 1e-9)
	assert.InDelta(t, -1, s.MovementAmount(1, -4), 1e-9)
}

func TestScroller_MovementDirection(t *testing.T) {
	cfg := DefaultMotionConfig()
	s, _ := newTestScroller(cfg, 10)
	assert.Equal(t, MoveUp, s.MovementDirection(1, 5))
	assert.Equal(t, MoveDown, s.MovementDirection(5, 1))

	cfg.Direction = Horizontal
	s.SetConfig(cfg)
	assert.Equal(t, MoveLeft, s.MovementDirection(1, 5))
	assert.Equal(t, MoveRight, s.MovementDirection(5, 1))

	cfg.MovementType = Unrestricted
	s.SetConfig(cfg)
	assert.Equal(t, MoveRight, s.MovementDirection(1, 8), "shortest way wraps backwards")
}

func TestScroller_ElasticSettleNeverOvershoots(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.Snap.Enabled = false
	s, p := newTestScroller(cfg, 20)
	s.SetPosition(-2)

	prev := s.Position()
	for i := 0; i < 600; i++ {
		s.Update(frame)
		assert.LessOrEqual(t, s.Position(), 0.0)
		assert.GreaterOrEqual(t, s.Position(), prev-1e-12)
		prev = s.Position()
		if !s.InMotion() && s.Position() == 0 {
			break
		}
	}

	assert.Equal(t, 0.0, s.Position())
	assert.False(t, s.InMotion())
	assert.Equal(t, 0.0, s.Velocity())
	assert.Equal(t, []int{0}, p.selections)
}

func TestScroller_ElasticSettleAtEnd(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.Snap.Enabled = false
	s, _ := newTestScroller(cfg, 10)
	s.SetPosition(11.5)

	for i := 0; i < 600; i++ {
		s.Update(frame)
		assert.GreaterOrEqual(t, s.Position(), 9.0)
	}
	assert.Equal(t, 9.0, s.Position())
}

func TestScroller_ClampedInertiaStopsAtBoundary(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.MovementType = Clamped
	cfg.Snap.Enabled = false
	s, p := newTestScroller(cfg, 10)
	require.NoError(t, s.JumpTo(7))
	s.Update(frame)
	p.selections = nil

	// Flick toward later items: pointer travels up the screen.
	s.PointerDown(leftAt(0, 100))
	s.BeginDrag(leftAt(0, 100))
	for i := 1; i <= 5; i++ {
		s.Drag(leftAt(0, 100-float32(i)*20))
		s.Update(frame)
	}
	s.EndDrag(leftAt(0, 0))
	s.PointerUp(leftAt(0, 0))
	require.Greater(t, s.Velocity(), 0.0)

	for i := 0; i < 300; i++ {
		s.Update(frame)
		assert.LessOrEqual(t, s.Position(), 9.0)
	}
	assert.Equal(t, 9.0, s.Position())
	assert.Equal(t, 0.0, s.Velocity())
	assert.Contains(t, p.selections, 9)
}

func TestScroller_InertiaSnapsToInteger(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 100)
	require.NoError(t, s.JumpTo(10))
	s.Update(frame)

	s.BeginDrag(leftAt(0, 100))
	for i := 1; i <= 4; i++ {
		s.Drag(leftAt(0, 100-float32(i)*15))
		s.Update(frame)
	}
	s.EndDrag(leftAt(0, 40))

	for i := 0; i < 1200; i++ {
		s.Update(frame)
	}
	assert.False(t, s.InMotion())
	assert.Equal(t, math.Round(s.Position()), s.Position())
	assert.Greater(t, s.Position(), 10.0)
}

func TestScroller_InertiaDisabled(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.Inertia = false
	s, _ := newTestScroller(cfg, 20)
	require.NoError(t, s.JumpTo(5))
	s.Update(frame)

	s.BeginDrag(leftAt(0, 100))
	s.Drag(leftAt(0, 50))
	s.Update(frame)
	s.EndDrag(leftAt(0, 50))

	assert.Equal(t, 0.0, s.Velocity())
	pos := s.Position()
	for i := 0; i < 60; i++ {
		s.Update(frame)
	}
	assert.Equal(t, pos, s.Position())
}

func TestScroller_DragFollowsPointer(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	require.NoError(t, s.JumpTo(5))

	s.BeginDrag(leftAt(10, 80))
	s.Drag(leftAt(10, 30))
	assert.InDelta(t, 5.5, s.Position(), 1e-9)

	s.Drag(leftAt(10, 130))
	assert.InDelta(t, 4.5, s.Position(), 1e-9)
}

func TestScroller_DragRubberBand(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 10)

	s.BeginDrag(leftAt(0, 0))
	s.Drag(leftAt(0, 100))

	assert.InDelta(t, -(1 - 1/1.55), s.Position(), 1e-9)

	cfg := DefaultMotionConfig()
	cfg.MovementType = Clamped
	clamped, _ := newTestScroller(cfg, 10)
	clamped.BeginDrag(leftAt(0, 0))
	clamped.Drag(leftAt(0, 100))
	assert.Equal(t, 0.0, clamped.Position())
}

func TestScroller_RubberDelta(t *testing.T) {
	prev := 0.0
	for x := 0.1; x < 10; x += 0.1 {
		d := rubberDelta(x, 1)
		assert.Less(t, d, x)
		assert.Greater(t, d, prev)
		prev = d
	}
	assert.InDelta(t, -rubberDelta(2, 1), rubberDelta(-2, 1), 1e-12)
}

func TestScroller_WheelCancelsMotion(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	s.ScrollTo(10, 1)
	s.Update(0.1)
	require.True(t, s.InMotion())
	pos := s.Position()

	s.Wheel(WheelEvent{Delta: Vec2{Y: -1}})

	assert.False(t, s.InMotion())
	assert.InDelta(t, pos+0.01, s.Position(), 1e-9)
}

func TestScroller_WheelDirection(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	require.NoError(t, s.JumpTo(5))

	s.Wheel(WheelEvent{Delta: Vec2{Y: 50}})
	assert.InDelta(t, 4.5, s.Position(), 1e-9, "wheel up scrolls toward earlier items")

	s.Wheel(WheelEvent{Delta: Vec2{X: 30, Y: 10}})
	assert.InDelta(t, 4.8, s.Position(), 1e-9, "dominant axis wins")
}

func TestScroller_WheelClamped(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.MovementType = Clamped
	s, _ := newTestScroller(cfg, 20)

	s.Wheel(WheelEvent{Delta: Vec2{Y: 500}})
	assert.Equal(t, 0.0, s.Position())
}

func TestScroller_PointerUpSnaps(t *testing.T) {
	s, p := newTestScroller(DefaultMotionConfig(), 20)
	s.SetPosition(3.4)

	s.PointerDown(leftAt(0, 0))
	s.PointerUp(leftAt(0, 0))

	assert.Equal(t, []int{3, 3}, p.selections)
	require.True(t, s.InMotion())
	for i := 0; i < 60; i++ {
		s.Update(frame)
	}
	assert.InDelta(t, 3, s.Position(), 1e-9)
	assert.False(t, s.InMotion())
}

func TestScroller_PointerDownStopsMotion(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	s.ScrollTo(10, 1)
	s.Update(0.2)

	s.PointerDown(leftAt(0, 0))

	assert.False(t, s.InMotion())
	assert.Equal(t, 0.0, s.Velocity())
}

func TestScroller_InputGating(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.Draggable = false
	s, p := newTestScroller(cfg, 20)

	s.PointerDown(leftAt(0, 0))
	s.BeginDrag(leftAt(0, 0))
	s.Drag(leftAt(0, -50))
	s.EndDrag(leftAt(0, -50))
	s.PointerUp(leftAt(0, -50))
	s.Wheel(WheelEvent{Delta: Vec2{Y: -50}})

	assert.Equal(t, 0.0, s.Position())
	assert.Empty(t, p.positions)
	assert.Empty(t, p.selections)

	s.SetDraggable(true)
	right := PointerEvent{Button: MouseButtonRight}
	s.BeginDrag(right)
	right.Position.Y = -50
	s.Drag(right)
	assert.False(t, s.Dragging())
	assert.Equal(t, 0.0, s.Position())
}

func TestScroller_Scrollbar(t *testing.T) {
	s, p := newTestScroller(DefaultMotionConfig(), 11)

	s.SetPosition(5)
	require.NotEmpty(t, p.scrollbar)
	assert.InDelta(t, 0.5, p.scrollbar[len(p.scrollbar)-1], 1e-9)

	s.SetPosition(-3)
	assert.Equal(t, 0.0, p.scrollbar[len(p.scrollbar)-1])

	n := len(p.scrollbar)
	s.SetScrollbarValue(0.2)
	assert.InDelta(t, 2, s.Position(), 1e-9)
	assert.Len(t, p.scrollbar, n, "scrollbar value is not echoed")
}

func TestScroller_ZeroDeltaTime(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	s.SetPosition(-1)
	s.BeginDrag(leftAt(0, 0))
	s.Drag(leftAt(0, -10))
	s.Update(0)
	s.EndDrag(leftAt(0, -10))
	s.Update(0)

	assert.False(t, math.IsNaN(s.Position()))
	assert.False(t, math.IsInf(s.Velocity(), 0))
}

func TestScroller_EmptyList(t *testing.T) {
	s, _ := newTestScroller(DefaultMotionConfig(), 0)
	s.SetPosition(0.5)
	for i := 0; i < 300; i++ {
		s.Update(frame)
	}
	assert.Equal(t, 0.0, s.Position())
	assert.False(t, s.InMotion())
}
