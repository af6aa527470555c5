package scrollview

import "math"

// PointerDown stops any motion and starts a hold. Only the left button
// counts, and nothing happens while the scroller is not draggable.
func (s *Scroller) PointerDown(ev PointerEvent) {
	if !s.accepts(ev) {
		return
	}
	s.hold = true
	s.velocity = 0
	s.cancelMotion()
}

// PointerUp ends a hold. A hold released without dragging snaps to the
// nearest index when snapping is enabled.
func (s *Scroller) PointerUp(ev PointerEvent) {
	if !s.accepts(ev) {
		return
	}
	if s.hold && s.cfg.Snap.Enabled {
		s.updateSelection(s.clampIndex(roundToInt(s.position)))
		s.scrollTo("snap", float64(roundToInt(s.position)), s.cfg.Snap.Duration,
			applyOptions([]Option{WithEase(s.cfg.Snap.Ease)}))
	}
	s.hold = false
}

// BeginDrag anchors a drag at ev.Position.
func (s *Scroller) BeginDrag(ev PointerEvent) {
	if !s.accepts(ev) {
		return
	}
	s.hold = false
	s.beginDragPointer = ev.Position
	s.scrollStartPosition = s.position
	s.dragging = true
	s.cancelMotion()
}

// Drag moves the position by the pointer travel since BeginDrag, scaled so a
// full viewport equals Sensitivity. Travel toward the viewport head reveals
// later items. Past a bound, Clamped stops at the bound and Elastic follows
// the pointer with growing resistance.
func (s *Scroller) Drag(ev PointerEvent) {
	if !s.accepts(ev) || !s.dragging {
		return
	}

	travel := -float64(s.cfg.Direction.Axis(ev.Position.Sub(s.beginDragPointer)))
	position := travel/s.viewport()*s.cfg.Sensitivity + s.scrollStartPosition

	offset := s.boundaryOffset(position)
	position += offset
	if s.cfg.MovementType == Elastic && offset != 0 {
		position -= rubberDelta(offset, s.cfg.Sensitivity)
	}
	s.updatePosition(position, true)
}

// EndDrag finishes a drag. Inertia and elastic settle take over on the next
// Update.
func (s *Scroller) EndDrag(ev PointerEvent) {
	if !s.accepts(ev) {
		return
	}
	s.dragging = false
}

// Wheel scrolls by the dominant component of the wheel delta. Continuous
// events feed the velocity estimate for the frame they arrive in.
func (s *Scroller) Wheel(ev WheelEvent) {
	if !s.cfg.Draggable {
		return
	}

	dx, dy := float64(ev.Delta.X), -float64(ev.Delta.Y)
	var delta float64
	if s.cfg.Direction == Horizontal {
		delta = dx
		if math.Abs(dy) > math.Abs(dx) {
			delta = dy
		}
	} else {
		delta = dy
		if math.Abs(dx) > math.Abs(dy) {
			delta = dx
		}
	}

	if ev.Continuous {
		s.scrolling = true
	}

	position := s.position + delta/s.viewport()*s.cfg.Sensitivity
	if s.cfg.MovementType == Clamped {
		position += s.boundaryOffset(position)
	}

	s.cancelMotion()
	s.updatePosition(position, true)
}

func (s *Scroller) accepts(ev PointerEvent) bool {
	return s.cfg.Draggable && ev.Button == MouseButtonLeft
}

func (s *Scroller) viewport() float64 {
	return math.Max(s.viewportSize, epsilon)
}

var _ InputHandler = (*Scroller)(nil)
