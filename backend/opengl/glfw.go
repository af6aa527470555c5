package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
)

// DefaultDragThreshold is the pointer travel, in pixels, that turns a press
// into a drag.
const DefaultDragThreshold = 4

// DefaultWheelScale converts one GLFW scroll step into pixels.
const DefaultWheelScale = 40

// GLFWInputAdapter turns GLFW callbacks into scroll view input events.
//
// A left press queues PointerDown. Moving past DragThreshold while pressed
// queues BeginDrag at the press position and Drag from then on. Releasing
// queues EndDrag when a drag was running, then PointerUp. Positions and wheel
// deltas are framebuffer pixels, so they match a viewport sized from
// GetFramebufferSize on HiDPI displays. Positions are relative to the
// viewport origin set with SetViewportOrigin.
//
// Callbacks run inside glfw.PollEvents, so the queue is filled and drained on
// the same thread.
type GLFWInputAdapter struct {
	window *glfw.Window
	queue  *scrollview.EventQueue

	DragThreshold float32
	WheelScale    float32

	origin   scrollview.Vec2
	pressed  bool
	dragging bool
	pressPos scrollview.Vec2
}

// NewGLFWInputAdapter installs mouse callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:        window,
		queue:         scrollview.NewEventQueue(),
		DragThreshold: DefaultDragThreshold,
		WheelScale:    DefaultWheelScale,
	}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Queue returns the event queue the adapter fills.
func (a *GLFWInputAdapter) Queue() *scrollview.EventQueue {
	return a.queue
}

// SetViewportOrigin sets the framebuffer position of the viewport's top-left
// corner.
func (a *GLFWInputAdapter) SetViewportOrigin(origin scrollview.Vec2) {
	a.origin = origin
}

// Dispatch delivers the events gathered since the last call.
func (a *GLFWInputAdapter) Dispatch(h scrollview.InputHandler) int {
	return a.queue.Dispatch(h)
}

func (a *GLFWInputAdapter) scale() (sx, sy float32) {
	winW, winH := a.window.GetSize()
	fbW, fbH := a.window.GetFramebufferSize()
	return framebufferScale(winW, winH, fbW, fbH)
}

func (a *GLFWInputAdapter) local(x, y float64) scrollview.Vec2 {
	sx, sy := a.scale()
	return viewportPoint(x, y, sx, sy, a.origin)
}

// framebufferScale returns the framebuffer pixels per screen coordinate on
// each axis. A minimized window reports 1.
func framebufferScale(winW, winH, fbW, fbH int) (sx, sy float32) {
	sx, sy = 1, 1
	if winW > 0 && fbW > 0 {
		sx = float32(fbW) / float32(winW)
	}
	if winH > 0 && fbH > 0 {
		sy = float32(fbH) / float32(winH)
	}
	return sx, sy
}

// viewportPoint converts a cursor position in screen coordinates to
// framebuffer pixels relative to origin.
func viewportPoint(x, y float64, sx, sy float32, origin scrollview.Vec2) scrollview.Vec2 {
	return scrollview.Vec2{X: float32(x) * sx, Y: float32(y) * sy}.Sub(origin)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn := glfwMouseButtonToScroll(button)
	if btn < 0 {
		return
	}
	pos := a.local(w.GetCursorPos())

	switch action {
	case glfw.Press:
		if btn == scrollview.MouseButtonLeft {
			a.pressed = true
			a.pressPos = pos
		}
		a.queue.PushPointer(scrollview.EventPointerDown, pos, btn)
	case glfw.Release:
		if btn == scrollview.MouseButtonLeft {
			if a.dragging {
				a.queue.PushPointer(scrollview.EventEndDrag, pos, btn)
			}
			a.pressed = false
			a.dragging = false
		}
		a.queue.PushPointer(scrollview.EventPointerUp, pos, btn)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !a.pressed {
		return
	}
	pos := a.local(xpos, ypos)

	if !a.dragging {
		d := pos.Sub(a.pressPos)
		if d.X*d.X+d.Y*d.Y < a.DragThreshold*a.DragThreshold {
			return
		}
		a.dragging = true
		a.queue.PushPointer(scrollview.EventBeginDrag, a.pressPos, scrollview.MouseButtonLeft)
	}
	a.queue.PushPointer(scrollview.EventDrag, pos, scrollview.MouseButtonLeft)
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	sx, sy := a.scale()
	delta := scrollview.Vec2{X: float32(xoff) * sx, Y: float32(yoff) * sy}.Mul(a.WheelScale)
	// Fractional offsets come from trackpads, which scroll continuously.
	continuous := xoff != float64(int(xoff)) || yoff != float64(int(yoff))
	a.queue.PushWheel(delta, continuous)
}

// glfwMouseButtonToScroll maps GLFW mouse buttons to scroll view buttons.
func glfwMouseButtonToScroll(button glfw.MouseButton) scrollview.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return scrollview.MouseButtonLeft
	case glfw.MouseButtonRight:
		return scrollview.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return scrollview.MouseButtonMiddle
	default:
		return -1
	}
}
