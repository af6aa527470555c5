/*
Package scrollview implements a virtualized scroll engine: a bounded pool of
reusable cells laid out from a continuous scroll position, and a per-frame
motion simulator that produces that position from drag, wheel, inertia,
elastic overscroll, snapping and eased programmatic scrolls.

# Overview

A View owns three parts. The Scroller turns input and time into a raw
position. In padded mode a Layout converts that raw position into index
space, where 0 shows the first item at the head edge. The Pool maps the
index-space position onto recycled cells and tells each one which item it
shows and where it sits, as a normalized position in [0, 1] across the
scroll area.

The engine never draws. Cells implement Cell and position themselves from
the normalized value, usually through CellContext.CellCenter. The host owns
the frame loop and calls Dispatch then Update once per frame.

# Quick Start

	cells := &opengl.RectCells{}
	view, err := scrollview.New(cells.New,
	    scrollview.WithViewportSize(scrollview.Vec2{X: 320, Y: 480}))
	if err != nil {
	    return err
	}
	view.SetItems(rows)

	input := opengl.NewGLFWInputAdapter(window)
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input.Dispatch(view)
	    view.Update(dt)
	    cells.Draw(dl, view, origin)
	}

# Modes

Basic mode (CellSize == 0) uses Config.CellInterval and Config.ScrollOffset
as given: the default shows five cells with the selected one centered. The
raw position is the index position and Loop wraps items around.

Padded mode (CellSize > 0) derives the interval from pixel geometry, spacing,
head and tail padding and reuse margins. Looping, snapping and unrestricted
movement are not available there; Config.Normalize turns them off and reports
each correction as a KindUnsupportedCombination error.

# Movement Types

	Unrestricted  position may go anywhere; ScrollTo takes the short way round
	Elastic       overscroll is resisted while dragging and springs back
	Clamped       position stops at 0 and count-1

# Input

	Drag         left button only; travel across the viewport moves Sensitivity
	Wheel        dominant axis; wheel-up scrolls toward earlier items
	Pointer down stops inertia and any running motion
	Pointer up   snaps to the nearest index when released without a drag

All input handlers are gated by MotionConfig.Draggable.

# Programmatic Scrolling

	view.JumpTo(12)
	view.ScrollTo(40, 0.35, scrollview.WithEase(scrollview.OutQuint))
	view.ScrollTo(7, 0.2, scrollview.WithAlignment(0), scrollview.OnComplete(done))

ScrollTo reports the destination as the new selection immediately. Any
SetPosition, JumpTo or wheel input cancels a running motion without calling
its OnComplete.

# Configuration

Config is YAML-tagged and validated with go-playground/validator. LoadConfig
reads a file over DefaultConfig:

	direction: vertical
	movement_type: elastic
	cell_size: 48
	spacing: 4
	padding_head: 12
	snap:
	  enabled: false

# Errors

Every error is an *Error carrying a Kind. Match with errors.Is against
ErrConfiguration, ErrRange or ErrUnsupportedCombination.

# Observability

The package logs through log/slog (see WithLogger and SetVerbose) and exports
Prometheus metrics through WithMetrics.
*/
package scrollview
