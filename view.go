package scrollview

import (
	"log/slog"
	"math"
)

// ViewOption configures a View at construction.
type ViewOption func(*viewSettings)

type viewSettings struct {
	cfg      Config
	viewport Vec2
	metrics  *Metrics
	logger   *slog.Logger
	warn     func(error)
	click    func(index int)
}

// WithConfig sets the initial config. Default: DefaultConfig().
func WithConfig(cfg Config) ViewOption {
	return func(s *viewSettings) { s.cfg = cfg }
}

// WithViewportSize sets the initial viewport size in pixels.
func WithViewportSize(size Vec2) ViewOption {
	return func(s *viewSettings) { s.viewport = size }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *Metrics) ViewOption {
	return func(s *viewSettings) { s.metrics = m }
}

// WithLogger replaces the package logger.
func WithLogger(l *slog.Logger) ViewOption {
	return func(s *viewSettings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWarningHandler receives every KindUnsupportedCombination correction
// made to a config, in addition to the warning log.
func WithWarningHandler(fn func(error)) ViewOption {
	return func(s *viewSettings) { s.warn = fn }
}

// WithCellClickHandler receives the index passed to CellContext.OnCellClicked.
func WithCellClickHandler(fn func(index int)) ViewOption {
	return func(s *viewSettings) { s.click = fn }
}

// View is a virtualized list: a Scroller drives the position, a Pool maps
// the position onto recycled cells, and in padded mode a Layout converts
// between the two.
//
// Usage:
//
//	view, err := scrollview.New(newRowCell, scrollview.WithViewportSize(scrollview.Vec2{X: 320, Y: 480}))
//	view.SetItems(rows)
//	for running {
//	    queue.Dispatch(view)
//	    view.Update(dt)
//	}
type View[T any] struct {
	cfg      Config
	items    []T
	viewport Vec2

	scroller *Scroller
	pool     *Pool[T]
	ctx      *CellContext
	layout   Layout

	cellInterval float64
	scrollOffset float64

	currentPosition float64 // index space
	selected        int
	scrollbarSize   float64
	initialized     bool
	err             error

	metrics *Metrics
	logger  *slog.Logger
	warn    func(error)
	click   func(index int)

	onPositionChanged  func(float64)
	onSelectionChanged func(int, MovementDirection)
	onScrollbarChanged func(value, size float64)
}

// New creates a view with no items. A nil factory or an invalid config is a
// KindConfiguration error.
func New[T any](factory CellFactory[T], opts ...ViewOption) (*View[T], error) {
	s := viewSettings{cfg: DefaultConfig(), logger: scrollLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if factory == nil {
		return nil, configError("New", "cell factory is nil")
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := s.cfg.checkGeometry(s.viewport); err != nil {
		return nil, err
	}

	v := &View[T]{
		viewport:      s.viewport,
		scrollbarSize: 1,
		metrics:       s.metrics,
		logger:        s.logger,
		warn:          s.warn,
		click:         s.click,
	}
	v.ctx = &CellContext{
		viewportSize: v.axisViewport,
		scrollSize:   v.scrollSize,
		selected:     func() int { return v.selected },
		clicked:      v.cellClicked,
	}

	pool, err := NewPool(factory, v.ctx)
	if err != nil {
		return nil, err
	}
	pool.metrics = v.metrics
	pool.logger = v.logger
	v.pool = pool

	v.scroller = NewScroller(s.cfg.MotionConfig)
	v.scroller.SetLogger(v.logger)
	v.scroller.SetMetrics(v.metrics)
	v.scroller.OnValueChanged(v.onScrollerValueChanged)
	v.scroller.OnSelectionChanged(v.onScrollerSelection)
	v.scroller.OnScrollbarChanged(v.onScrollerScrollbar)

	v.applyConfig(s.cfg)
	return v, nil
}

// Config returns the normalized config in use.
func (v *View[T]) Config() Config { return v.cfg }

// SetConfig validates, normalizes and applies cfg, then relayouts.
// An invalid config leaves the view unchanged.
func (v *View[T]) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.checkGeometry(v.viewport); err != nil {
		return err
	}
	v.applyConfig(cfg)
	v.Relayout()
	return nil
}

// SetViewportSize resizes the viewport and relayouts. A padded viewport too
// large for its cell size is reported through Err.
func (v *View[T]) SetViewportSize(size Vec2) {
	v.viewport = size
	v.scroller.SetViewportSize(v.axisViewport())
	v.Relayout()
}

// ViewportSize returns the viewport size in pixels.
func (v *View[T]) ViewportSize() Vec2 { return v.viewport }

// SetItems replaces the item source, updates the scroll bound and refreshes
// every visible cell.
func (v *View[T]) SetItems(items []T) {
	v.items = items
	v.scroller.SetTotalCount(len(items))
	v.Refresh()
}

// Items returns the item source.
func (v *View[T]) Items() []T { return v.items }

// SetTotalCount overrides the scroller's bound without touching the items.
func (v *View[T]) SetTotalCount(n int) {
	v.scroller.SetTotalCount(n)
}

// Refresh re-lays out cells and pushes content to every visible one.
func (v *View[T]) Refresh() { v.refresh(true) }

// Relayout re-lays out cells, refreshing content only where the item changed.
func (v *View[T]) Relayout() { v.refresh(false) }

// Update advances the scroll simulation by dt seconds. Dispatch queued input
// first so it applies before the tick.
func (v *View[T]) Update(dt float64) {
	if !v.initialized {
		v.Relayout()
	}
	v.scroller.Update(dt)
}

// Dispatch delivers queued input to the view and returns how many events were
// delivered.
func (v *View[T]) Dispatch(q *EventQueue) int {
	return q.Dispatch(v)
}

// JumpTo shows index immediately. In padded mode the cell is placed at the
// alignment given by WithAlignment, default 0.5.
func (v *View[T]) JumpTo(index int, opts ...Option) error {
	if index < 0 || index >= len(v.items) {
		return rangeError("JumpTo", index, len(v.items))
	}
	if !v.cfg.Padded() {
		return v.scroller.JumpTo(index)
	}

	o := applyOptions(opts)
	v.updateSelection(index)
	v.scroller.SetPosition(v.layout.AlignedRawPosition(index, GetOpt(o, OptAlignment)))
	return nil
}

// ScrollTo animates to index over duration seconds. Options select the easing
// curve, completion callback and, in padded mode, alignment.
func (v *View[T]) ScrollTo(index int, duration float64, opts ...Option) error {
	if index < 0 || index >= len(v.items) {
		return rangeError("ScrollTo", index, len(v.items))
	}
	if !v.cfg.Padded() {
		v.scroller.ScrollTo(float64(index), duration, opts...)
		return nil
	}

	o := applyOptions(opts)
	v.updateSelection(index)
	v.scroller.ScrollTo(v.layout.AlignedRawPosition(index, GetOpt(o, OptAlignment)), duration, opts...)
	return nil
}

// SetScrollbarValue applies a host scrollbar drag; value is in [0, 1].
func (v *View[T]) SetScrollbarValue(value float64) {
	v.scroller.SetScrollbarValue(value)
}

// Position returns the index-space position the cells are laid out for.
func (v *View[T]) Position() float64 { return v.currentPosition }

// Selected returns the selected index.
func (v *View[T]) Selected() int { return v.selected }

// Scroller returns the underlying simulator.
func (v *View[T]) Scroller() *Scroller { return v.scroller }

// Pool returns the cell pool.
func (v *View[T]) Pool() *Pool[T] { return v.pool }

// Layout returns the padded-mode geometry. It is the zero Layout in basic mode.
func (v *View[T]) Layout() Layout { return v.layout }

// Err returns the first error the pool reported while laying out cells.
func (v *View[T]) Err() error { return v.err }

// OnPositionChanged sets the callback receiving every index-space position.
func (v *View[T]) OnPositionChanged(fn func(position float64)) { v.onPositionChanged = fn }

// OnSelectionChanged sets the callback receiving the new selection and the
// direction content moves to reach it.
func (v *View[T]) OnSelectionChanged(fn func(index int, dir MovementDirection)) {
	v.onSelectionChanged = fn
}

// OnScrollbarChanged sets the callback receiving the scrollbar value and
// handle size, both in [0, 1].
func (v *View[T]) OnScrollbarChanged(fn func(value, size float64)) { v.onScrollbarChanged = fn }

// PointerDown stops any motion and starts a hold.
func (v *View[T]) PointerDown(ev PointerEvent) { v.scroller.PointerDown(ev) }

// PointerUp ends a hold, snapping to the nearest cell when snapping is on.
func (v *View[T]) PointerUp(ev PointerEvent) { v.scroller.PointerUp(ev) }

// BeginDrag starts a drag at the event position.
func (v *View[T]) BeginDrag(ev PointerEvent) { v.scroller.BeginDrag(ev) }

// Drag moves the content with the pointer.
func (v *View[T]) Drag(ev PointerEvent) { v.scroller.Drag(ev) }

// EndDrag releases the drag; inertia and elastic settle run from Update.
func (v *View[T]) EndDrag(ev PointerEvent) { v.scroller.EndDrag(ev) }

// Wheel scrolls by the wheel delta along the view's axis.
func (v *View[T]) Wheel(ev WheelEvent) { v.scroller.Wheel(ev) }

func (v *View[T]) applyConfig(cfg Config) {
	normalized, warnings := cfg.Normalize()
	for _, w := range warnings {
		v.logger.Warn("config corrected", "error", w)
		if v.warn != nil {
			v.warn(w)
		}
	}

	v.cfg = normalized
	v.ctx.Direction = normalized.Direction
	v.scroller.SetConfig(normalized.MotionConfig)
	v.scroller.SetViewportSize(v.axisViewport())
	v.logger.Debug("config applied", "padded", normalized.Padded(), "loop", normalized.Loop, "movement", normalized.MovementType)
}

func (v *View[T]) refresh(force bool) {
	v.initialized = true
	v.adjust()
	if v.cfg.Padded() {
		v.refreshScroller()
	} else {
		v.scrollbarSize = clamp01(1 / math.Max(v.cellInterval, epsilon) / math.Max(float64(len(v.items)), 1))
		// Raw and index space only differ after leaving padded mode.
		if v.scroller.Position() != v.currentPosition {
			v.scroller.SetPosition(v.currentPosition)
		}
	}
	v.updatePosition(v.currentPosition, force)
}

// adjust recomputes the cell interval and scroll offset for the current mode.
func (v *View[T]) adjust() {
	if !v.cfg.Padded() {
		v.layout = Layout{}
		v.cellInterval = v.cfg.CellInterval
		v.scrollOffset = v.cfg.ScrollOffset
		return
	}

	v.layout = Layout{
		ViewportSize:     v.axisViewport(),
		CellSize:         v.cfg.CellSize,
		Spacing:          v.cfg.Spacing,
		PaddingHead:      v.cfg.PaddingHead,
		PaddingTail:      v.cfg.PaddingTail,
		ReuseMarginCount: v.cfg.ReuseMarginCount,
		ItemCount:        len(v.items),
	}
	v.cellInterval, v.scrollOffset = v.layout.Adjust()
	v.layout.CellInterval = v.cellInterval
}

// refreshScroller syncs the scroller with padded geometry.
func (v *View[T]) refreshScroller() {
	l := v.layout
	v.scroller.SetDraggable(v.cfg.Draggable && l.Scrollable())
	v.scroller.SetSensitivity(l.ToRawSpace(l.ViewportLength() - l.PaddingHeadLength()))
	v.scrollbarSize = l.ScrollbarSize(l.ViewportLength())
	v.scroller.SetPosition(l.ToRawSpace(v.currentPosition))
}

func (v *View[T]) onScrollerValueChanged(raw float64) {
	if !v.cfg.Padded() {
		v.updatePosition(raw, false)
		return
	}

	l := v.layout
	position := 0.0
	if l.Scrollable() {
		position = l.ToIndexSpace(raw)
	}

	last := float64(len(v.items)) - 1
	switch {
	case raw > last:
		v.scrollbarSize = l.OverscrollScrollbarSize(raw - last)
	case raw < 0:
		v.scrollbarSize = l.OverscrollScrollbarSize(-raw)
	default:
		v.scrollbarSize = l.ScrollbarSize(l.ViewportLength())
	}
	v.updatePosition(position, false)
}

func (v *View[T]) onScrollerScrollbar(value float64) {
	if v.onScrollbarChanged != nil {
		v.onScrollbarChanged(value, v.scrollbarSize)
	}
}

// onScrollerSelection receives the scroller's eager selection. Raw positions
// are item indices only in basic mode.
func (v *View[T]) onScrollerSelection(index int) {
	if v.cfg.Padded() {
		return
	}
	v.updateSelection(index)
}

func (v *View[T]) updateSelection(index int) {
	if index == v.selected {
		return
	}
	prev := v.selected
	v.selected = index
	dir := v.scroller.MovementDirection(prev, index)
	v.logger.Debug("selection changed", "from", prev, "to", index, "direction", dir)
	if v.onSelectionChanged != nil {
		v.onSelectionChanged(index, dir)
	}
	if v.initialized {
		v.updatePosition(v.currentPosition, true)
	}
}

func (v *View[T]) updatePosition(position float64, force bool) {
	v.currentPosition = position
	if err := v.pool.Update(position, v.cellInterval, v.scrollOffset, v.cfg.Loop, v.items, force); err != nil {
		if v.err == nil {
			v.err = err
		}
		v.logger.Error("cell layout failed", "error", err)
	}
	if v.onPositionChanged != nil {
		v.onPositionChanged(position)
	}
}

func (v *View[T]) cellClicked(index int) {
	if v.click != nil {
		v.click(index)
	}
}

func (v *View[T]) axisViewport() float64 {
	return float64(v.cfg.Direction.Axis(v.viewport))
}

func (v *View[T]) scrollSize() (float64, float64) {
	if v.cfg.Padded() {
		return v.layout.ScrollSize()
	}
	return v.axisViewport(), 0
}

var _ InputHandler = (*View[int])(nil)
