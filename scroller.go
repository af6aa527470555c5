package scrollview

import (
	"log/slog"
	"math"

	"github.com/charmbracelet/harmonica"
)

// SnapConfig configures automatic alignment to the nearest index once
// inertia has slowed below VelocityThreshold.
type SnapConfig struct {
	Enabled           bool    `yaml:"enabled"`
	VelocityThreshold float64 `yaml:"velocity_threshold" validate:"gte=0"`
	Duration          float64 `yaml:"duration" validate:"gte=0"`
	Ease              Ease    `yaml:"ease"`
}

// MotionConfig holds the scroller's policy. All fields are read every frame,
// so changes through SetConfig take effect on the next tick.
type MotionConfig struct {
	Direction    ScrollDirection `yaml:"direction"`
	MovementType MovementType    `yaml:"movement_type"`

	// Elasticity is the smoothing time of the elastic settle, in seconds.
	Elasticity float64 `yaml:"elasticity" validate:"gt=0"`

	// Sensitivity is the position change produced by dragging across the
	// whole viewport.
	Sensitivity float64 `yaml:"sensitivity" validate:"gte=0"`

	Inertia bool `yaml:"inertia"`

	// DecelerationRate is the fraction of velocity kept after one second.
	DecelerationRate float64 `yaml:"deceleration_rate" validate:"gte=0,lte=1"`

	// Draggable gates every pointer, drag and wheel handler.
	Draggable bool `yaml:"draggable"`

	Snap SnapConfig `yaml:"snap"`
}

// DefaultSnapConfig returns the snap policy used by DefaultMotionConfig.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		Enabled:           true,
		VelocityThreshold: 0.5,
		Duration:          0.3,
		Ease:              InOutCubic,
	}
}

// DefaultMotionConfig returns an elastic, inertial, snapping vertical scroller.
func DefaultMotionConfig() MotionConfig {
	return MotionConfig{
		Direction:        Vertical,
		MovementType:     Elastic,
		Elasticity:       0.1,
		Sensitivity:      1,
		Inertia:          true,
		DecelerationRate: 0.03,
		Draggable:        true,
		Snap:             DefaultSnapConfig(),
	}
}

const (
	// velocityCutoff zeroes inertial velocity below this magnitude.
	velocityCutoff = 0.001
	// settleVelocity completes an elastic settle below this magnitude.
	settleVelocity = 0.01
	// velocitySmoothing is the per-second weight of the newest velocity sample.
	velocitySmoothing = 10
)

// Scroller simulates scroll motion in raw position units, where 0 is the first
// item and totalCount-1 the last. It is advanced once per frame by Update and
// nudged by input handlers in between. Not safe for concurrent use: run every
// call on the host's frame thread.
type Scroller struct {
	cfg          MotionConfig
	viewportSize float64
	totalCount   int

	position            float64
	prevPosition        float64
	scrollStartPosition float64
	velocity            float64
	clock               float64

	dragging  bool // between BeginDrag and EndDrag
	scrolling bool // continuous wheel input this frame
	hold      bool // pointer pressed without dragging yet

	beginDragPointer Vec2
	motion           motionState

	onValueChanged     func(float64)
	onSelectionChanged func(int)
	onScrollbarChanged func(float64)

	metrics *Metrics
	logger  *slog.Logger
}

// NewScroller creates a scroller at position 0 with no items.
func NewScroller(cfg MotionConfig) *Scroller {
	s := &Scroller{
		cfg:          cfg,
		viewportSize: 1,
		logger:       scrollLogger,
	}
	s.motion.reset()
	return s
}

// SetLogger replaces the debug logger. A nil logger restores the default.
func (s *Scroller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = scrollLogger
	}
	s.logger = l
}

// SetMetrics attaches metrics. A nil value disables them.
func (s *Scroller) SetMetrics(m *Metrics) { s.metrics = m }

// Config returns the current motion policy.
func (s *Scroller) Config() MotionConfig { return s.cfg }

// SetConfig replaces the motion policy. In-flight motion is kept.
func (s *Scroller) SetConfig(cfg MotionConfig) { s.cfg = cfg }

// SetDraggable enables or disables all input handlers.
func (s *Scroller) SetDraggable(v bool) { s.cfg.Draggable = v }

// SetSensitivity sets the position change for a full-viewport drag.
func (s *Scroller) SetSensitivity(v float64) { s.cfg.Sensitivity = v }

// ViewportSize returns the viewport length along the scroll axis, in pixels.
func (s *Scroller) ViewportSize() float64 { return s.viewportSize }

// SetViewportSize sets the viewport length along the scroll axis, in pixels.
func (s *Scroller) SetViewportSize(size float64) { s.viewportSize = size }

// SetTotalCount sets the item count that bounds the position.
func (s *Scroller) SetTotalCount(n int) { s.totalCount = max(n, 0) }

// TotalCount returns the item count.
func (s *Scroller) TotalCount() int { return s.totalCount }

// Position returns the current raw position.
func (s *Scroller) Position() float64 { return s.position }

// Velocity returns the current velocity in positions per second.
func (s *Scroller) Velocity() float64 { return s.velocity }

// Dragging reports whether a drag is in progress.
func (s *Scroller) Dragging() bool { return s.dragging }

// InMotion reports whether an automatic scroll or elastic settle is running.
func (s *Scroller) InMotion() bool { return s.motion.active }

// Settling reports whether an elastic settle is running.
func (s *Scroller) Settling() bool { return s.motion.active && s.motion.elastic }

// OnValueChanged sets the callback fired whenever the position is committed.
func (s *Scroller) OnValueChanged(fn func(position float64)) { s.onValueChanged = fn }

// OnSelectionChanged sets the callback fired when the scroller decides which
// index will end up selected. It fires eagerly: before an animated scroll or
// elastic settle has arrived.
func (s *Scroller) OnSelectionChanged(fn func(index int)) { s.onSelectionChanged = fn }

// OnScrollbarChanged sets the callback receiving the scrollbar value in [0, 1].
func (s *Scroller) OnScrollbarChanged(fn func(value float64)) { s.onScrollbarChanged = fn }

// SetPosition cancels all motion and commits p immediately.
func (s *Scroller) SetPosition(p float64) {
	s.cancelMotion()
	s.velocity = 0
	s.dragging = false
	s.updatePosition(p, true)
}

// SetScrollbarValue applies a scrollbar drag. The scrollbar callback is not
// echoed back.
func (s *Scroller) SetScrollbarValue(v float64) {
	s.updatePosition(v*(float64(s.totalCount)-1), false)
}

// Update advances the simulation by dt seconds.
func (s *Scroller) Update(dt float64) {
	dt = math.Max(dt, epsilon)
	s.clock += dt
	offset := s.boundaryOffset(s.position)

	switch {
	case s.motion.active:
		var position float64
		var done bool
		if s.motion.elastic {
			position, done = s.settle(offset, dt)
		} else {
			position, done = s.advanceTimed()
		}
		s.updatePosition(position, true)
		if done {
			s.logger.Debug("scroll motion complete", "kind", s.motion.kind(), "position", position)
			s.motion.complete()
		}

	case !(s.dragging || s.scrolling) && (!approximately(offset, 0) || !approximately(s.velocity, 0)):
		position := s.position

		if s.cfg.MovementType == Elastic && !approximately(offset, 0) {
			s.startElastic()
			s.updateSelection(s.clampIndex(roundToInt(position)))
		} else if s.cfg.Inertia {
			s.velocity *= math.Pow(s.cfg.DecelerationRate, dt)
			if math.Abs(s.velocity) < velocityCutoff {
				s.velocity = 0
			}
			position += s.velocity * dt

			if s.cfg.Snap.Enabled && math.Abs(s.velocity) < s.cfg.Snap.VelocityThreshold {
				s.scrollTo("snap", float64(roundToInt(s.position)), s.cfg.Snap.Duration,
					applyOptions([]Option{WithEase(s.cfg.Snap.Ease)}))
			}
		} else {
			s.velocity = 0
		}

		if !approximately(s.velocity, 0) {
			if s.cfg.MovementType == Clamped {
				position += s.boundaryOffset(position)
				if approximately(position, 0) || approximately(position, s.lastPosition()) {
					s.velocity = 0
					s.updateSelection(roundToInt(position))
				}
			}
			s.updatePosition(position, true)
		}
	}

	if !s.motion.active && (s.dragging || s.scrolling) && s.cfg.Inertia {
		newVelocity := (s.position - s.prevPosition) / dt
		s.velocity += (newVelocity - s.velocity) * clamp01(dt*velocitySmoothing)
	}

	s.prevPosition = s.position
	s.scrolling = false
}

// ScrollTo moves to position over duration seconds. A non-positive duration
// commits immediately and invokes OnComplete synchronously. Otherwise the
// destination index is reported as the new selection right away, before any
// frame has moved the position.
func (s *Scroller) ScrollTo(position, duration float64, opts ...Option) {
	s.scrollTo("timed", position, duration, applyOptions(opts))
}

func (s *Scroller) scrollTo(kind string, position, duration float64, o options) {
	onComplete := GetOpt(o, OptOnComplete)
	if duration <= 0 {
		s.SetPosition(CircularPosition(position, s.totalCount))
		if onComplete != nil {
			onComplete()
		}
		return
	}

	s.motion.reset()
	s.motion.active = true
	s.motion.duration = duration
	s.motion.ease = easeFrom(o)
	s.motion.startTime = s.clock
	s.motion.endPosition = s.position + s.MovementAmount(s.position, position)
	s.motion.onComplete = onComplete

	s.velocity = 0
	s.scrollStartPosition = s.position

	s.metrics.motionStarted(kind)
	s.logger.Debug("scroll motion start", "kind", kind, "from", s.position, "to", s.motion.endPosition, "duration", duration)
	s.updateSelection(roundToInt(CircularPosition(s.motion.endPosition, s.totalCount)))
}

// JumpTo cancels all motion and moves to index immediately. The index must be
// inside [0, totalCount-1]; otherwise a KindRange error is returned and
// nothing changes.
func (s *Scroller) JumpTo(index int) error {
	if index < 0 || index > s.totalCount-1 {
		return rangeError("JumpTo", index, s.totalCount)
	}
	s.updateSelection(index)
	s.SetPosition(float64(index))
	return nil
}

// MovementAmount returns the signed distance to travel from src to dst.
// Unrestricted movement takes the shortest way around the loop; the other
// policies clamp dst into [0, totalCount-1].
func (s *Scroller) MovementAmount(src, dst float64) float64 {
	n := float64(s.totalCount)
	if s.cfg.MovementType != Unrestricted {
		return clampf(dst, 0, s.lastPosition()) - src
	}

	amount := CircularPosition(dst, s.totalCount) - CircularPosition(src, s.totalCount)
	if math.Abs(amount) > n*0.5 {
		amount = signf(-amount) * (n - math.Abs(amount))
	}
	return amount
}

// MovementDirection returns which way content travels on screen when moving
// from src to dst.
func (s *Scroller) MovementDirection(src, dst int) MovementDirection {
	amount := s.MovementAmount(float64(src), float64(dst))
	if s.cfg.Direction == Horizontal {
		if amount > 0 {
			return MoveLeft
		}
		return MoveRight
	}
	if amount > 0 {
		return MoveUp
	}
	return MoveDown
}

// boundaryOffset returns the correction that brings p back inside
// [0, totalCount-1], or 0 when unrestricted.
func (s *Scroller) boundaryOffset(p float64) float64 {
	if s.cfg.MovementType == Unrestricted {
		return 0
	}
	if p < 0 {
		return -p
	}
	if last := s.lastPosition(); p > last {
		return last - p
	}
	return 0
}

// lastPosition is the largest in-bounds position. An empty list pins the
// position at 0.
func (s *Scroller) lastPosition() float64 {
	return math.Max(float64(s.totalCount)-1, 0)
}

func (s *Scroller) startElastic() {
	s.motion.reset()
	s.motion.active = true
	s.motion.elastic = true
	s.metrics.motionStarted("elastic")
	s.logger.Debug("elastic settle start", "position", s.position)
}

// settle advances the elastic spring toward the nearest bound.
func (s *Scroller) settle(offset, dt float64) (float64, bool) {
	target := s.position + offset
	spring := harmonica.NewSpring(dt, 2/math.Max(s.cfg.Elasticity, epsilon), 1)
	position, velocity := spring.Update(s.position, s.velocity, target)

	// A critically damped spring still crosses its target when it starts
	// with enough velocity toward it.
	if (target-s.position > 0) == (position > target) {
		position = target
		velocity = 0
	}
	s.velocity = velocity

	if math.Abs(s.velocity) < settleVelocity {
		s.velocity = 0
		return float64(s.clampIndex(roundToInt(position))), true
	}
	return position, false
}

// advanceTimed evaluates the eased transition at the current clock.
func (s *Scroller) advanceTimed() (float64, bool) {
	alpha := clamp01((s.clock - s.motion.startTime) / math.Max(s.motion.duration, epsilon))
	if approximately(alpha, 1) {
		return s.motion.endPosition, true
	}
	return lerpUnclamped(s.scrollStartPosition, s.motion.endPosition, s.motion.ease(alpha)), false
}

func (s *Scroller) cancelMotion() {
	if s.motion.active {
		s.logger.Debug("scroll motion cancelled", "kind", s.motion.kind(), "position", s.position)
	}
	s.motion.reset()
}

func (s *Scroller) updatePosition(p float64, updateScrollbar bool) {
	s.position = p
	if s.onValueChanged != nil {
		s.onValueChanged(p)
	}
	if updateScrollbar && s.onScrollbarChanged != nil {
		s.onScrollbarChanged(clamp01(p / math.Max(float64(s.totalCount)-1, epsilon)))
	}
}

func (s *Scroller) updateSelection(index int) {
	s.metrics.selectionChanged()
	if s.onSelectionChanged != nil {
		s.onSelectionChanged(index)
	}
}

// clampIndex clamps i into [0, totalCount-1], or 0 with no items.
func (s *Scroller) clampIndex(i int) int {
	if s.totalCount < 1 {
		return 0
	}
	return clampi(i, 0, s.totalCount-1)
}

// rubberDelta is the resistance applied to an overscroll of overStretching
// while dragging: it grows ever more slowly as the overscroll grows.
func rubberDelta(overStretching, viewSize float64) float64 {
	viewSize = math.Max(viewSize, epsilon)
	return (1 - 1/(math.Abs(overStretching)*0.55/viewSize+1)) * viewSize * signf(overStretching)
}
