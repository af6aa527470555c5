package scrollview

// motionState describes an in-flight automatic scroll: either a timed, eased
// transition toward endPosition or an elastic settle back inside the bounds.
// At most one exists per Scroller; starting a new one replaces the old.
type motionState struct {
	active      bool
	elastic     bool
	duration    float64
	ease        EaseFunc
	startTime   float64
	endPosition float64
	onComplete  func()
}

// reset makes the state inert without invoking onComplete.
func (m *motionState) reset() {
	*m = motionState{ease: outCubic}
}

// complete invokes onComplete once and resets.
func (m *motionState) complete() {
	fn := m.onComplete
	m.reset()
	if fn != nil {
		fn()
	}
}

// motionKind labels a motion for metrics and logs.
func (m *motionState) kind() string {
	if m.elastic {
		return "elastic"
	}
	return "timed"
}
