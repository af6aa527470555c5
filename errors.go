package scrollview

import "fmt"

// ErrorKind discriminates the failures the engine can report.
type ErrorKind int

const (
	// KindConfiguration is a fatal setup problem: missing cell factory,
	// non-positive cell interval, invalid numeric fields.
	KindConfiguration ErrorKind = iota + 1
	// KindRange is an index outside [0, count-1] passed to JumpTo or ScrollTo.
	// State is left unchanged.
	KindRange
	// KindUnsupportedCombination is a configuration the engine corrected
	// on its own. It is reported as a warning, never returned from a call
	// that otherwise succeeded.
	KindUnsupportedCombination
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindRange:
		return "range"
	case KindUnsupportedCombination:
		return "unsupported combination"
	default:
		return "unknown"
	}
}

// Error is the single failure type surfaced by the engine.
type Error struct {
	Kind ErrorKind
	Op   string // operation that failed, e.g. "JumpTo"
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("scrollview: %s error: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("scrollview: %s: %s error: %s", e.Op, e.Kind, e.Msg)
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrRange) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrConfiguration          = &Error{Kind: KindConfiguration}
	ErrRange                  = &Error{Kind: KindRange}
	ErrUnsupportedCombination = &Error{Kind: KindUnsupportedCombination}
)

func configError(op, format string, args ...any) error {
	return &Error{Kind: KindConfiguration, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func rangeError(op string, index, count int) error {
	return &Error{Kind: KindRange, Op: op, Msg: fmt.Sprintf("index %d outside [0, %d]", index, count-1)}
}

func unsupportedError(format string, args ...any) error {
	return &Error{Kind: KindUnsupportedCombination, Op: "Normalize", Msg: fmt.Sprintf(format, args...)}
}
