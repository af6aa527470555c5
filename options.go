package scrollview

// Option configures a single ScrollTo or JumpTo request.
type Option func(*options)

// options holds request configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for request options.
//
// Example:
//
//	var OptBounce = scrollview.NewOptKey("bounce", false)
//	view.ScrollTo(12, 0.4, scrollview.WithOpt(OptBounce, true))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// --- Scroll request options ---
var (
	OptEase       = NewOptKey("ease", OutCubic)
	OptEaseFunc   = NewOptKey[EaseFunc]("easeFunc", nil) // Overrides OptEase when set
	OptAlignment  = NewOptKey("alignment", 0.5)          // 0 head, 0.5 center, 1 tail
	OptOnComplete = NewOptKey[func()]("onComplete", nil)
)

// WithEase selects a built-in easing curve for an animated scroll.
func WithEase(e Ease) Option { return WithOpt(OptEase, e) }

// WithEaseFunc supplies a custom easing curve. It must satisfy f(0)=0, f(1)=1.
func WithEaseFunc(fn EaseFunc) Option { return WithOpt(OptEaseFunc, fn) }

// WithAlignment places the target cell inside the viewport: 0 aligns it to the
// head edge, 1 to the tail edge, 0.5 centers it. Only padded views use it.
func WithAlignment(a float64) Option { return WithOpt(OptAlignment, clamp01(a)) }

// OnComplete registers a callback invoked once the scroll arrives.
// It is not invoked if the scroll is cancelled.
func OnComplete(fn func()) Option { return WithOpt(OptOnComplete, fn) }

// easeFrom resolves the easing curve of a request.
func easeFrom(o options) EaseFunc {
	if fn := GetOpt(o, OptEaseFunc); fn != nil {
		return fn
	}
	return GetOpt(o, OptEase).Func()
}
