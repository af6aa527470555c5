package scrollview

import "math"

// Vec2 represents a 2D vector for pointer positions and viewport sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// ScrollDirection is the axis cells are laid out and scrolled along.
type ScrollDirection int

const (
	Vertical ScrollDirection = iota
	Horizontal
)

func (d ScrollDirection) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Axis returns the component of v that lies on the scroll axis.
func (d ScrollDirection) Axis(v Vec2) float32 {
	if d == Horizontal {
		return v.X
	}
	return v.Y
}

// MovementType governs what happens when the position leaves [0, count-1].
type MovementType int

const (
	// Unrestricted never corrects the position. Combined with looping this
	// gives infinite scrolling.
	Unrestricted MovementType = iota
	// Elastic lets the content overscroll with rubber-band resistance and
	// springs it back once released.
	Elastic
	// Clamped stops the content hard at either end.
	Clamped
)

func (m MovementType) String() string {
	switch m {
	case Unrestricted:
		return "unrestricted"
	case Elastic:
		return "elastic"
	case Clamped:
		return "clamped"
	default:
		return "unknown"
	}
}

// MovementDirection is the on-screen direction content travels when moving
// from one index to another.
type MovementDirection int

const (
	MoveLeft MovementDirection = iota
	MoveRight
	MoveUp
	MoveDown
)

func (m MovementDirection) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	default:
		return "down"
	}
}

// epsilon floors denominators so per-frame math never divides by zero.
const epsilon = 1e-4

// minCellInterval keeps the pool near a hundred cells at most.
const minCellInterval = 0.01

// CircularIndex maps any integer, including negatives, onto [0, size).
// A size below one yields 0.
func CircularIndex(i, size int) int {
	if size < 1 {
		return 0
	}
	if i < 0 {
		return size - 1 + (i+1)%size
	}
	return i % size
}

// CircularPosition maps any position onto [0, size) using floored modulo.
// A size below one yields 0.
func CircularPosition(p float64, size int) float64 {
	if size < 1 {
		return 0
	}
	n := float64(size)
	r := math.Mod(p, n)
	if r < 0 {
		r += n
	}
	if r >= n {
		// -tiny + n can round up to n
		r -= n
	}
	return r
}

// clampf clamps a value to a range.
func clampf(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a value to [0, 1].
func clamp01(v float64) float64 {
	return clampf(v, 0, 1)
}

// clampi clamps an int to a range.
func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// signf returns 1 for non-negative values and -1 otherwise.
func signf(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// roundToInt rounds half to even.
func roundToInt(v float64) int {
	return int(math.RoundToEven(v))
}

// approximately reports whether a and b are equal within float32 precision.
func approximately(a, b float64) bool {
	tolerance := 1e-6 * math.Max(math.Abs(a), math.Abs(b))
	if tolerance < 1e-9 {
		tolerance = 1e-9
	}
	return math.Abs(a-b) < tolerance
}

// lerpUnclamped interpolates without clamping t so overshooting curves work.
func lerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}
