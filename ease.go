package scrollview

import (
	"fmt"
	"math"
	"strings"
)

// EaseFunc maps normalized time t in [0, 1] to normalized progress.
// Every curve satisfies f(0) = 0 and f(1) = 1; some overshoot in between.
type EaseFunc func(t float64) float64

// Ease names a built-in easing curve.
type Ease int

const (
	Linear Ease = iota
	InBack
	InBounce
	InCirc
	InCubic
	InElastic
	InExpo
	InQuad
	InQuart
	InQuint
	InSine
	OutBack
	OutBounce
	OutCirc
	OutCubic
	OutElastic
	OutExpo
	OutQuad
	OutQuart
	OutQuint
	OutSine
	InOutBack
	InOutBounce
	InOutCirc
	InOutCubic
	InOutElastic
	InOutExpo
	InOutQuad
	InOutQuart
	InOutQuint
	InOutSine
	easeCount
)

var easeNames = [easeCount]string{
	"linear",
	"inBack", "inBounce", "inCirc", "inCubic", "inElastic", "inExpo", "inQuad", "inQuart", "inQuint", "inSine",
	"outBack", "outBounce", "outCirc", "outCubic", "outElastic", "outExpo", "outQuad", "outQuart", "outQuint", "outSine",
	"inOutBack", "inOutBounce", "inOutCirc", "inOutCubic", "inOutElastic", "inOutExpo", "inOutQuad", "inOutQuart", "inOutQuint", "inOutSine",
}

var easeFuncs = [easeCount]EaseFunc{
	linear,
	inBack, inBounce, inCirc, inCubic, inElastic, inExpo, inQuad, inQuart, inQuint, inSine,
	outBack, outBounce, outCirc, outCubic, outElastic, outExpo, outQuad, outQuart, outQuint, outSine,
	inOutBack, inOutBounce, inOutCirc, inOutCubic, inOutElastic, inOutExpo, inOutQuad, inOutQuart, inOutQuint, inOutSine,
}

// Func returns the curve for e. Unknown values fall back to Linear.
func (e Ease) Func() EaseFunc {
	if e < 0 || e >= easeCount {
		return linear
	}
	return easeFuncs[e]
}

func (e Ease) String() string {
	if e < 0 || e >= easeCount {
		return fmt.Sprintf("Ease(%d)", int(e))
	}
	return easeNames[e]
}

// ParseEase looks up a curve by name, ignoring case ("outCubic", "OutCubic").
func ParseEase(name string) (Ease, error) {
	for i, n := range easeNames {
		if strings.EqualFold(n, name) {
			return Ease(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown ease %q", name)
}

const halfPi = math.Pi * 0.5

func linear(t float64) float64 { return t }

func inBack(t float64) float64 { return t*t*t - t*math.Sin(t*math.Pi) }

func outBack(t float64) float64 { return 1 - inBack(1-t) }

func inOutBack(t float64) float64 {
	if t < 0.5 {
		return 0.5 * inBack(2*t)
	}
	return 0.5*outBack(2*t-1) + 0.5
}

func inBounce(t float64) float64 { return 1 - outBounce(1-t) }

func outBounce(t float64) float64 {
	switch {
	case t < 4.0/11.0:
		return 121 * t * t / 16
	case t < 8.0/11.0:
		return 363.0/40.0*t*t - 99.0/10.0*t + 17.0/5.0
	case t < 9.0/10.0:
		return 4356.0/361.0*t*t - 35442.0/1805.0*t + 16061.0/1805.0
	default:
		return 54.0/5.0*t*t - 513.0/25.0*t + 268.0/25.0
	}
}

func inOutBounce(t float64) float64 {
	if t < 0.5 {
		return 0.5 * inBounce(2*t)
	}
	return 0.5*outBounce(2*t-1) + 0.5
}

func inCirc(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

func outCirc(t float64) float64 { return math.Sqrt((2 - t) * t) }

func inOutCirc(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*t*t))
	}
	return 0.5 * (math.Sqrt(-(2*t-3)*(2*t-1)) + 1)
}

func inCubic(t float64) float64 { return t * t * t }

func outCubic(t float64) float64 { return inCubic(t-1) + 1 }

func inOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 0.5*inCubic(2*t-2) + 1
}

func inElastic(t float64) float64 {
	return math.Sin(13*halfPi*t) * math.Pow(2, 10*(t-1))
}

func outElastic(t float64) float64 {
	return math.Sin(-13*halfPi*(t+1))*math.Pow(2, -10*t) + 1
}

func inOutElastic(t float64) float64 {
	if t < 0.5 {
		return 0.5 * math.Sin(13*halfPi*(2*t)) * math.Pow(2, 10*(2*t-1))
	}
	return 0.5 * (math.Sin(-13*halfPi*((2*t-1)+1))*math.Pow(2, -10*(2*t-1)) + 2)
}

func inExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func outExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func inOutExpo(t float64) float64 {
	switch {
	case t == 0 || t == 1:
		return t
	case t < 0.5:
		return 0.5 * math.Pow(2, 20*t-10)
	default:
		return -0.5*math.Pow(2, -20*t+10) + 1
	}
}

func inQuad(t float64) float64 { return t * t }

func outQuad(t float64) float64 { return -t * (t - 2) }

func inOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -2*t*t + 4*t - 1
}

func inQuart(t float64) float64 { return t * t * t * t }

func outQuart(t float64) float64 {
	u := t - 1
	return u*u*u*(1-t) + 1
}

func inOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * inQuart(t)
	}
	return -8*inQuart(t-1) + 1
}

func inQuint(t float64) float64 { return t * t * t * t * t }

func outQuint(t float64) float64 { return inQuint(t-1) + 1 }

func inOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * inQuint(t)
	}
	return 0.5*inQuint(2*t-2) + 1
}

func inSine(t float64) float64 { return math.Sin((t-1)*halfPi) + 1 }

func outSine(t float64) float64 { return math.Sin(t * halfPi) }

func inOutSine(t float64) float64 { return 0.5 * (1 - math.Cos(t*math.Pi)) }
