package nom

import (
	"math"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TimingCurve maps elapsed time t to a value, given the start value b, the
// total change c and the duration d. Any gween easing function is a
// TimingCurve.
type TimingCurve = ease.TweenFunc

// DefaultTimingCurve is the curve assigned to newly constructed actions.
var DefaultTimingCurve TimingCurve = ease.Linear

var curves = map[string]TimingCurve{
	"linear":         ease.Linear,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"out_in_quad":    ease.OutInQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"out_in_cubic":   ease.OutInCubic,
	"in_quart":       ease.InQuart,
	"out_quart":      ease.OutQuart,
	"in_out_quart":   ease.InOutQuart,
	"out_in_quart":   ease.OutInQuart,
	"in_quint":       ease.InQuint,
	"out_quint":      ease.OutQuint,
	"in_out_quint":   ease.InOutQuint,
	"out_in_quint":   ease.OutInQuint,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"out_in_sine":    ease.OutInSine,
	"in_expo":        ease.InExpo,
	"out_expo":       ease.OutExpo,
	"in_out_expo":    ease.InOutExpo,
	"out_in_expo":    ease.OutInExpo,
	"in_circ":        ease.InCirc,
	"out_circ":       ease.OutCirc,
	"in_out_circ":    ease.InOutCirc,
	"out_in_circ":    ease.OutInCirc,
	"in_elastic":     ease.InElastic,
	"out_elastic":    ease.OutElastic,
	"in_out_elastic": ease.InOutElastic,
	"out_in_elastic": ease.OutInElastic,
	"in_back":        ease.InBack,
	"out_back":       ease.OutBack,
	"in_out_back":    ease.InOutBack,
	"out_in_back":    ease.OutInBack,
	"in_bounce":      ease.InBounce,
	"out_bounce":     ease.OutBounce,
	"in_out_bounce":  ease.InOutBounce,
	"out_in_bounce":  ease.OutInBounce,
}

// CurveByName looks up a gween easing function by its snake_case name
// ("linear", "out_cubic", "in_out_bounce", ...).
func CurveByName(name string) (TimingCurve, bool) {
	fn, ok := curves[name]
	return fn, ok
}

// CurveNames returns the registered curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SampleCurve evaluates fn from 0 to 1 at n+1 evenly spaced points, for
// previewing a curve in tools. Returns nil if n < 1.
func SampleCurve(fn TimingCurve, n int) []float64 {
	if n < 1 {
		return nil
	}
	if fn == nil {
		fn = DefaultTimingCurve
	}
	tw := gween.New(0, 1, 1, fn)
	out := make([]float64, 0, n+1)
	out = append(out, 0)
	step := float32(1) / float32(n)
	for i := 1; i <= n; i++ {
		v, _ := tw.Update(step)
		out = append(out, float64(v))
	}
	return out
}

// interpolate evaluates fn(t, b, c, d). A non-positive duration yields the
// end value; a nil curve falls back to linear.
func interpolate(fn TimingCurve, t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(t), float32(b), float32(c), float32(d)))
}

// roundChannel rounds v to the nearest integer and clamps it to [0, 255].
// Truncating instead would turn 254.99998 into 254 at the end of a fade.
func roundChannel(v float64) uint8 {
	r := math.Round(v)
	switch {
	case math.IsNaN(r) || r <= 0:
		return 0
	case r >= 255:
		return 255
	default:
		return uint8(r)
	}
}
