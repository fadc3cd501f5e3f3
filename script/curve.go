package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/tanema/gween/ease"

	nom "github.com/i8degrees/nomlib-sub004"
)

// curveVars are the globals a curve script reads: elapsed time, start value,
// total change and duration.
var curveVars = [4]string{"t", "b", "c", "d"}

const curvePrelude = "math := import(\"math\")\nout := "

var errNoOut = errors.New("script does not define out")

// CompileCurve compiles a tengo expression over t, b, c and d into a timing
// curve. The math module is available as math.
//
//	b + c * math.pow(t / d, 3)
func CompileCurve(expr string) (nom.TimingCurve, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("script: compile curve: empty expression")
	}
	return compileCurve("expression", []byte(curvePrelude+"("+expr+")"))
}

// CompileCurveSource compiles a complete tengo script into a timing curve.
// The script reads t, b, c and d and must assign its result to a global
// named out. Modules are imported explicitly, for example
// math := import("math").
func CompileCurveSource(name string, src []byte) (nom.TimingCurve, error) {
	return compileCurve(name, src)
}

func compileCurve(name string, src []byte) (nom.TimingCurve, error) {
	s := tengo.NewScript(src)
	for _, v := range curveVars {
		_ = s.Add(v, 0.0)
	}
	s.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile curve %s: %w", name, err)
	}

	c := &scriptCurve{name: name, compiled: compiled}
	if _, err := c.eval(0, 0, 1, 1); err != nil {
		return nil, fmt.Errorf("script: curve %s: %w", name, err)
	}
	return c.apply, nil
}

// scriptCurve runs a compiled tengo curve. A compiled script is not safe for
// concurrent use, which matches the single goroutine nom actions run on.
type scriptCurve struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

func (c *scriptCurve) eval(t, b, ch, d float32) (float32, error) {
	for i, v := range [4]float32{t, b, ch, d} {
		if err := c.compiled.Set(curveVars[i], float64(v)); err != nil {
			return 0, err
		}
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}
	if !c.compiled.IsDefined("out") {
		return 0, errNoOut
	}
	out := c.compiled.Get("out")
	switch out.ValueType() {
	case "float", "int":
	default:
		return 0, fmt.Errorf("out is %s, want a number", out.ValueType())
	}
	return float32(out.Float()), nil
}

// apply is the nom.TimingCurve. A script that fails at runtime falls back to
// linear interpolation and is reported once.
func (c *scriptCurve) apply(t, b, ch, d float32) float32 {
	if !c.failed {
		v, err := c.eval(t, b, ch, d)
		if err == nil {
			return v
		}
		c.failed = true
		nom.Logger().Warn("script: curve failed, using linear", "curve", c.name, "error", err)
	}
	return ease.Linear(t, b, ch, d)
}
