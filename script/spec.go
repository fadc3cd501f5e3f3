package script

import (
	"fmt"
	"strconv"
	"strings"

	nom "github.com/i8degrees/nomlib-sub004"

	"gopkg.in/yaml.v3"
)

// File is the top-level document of an action file.
type File struct {
	Actions map[string]Node `yaml:"actions"`
}

// Node describes one action. Which fields apply depends on Kind.
type Node struct {
	Kind     string   `yaml:"kind"`
	Name     string   `yaml:"name"`
	Target   string   `yaml:"target"`
	Duration float64  `yaml:"duration"`
	Speed    *float64 `yaml:"speed"`

	Curve       string `yaml:"curve"`
	CurveScript string `yaml:"curve_script"`
	CurveFile   string `yaml:"curve_file"`

	// fade_alpha_by
	Alpha int16 `yaml:"alpha"`

	// colorize: either an absolute color or per-channel deltas
	Color *YAMLColor `yaml:"color"`
	By    *RGBDelta  `yaml:"by"`
	Blend string     `yaml:"blend"`

	// move_by, scale_by
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// rotate_by, in radians
	Angle float64 `yaml:"angle"`

	// repeat
	Times int `yaml:"times"`

	Actions []Node `yaml:"actions"`
	Action  *Node  `yaml:"action"`
}

// RGBDelta is a signed per-channel color displacement.
type RGBDelta struct {
	R int16 `yaml:"r"`
	G int16 `yaml:"g"`
	B int16 `yaml:"b"`
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa" into a nom.Color.
type YAMLColor struct {
	nom.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var out nom.Color
	var err error
	if out.R, err = parse(0); err != nil {
		return err
	}
	if out.G, err = parse(2); err != nil {
		return err
	}
	if out.B, err = parse(4); err != nil {
		return err
	}
	out.A = 255
	if len(s) == 8 {
		if out.A, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = out
	return nil
}

// Node kinds.
const (
	KindFadeIn        = "fade_in"
	KindFadeOut       = "fade_out"
	KindFadeAlphaBy   = "fade_alpha_by"
	KindColorize      = "colorize"
	KindMoveBy        = "move_by"
	KindScaleBy       = "scale_by"
	KindRotateBy      = "rotate_by"
	KindWait          = "wait"
	KindGroup         = "group"
	KindSequence      = "sequence"
	KindRepeat        = "repeat"
	KindRepeatForever = "repeat_forever"
	KindReversed      = "reversed"
)

var blendModes = map[string]nom.BlendMode{}

func init() {
	for _, m := range []nom.BlendMode{nom.BlendNone, nom.BlendNormal, nom.BlendAdd, nom.BlendMultiply} {
		blendModes[m.String()] = m
	}
}

func parseBlend(s string) (nom.BlendMode, error) {
	if s == "" {
		return nom.BlendNormal, nil
	}
	m, ok := blendModes[s]
	if !ok {
		return 0, fmt.Errorf("unknown blend mode %q", s)
	}
	return m, nil
}
