package nom

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is an 8-bit RGBA color. Not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	ColorWhite       = Color{255, 255, 255, 255}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorTransparent = Color{}
)

// ToRGBA converts c to the standard library representation.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Vec2 is a 2D vector used for positions, scales and displacements.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNone     BlendMode = iota // opaque copy (skip blending)
	BlendNormal                    // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
)

// String returns the blend mode's lower-case name.
func (b BlendMode) String() string {
	switch b {
	case BlendNone:
		return "none"
	case BlendNormal:
		return "blend"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNone:
		return ebiten.BlendCopy
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// AlphaTarget is anything whose opacity can be animated by a fade action.
type AlphaTarget interface {
	Alpha() uint8
	SetAlpha(a uint8)
}

// ColorTarget is anything whose tint can be animated by a colorize action.
type ColorTarget interface {
	Color() Color
	SetColor(c Color)
	SetColorBlendMode(mode BlendMode)
}

// Transformable is anything that can be moved, scaled and rotated.
type Transformable interface {
	Position() Vec2
	SetPosition(p Vec2)
	Scale() Vec2
	SetScale(s Vec2)
	Rotation() float64
	SetRotation(r float64)
}

// disposer is implemented by targets with an explicit end of life. Actions
// treat a disposed target the same as a missing one.
type disposer interface {
	IsDisposed() bool
}

// live reports whether target may be mutated.
func live(target any) bool {
	if target == nil {
		return false
	}
	if d, ok := target.(disposer); ok && d.IsDisposed() {
		return false
	}
	return true
}
