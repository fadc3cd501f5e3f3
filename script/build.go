package script

import (
	"fmt"
	"path"

	nom "github.com/i8degrees/nomlib-sub004"
)

type builder struct {
	lib     *Library
	targets Resolver
}

func (b *builder) build(n *Node) (nom.Action, error) {
	a, err := b.buildKind(n)
	if err != nil {
		return nil, err
	}
	if n.Name != "" {
		a.SetName(n.Name)
	}
	// Composites propagate speed and curve, so a composite's own settings
	// override those of its children.
	if n.Speed != nil {
		a.SetSpeed(*n.Speed)
	}
	if fn := b.curve(n); fn != nil {
		a.SetTimingCurve(fn)
	}
	return a, nil
}

func (b *builder) buildKind(n *Node) (nom.Action, error) {
	switch n.Kind {
	case KindFadeIn, KindFadeOut, KindFadeAlphaBy:
		t, err := resolve[nom.AlphaTarget](b, n, "alpha")
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case KindFadeIn:
			return nom.FadeIn(t, n.Duration), nil
		case KindFadeOut:
			return nom.FadeOut(t, n.Duration), nil
		default:
			return nom.FadeAlphaBy(t, n.Alpha, n.Duration), nil
		}

	case KindColorize:
		t, err := resolve[nom.ColorTarget](b, n, "color")
		if err != nil {
			return nil, err
		}
		mode, err := parseBlend(n.Blend)
		if err != nil {
			return nil, err
		}
		if n.By != nil {
			return nom.ColorizeBy(t, n.By.R, n.By.G, n.By.B, mode, n.Duration), nil
		}
		return nom.Colorize(t, n.Color.Color, mode, n.Duration), nil

	case KindMoveBy, KindScaleBy, KindRotateBy:
		t, err := resolve[nom.Transformable](b, n, "transformable")
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case KindMoveBy:
			return nom.MoveBy(t, nom.Vec2{X: n.X, Y: n.Y}, n.Duration), nil
		case KindScaleBy:
			return nom.ScaleBy(t, nom.Vec2{X: n.X, Y: n.Y}, n.Duration), nil
		default:
			return nom.RotateBy(t, n.Angle, n.Duration), nil
		}

	case KindWait:
		return nom.Wait(n.Duration), nil

	case KindGroup, KindSequence:
		children := make([]nom.Action, 0, len(n.Actions))
		for i := range n.Actions {
			c, err := b.build(&n.Actions[i])
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", n.Kind, i, err)
			}
			children = append(children, c)
		}
		if n.Kind == KindGroup {
			return nom.Group(children...), nil
		}
		return nom.Sequence(children...), nil

	case KindRepeat, KindRepeatForever, KindReversed:
		child, err := b.build(n.Action)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Kind, err)
		}
		switch n.Kind {
		case KindRepeat:
			return nom.RepeatFor(child, n.Times), nil
		case KindRepeatForever:
			return nom.RepeatForever(child), nil
		default:
			return nom.Reversed(child), nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, n.Kind)
}

// curve returns the node's compiled curve, or nil to keep the default.
func (b *builder) curve(n *Node) nom.TimingCurve {
	switch {
	case n.Curve != "":
		fn, _ := nom.CurveByName(n.Curve)
		return fn
	case n.CurveScript != "":
		return b.lib.curves[n.CurveScript]
	case n.CurveFile != "":
		return b.lib.curves[path.Join(b.lib.dir, n.CurveFile)]
	}
	return nil
}

func resolve[T any](b *builder, n *Node, what string) (T, error) {
	var zero T
	if b.targets == nil {
		return zero, fmt.Errorf("%w %q: no targets given", ErrUnknownTarget, n.Target)
	}
	v, ok := b.targets.Resolve(n.Target)
	if !ok {
		return zero, fmt.Errorf("%w %q", ErrUnknownTarget, n.Target)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q (%T) is not %s", ErrTargetType, n.Target, v, what)
	}
	return t, nil
}
