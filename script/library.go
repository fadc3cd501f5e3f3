package script

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	nom "github.com/i8degrees/nomlib-sub004"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownAction is returned by Build for a name the library does not
	// declare.
	ErrUnknownAction = errors.New("script: unknown action")
	// ErrUnknownKind is returned for a node whose kind is not recognized.
	ErrUnknownKind = errors.New("script: unknown action kind")
	// ErrUnknownTarget is returned when a target name cannot be resolved.
	ErrUnknownTarget = errors.New("script: unknown target")
	// ErrTargetType is returned when a target cannot be animated by the
	// node's kind, such as a fade on something without alpha.
	ErrTargetType = errors.New("script: target type mismatch")
	// ErrUnknownCurve is returned for a curve name that is not registered.
	ErrUnknownCurve = errors.New("script: unknown curve")
)

// Resolver maps target names used in action files to live objects.
type Resolver interface {
	Resolve(name string) (any, bool)
}

// Targets is a Resolver backed by a map.
type Targets map[string]any

func (t Targets) Resolve(name string) (any, bool) {
	v, ok := t[name]
	return v, ok
}

// Tree resolves target names by searching the sprite tree under root.
func Tree(root *nom.Sprite) Resolver {
	return treeResolver{root}
}

type treeResolver struct{ root *nom.Sprite }

func (r treeResolver) Resolve(name string) (any, bool) {
	if s := r.root.Find(name); s != nil {
		return s, true
	}
	return nil, false
}

// Library holds the action declarations of one file, with every curve
// already validated and compiled.
type Library struct {
	actions map[string]Node
	curves  map[string]nom.TimingCurve
	files   []string
	dir     string
}

// Load reads and parses the action file at filename. curve_file paths are
// resolved relative to the file's directory.
func Load(filename string) (*Library, error) {
	return LoadFS(os.DirFS(filepath.Dir(filename)), filepath.Base(filename))
}

// LoadFS reads and parses name from fsys.
func LoadFS(fsys fs.FS, name string) (*Library, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	lib, err := parse(data, fsys, path.Dir(name))
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", name, err)
	}
	return lib, nil
}

// Parse parses an action document. Nodes using curve_file are rejected
// because there is no directory to resolve them against; use Load or
// LoadFS for those.
func Parse(data []byte) (*Library, error) {
	lib, err := parse(data, nil, "")
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return lib, nil
}

func parse(data []byte, fsys fs.FS, dir string) (*Library, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	lib := &Library{
		actions: f.Actions,
		curves:  make(map[string]nom.TimingCurve),
		dir:     dir,
	}
	if lib.actions == nil {
		lib.actions = map[string]Node{}
	}
	for _, name := range lib.Names() {
		n := lib.actions[name]
		if err := lib.check(&n, fsys, dir); err != nil {
			return nil, fmt.Errorf("action %s: %w", name, err)
		}
	}
	return lib, nil
}

// check validates n and its children and compiles their curves.
func (l *Library) check(n *Node, fsys fs.FS, dir string) error {
	switch n.Kind {
	case KindFadeIn, KindFadeOut, KindFadeAlphaBy, KindMoveBy, KindScaleBy, KindRotateBy, KindWait:
	case KindColorize:
		if (n.Color == nil) == (n.By == nil) {
			return fmt.Errorf("colorize needs exactly one of color or by")
		}
		if _, err := parseBlend(n.Blend); err != nil {
			return err
		}
	case KindGroup, KindSequence:
		for i := range n.Actions {
			if err := l.check(&n.Actions[i], fsys, dir); err != nil {
				return fmt.Errorf("%s[%d]: %w", n.Kind, i, err)
			}
		}
	case KindRepeat, KindRepeatForever, KindReversed:
		if n.Action == nil {
			return fmt.Errorf("%s needs an action", n.Kind)
		}
		if err := l.check(n.Action, fsys, dir); err != nil {
			return fmt.Errorf("%s: %w", n.Kind, err)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, n.Kind)
	}
	if n.Duration < 0 {
		return fmt.Errorf("negative duration %v", n.Duration)
	}
	return l.compileCurve(n, fsys, dir)
}

func (l *Library) compileCurve(n *Node, fsys fs.FS, dir string) error {
	set := 0
	for _, s := range []string{n.Curve, n.CurveScript, n.CurveFile} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("curve, curve_script and curve_file are exclusive")
	}

	switch {
	case n.Curve != "":
		if _, ok := nom.CurveByName(n.Curve); !ok {
			return fmt.Errorf("%w %q", ErrUnknownCurve, n.Curve)
		}
	case n.CurveScript != "":
		if _, ok := l.curves[n.CurveScript]; ok {
			return nil
		}
		fn, err := CompileCurve(n.CurveScript)
		if err != nil {
			return err
		}
		l.curves[n.CurveScript] = fn
	case n.CurveFile != "":
		if fsys == nil {
			return fmt.Errorf("curve_file %s: no directory to load from", n.CurveFile)
		}
		key := path.Join(dir, n.CurveFile)
		if _, ok := l.curves[key]; ok {
			return nil
		}
		src, err := fs.ReadFile(fsys, key)
		if err != nil {
			return fmt.Errorf("curve_file: %w", err)
		}
		fn, err := CompileCurveSource(n.CurveFile, src)
		if err != nil {
			return err
		}
		l.curves[key] = fn
		l.files = append(l.files, key)
	}
	return nil
}

// Names returns the declared action names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.actions))
	for name := range l.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurveFiles returns the .tengo files the library compiled, relative to
// the directory it was loaded from.
func (l *Library) CurveFiles() []string {
	return append([]string(nil), l.files...)
}

// Build constructs a new action graph for the named action. The returned
// action is named after the declaration unless the node sets its own name.
func (l *Library) Build(name string, targets Resolver) (nom.Action, error) {
	n, ok := l.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, name)
	}
	b := builder{lib: l, targets: targets}
	a, err := b.build(&n)
	if err != nil {
		return nil, fmt.Errorf("script: build %s: %w", name, err)
	}
	if a.Name() == "" {
		a.SetName(name)
	}
	return a, nil
}
