package nom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// spriteIDCounter is a plain counter; sprites are created on the game goroutine.
var spriteIDCounter uint32

func nextSpriteID() uint32 {
	spriteIDCounter++
	return spriteIDCounter
}

// Sprite is the scene element actions animate. It carries the transform,
// opacity and tint state that leaf actions mutate, and an optional image for
// Scene.Draw. Sprites form a tree rooted at Scene.Root; children inherit their
// parent's transform and alpha when drawn.
type Sprite struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Sprite
	children []*Sprite

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	PivotX   float64
	PivotY   float64
	rotation float64 // radians

	Visible bool

	// Appearance
	alpha     uint8
	color     Color
	blendMode BlendMode
	image     *ebiten.Image

	disposed bool
}

// NewSprite creates a fully opaque, untinted sprite. img may be nil for
// sprites that only exist to be animated or to group children.
func NewSprite(name string, img *ebiten.Image) *Sprite {
	return &Sprite{
		ID:        nextSpriteID(),
		Name:      name,
		ScaleX:    1,
		ScaleY:    1,
		Visible:   true,
		alpha:     255,
		color:     ColorWhite,
		blendMode: BlendNormal,
		image:     img,
	}
}

// Image returns the sprite's image, or nil.
func (s *Sprite) Image() *ebiten.Image { return s.image }

// SetImage replaces the sprite's image.
func (s *Sprite) SetImage(img *ebiten.Image) { s.image = img }

// Alpha returns the sprite's opacity.
func (s *Sprite) Alpha() uint8 { return s.alpha }

// SetAlpha sets the sprite's opacity.
func (s *Sprite) SetAlpha(a uint8) { s.alpha = a }

// Color returns the sprite's tint.
func (s *Sprite) Color() Color { return s.color }

// SetColor sets the sprite's tint.
func (s *Sprite) SetColor(c Color) { s.color = c }

// BlendMode returns the blend mode used when drawing the sprite.
func (s *Sprite) BlendMode() BlendMode { return s.blendMode }

// SetColorBlendMode sets the blend mode used when drawing the sprite.
func (s *Sprite) SetColorBlendMode(mode BlendMode) { s.blendMode = mode }

// Position returns the local position.
func (s *Sprite) Position() Vec2 { return Vec2{s.X, s.Y} }

// SetPosition sets the local position.
func (s *Sprite) SetPosition(p Vec2) { s.X, s.Y = p.X, p.Y }

// Scale returns the local scale.
func (s *Sprite) Scale() Vec2 { return Vec2{s.ScaleX, s.ScaleY} }

// SetScale sets the local scale.
func (s *Sprite) SetScale(v Vec2) { s.ScaleX, s.ScaleY = v.X, v.Y }

// Rotation returns the local rotation in radians.
func (s *Sprite) Rotation() float64 { return s.rotation }

// SetRotation sets the local rotation in radians.
func (s *Sprite) SetRotation(r float64) { s.rotation = r }

// --- Tree manipulation ---

// AddChild appends child to this sprite's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this sprite (cycle).
func (s *Sprite) AddChild(child *Sprite) {
	if child == nil {
		panic("nom: cannot add nil child")
	}
	if isAncestor(child, s) {
		panic("nom: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = s
	s.children = append(s.children, child)
}

// RemoveChild detaches child from this sprite.
// Panics if child.Parent != s.
func (s *Sprite) RemoveChild(child *Sprite) {
	if child.Parent != s {
		panic("nom: child's parent is not this sprite")
	}
	s.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this sprite from its parent.
// No-op if this sprite has no parent.
func (s *Sprite) RemoveFromParent() {
	if s.Parent == nil {
		return
	}
	s.Parent.RemoveChild(s)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (s *Sprite) Children() []*Sprite {
	return s.children
}

// NumChildren returns the number of children.
func (s *Sprite) NumChildren() int {
	return len(s.children)
}

// Find returns the first sprite in this subtree (depth first, including s)
// with the given name, or nil.
func (s *Sprite) Find(name string) *Sprite {
	if s.Name == name {
		return s
	}
	for _, c := range s.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this sprite from its parent, marks it as disposed,
// and recursively disposes all descendants. Actions still holding a
// disposed sprite stop mutating it.
func (s *Sprite) Dispose() {
	if s.disposed {
		return
	}
	s.RemoveFromParent()
	s.dispose()
}

func (s *Sprite) dispose() {
	s.disposed = true
	s.ID = 0
	for _, child := range s.children {
		child.Parent = nil
		child.dispose()
	}
	s.children = nil
	s.Parent = nil
	s.image = nil
}

// IsDisposed returns true if this sprite has been disposed. A nil sprite
// counts as disposed.
func (s *Sprite) IsDisposed() bool {
	return s == nil || s.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of sprite.
func isAncestor(candidate, sprite *Sprite) bool {
	for p := sprite; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from s.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (s *Sprite) removeChildByPtr(child *Sprite) {
	for i, c := range s.children {
		if c == child {
			copy(s.children[i:], s.children[i+1:])
			s.children[len(s.children)-1] = nil
			s.children = s.children[:len(s.children)-1]
			return
		}
	}
}
