package nom

import (
	"math"
	"testing"
)

// --- Constructor defaults ---

func TestNewSpriteDefaults(t *testing.T) {
	s := NewSprite("spr", nil)
	if s.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if s.Name != "spr" {
		t.Errorf("Name = %q, want %q", s.Name, "spr")
	}
	if s.ScaleX != 1 || s.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", s.ScaleX, s.ScaleY)
	}
	if s.Alpha() != 255 {
		t.Errorf("Alpha = %d, want 255", s.Alpha())
	}
	if s.Color() != ColorWhite {
		t.Errorf("Color = %v, want white", s.Color())
	}
	if s.BlendMode() != BlendNormal {
		t.Errorf("BlendMode = %v, want blend", s.BlendMode())
	}
	if !s.Visible {
		t.Error("Visible should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewSprite("a", nil)
	b := NewSprite("b", nil)
	if a.ID == b.ID {
		t.Errorf("IDs should be unique: %d == %d", a.ID, b.ID)
	}
}

// --- Target interfaces ---

func TestSpriteImplementsTargets(t *testing.T) {
	var s any = NewSprite("s", nil)
	if _, ok := s.(AlphaTarget); !ok {
		t.Error("Sprite is not an AlphaTarget")
	}
	if _, ok := s.(ColorTarget); !ok {
		t.Error("Sprite is not a ColorTarget")
	}
	if _, ok := s.(Transformable); !ok {
		t.Error("Sprite is not Transformable")
	}
}

func TestSpriteTransformAccessors(t *testing.T) {
	s := NewSprite("s", nil)
	s.SetPosition(Vec2{X: 3, Y: -4})
	s.SetScale(Vec2{X: 2, Y: 0.5})
	s.SetRotation(math.Pi)
	if s.X != 3 || s.Y != -4 || s.Position() != (Vec2{X: 3, Y: -4}) {
		t.Errorf("Position = %v", s.Position())
	}
	if s.ScaleX != 2 || s.ScaleY != 0.5 {
		t.Errorf("Scale = %v", s.Scale())
	}
	if s.Rotation() != math.Pi {
		t.Errorf("Rotation = %v", s.Rotation())
	}
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewSprite("parent", nil)
	child := NewSprite("child", nil)
	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("parent should have exactly child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewSprite("p1", nil)
	p2 := NewSprite("p2", nil)
	child := NewSprite("child", nil)
	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should now belong to p2")
	}
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for %s, got none", what)
		}
	}()
	fn()
}

func TestAddChildPanics(t *testing.T) {
	parent := NewSprite("parent", nil)
	child := NewSprite("child", nil)
	grandchild := NewSprite("grandchild", nil)
	parent.AddChild(child)
	child.AddChild(grandchild)

	expectPanic(t, "cycle", func() { grandchild.AddChild(parent) })
	expectPanic(t, "self-add", func() { parent.AddChild(parent) })
	expectPanic(t, "nil child", func() { parent.AddChild(nil) })
}

func TestRemoveChild(t *testing.T) {
	parent := NewSprite("parent", nil)
	a, b := NewSprite("a", nil), NewSprite("b", nil)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChild(a)
	if a.Parent != nil {
		t.Error("removed child should have nil Parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != b {
		t.Error("parent should only have b")
	}
	expectPanic(t, "wrong parent", func() { parent.RemoveChild(a) })
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewSprite("parent", nil)
	child := NewSprite("child", nil)
	parent.AddChild(child)
	child.RemoveFromParent()
	if parent.NumChildren() != 0 || child.Parent != nil {
		t.Error("child should be detached")
	}
	child.RemoveFromParent() // no-op
}

func TestFind(t *testing.T) {
	root := NewSprite("root", nil)
	a := NewSprite("a", nil)
	b := NewSprite("b", nil)
	root.AddChild(a)
	a.AddChild(b)
	if root.Find("b") != b {
		t.Error("Find(b) failed")
	}
	if root.Find("root") != root {
		t.Error("Find should include the receiver")
	}
	if root.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	root := NewSprite("root", nil)
	parent := NewSprite("parent", nil)
	child := NewSprite("child", nil)
	root.AddChild(parent)
	parent.AddChild(child)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 {
		t.Error("disposed sprites should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
	parent.Dispose() // idempotent
}

func TestNilSpriteIsDisposed(t *testing.T) {
	var s *Sprite
	if !s.IsDisposed() {
		t.Error("nil sprite should count as disposed")
	}
}

func TestActionsSkipDisposedSprite(t *testing.T) {
	clk := NewFrameClock()
	s := NewSprite("gone", nil)
	m := MoveBy(s, Vec2{X: 10}, 1)
	m.SetClock(clk)
	s.Dispose()
	if st := tick(clk, m, 1); st != FrameCompleted {
		t.Errorf("state = %v, want completed", st)
	}
	if s.X != 0 {
		t.Errorf("disposed sprite moved to %v", s.X)
	}
}
