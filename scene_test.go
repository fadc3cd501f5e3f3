package nom

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingStore struct {
	events []ActionEvent
}

func (r *recordingStore) EmitEvent(e ActionEvent) { r.events = append(r.events, e) }

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.Root() != s.root {
		t.Error("Root() should return the internal root sprite")
	}
	if s.Player() == nil || s.Player().State() != PlayerRunning {
		t.Error("scene should own a running player")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !s.player.debug {
		t.Error("debug should be true on scene and player")
	}
	s.SetDebugMode(false)
	if s.debug || s.player.debug {
		t.Error("debug should be false")
	}
}

func TestSceneUpdateDrivesActions(t *testing.T) {
	clk := NewFrameClock()
	s := NewSceneWithClock(clk)
	sp := NewSprite("hero", nil)
	s.Root().AddChild(sp)

	s.RunAction(MoveBy(sp, Vec2{X: 60}, 0.5), nil)
	for i := 0; i < 60 && s.Player().NumActions() > 0; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if s.Player().NumActions() != 0 {
		t.Fatal("action still running after one second of ticks")
	}
	if sp.X != 60 {
		t.Errorf("X = %v, want 60", sp.X)
	}
	if clk.Now() <= 0 {
		t.Error("scene update did not advance the frame clock")
	}
}

func TestSceneEmitsCompletionEvents(t *testing.T) {
	s := NewSceneWithClock(NewFrameClock())
	store := &recordingStore{}
	s.SetEntityStore(store)

	w := Wait(0)
	w.SetName("blink")
	s.RunAction(w, nil)
	s.RunAction(Wait(10), nil)
	s.Player().CancelAction("1")

	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if len(store.events) != 1 || store.events[0].Name != "blink" {
		t.Errorf("events = %v, want [{blink}]", store.events)
	}
}

func TestSceneUpdateFuncError(t *testing.T) {
	s := NewSceneWithClock(NewFrameClock())
	want := errors.New("quit")
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		return want
	})
	if err := s.Update(); !errors.Is(err, want) {
		t.Errorf("Update = %v, want %v", err, want)
	}
	if calls != 1 {
		t.Errorf("update func ran %d times", calls)
	}
}

func TestSceneDraw(t *testing.T) {
	s := NewScene()
	s.ClearColor = Color{R: 10, G: 20, B: 30, A: 255}

	img := ebiten.NewImage(8, 8)
	parent := NewSprite("parent", img)
	parent.PivotX, parent.PivotY = 0.5, 0.5
	child := NewSprite("child", img)
	child.SetColorBlendMode(BlendAdd)
	hidden := NewSprite("hidden", img)
	hidden.Visible = false
	s.Root().AddChild(parent)
	parent.AddChild(child)
	parent.AddChild(hidden)

	screen := ebiten.NewImage(64, 64)
	s.Draw(screen) // should not panic
}
