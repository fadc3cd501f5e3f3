package nom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, action completions are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ActionEvent)
}

// ActionEvent reports that a named action ran to completion.
type ActionEvent struct {
	Name string
}

// Scene is the top-level object that owns the sprite tree and the action
// player driving it.
type Scene struct {
	root   *Sprite
	player *ActionPlayer
	store  EntityStore
	debug  bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	updateFunc func() error
}

// NewScene creates a scene whose actions are timed by the system clock.
func NewScene() *Scene {
	return NewSceneWithClock(nil)
}

// NewSceneWithClock creates a scene whose actions are timed by clock. Pass a
// *FrameClock to run actions on game time instead of wall time.
func NewSceneWithClock(clock Clock) *Scene {
	s := &Scene{root: NewSprite("root", nil)}
	s.player = NewActionPlayer(PlayerConfig{
		Clock:      clock,
		OnComplete: s.emitCompleted,
	})
	return s
}

// Root returns the scene's root sprite.
func (s *Scene) Root() *Sprite {
	return s.root
}

// Player returns the scene's action player.
func (s *Scene) Player() *ActionPlayer {
	return s.player
}

// RunAction runs action on the scene's player. See ActionPlayer.RunAction.
func (s *Scene) RunAction(action Action, done func()) bool {
	return s.player.RunAction(action, done)
}

// SetUpdateFunc registers a function called at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances every running action by one tick (1/TPS seconds) and then
// calls the update function, if any.
func (s *Scene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.player.Update(dt)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw fills the screen with ClearColor and draws every visible sprite that
// has an image, depth first. Children inherit their parent's transform and
// alpha.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.ToRGBA())
	}
	drawSprite(screen, s.root, ebiten.GeoM{}, 1)
}

func drawSprite(screen *ebiten.Image, sp *Sprite, parent ebiten.GeoM, parentAlpha float64) {
	if !sp.Visible || sp.disposed {
		return
	}

	var local ebiten.GeoM
	if sp.image != nil {
		b := sp.image.Bounds()
		local.Translate(-sp.PivotX*float64(b.Dx()), -sp.PivotY*float64(b.Dy()))
	}
	local.Scale(sp.ScaleX, sp.ScaleY)
	local.Rotate(sp.rotation)
	local.Translate(sp.X, sp.Y)
	local.Concat(parent)

	alpha := parentAlpha * float64(sp.alpha) / 255
	if sp.image != nil && alpha > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = local
		op.ColorScale.ScaleWithColor(sp.color.ToRGBA())
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Blend = sp.blendMode.EbitenBlend()
		screen.DrawImage(sp.image, op)
	}

	// children are positioned relative to the parent's origin, not its pivot
	var childGeo ebiten.GeoM
	childGeo.Scale(sp.ScaleX, sp.ScaleY)
	childGeo.Rotate(sp.rotation)
	childGeo.Translate(sp.X, sp.Y)
	childGeo.Concat(parent)
	for _, c := range sp.children {
		drawSprite(screen, c, childGeo, alpha)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables per-update player stats.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.player.SetDebugMode(enabled)
}

func (s *Scene) emitCompleted(name string) {
	if s.store != nil {
		s.store.EmitEvent(ActionEvent{Name: name})
	}
}
