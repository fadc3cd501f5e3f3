package nom

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// setupBenchScene creates a Scene with n image-backed sprites on a frame
// clock, each running a looping fade and move.
func setupBenchScene(n int) *Scene {
	s := NewSceneWithClock(NewFrameClock())
	img := ebiten.NewImage(32, 32)
	root := s.Root()
	for i := 0; i < n; i++ {
		sp := NewSprite("sp", img)
		sp.X = float64(i%100) * 40
		sp.Y = float64(i/100) * 40
		root.AddChild(sp)
		s.RunAction(RepeatForever(Group(
			Sequence(FadeOut(sp, 0.5), FadeIn(sp, 0.5)),
			Reversed(MoveBy(sp, Vec2{X: 8}, 1)),
		)), nil)
	}
	return s
}

// --- Action Benchmarks ---

func BenchmarkPlayerUpdate_10000Actions(b *testing.B) {
	s := setupBenchScene(10000)
	p := s.Player()
	p.Update(1.0 / 60) // warmup: first frames snapshot their targets

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Update(1.0 / 60)
	}
}

func BenchmarkFadeNextFrame(b *testing.B) {
	clk := NewFrameClock()
	sp := NewSprite("f", nil)
	a := RepeatForever(FadeIn(sp, 1))
	a.SetClock(clk)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		clk.Advance(1.0 / 60)
		a.NextFrame(1.0 / 60)
	}
}

func BenchmarkGroupClone(b *testing.B) {
	sp := NewSprite("c", nil)
	g := Group(FadeIn(sp, 1), MoveBy(sp, Vec2{X: 1}, 1), Sequence(Wait(1), RotateBy(sp, 1, 1)))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkRunActionReplace(b *testing.B) {
	p := NewActionPlayer(PlayerConfig{Clock: NewFrameClock()})
	sp := NewSprite("r", nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.RunActionName("fade", FadeIn(sp, 1), nil)
	}
}

// --- Draw Benchmarks ---

func BenchmarkDraw_10000Sprites_Animated(b *testing.B) {
	s := setupBenchScene(10000)
	screen := ebiten.NewImage(1280, 720)
	s.Draw(screen) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Player().Update(1.0 / 60)
		s.Draw(screen)
	}
}
