package nom

import "testing"

func TestRepeatForeverNeverCompletes(t *testing.T) {
	clk := NewFrameClock()
	sp := newAlphaSprite("loop", 0)
	r := RepeatForever(FadeIn(sp, 0.5))
	r.SetClock(clk)

	for i := 1; i <= 100; i++ {
		if st := tick(clk, r, 0.5); st != FramePlaying {
			t.Fatalf("tick %d: state = %v, want playing", i, st)
		}
	}
	// The child completes on every tick and is rewound on that same tick.
	if r.Repeats() != 100 {
		t.Errorf("Repeats = %d, want 100", r.Repeats())
	}
	if sp.Alpha() != 0 {
		t.Errorf("alpha = %d, want 0 (rewound at the end of each iteration)", sp.Alpha())
	}
}

func TestRepeatForeverRewindWithoutIdleFrame(t *testing.T) {
	clk := NewFrameClock()
	sp := newAlphaSprite("loop", 0)
	r := RepeatForever(FadeIn(sp, 1))
	r.SetClock(clk)

	tick(clk, r, 0.5)
	tick(clk, r, 0.5) // completes and rewinds
	if r.Repeats() != 1 {
		t.Fatalf("Repeats = %d, want 1", r.Repeats())
	}
	tick(clk, r, 0.5)
	if sp.Alpha() == 0 {
		t.Error("the frame after a repeat should already animate the next iteration")
	}
}

func TestRepeatForeverOverGroup(t *testing.T) {
	clk := NewFrameClock()
	a, b := newAlphaSprite("a", 0), newAlphaSprite("b", 0)
	g := Group(FadeIn(a, 1), FadeIn(b, 2))
	r := RepeatForever(g)
	r.SetClock(clk)

	for i := 0; i < 6; i++ {
		if st := tick(clk, r, 1); st != FramePlaying {
			t.Fatalf("tick %d: %v", i, st)
		}
	}
	if r.Repeats() != 3 {
		t.Errorf("Repeats = %d, want 3", r.Repeats())
	}
	if g.NumCompleted() != 0 {
		t.Errorf("group bookkeeping not reset between repeats: %d", g.NumCompleted())
	}
}

func TestRepeatForeverOverSequence(t *testing.T) {
	clk := NewFrameClock()
	sp := newAlphaSprite("seq", 0)
	in, out := FadeIn(sp, 1), FadeOut(sp, 1)
	s := Sequence(in, out)
	r := RepeatForever(s)
	r.SetClock(clk)

	tick(clk, r, 1)
	if sp.Alpha() != 255 || s.ActiveChild() != out {
		t.Fatalf("after first child: alpha %d, index %d", sp.Alpha(), s.Index())
	}
	if st := tick(clk, r, 1); st != FramePlaying {
		t.Fatalf("second tick: %v", st)
	}
	if r.Repeats() != 1 {
		t.Errorf("Repeats = %d, want 1", r.Repeats())
	}
	if s.ActiveChild() != in || sp.Alpha() != 0 {
		t.Errorf("sequence not rewound: alpha %d, index %d", sp.Alpha(), s.Index())
	}
}

func TestRepeatForeverRewindResetsCount(t *testing.T) {
	clk := NewFrameClock()
	r := RepeatForever(Wait(0.1))
	r.SetClock(clk)
	tick(clk, r, 0.1)
	tick(clk, r, 0.1)
	r.Rewind(0)
	if r.Repeats() != 0 {
		t.Errorf("Repeats = %d, want 0", r.Repeats())
	}
}

func TestRepeatForeverNilChild(t *testing.T) {
	r := RepeatForever(nil)
	if st := r.NextFrame(0.1); st != FrameCompleted {
		t.Errorf("NextFrame = %v, want completed", st)
	}
	if r.Duration() != 0 {
		t.Errorf("Duration = %v, want 0", r.Duration())
	}
}

func TestRepeatForeverCloneDeepCopies(t *testing.T) {
	f := FadeIn(nil, 1)
	r := RepeatForever(f)
	c := r.Clone().(*RepeatForeverAction)
	if c.Action() == f {
		t.Error("clone shares its child")
	}
}

func TestRepeatForCompletesAfterTimes(t *testing.T) {
	clk := NewFrameClock()
	sp := newAlphaSprite("n", 0)
	r := RepeatFor(FadeIn(sp, 1), 3)
	r.SetClock(clk)
	if r.Duration() != 3 {
		t.Errorf("Duration = %v, want 3", r.Duration())
	}

	if st := tick(clk, r, 1); st != FramePlaying {
		t.Fatalf("tick 1: %v", st)
	}
	if st := tick(clk, r, 1); st != FramePlaying {
		t.Fatalf("tick 2: %v", st)
	}
	if st := tick(clk, r, 1); st != FrameCompleted {
		t.Fatalf("tick 3: %v, want completed", st)
	}
	if r.Repeats() != 3 {
		t.Errorf("Repeats = %d, want 3", r.Repeats())
	}
	if sp.Alpha() != 255 {
		t.Errorf("alpha = %d, want 255 (last iteration is not rewound)", sp.Alpha())
	}

	r.Rewind(0)
	if r.Repeats() != 0 || sp.Alpha() != 0 {
		t.Errorf("after rewind: repeats %d, alpha %d", r.Repeats(), sp.Alpha())
	}
}

func TestRepeatForZeroTimes(t *testing.T) {
	if st := RepeatFor(Wait(1), 0).NextFrame(0.1); st != FrameCompleted {
		t.Errorf("NextFrame = %v, want completed", st)
	}
	if r := RepeatFor(Wait(1), -3); r.Times() != 0 {
		t.Errorf("Times = %d, want 0", r.Times())
	}
}

func TestReversedRepeat(t *testing.T) {
	clk := NewFrameClock()
	sp := NewSprite("rr", nil)
	r := Reversed(RepeatFor(MoveBy(sp, Vec2{X: 4}, 1), 2))
	r.SetClock(clk)

	tick(clk, r, 1)
	if st := tick(clk, r, 1); st != FrameCompleted {
		t.Fatalf("state = %v, want completed", st)
	}
	if sp.X != -4 {
		t.Errorf("X = %v, want -4", sp.X)
	}
}
