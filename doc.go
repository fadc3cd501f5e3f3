// Package nom is a 2D game-engine layer for [Ebitengine] whose centre is a
// declarative action system: timed mutations (fades, color blends, moves,
// repeats, reversals, sequences, groups) scheduled against live sprites and
// advanced once per frame.
//
// # Quick start
//
//	scene := nom.NewScene()
//	hero := nom.NewSprite("hero", img)
//	scene.Root().AddChild(hero)
//
//	intro := nom.Sequence(
//		nom.FadeIn(hero, 0.5),
//		nom.Group(
//			nom.MoveBy(hero, nom.Vec2{X: 120}, 1.0),
//			nom.Colorize(hero, nom.Color{R: 255, G: 80, B: 80, A: 255}, nom.BlendMultiply, 1.0),
//		),
//	)
//	scene.Player().RunActionName("intro", intro, func() { log.Print("intro done") })
//
//	nom.Run(scene, nom.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// # Actions
//
// Every [Action] is a small state machine. [Action.NextFrame] advances it and
// returns [FramePlaying] until the frame on which it finishes, when it returns
// [FrameCompleted] exactly once. Leaf actions ([FadeIn], [FadeOut],
// [FadeAlphaBy], [Colorize], [ColorizeBy], [MoveBy], [ScaleBy], [RotateBy],
// [Wait], [Callback]) keep their own [Timer] and derive elapsed time from it;
// the first frame is credited with the host's delta, later deltas are only
// hints. Composite actions ([Group], [Sequence], [RepeatFor],
// [RepeatForever], [Reversed]) delegate to children and forward speed,
// timing curve, pause, resume, rewind and release to them.
//
// Timing curves are gween easing functions ([gween/ease]); [CurveByName]
// resolves them by snake_case name.
//
// # Scheduling
//
// An [ActionPlayer] maps names to [DispatchQueue]s. [ActionPlayer.Update]
// advances each queue once per frame in start order. A completed action is
// removed from its queue before its callback runs; cancelled or replaced
// actions never fire their callbacks. Player state ([PlayerRunning],
// [PlayerPaused], [PlayerStopped]) applies to every queue on the next update.
//
// Everything is single-threaded: call Update, RunAction and the cancel
// methods from the game loop goroutine only.
//
// The script subpackage loads action graphs from YAML, and the ecs module
// publishes completions into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
// [gween/ease]: https://github.com/tanema/gween
package nom
