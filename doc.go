// Package ectofx is a real-time 2D particle and visual-effect engine for
// [Ebitengine], built for an AR ghost-hunting game.
//
// It renders celebration bursts, an energy-suction transfer, a continuous
// proton beam, and a capture-failure indicator into an offscreen layer that
// is composed over the host's camera view.
//
// # Quick start
//
// The simplest way to get started is [NewGame], which adapts a [Director] to
// [ebiten.Game]:
//
//	d, _ := ectofx.NewDirector(ectofx.Options{})
//	ebiten.RunGame(ectofx.NewGame(d))
//
// Then trigger effects from anywhere, including other goroutines:
//
//	d.TriggerCelebration(&ectofx.Vec2{X: 320, Y: 240}, ectofx.GhostCaptured)
//	d.TriggerSuction(ghostPos, packPos)
//	d.StartBeam()
//	d.TriggerFailure(nil) // nil means the surface center
//
// For full control, call [Director.Resize], [Director.Update] and
// [Director.Draw] from your own game loop, or hand the Director any [Surface]
// implementation with [Director.Attach].
//
// # Readiness
//
// A Director without a surface is not ready: triggers return [ErrNotReady],
// except [Director.StartBeam], which retries with backoff until the surface
// arrives. Wait on [Director.Ready] to sequence startup.
//
// # Entities
//
// Particles ([CelebrationParticle], [SuctionParticle], [ProtonParticle],
// [FailureParticle]) are short-lived and retire when their life reaches zero.
// Effects ([Explosion], [EnergyConnection], [ProtonBeam], [FailureGlyph]) are
// longer-lived composites with their own termination rules. Both are
// advanced, rendered and retired in the same tick.
//
// # Tuning
//
// Every constant lives in [Config], loadable from YAML with [LoadConfig].
// User-facing [Preferences] (intensity, haptics, reduced motion) persist via
// [PreferenceStore]. A [Script] replays triggers and screenshots for visual
// checks. ECS integration is available via a [Donburi] adapter in ectofx/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package ectofx
