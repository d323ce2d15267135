// Package snapdrag implements a draggable, edge-snapping positioning widget
// for [Ebitengine] and other hosts.
//
// A [Draggable] turns pointer press/move/release samples into a position for
// its [Target], clamped to the viewport minus a safety margin (the gap). It
// tracks which half or quadrant of the viewport holds the object's center and,
// on release, optionally eases the object to the nearest side edge
// ("adsorb"). When the object comes to rest its position can be persisted to
// a [Store] and restored the next time it is created.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := snapdrag.NewScene(snapdrag.Size{Width: 640, Height: 480}, snapdrag.DefaultInputCaps())
//	scene.Add(snapdrag.NewBox("ball", 60, 60, snapdrag.Color{R: 0.3, G: 0.7, B: 1, A: 1}))
//	if _, err := scene.Bind("ball", snapdrag.Options{InitX: snapdrag.Float(50)}); err != nil {
//		log.Fatal(err)
//	}
//	snapdrag.Run(scene, snapdrag.RunConfig{Title: "Drag me", Width: 640, Height: 480})
//
// For any other host, construct a Draggable directly with [NewDraggable] and
// call Press, Move, Release, Tick and Resize from its event loop. The
// termhost package does this for tcell terminals.
//
// # Snapping
//
// The default snap animation is a first-order decay: each tick covers
// 1/Rate of the remaining distance until it is within Threshold, then lands
// exactly on the edge (see [Step]). A fixed-duration tween (via [gween]) and a
// damped spring (via [harmonica]) are available through [Config].Snap.
//
// # Configuration
//
// [Options] overrides are merged onto [DefaultConfig] with [MergeConfig];
// neither input is modified. Options can also be read from TOML with
// [LoadOptionsFile].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package snapdrag
