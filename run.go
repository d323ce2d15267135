package snapdrag

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title       string
	Width       int
	Height      int
	Resizable   bool // window resizes notify every bound draggable
	ShowOverlay bool
	Debug       bool
}

// Run creates a window and game loop for the scene and blocks until the
// window is closed. For full control, implement ebiten.Game yourself and call
// Scene.Update, Scene.Draw and Scene.Resize directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(scene.viewport.Width), int(scene.viewport.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetOverlay(cfg.ShowOverlay)
	scene.SetDebugMode(cfg.Debug)
	return ebiten.RunGame(&game{scene: scene})
}

type game struct {
	scene *Scene
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout reports the outside size as the logical screen size, so the
// viewport tracks the window one-to-one.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(Size{float64(outsideWidth), float64(outsideHeight)})
	return outsideWidth, outsideHeight
}
