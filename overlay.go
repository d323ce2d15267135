package snapdrag

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawOverlay prints FPS/TPS and the state of every bound draggable in the
// top-left corner.
func (s *Scene) drawOverlay(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	for _, n := range s.nodes {
		if n.drag != nil {
			b.WriteString(describe(n.drag))
			b.WriteByte('\n')
		}
	}
	ebitenutil.DebugPrint(screen, b.String())
}
