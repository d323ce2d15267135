package snapdrag

import (
	"fmt"
	"os"
)

// debugf prints a scene-level diagnostic line to stderr in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[snapdrag] "+format+"\n", args...)
}

// describe renders a one-line summary of a draggable for logs and the overlay.
func describe(d *Draggable) string {
	p := d.Position()
	line := fmt.Sprintf("%s %s (%.1f, %.1f) %s", d.Name(), d.State(), p.X, p.Y, d.Zone())
	if a := d.Animation(); a != nil {
		line += fmt.Sprintf(" -> %.1f", a.Target())
	}
	return line
}
