// Package termhost hosts snapdrag draggables in a terminal using tcell.
//
// Positions are measured in character cells. The mouse drives pointer 0;
// a ticker drives snap animations. All draggable state is owned by the
// goroutine running App.Run.
package termhost

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/snapdrag"
)

// DefaultTick is the animation tick interval (~60 FPS).
const DefaultTick = 16 * time.Millisecond

// Box is a rectangle of cells that can be dragged around the terminal.
type Box struct {
	Name          string
	Width, Height int
	Style         tcell.Style

	x, y float64
	drag *snapdrag.Draggable
}

// SetPosition implements snapdrag.Target.
func (b *Box) SetPosition(x, y float64) {
	b.x, b.y = x, y
}

// Size implements snapdrag.Target.
func (b *Box) Size() snapdrag.Size {
	return snapdrag.Size{Width: float64(b.Width), Height: float64(b.Height)}
}

// Cell returns the box's top-left corner rounded to the nearest cell.
func (b *Box) Cell() (int, int) {
	return int(math.Round(b.x)), int(math.Round(b.y))
}

// Draggable returns the state machine bound to the box.
func (b *Box) Draggable() *snapdrag.Draggable {
	return b.drag
}

func (b *Box) contains(cx, cy int) bool {
	x, y := b.Cell()
	return cx >= x && cx < x+b.Width && cy >= y && cy < y+b.Height
}

// App routes tcell mouse and resize events to its boxes.
type App struct {
	screen tcell.Screen
	store  snapdrag.Store
	boxes  []*Box
	tick   time.Duration

	down     bool
	captured *Box
}

// New creates an App drawing to an already initialized screen. store may be nil.
func New(screen tcell.Screen, store snapdrag.Store) *App {
	return &App{screen: screen, store: store, tick: DefaultTick}
}

// SetTick changes the animation tick interval.
func (a *App) SetTick(d time.Duration) {
	if d > 0 {
		a.tick = d
	}
}

func (a *App) viewport() snapdrag.Size {
	w, h := a.screen.Size()
	return snapdrag.Size{Width: float64(w), Height: float64(h)}
}

// Add binds a draggable to b. The box name doubles as the persistence key
// when a store is set and opts.Key is unset.
func (a *App) Add(b *Box, opts snapdrag.Options) (*snapdrag.Draggable, error) {
	if b == nil {
		return nil, snapdrag.ErrNoTarget
	}
	if opts.Key == nil && a.store != nil {
		opts.Key = snapdrag.String(b.Name)
	}
	d, err := snapdrag.NewDraggable(b, a.viewport(), opts, a.store)
	if err != nil {
		return nil, fmt.Errorf("add %q: %w", b.Name, err)
	}
	d.SetName(b.Name)
	b.drag = d
	a.boxes = append(a.boxes, b)
	return d, nil
}

// Run enables mouse reporting and processes events until ctx is cancelled or
// the user presses Escape or Ctrl-C. The caller owns screen Init and Fini.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}
			a.Draw()
		case <-ticker.C:
			if a.step(a.tick.Seconds()) {
				a.Draw()
			}
		}
	}
}

// handleEvent applies one tcell event. It returns false when the app should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		a.screen.Sync()
		vp := snapdrag.Size{Width: float64(w), Height: float64(h)}
		for _, b := range a.boxes {
			b.drag.Resize(vp)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointer(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return true
}

// pointer performs press/move/release edge detection for the mouse.
func (a *App) pointer(x, y int, pressed bool) {
	pos := snapdrag.Vec2{X: float64(x), Y: float64(y)}
	switch {
	case pressed && !a.down:
		a.down = true
		if b := a.hitTest(x, y); b != nil {
			a.captured = b
			b.drag.Press(pos)
		}
	case pressed && a.down:
		if a.captured != nil {
			a.captured.drag.Move(pos)
		}
	case !pressed && a.down:
		a.down = false
		if a.captured != nil {
			a.captured.drag.Release()
			a.captured = nil
		}
	}
}

func (a *App) hitTest(x, y int) *Box {
	for i := len(a.boxes) - 1; i >= 0; i-- {
		if a.boxes[i].contains(x, y) {
			return a.boxes[i]
		}
	}
	return nil
}

// step ticks every snapping box. It reports whether anything moved.
func (a *App) step(dt float64) bool {
	moved := false
	for _, b := range a.boxes {
		if b.drag.State() == snapdrag.StateSnapping {
			b.drag.Tick(dt)
			moved = true
		}
	}
	return moved
}

// Draw renders every box, labelled with its name, and shows the screen.
func (a *App) Draw() {
	a.screen.Clear()
	for _, b := range a.boxes {
		x0, y0 := b.Cell()
		label := []rune(b.Name)
		for dy := 0; dy < b.Height; dy++ {
			for dx := 0; dx < b.Width; dx++ {
				r := ' '
				if dy == 0 && dx < len(label) {
					r = label[dx]
				}
				a.screen.SetContent(x0+dx, y0+dy, r, nil, b.Style)
			}
		}
	}
	a.screen.Show()
}
