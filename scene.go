package snapdrag

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNodeNotFound is returned by Bind when no node carries the requested name.
var ErrNodeNotFound = errors.New("snapdrag: node not found")

// InputCaps describes which pointer sources the host environment provides.
// It is supplied at construction; the scene never detects them itself.
type InputCaps struct {
	Mouse bool
	Touch bool
}

// DefaultInputCaps enables both mouse and touch input.
func DefaultInputCaps() InputCaps {
	return InputCaps{Mouse: true, Touch: true}
}

// Scene owns a set of boxes, routes ebiten pointer input to the draggables
// bound to them, ticks their snap animations and draws them.
type Scene struct {
	handlerRegistry

	// ClearColor fills the screen before nodes are drawn when its alpha is > 0.
	ClearColor Color

	nodes    []*Node // painter order; last is topmost
	byName   map[string]*Node
	viewport Size
	caps     InputCaps
	store    Store
	sink     EventSink
	debug    bool
	overlay  bool

	// Input state
	pointers     [maxPointers]pointerState
	captured     [maxPointers]*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewScene creates an empty scene for a viewport of the given size.
func NewScene(viewport Size, caps InputCaps) *Scene {
	return &Scene{
		byName:   make(map[string]*Node),
		viewport: viewport,
		caps:     caps,
	}
}

// Add appends a node on top of the existing ones. Adding a second node with
// the same name shadows the first for Node and Bind lookups.
func (s *Scene) Add(n *Node) {
	s.nodes = append(s.nodes, n)
	s.byName[n.Name] = n
}

// Remove detaches a node, releasing any pointer captured by it. A gesture or
// snap in flight is dropped and the draggable is left Idle.
func (s *Scene) Remove(n *Node) {
	for i, c := range s.nodes {
		if c == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
	if s.byName[n.Name] == n {
		delete(s.byName, n.Name)
	}
	for i := range s.captured {
		if s.captured[i] == n {
			s.captured[i] = nil
		}
	}
	if n.drag != nil {
		n.drag.abort()
	}
}

// Node looks up a node by name.
func (s *Scene) Node(name string) (*Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

// Nodes returns the scene's nodes in painter order. The returned slice MUST NOT be mutated.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Bind attaches a Draggable to the named node. When the scene has a Store and
// opts.Key is unset, the node name is used as the persistence key.
func (s *Scene) Bind(name string, opts Options) (*Draggable, error) {
	n, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("bind %q: %w", name, ErrNodeNotFound)
	}
	if opts.Key == nil && s.store != nil {
		opts.Key = String(name)
	}
	d, err := NewDraggable(n, s.viewport, opts, s.store)
	if err != nil {
		return nil, fmt.Errorf("bind %q: %w", name, err)
	}
	d.SetName(name)
	d.observer = s.relay
	if s.debug {
		d.SetDebugWriter(os.Stderr)
	}
	n.drag = d
	return d, nil
}

// relay forwards a draggable's events to scene-level handlers and the sink.
func (s *Scene) relay(ctx DragContext) {
	s.fire(ctx)
	if s.sink != nil {
		s.sink.EmitEvent(ctx.event())
	}
}

// SetStore sets the position store used by subsequent Bind calls.
func (s *Scene) SetStore(store Store) {
	s.store = store
}

// SetEventSink sets the optional ECS bridge. It receives events from every
// draggable bound to this scene.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug logging to stderr for the scene and
// every bound draggable.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	for _, n := range s.nodes {
		if n.drag == nil {
			continue
		}
		if enabled {
			n.drag.SetDebugWriter(os.Stderr)
		} else {
			n.drag.SetDebugWriter(nil)
		}
	}
}

// SetOverlay toggles the on-screen state overlay.
func (s *Scene) SetOverlay(enabled bool) {
	s.overlay = enabled
}

// Viewport returns the current viewport size.
func (s *Scene) Viewport() Size {
	return s.viewport
}

// Resize notifies every bound draggable of a new viewport size. It does not
// interrupt gestures in progress.
func (s *Scene) Resize(viewport Size) {
	if viewport == s.viewport {
		return
	}
	s.viewport = viewport
	s.debugf("resize %.0fx%.0f", viewport.Width, viewport.Height)
	for _, n := range s.nodes {
		if n.drag != nil {
			n.drag.Resize(viewport)
		}
	}
}

// Update processes input and advances snap animations by one tick.
func (s *Scene) Update() {
	s.update(1.0 / float64(ebiten.TPS()))
}

func (s *Scene) update(dt float64) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.tick(dt)
}

// tick drives every running snap animation once.
func (s *Scene) tick(dt float64) {
	for _, n := range s.nodes {
		if n.drag != nil {
			n.drag.Tick(dt)
		}
	}
}

// Draw fills the screen and draws every visible node.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	for _, n := range s.nodes {
		if !n.Visible {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(n.X), float32(n.Y), float32(n.Width), float32(n.Height),
			n.Color.toRGBA(), false)
	}
	if s.overlay {
		s.drawOverlay(screen)
	}
}
