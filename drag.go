package snapdrag

import (
	"fmt"
	"io"

	"github.com/tanema/gween/ease"
)

// Target is the object being dragged. SetPosition is invoked on every clamped
// move and every animation tick and must only affect visual placement.
type Target interface {
	SetPosition(x, y float64)
	Size() Size
}

// PointerKind distinguishes the three pointer events a Draggable consumes.
type PointerKind uint8

const (
	PointerPress   PointerKind = iota // button or finger went down
	PointerMove                       // position changed while down
	PointerRelease                    // button or finger went up
)

// PointerEvent is a single pointer sample tagged with its kind.
type PointerEvent struct {
	Kind      PointerKind
	Pos       Vec2
	PointerID int
}

// Draggable is the drag state machine for one target object.
//
//	Idle --press--> Dragging --release--> Idle | Snapping --landed--> Idle
//
// A press while Snapping cancels the animation and starts dragging from the
// last animated position. Moves and releases arriving outside a gesture are
// ignored. All methods must be called from a single goroutine.
type Draggable struct {
	handlerRegistry

	cfg    Config
	target Target
	store  Store
	sink   EventSink
	name   string
	easing ease.TweenFunc

	viewport Size
	objSize  Size
	bounds   Bounds

	state     State
	anchor    Vec2
	origin    Vec2
	pos       Vec2
	pointer   Vec2
	pointerID int
	zone      Zone
	snap      *SnapAnimation

	observer func(DragContext)
	debug    io.Writer

	// OnError, when set, receives persistence failures. Errors never abort a
	// gesture.
	OnError func(error)
}

// NewDraggable merges opts over DefaultConfig, validates the result and
// places target at its initial position: the position restored from store
// under cfg.Key when one exists, otherwise (InitX, InitY), clamped into the
// viewport. store may be nil.
func NewDraggable(target Target, viewport Size, opts Options, store Store) (*Draggable, error) {
	if target == nil {
		return nil, ErrNoTarget
	}
	cfg := MergeConfig(DefaultConfig(), opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Draggable{
		cfg:      cfg,
		target:   target,
		store:    store,
		name:     cfg.Key,
		viewport: viewport,
		objSize:  target.Size(),
	}
	d.bounds = ComputeBounds(d.viewport, d.objSize, cfg.Gap)

	start := Vec2{cfg.InitX, cfg.InitY}
	if cfg.Key != "" && store != nil {
		saved, ok, err := store.Restore(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("restore %q: %w", cfg.Key, err)
		}
		if ok {
			start = saved
		}
	}
	d.pos = d.bounds.Clamp(start)
	d.zone = Classify(d.pos, d.objSize, d.viewport, cfg.Zones)
	d.target.SetPosition(d.pos.X, d.pos.Y)
	return d, nil
}

// Config returns the merged configuration snapshot.
func (d *Draggable) Config() Config { return d.cfg }

// State returns the current state.
func (d *Draggable) State() State { return d.state }

// Position returns the object's current top-left position.
func (d *Draggable) Position() Vec2 { return d.pos }

// Zone returns the zone computed at the most recent move.
func (d *Draggable) Zone() Zone { return d.zone }

// Bounds returns the current legal position range.
func (d *Draggable) Bounds() Bounds { return d.bounds }

// Animation returns the in-flight snap animation, or nil.
func (d *Draggable) Animation() *SnapAnimation { return d.snap }

// Name returns the name used in callback contexts.
func (d *Draggable) Name() string { return d.name }

// SetName overrides the name reported in callback contexts and events.
func (d *Draggable) SetName(name string) { d.name = name }

// SetEventSink sets the optional ECS bridge.
func (d *Draggable) SetEventSink(sink EventSink) { d.sink = sink }

// SetTweenEasing selects the gween easing used when cfg.Snap is SnapTween.
// It takes effect at the next release.
func (d *Draggable) SetTweenEasing(fn ease.TweenFunc) { d.easing = fn }

// SetDebugWriter enables state-transition logging to w. nil disables it.
func (d *Draggable) SetDebugWriter(w io.Writer) { d.debug = w }

// Handle dispatches a tagged pointer event to Press, Move or Release.
func (d *Draggable) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerPress:
		d.press(ev.PointerID, ev.Pos)
	case PointerMove:
		d.move(ev.PointerID, ev.Pos)
	case PointerRelease:
		d.release(ev.PointerID, ev.Pos)
	}
}

// Press starts a gesture at pointer sample p. It does not move the object.
func (d *Draggable) Press(p Vec2) { d.press(0, p) }

// Move updates the dragged position from pointer sample p.
func (d *Draggable) Move(p Vec2) { d.move(0, p) }

// Release ends the gesture, either persisting immediately or starting the
// snap animation.
func (d *Draggable) Release() { d.release(0, d.pointer) }

func (d *Draggable) press(id int, p Vec2) {
	switch d.state {
	case StateDragging:
		return
	case StateSnapping:
		d.snap.Cancel()
		d.pos = d.bounds.Clamp(Vec2{d.snap.Last(), d.pos.Y})
		d.snap = nil
		d.debugf("%s: snap cancelled at x=%.3f", d.name, d.pos.X)
	}
	d.state = StateDragging
	d.pointerID = id
	d.anchor = p
	d.pointer = p
	d.origin = d.pos
	d.debugf("%s: drag start at (%.1f, %.1f)", d.name, p.X, p.Y)
	d.emit(EventDragStart)
}

func (d *Draggable) move(id int, p Vec2) {
	if d.state != StateDragging || id != d.pointerID {
		return
	}
	d.pointer = p
	d.pos = d.bounds.Clamp(d.origin.Add(p.Sub(d.anchor)))
	d.zone = Classify(d.pos, d.objSize, d.viewport, d.cfg.Zones)
	d.target.SetPosition(d.pos.X, d.pos.Y)
	d.emit(EventDrag)
}

func (d *Draggable) release(id int, p Vec2) {
	if d.state != StateDragging || id != d.pointerID {
		return
	}
	d.pointer = p
	d.emit(EventRelease)

	if !d.cfg.Adsorb {
		d.state = StateIdle
		d.persist()
		return
	}

	targetX := d.bounds.EdgeFor(d.zone)
	if d.pos.X == targetX {
		d.state = StateIdle
		d.persist()
		return
	}

	d.state = StateSnapping
	d.debugf("%s: snapping %s from x=%.3f to x=%.3f", d.name, d.zone, d.pos.X, targetX)
	d.snap = NewSnapAnimation(d.cfg, d.pos.X, targetX, d.easing, d.applyX, d.landed)
}

func (d *Draggable) applyX(x float64) {
	d.pos = d.bounds.Clamp(Vec2{x, d.pos.Y})
	d.target.SetPosition(d.pos.X, d.pos.Y)
}

// abort drops any gesture or snap in flight and returns to Idle without
// emitting events or persisting.
func (d *Draggable) abort() {
	if d.snap != nil {
		d.snap.Cancel()
		d.snap = nil
	}
	d.state = StateIdle
}

func (d *Draggable) landed(x float64) {
	d.pos.X = x
	d.snap = nil
	d.state = StateIdle
	d.debugf("%s: snap landed at x=%.3f", d.name, x)
	d.emit(EventSnapEnd)
	d.persist()
}

// Tick advances an in-flight snap animation by one tick of dt seconds.
// It does nothing unless the state is Snapping.
func (d *Draggable) Tick(dt float64) {
	if d.state != StateSnapping || d.snap == nil {
		return
	}
	d.snap.Update(dt)
}

// Resize recomputes bounds for a new viewport size and re-clamps the current
// position. An active drag continues; a running snap animation is redirected
// to the matching edge of the new bounds.
func (d *Draggable) Resize(viewport Size) {
	d.viewport = viewport
	d.refreshBounds()
}

// SetObjectSize recomputes bounds after the target changed size.
func (d *Draggable) SetObjectSize(size Size) {
	d.objSize = size
	d.refreshBounds()
}

func (d *Draggable) refreshBounds() {
	d.bounds = ComputeBounds(d.viewport, d.objSize, d.cfg.Gap)
	clamped := d.bounds.Clamp(d.pos)

	if d.state == StateSnapping && d.snap != nil {
		// Keep the side chosen at release; only the edge coordinate moves.
		d.pos = clamped
		d.snap.Retarget(d.bounds.EdgeFor(d.zone))
		d.target.SetPosition(d.pos.X, d.pos.Y)
		return
	}
	if clamped != d.pos {
		d.pos = clamped
		d.target.SetPosition(d.pos.X, d.pos.Y)
	}
	if d.state == StateIdle {
		d.zone = Classify(d.pos, d.objSize, d.viewport, d.cfg.Zones)
	}
}

func (d *Draggable) persist() {
	if d.cfg.Key != "" && d.store != nil {
		if err := d.store.Persist(d.cfg.Key, d.pos); err != nil {
			err = fmt.Errorf("persist %q: %w", d.cfg.Key, err)
			d.debugf("%v", err)
			if d.OnError != nil {
				d.OnError(err)
			}
		}
	}
	d.emit(EventPersist)
}

func (d *Draggable) emit(t EventType) {
	ctx := DragContext{
		Draggable: d,
		Name:      d.name,
		Type:      t,
		Start:     d.anchor,
		Position:  d.pos,
		Zone:      d.zone,
		PointerID: d.pointerID,
	}
	if t == EventDragStart || t == EventDrag || t == EventRelease {
		ctx.Pointer = d.pointer
		ctx.Delta = d.pointer.Sub(d.anchor)
	}
	d.fire(ctx)
	if d.observer != nil {
		d.observer(ctx)
	}
	if d.sink != nil {
		d.sink.EmitEvent(ctx.event())
	}
}

func (d *Draggable) debugf(format string, args ...any) {
	if d.debug == nil {
		return
	}
	_, _ = fmt.Fprintf(d.debug, "[snapdrag] "+format+"\n", args...)
}
