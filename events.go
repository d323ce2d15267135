package snapdrag

// DragContext carries drag lifecycle data to callbacks.
type DragContext struct {
	Draggable *Draggable
	Name      string // node name when hosted by a Scene, otherwise the persistence key
	Type      EventType
	Pointer   Vec2 // latest pointer sample (zero for EventSnapEnd and EventPersist)
	Start     Vec2 // pointer sample captured at press
	Delta     Vec2 // pointer - Start
	Position  Vec2 // object's clamped top-left position
	Zone      Zone
	PointerID int
}

// DragEvent is the flattened form of DragContext handed to an EventSink.
type DragEvent struct {
	Type      EventType
	Name      string
	X, Y      float64
	PointerX  float64
	PointerY  float64
	Zone      Zone
	PointerID int
}

// EventSink receives every drag lifecycle event, for optional ECS
// integration.
type EventSink interface {
	EmitEvent(event DragEvent)
}

const eventTypeCount = int(EventPersist) + 1

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	byType [eventTypeCount][]dragHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= eventTypeCount {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(event EventType, fn func(DragContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[event] = append(r.byType[event], dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

func (r *handlerRegistry) fire(ctx DragContext) {
	for _, h := range r.byType[ctx.Type] {
		h.fn(ctx)
	}
}

// OnDragStart registers a callback fired when a press starts a gesture.
func (r *handlerRegistry) OnDragStart(fn func(DragContext)) CallbackHandle {
	return r.add(EventDragStart, fn)
}

// OnDrag registers a callback fired after every clamped move.
func (r *handlerRegistry) OnDrag(fn func(DragContext)) CallbackHandle {
	return r.add(EventDrag, fn)
}

// OnRelease registers a callback fired when the pointer is released.
func (r *handlerRegistry) OnRelease(fn func(DragContext)) CallbackHandle {
	return r.add(EventRelease, fn)
}

// OnSnapEnd registers a callback fired when a snap animation lands.
func (r *handlerRegistry) OnSnapEnd(fn func(DragContext)) CallbackHandle {
	return r.add(EventSnapEnd, fn)
}

// OnPersist registers a callback fired after the final position is stored.
// It fires even when no Store is configured, so hosts can use it as the
// gesture-complete signal.
func (r *handlerRegistry) OnPersist(fn func(DragContext)) CallbackHandle {
	return r.add(EventPersist, fn)
}

func (ctx DragContext) event() DragEvent {
	return DragEvent{
		Type:      ctx.Type,
		Name:      ctx.Name,
		X:         ctx.Position.X,
		Y:         ctx.Position.Y,
		PointerX:  ctx.Pointer.X,
		PointerY:  ctx.Pointer.Y,
		Zone:      ctx.Zone,
		PointerID: ctx.PointerID,
	}
}
