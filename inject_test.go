package snapdrag

import "testing"

func TestInjectQueueOrder(t *testing.T) {
	s := NewScene(Size{400, 300}, InputCaps{})

	s.InjectPress(10, 20)
	s.InjectMove(30, 40)
	s.InjectRelease(50, 60)

	if s.PendingInjections() != 3 {
		t.Fatalf("expected 3 events, got %d", s.PendingInjections())
	}
	if q := s.injectQueue[0]; !q.pressed || q.x != 10 || q.y != 20 {
		t.Error("first event should be press at (10,20)")
	}
	if q := s.injectQueue[1]; !q.pressed || q.x != 30 {
		t.Error("second event should be move at (30,40)")
	}
	if q := s.injectQueue[2]; q.pressed || q.x != 50 {
		t.Error("third event should be release at (50,60)")
	}
}

func TestInjectDrag(t *testing.T) {
	s := NewScene(Size{400, 300}, InputCaps{})
	n := bindAt(t, s, "a", 100, 100)

	var events []string
	s.OnDragStart(func(ctx DragContext) { events = append(events, "dragstart") })
	s.OnDrag(func(ctx DragContext) { events = append(events, "drag") })
	s.OnRelease(func(ctx DragContext) { events = append(events, "release") })

	// frame 0: press at (110,110)
	// frames 1-3: moves to ~(140,120), ~(170,130), (200,140)
	// frame 4: release at (200,140)
	s.InjectDrag(110, 110, 200, 140, 5)
	if s.PendingInjections() != 5 {
		t.Fatalf("expected 5 queued events, got %d", s.PendingInjections())
	}

	for i := 0; i < 5; i++ {
		s.processInput()
	}

	want := []string{"dragstart", "drag", "drag", "drag", "release"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, events[i], want[i])
		}
	}
	if n.X != 190 || n.Y != 130 {
		t.Errorf("node at (%v, %v), want (190, 130)", n.X, n.Y)
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	s := NewScene(Size{400, 300}, InputCaps{})
	s.InjectDrag(0, 0, 100, 100, 1) // should clamp to 2
	if s.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", s.PendingInjections())
	}
}

func TestInjectDrag_TwoFramesDoesNotMove(t *testing.T) {
	s := NewScene(Size{400, 300}, InputCaps{})
	n := bindAt(t, s, "a", 100, 100)

	s.InjectDrag(110, 110, 300, 200, 2)
	s.processInput()
	s.processInput()

	if n.X != 100 || n.Y != 100 {
		t.Errorf("node moved to (%v, %v) without a move event", n.X, n.Y)
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s := NewScene(Size{400, 300}, InputCaps{})
	n := bindAt(t, s, "a", 100, 100)

	s.InjectPress(120, 120)
	if !s.processInjectedInput() {
		t.Error("expected processInjectedInput to consume an event")
	}
	if n.Draggable().State() != StateDragging {
		t.Errorf("State = %v, want dragging", n.Draggable().State())
	}
	if s.PendingInjections() != 0 {
		t.Errorf("queue should be empty, got %d", s.PendingInjections())
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	s := NewScene(Size{400, 300}, InputCaps{})
	if s.processInjectedInput() {
		t.Error("should not consume when queue is empty")
	}
}
