package snapdrag

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// --- Hit testing ---

// hitTest finds the topmost visible node with a bound draggable at (x, y).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Node {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		n := s.nodes[i]
		if !n.Visible || n.drag == nil {
			continue
		}
		if n.Rect().Contains(x, y) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle injected, mouse and
// touch input. Injected events take over the frame so scripted runs are not
// disturbed by the real cursor.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.caps.Mouse {
		s.processMousePointer()
	}
	if s.caps.Touch {
		s.processTouchPointers()
	}
}

// processMousePointer handles mouse input (pointer 0). Only the left button drags.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release edge detection for one pointer
// and forwards the result to the draggable captured at press time.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &s.pointers[pointerID]
	pos := Vec2{x, y}

	switch {
	case pressed && !ps.down:
		ps.down = true
		if n := s.hitTest(x, y); n != nil {
			s.captured[pointerID] = n
			s.debugf("pointer %d press on %q", pointerID, n.Name)
			n.drag.press(pointerID, pos)
		}
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			if n := s.captured[pointerID]; n != nil {
				n.drag.move(pointerID, pos)
			}
		}
	case !pressed && ps.down:
		ps.down = false
		if n := s.captured[pointerID]; n != nil {
			s.captured[pointerID] = nil
			n.drag.release(pointerID, pos)
		}
	}
	ps.lastX = x
	ps.lastY = y
}
