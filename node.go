package snapdrag

// Node is a solid-colored box hosted by a Scene. It implements Target, so a
// Draggable bound to it moves it directly.
type Node struct {
	Name          string
	X, Y          float64
	Width, Height float64
	Color         Color
	Visible       bool

	// UserData is an arbitrary payload for the application.
	UserData any

	drag *Draggable
}

// NewBox creates a visible box node of the given size and color.
func NewBox(name string, width, height float64, c Color) *Node {
	return &Node{
		Name:    name,
		Width:   width,
		Height:  height,
		Color:   c,
		Visible: true,
	}
}

// SetPosition moves the node's top-left corner.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
}

// Size returns the node's width and height.
func (n *Node) Size() Size {
	return Size{n.Width, n.Height}
}

// Rect returns the node's screen-space rectangle.
func (n *Node) Rect() Rect {
	return Rect{n.X, n.Y, n.Width, n.Height}
}

// Draggable returns the drag state machine bound to this node, or nil.
func (n *Node) Draggable() *Draggable {
	return n.drag
}

// Resize changes the node's size and refreshes the bound draggable's bounds.
func (n *Node) Resize(width, height float64) {
	n.Width, n.Height = width, height
	if n.drag != nil {
		n.drag.SetObjectSize(n.Size())
	}
}
