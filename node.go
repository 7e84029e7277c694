package easel

// Node is a transform in a parent/child hierarchy. A node may carry a
// mesh; drawing a node through the renderer applies its global
// transform and draws the mesh and all children.
type Node struct {
	// Position is the local translation.
	Position Vec3

	// Rotation is the local rotation as XYZ euler angles in degrees.
	Rotation Vec3

	// Scale is the local scale. NewNode initializes it to (1, 1, 1).
	Scale Vec3

	// Mesh is the optional drawable payload.
	Mesh *Mesh

	parent   *Node
	children []*Node
}

// NewNode creates a node with identity transform.
func NewNode() *Node {
	return &Node{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// SetParent attaches the node to a parent, detaching it from any
// previous parent. Pass nil to detach.
func (n *Node) SetParent(parent *Node) {
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}
}

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// LocalTransform returns the node's local transform matrix, composed as
// translate * rotateZ * rotateY * rotateX * scale.
func (n *Node) LocalTransform() Mat4 {
	m := Mat4Translate(n.Position.X, n.Position.Y, n.Position.Z)
	if n.Rotation.Z != 0 {
		m = m.Mul(Mat4RotateZ(radians(n.Rotation.Z)))
	}
	if n.Rotation.Y != 0 {
		m = m.Mul(Mat4RotateY(radians(n.Rotation.Y)))
	}
	if n.Rotation.X != 0 {
		m = m.Mul(Mat4RotateX(radians(n.Rotation.X)))
	}
	s := n.Scale
	if s == (Vec3{}) {
		s = Vec3{X: 1, Y: 1, Z: 1}
	}
	if s != (Vec3{X: 1, Y: 1, Z: 1}) {
		m = m.Mul(Mat4Scale(s.X, s.Y, s.Z))
	}
	return m
}

// GlobalTransform returns the node's transform composed with all
// ancestors.
func (n *Node) GlobalTransform() Mat4 {
	if n.parent == nil {
		return n.LocalTransform()
	}
	return n.parent.GlobalTransform().Mul(n.LocalTransform())
}

// GlobalPosition returns the node's position in world space.
func (n *Node) GlobalPosition() Vec3 {
	return n.GlobalTransform().TransformPoint(Vec3{})
}
