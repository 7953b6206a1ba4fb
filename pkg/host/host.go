// Package host defines the boundary between the drop-resolution core and
// the node-graph editor that embeds it. The core only ever sees the
// read-only GraphContext snapshot plus the Container and Node interfaces;
// it never holds a long-lived reference into host state.
package host

// NetworkKind enumerates the kinds of node-graph compartments a drop can
// land in.
type NetworkKind int

const (
	Object    NetworkKind = iota // scene-object level container
	Geometry                     // geometry processing network
	Composite                    // image compositing network
	Material                     // shading network
	Lighting                     // scene-stage / lighting network
	Other                        // anything else (subnets, channel networks, ...)
)

func (k NetworkKind) String() string {
	switch k {
	case Object:
		return "object"
	case Geometry:
		return "geometry"
	case Composite:
		return "composite"
	case Material:
		return "material"
	case Lighting:
		return "lighting"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Vec2 is a 2D position in network-editor coordinates.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// GraphContext is the read-only snapshot of where a drop happened.
// Supplied by the host UI per drop event; Kind mirrors Container.Kind()
// at snapshot time.
type GraphContext struct {
	Kind      NetworkKind
	Container Container
	DropPos   Vec2
}

// Context builds a GraphContext for a container and drop position.
func Context(c Container, pos Vec2) GraphContext {
	return GraphContext{Kind: c.Kind(), Container: c, DropPos: pos}
}

// Container is a network the core can create nodes in.
type Container interface {
	// Kind reports the network kind of this container.
	Kind() NetworkKind
	// Name is the container's name within its parent.
	Name() string
	// Parent returns the enclosing container, or nil at the scene root.
	Parent() Container
	// Subnet reports whether this container is an anonymous wrapper that
	// resolution should look through when adapting upward.
	Subnet() bool
	// ChildNames lists the names of nodes directly inside this container.
	ChildNames() []string
	// ChildTypeNames lists the node type ids of direct children.
	ChildTypeNames() []string
	// SupportsType reports whether the container can instantiate the
	// given node type.
	SupportsType(typeID string) bool
	// CreateNode instantiates a node of the given type with the given
	// name. The name must be unique within the container.
	CreateNode(typeID, name string) (Node, error)
}

// Node is a created node the core can parameterize, position, and wire.
type Node interface {
	// Name is the node's unique name within its container.
	Name() string
	// TypeID is the node's type identifier.
	TypeID() string
	// SetParm sets a string parameter.
	SetParm(name, value string) error
	// SetPosition moves the node in the network editor.
	SetPosition(pos Vec2) error
	// ConnectInput wires src into this node's named input.
	ConnectInput(role string, src Node) error
	// Container returns the container holding this node. Nil unless the
	// node is itself a network (e.g. a created geometry container).
	Container() Container
	// Destroy removes the node from the graph.
	Destroy() error
}
