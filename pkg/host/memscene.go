package host

import (
	"fmt"

	"github.com/google/uuid"
)

// MemScene is an in-memory scene graph implementing the host interfaces.
// It backs the package tests and the cmd/nodedrop simulator. Node types
// must be registered per network kind; creating an unregistered type
// fails the same way a real host rejects an unknown operator.
type MemScene struct {
	root      *MemContainer
	types     map[NetworkKind]map[string]bool
	wrapKinds map[string]NetworkKind // container node type -> kind of network it wraps
}

// NewMemScene creates a scene with an Object-kind root container.
func NewMemScene() *MemScene {
	s := &MemScene{
		types:     make(map[NetworkKind]map[string]bool),
		wrapKinds: make(map[string]NetworkKind),
	}
	s.root = &MemContainer{scene: s, id: uuid.NewString(), name: "obj", kind: Object}
	return s
}

// Root returns the scene's top-level Object container.
func (s *MemScene) Root() *MemContainer { return s.root }

// RegisterTypes allows the given node types inside networks of a kind.
func (s *MemScene) RegisterTypes(kind NetworkKind, typeIDs ...string) {
	m := s.types[kind]
	if m == nil {
		m = make(map[string]bool)
		s.types[kind] = m
	}
	for _, id := range typeIDs {
		m[id] = true
	}
}

// RegisterContainerType declares that nodes of typeID are themselves
// networks of the given kind (e.g. a "geo" node wraps a Geometry network).
func (s *MemScene) RegisterContainerType(typeID string, kind NetworkKind) {
	s.wrapKinds[typeID] = kind
}

// AddNetwork attaches a child network for test and simulator setup,
// bypassing type registration.
func (s *MemScene) AddNetwork(parent *MemContainer, name string, kind NetworkKind, subnet bool) *MemContainer {
	c := &MemContainer{
		scene:  s,
		id:     uuid.NewString(),
		name:   name,
		kind:   kind,
		subnet: subnet,
		parent: parent,
	}
	parent.networks = append(parent.networks, c)
	return c
}

// Network finds a container added via AddNetwork by name, searching the
// hierarchy depth-first. Returns nil when no such network exists.
func (s *MemScene) Network(name string) *MemContainer {
	return s.root.findNetwork(name)
}

func (c *MemContainer) findNetwork(name string) *MemContainer {
	for _, nw := range c.networks {
		if nw.name == name {
			return nw
		}
		if found := nw.findNetwork(name); found != nil {
			return found
		}
	}
	return nil
}

// MemContainer is a network in a MemScene.
type MemContainer struct {
	scene    *MemScene
	id       string
	name     string
	kind     NetworkKind
	subnet   bool
	parent   *MemContainer
	nodes    []*MemNode
	networks []*MemContainer // networks added via AddNetwork
}

func (c *MemContainer) Kind() NetworkKind { return c.kind }
func (c *MemContainer) Name() string      { return c.name }
func (c *MemContainer) Subnet() bool      { return c.subnet }

func (c *MemContainer) Parent() Container {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *MemContainer) ChildNames() []string {
	names := make([]string, 0, len(c.nodes)+len(c.networks))
	for _, n := range c.nodes {
		names = append(names, n.name)
	}
	for _, nw := range c.networks {
		names = append(names, nw.name)
	}
	return names
}

func (c *MemContainer) ChildTypeNames() []string {
	types := make([]string, 0, len(c.nodes))
	for _, n := range c.nodes {
		types = append(types, n.typeID)
	}
	return types
}

func (c *MemContainer) SupportsType(typeID string) bool {
	return c.scene.types[c.kind][typeID]
}

// CreateNode instantiates a node. The type must be registered for this
// container's kind and the name must be free.
func (c *MemContainer) CreateNode(typeID, name string) (Node, error) {
	if !c.SupportsType(typeID) {
		return nil, fmt.Errorf("container %q (%s): unknown node type %q", c.name, c.kind, typeID)
	}
	for _, existing := range c.ChildNames() {
		if existing == name {
			return nil, fmt.Errorf("container %q: node name %q already taken", c.name, name)
		}
	}
	n := &MemNode{
		id:     uuid.NewString(),
		name:   name,
		typeID: typeID,
		parms:  make(map[string]string),
		inputs: make(map[string]*MemNode),
		parent: c,
	}
	if kind, ok := c.scene.wrapKinds[typeID]; ok {
		n.inner = &MemContainer{
			scene:  c.scene,
			id:     uuid.NewString(),
			name:   name,
			kind:   kind,
			parent: c,
		}
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// NodeCount returns the number of nodes directly in this container.
func (c *MemContainer) NodeCount() int { return len(c.nodes) }

// FindNode returns the directly contained node with the given name, or nil.
func (c *MemContainer) FindNode(name string) *MemNode {
	for _, n := range c.nodes {
		if n.name == name {
			return n
		}
	}
	return nil
}

// MemNode is a node in a MemScene.
type MemNode struct {
	id     string
	name   string
	typeID string
	pos    Vec2
	parms  map[string]string
	inputs map[string]*MemNode
	inner  *MemContainer
	parent *MemContainer
}

func (n *MemNode) Name() string   { return n.name }
func (n *MemNode) TypeID() string { return n.typeID }

func (n *MemNode) SetParm(name, value string) error {
	n.parms[name] = value
	return nil
}

func (n *MemNode) SetPosition(pos Vec2) error {
	n.pos = pos
	return nil
}

func (n *MemNode) ConnectInput(role string, src Node) error {
	mn, ok := src.(*MemNode)
	if !ok {
		return fmt.Errorf("node %q: foreign source node", n.name)
	}
	if mn.parent != n.parent {
		return fmt.Errorf("node %q: cannot wire across containers", n.name)
	}
	n.inputs[role] = mn
	return nil
}

func (n *MemNode) Container() Container {
	if n.inner == nil {
		return nil
	}
	return n.inner
}

func (n *MemNode) Destroy() error {
	for i, sibling := range n.parent.nodes {
		if sibling == n {
			n.parent.nodes = append(n.parent.nodes[:i], n.parent.nodes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("node %q: already destroyed", n.name)
}

// Parm returns a parameter value for assertions.
func (n *MemNode) Parm(name string) string { return n.parms[name] }

// Position returns the node's editor position.
func (n *MemNode) Position() Vec2 { return n.pos }

// Input returns the node wired into the given input role, or nil.
func (n *MemNode) Input(role string) *MemNode { return n.inputs[role] }
