// Package plan models node-creation plans: ordered node specifications
// plus the connections between them, representing one atomic unit of
// graph construction.
package plan

import (
	"fmt"

	"github.com/chazu/nodedrop/pkg/host"
)

// NodeSpec describes one node to create.
type NodeSpec struct {
	// TypeID is the host node type to instantiate.
	TypeID string
	// NameFmt formats the node name from the drop's base name. Empty
	// means the base name itself.
	NameFmt string
	// FileParm names the parameter that receives the normalized file
	// path. Empty means this spec takes no file reference.
	FileParm string
	// Parms are static parameter values set after creation.
	Parms map[string]string
	// Offset is the position relative to the drop point, in grid units.
	Offset host.Vec2
	// Parent selects where the node is created: -1 for the plan's target
	// container, otherwise the index of an earlier spec whose node is
	// itself a network (e.g. a geometry container).
	Parent int
}

// Name renders the spec's node name for a base name.
func (s NodeSpec) Name(base string) string {
	if s.NameFmt == "" {
		return base
	}
	return fmt.Sprintf(s.NameFmt, base)
}

// Wire connects the output of one step to a named input of another.
type Wire struct {
	From int    // index of the source spec
	To   int    // index of the destination spec
	Role string // destination input name
}

// Template is a node-creation plan before path binding. Spec order is
// creation order: dependencies come first so wiring targets exist.
// Specs[0] is the chain root placed at the drop point.
type Template struct {
	ID    string // stable identifier, doubles as the disambiguation tag
	Label string // human-readable label for the disambiguation prompt
	Specs []NodeSpec
	Wires []Wire
}

// Validate checks structural soundness: at least one spec, parent and
// wire indices referring to earlier steps, wire endpoints in range.
func (t Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template without id")
	}
	if len(t.Specs) == 0 {
		return fmt.Errorf("template %s: no specs", t.ID)
	}
	for i, s := range t.Specs {
		if s.TypeID == "" {
			return fmt.Errorf("template %s: spec %d has no type", t.ID, i)
		}
		if s.Parent >= i {
			return fmt.Errorf("template %s: spec %d parented to later step %d", t.ID, i, s.Parent)
		}
		if s.Parent < -1 {
			return fmt.Errorf("template %s: spec %d has invalid parent %d", t.ID, i, s.Parent)
		}
	}
	for _, w := range t.Wires {
		if w.From < 0 || w.From >= len(t.Specs) || w.To < 0 || w.To >= len(t.Specs) {
			return fmt.Errorf("template %s: wire %d->%d out of range", t.ID, w.From, w.To)
		}
		if w.From == w.To {
			return fmt.Errorf("template %s: self wire on step %d", t.ID, w.From)
		}
		if w.Role == "" {
			return fmt.Errorf("template %s: wire %d->%d without role", t.ID, w.From, w.To)
		}
	}
	return nil
}

// HasFileParm reports whether any spec binds the dropped file path.
// Every executable plan must reference the file somewhere.
func (t Template) HasFileParm() bool {
	for _, s := range t.Specs {
		if s.FileParm != "" {
			return true
		}
	}
	return false
}
