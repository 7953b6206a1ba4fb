// Package factory executes node-creation plans against a host container.
// Execution is all-or-nothing: if any step fails, every node created by
// the invocation is destroyed again and the graph is left untouched.
package factory

import (
	"errors"
	"fmt"

	"github.com/chazu/nodedrop/pkg/host"
	"github.com/chazu/nodedrop/pkg/place"
	"github.com/chazu/nodedrop/pkg/plan"
)

// Request carries everything needed to materialize one plan.
type Request struct {
	Template plan.Template
	Target   host.Container // container for specs with Parent == -1
	Path     string         // normalized file path bound into file parameters
	BaseName string         // sanitized filename stem used for node naming
	Origin   host.Vec2      // chain origin in editor coordinates
	// ChainSpacing scales template grid offsets. Zero means the default.
	ChainSpacing float64
}

// Result reports what a successful build created.
type Result struct {
	Nodes []host.Node // creation order; Nodes[0] is the chain root
	Names []string
}

// Root returns the name of the chain root node.
func (r *Result) Root() string {
	if len(r.Names) == 0 {
		return ""
	}
	return r.Names[0]
}

// FactoryError reports a failed step. The graph has already been rolled
// back when the caller sees one.
type FactoryError struct {
	Step   int    // index of the failing spec, -1 for pre-flight failures
	TypeID string // node type of the failing step, if any
	Err    error
}

func (e *FactoryError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("plan rejected: %v", e.Err)
	}
	return fmt.Sprintf("step %d (%s) failed: %v", e.Step, e.TypeID, e.Err)
}

func (e *FactoryError) Unwrap() error { return e.Err }

// Build materializes the plan: creates every spec in declared order,
// binds the file path and static parameters, positions each node, then
// applies the wiring once both endpoints exist. On any failure all nodes
// created so far are destroyed in reverse order before returning.
func Build(req Request) (*Result, error) {
	t := req.Template
	if err := t.Validate(); err != nil {
		return nil, &FactoryError{Step: -1, Err: err}
	}
	if !t.HasFileParm() {
		return nil, &FactoryError{Step: -1, Err: errors.New("plan binds no file parameter")}
	}
	if req.Target == nil {
		return nil, &FactoryError{Step: -1, Err: errors.New("no target container")}
	}
	spacing := req.ChainSpacing
	if spacing == 0 {
		spacing = place.DefaultChainSpacing
	}

	created := make([]host.Node, 0, len(t.Specs))
	names := make([]string, 0, len(t.Specs))
	fail := func(step int, typeID string, err error) (*Result, error) {
		return nil, rollback(created, &FactoryError{Step: step, TypeID: typeID, Err: err})
	}

	for i, spec := range t.Specs {
		container := req.Target
		if spec.Parent >= 0 {
			container = created[spec.Parent].Container()
			if container == nil {
				return fail(i, spec.TypeID, fmt.Errorf("step %d is not a network", spec.Parent))
			}
		}

		name := place.Dedupe(spec.Name(req.BaseName), container.ChildNames())
		node, err := container.CreateNode(spec.TypeID, name)
		if err != nil {
			return fail(i, spec.TypeID, err)
		}
		created = append(created, node)
		names = append(names, name)

		if err := node.SetPosition(place.NodePos(req.Origin, spec.Offset, spacing)); err != nil {
			return fail(i, spec.TypeID, err)
		}
		for parm, value := range spec.Parms {
			if err := node.SetParm(parm, value); err != nil {
				return fail(i, spec.TypeID, err)
			}
		}
		if spec.FileParm != "" {
			if err := node.SetParm(spec.FileParm, req.Path); err != nil {
				return fail(i, spec.TypeID, err)
			}
		}
	}

	for _, w := range t.Wires {
		if err := created[w.To].ConnectInput(w.Role, created[w.From]); err != nil {
			return fail(w.To, t.Specs[w.To].TypeID, err)
		}
	}

	return &Result{Nodes: created, Names: names}, nil
}

// rollback destroys created nodes in reverse order. Destroy failures are
// joined onto the build error.
func rollback(created []host.Node, buildErr *FactoryError) error {
	var destroyErrs []error
	for i := len(created) - 1; i >= 0; i-- {
		if err := created[i].Destroy(); err != nil {
			destroyErrs = append(destroyErrs, err)
		}
	}
	if len(destroyErrs) > 0 {
		return errors.Join(buildErr, fmt.Errorf("rollback incomplete: %w", errors.Join(destroyErrs...)))
	}
	return buildErr
}
