// Package resolve maps a classified file and the graph context it was
// dropped into onto a node-creation action. Resolution is read-only: it
// inspects the context but never mutates the host graph.
package resolve

import (
	"github.com/chazu/nodedrop/pkg/category"
	"github.com/chazu/nodedrop/pkg/host"
	"github.com/chazu/nodedrop/pkg/plan"
)

// ActionKind discriminates the resolver outcomes.
type ActionKind int

const (
	Rejected    ActionKind = iota // no valid construction in this context
	Direct                        // single canonical plan in the drop container
	NeedsChoice                   // several valid plans, user must pick
	Adapted                       // plan targets an adapted container
)

func (k ActionKind) String() string {
	switch k {
	case Rejected:
		return "rejected"
	case Direct:
		return "direct"
	case NeedsChoice:
		return "needs-choice"
	case Adapted:
		return "adapted"
	default:
		return "unknown"
	}
}

// Action is the resolver's verdict for one dropped file.
type Action struct {
	Kind       ActionKind
	Template   *plan.Template  // Direct and Adapted
	Candidates []plan.Template // NeedsChoice, always >= 2
	Target     host.Container  // container the plan builds in
	Reason     string          // Rejected
}

// Options tune the adaptation policy.
type Options struct {
	// MaxHops bounds how many parent containers the resolver may walk
	// when the drop context has no native support. Zero disables
	// adaptation entirely.
	MaxHops int
}

// DefaultOptions keeps placement local: one hop at most.
var DefaultOptions = Options{MaxHops: 1}

// Resolve decides how a file of the given category lands in the given
// context. Rules in priority order: native support, material
// disambiguation, adaptation (geometry wrap in Object contexts, then
// bounded parent hops), rejection. The most local, least surprising
// placement wins; creative choices are never guessed.
func Resolve(cat category.Category, ext string, ctx host.GraphContext, opts Options) Action {
	if ctx.Container == nil {
		return Action{Kind: Rejected, Reason: "no drop container"}
	}
	start := unwrapSubnets(ctx.Container)

	if a, ok := resolveIn(start.Kind(), start, cat, ext); ok {
		return a
	}

	cur := start
	for hop := 0; hop < opts.MaxHops && cur != nil; hop++ {
		parent := cur.Parent()
		if parent == nil {
			break
		}
		if a, ok := resolveIn(parent.Kind(), parent, cat, ext); ok {
			if a.Kind == Direct {
				a.Kind = Adapted
			}
			return a
		}
		cur = parent
	}

	return Action{Kind: Rejected, Reason: "unsupported combination", Target: ctx.Container}
}

// unwrapSubnets skips anonymous subnet wrappers so resolution applies to
// the first real network above the drop point. Wrapper levels do not
// count against the adaptation hop budget.
func unwrapSubnets(c host.Container) host.Container {
	for c != nil && c.Subnet() && c.Parent() != nil {
		c = c.Parent()
	}
	return c
}

// resolveIn applies the non-adaptive rules against one container.
func resolveIn(kind host.NetworkKind, c host.Container, cat category.Category, ext string) (Action, bool) {
	if t := plan.Direct(kind, cat, ext); t != nil {
		return Action{Kind: Direct, Template: t, Target: c}, true
	}

	if kind == host.Material {
		if cands := plan.MaterialCandidates(cat); len(cands) >= 2 {
			return Action{Kind: NeedsChoice, Candidates: cands, Target: c}, true
		}
		return Action{}, false
	}

	// An Object context has no node types of its own; a supported file is
	// wrapped in a fresh geometry container at the drop point.
	if kind == host.Object {
		if inner := plan.Direct(host.Geometry, cat, ext); inner != nil {
			wrapped := plan.WrapInGeometry(*inner)
			return Action{Kind: Adapted, Template: &wrapped, Target: c}, true
		}
	}

	return Action{}, false
}
