// Package drop orchestrates the resolution pipeline for external
// drag-and-drop events: classify, normalize, resolve, disambiguate,
// build, place. One event is fully resolved before the next; each file
// of an event runs the full pipeline independently.
package drop

import (
	"errors"
	"log/slog"

	"github.com/chazu/nodedrop/pkg/category"
	"github.com/chazu/nodedrop/pkg/config"
	"github.com/chazu/nodedrop/pkg/factory"
	"github.com/chazu/nodedrop/pkg/host"
	"github.com/chazu/nodedrop/pkg/pathvar"
	"github.com/chazu/nodedrop/pkg/place"
	"github.com/chazu/nodedrop/pkg/plan"
	"github.com/chazu/nodedrop/pkg/prompt"
	"github.com/chazu/nodedrop/pkg/resolve"
)

// Status is the per-file outcome of a drop.
type Status int

const (
	Created   Status = iota // nodes created and wired
	Rejected                // no valid construction in this context
	Cancelled               // user dismissed the disambiguation prompt
	Failed                  // node creation failed and was rolled back
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Rejected:
		return "rejected"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is one drop gesture from the host UI.
type Event struct {
	Paths   []string // dropped files, in drop order
	Context host.GraphContext
}

// FileResult reports what happened to one dropped file. No status is
// fatal: the worst outcome is that nothing happened for this file.
type FileResult struct {
	Path     string   // original absolute path
	Bound    string   // normalized value bound into the file parameter
	Category category.Category
	Status   Status
	Plan     string   // template id that was built (or chosen)
	Nodes    []string // created node names, chain root first
	Reason   string   // human-readable cause for Rejected/Cancelled/Failed
	Err      error    // underlying error for Failed
}

// Pipeline resolves drop events against a host graph. Construct with New;
// a Pipeline is stateless across events apart from its configuration.
type Pipeline struct {
	cfg     config.Config
	table   *category.Table
	norm    *pathvar.Normalizer
	chooser prompt.Chooser
	log     *slog.Logger
}

// New builds a Pipeline from configuration. The extension table override
// (if configured) is read here, once.
func New(cfg config.Config, chooser prompt.Chooser, log *slog.Logger) (*Pipeline, error) {
	if log == nil {
		log = slog.Default()
	}
	if chooser == nil {
		chooser = prompt.Cancel{}
	}

	table := category.DefaultTable()
	if cfg.ExtensionOverrides != "" {
		var err error
		table, err = table.WithOverrides(cfg.ExtensionOverrides)
		if err != nil {
			return nil, err
		}
	}

	return &Pipeline{
		cfg:   cfg,
		table: table,
		norm: &pathvar.Normalizer{
			Root:            cfg.ProjectRoot,
			Var:             cfg.ProjectVar,
			CaseInsensitive: cfg.CaseInsensitiveRoot,
		},
		chooser: chooser,
		log:     log,
	}, nil
}

// HandleDrop runs every file of the event through the pipeline,
// preserving drop order for placement offsets. A failed file never
// affects the files after it.
func (p *Pipeline) HandleDrop(ev Event) []FileResult {
	results := make([]FileResult, 0, len(ev.Paths))
	for i, path := range ev.Paths {
		results = append(results, p.handleFile(path, i, ev.Context))
	}
	return results
}

func (p *Pipeline) handleFile(path string, index int, ctx host.GraphContext) FileResult {
	ext := category.FullExt(path)
	cat := p.table.Classify(ext)

	bound := p.norm.Normalize(path)
	if p.cfg.DetectSequences {
		bound = pathvar.SubstituteSequence(bound)
	}

	res := FileResult{Path: path, Bound: bound, Category: cat}
	log := p.log.With("path", path, "category", cat.String(), "network", ctx.Kind.String())

	action := resolve.Resolve(cat, ext, ctx, resolve.Options{MaxHops: p.cfg.AdaptHops})
	switch action.Kind {
	case resolve.Rejected:
		log.Warn("drop rejected", "reason", action.Reason)
		res.Status = Rejected
		res.Reason = action.Reason
		return res

	case resolve.NeedsChoice:
		chosen, err := p.choose(action)
		if err != nil {
			if errors.Is(err, prompt.ErrCancelled) {
				log.Info("drop cancelled")
				res.Status = Cancelled
				res.Reason = "cancelled"
				return res
			}
			log.Error("disambiguation failed", "error", err)
			res.Status = Failed
			res.Reason = err.Error()
			res.Err = err
			return res
		}
		action.Template = &chosen

	case resolve.Adapted:
		log.Info("drop adapted", "target", action.Target.Name())
	}

	res.Plan = action.Template.ID
	built, err := factory.Build(factory.Request{
		Template:     *action.Template,
		Target:       action.Target,
		Path:         bound,
		BaseName:     place.SafeName(category.Stem(path)),
		Origin:       place.FileOrigin(ctx.DropPos, index, p.cfg.FileSpacing),
		ChainSpacing: p.cfg.ChainSpacing,
	})
	if err != nil {
		log.Error("node creation failed", "error", err)
		res.Status = Failed
		res.Reason = err.Error()
		res.Err = err
		return res
	}

	res.Status = Created
	res.Nodes = built.Names
	log.Info("drop resolved", "plan", res.Plan, "root", built.Root(), "nodes", len(built.Names))
	return res
}

// choose settles a NeedsChoice action: an existing shading-model hint in
// the target network decides silently, otherwise the chooser prompts.
func (p *Pipeline) choose(a resolve.Action) (plan.Template, error) {
	if model := prompt.DetectModel(a.Target); model != "" {
		if c, ok := prompt.MatchModel(a.Candidates, model); ok {
			return c, nil
		}
	}
	return p.chooser.Choose(a.Candidates)
}
